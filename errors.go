package rack

import "errors"

// AddUnitErrorKind classifies why an Add failed.
type AddUnitErrorKind int

const (
	// FullRack means every slot was held when Add scanned the rack.
	FullRack AddUnitErrorKind = iota + 1
)

func (k AddUnitErrorKind) String() string {
	switch k {
	case FullRack:
		return "full rack"
	default:
		return "unknown"
	}
}

// AddUnitError is returned when a value cannot be added to a rack.
type AddUnitError struct {
	Kind AddUnitErrorKind
}

func (e *AddUnitError) Error() string {
	switch e.Kind {
	case FullRack:
		return "rack: the rack is full"
	default:
		return "rack: add failed"
	}
}

// Is matches any AddUnitError of the same kind.
func (e *AddUnitError) Is(target error) bool {
	var t *AddUnitError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// ErrFullRack is returned by Add when no slot is free.
var ErrFullRack error = &AddUnitError{Kind: FullRack}
