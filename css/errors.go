package css

import "errors"

// The builder has exactly two failure modes. Both are reported by the
// append operation itself, never deferred to String.
var (
	// ErrDuplicatePart is returned when an element, id or pseudo-element
	// fragment is appended to a selector that already has one.
	ErrDuplicatePart = errors.New("Element, id and pseudo-element should not occur more than one time inside the selector")

	// ErrOutOfOrder is returned when a fragment is appended after a
	// fragment of a later kind is already present.
	ErrOutOfOrder = errors.New("Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
)
