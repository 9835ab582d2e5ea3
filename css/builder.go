// Package css builds CSS selector strings programmatically.
//
// A Selector is assembled one fragment at a time and rendered with
// String. Selector values are immutable: every operation returns a new
// value, so any intermediate result can be reused as the base for
// several independent variants.
package css

import "strings"

// Selector accumulates the fragments of a compound CSS selector.
// The zero value is an empty selector ready for use.
//
// Each fragment kind is stored with its syntactic marker already
// applied (#id, .class, [attr], :pseudo-class, ::pseudo-element), so
// rendering is plain concatenation in canonical order: element, id,
// class, attribute, pseudo-class, pseudo-element. Repeatable kinds
// (class, attribute, pseudo-class) concatenate on every append.
type Selector struct {
	element     string
	id          string
	class       string
	attr        string
	pseudoClass string
	pseudoElem  string

	// combined, once set by Combine, freezes rendering: String returns
	// it verbatim regardless of fragments appended afterwards.
	combined string
}

// Element appends an element type name (no marker). A selector holds at
// most one element; appending after an id fragment is out of order.
// NOTE: the ordering guard inspects only the id fragment, not later
// kinds - keep it that way, callers depend on the exact behavior.
func (s Selector) Element(name string) (Selector, error) {
	if s.element != "" {
		return s, ErrDuplicatePart
	}
	if s.id != "" {
		return s, ErrOutOfOrder
	}
	s.element += name
	return s, nil
}

// ID appends an id fragment rendered as #name. A selector holds at most
// one id; appending after a class or pseudo-class fragment is out of
// order. Attribute and pseudo-element fragments are not consulted.
func (s Selector) ID(name string) (Selector, error) {
	if s.id != "" {
		return s, ErrDuplicatePart
	}
	if s.class != "" || s.pseudoClass != "" {
		return s, ErrOutOfOrder
	}
	s.id += "#" + name
	return s, nil
}

// Class appends a class fragment rendered as .name. Appending after an
// attribute fragment is out of order.
func (s Selector) Class(name string) (Selector, error) {
	if s.attr != "" {
		return s, ErrOutOfOrder
	}
	s.class += "." + name
	return s, nil
}

// Attr appends an attribute fragment rendered as [expr]. The expression
// is passed through verbatim, nothing is validated or escaped.
// Appending after a pseudo-class fragment is out of order.
func (s Selector) Attr(expr string) (Selector, error) {
	if s.pseudoClass != "" {
		return s, ErrOutOfOrder
	}
	s.attr += "[" + expr + "]"
	return s, nil
}

// PseudoClass appends a pseudo-class fragment rendered as :name.
// Appending after a pseudo-element fragment is out of order.
func (s Selector) PseudoClass(name string) (Selector, error) {
	if s.pseudoElem != "" {
		return s, ErrOutOfOrder
	}
	s.pseudoClass += ":" + name
	return s, nil
}

// PseudoElement appends a pseudo-element fragment rendered as ::name.
// A selector holds at most one pseudo-element.
func (s Selector) PseudoElement(name string) (Selector, error) {
	if s.pseudoElem != "" {
		return s, ErrDuplicatePart
	}
	s.pseudoElem += "::" + name
	return s, nil
}

// Combine joins two rendered selectors with a combinator into a new
// selector. The combinator is taken verbatim (CSS defines space, "+",
// "~" and ">", but nothing is enforced) and padded with single spaces.
// The result renders as the precomputed text even if further fragments
// are appended to it later; only another Combine produces a different
// render for that lineage.
func Combine(left Selector, combinator string, right Selector) Selector {
	return Selector{combined: left.String() + " " + combinator + " " + right.String()}
}

// String renders the selector, implementing fmt.Stringer. A combined
// selector returns its precomputed text; otherwise the fragments
// present are concatenated in canonical order with no extra separators.
// String never modifies the selector and may be called at any point.
func (s Selector) String() string {
	if s.combined != "" {
		return s.combined
	}
	var b strings.Builder
	b.Grow(len(s.element) + len(s.id) + len(s.class) + len(s.attr) + len(s.pseudoClass) + len(s.pseudoElem))
	b.WriteString(s.element)
	b.WriteString(s.id)
	b.WriteString(s.class)
	b.WriteString(s.attr)
	b.WriteString(s.pseudoClass)
	b.WriteString(s.pseudoElem)
	return b.String()
}
