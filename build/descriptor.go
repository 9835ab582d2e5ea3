// Package build renders declarative selector descriptors into CSS
// selector strings using the css builder.
package build

import (
	"bytes"
	"fmt"

	yaml "gopkg.in/yaml.v3"

	"cssel/css"
)

type (
	// Descriptor describes a single selector. Fragment fields are
	// applied in canonical order; when Combine is present it takes over
	// and the fragment fields are ignored (a combined selector renders
	// only its combination text anyway).
	Descriptor struct {
		Name          string   `yaml:"name,omitempty"`
		Element       string   `yaml:"element,omitempty"`
		ID            string   `yaml:"id,omitempty"`
		Classes       []string `yaml:"classes,omitempty"`
		Attrs         []string `yaml:"attrs,omitempty"`
		PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
		PseudoElement string   `yaml:"pseudo_element,omitempty"`

		Combine *CombineDescriptor `yaml:"combine,omitempty"`
	}

	// CombineDescriptor joins two child descriptors with a combinator.
	// An empty combinator falls back to the configured default.
	CombineDescriptor struct {
		Left       Descriptor `yaml:"left"`
		Combinator string     `yaml:"combinator,omitempty"`
		Right      Descriptor `yaml:"right"`
	}

	// Document is the top-level structure of a descriptor file.
	Document struct {
		Selectors []Descriptor `yaml:"selectors"`
	}
)

// Rendered is one named, rendered selector ready for output.
type Rendered struct {
	Name     string `ion:"name" yaml:"name"`
	Selector string `ion:"selector" yaml:"selector"`
}

// ParseDocument decodes a descriptor document, rejecting unknown fields.
func ParseDocument(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode selector descriptors: %w", err)
	}
	return &doc, nil
}

// Build assembles the descriptor into a selector value.
func (d Descriptor) Build(defaultCombinator string) (css.Selector, error) {
	if d.Combine != nil {
		left, err := d.Combine.Left.Build(defaultCombinator)
		if err != nil {
			return css.Selector{}, err
		}
		right, err := d.Combine.Right.Build(defaultCombinator)
		if err != nil {
			return css.Selector{}, err
		}
		combinator := d.Combine.Combinator
		if combinator == "" {
			combinator = defaultCombinator
		}
		return css.Combine(left, combinator, right), nil
	}

	var (
		s   css.Selector
		err error
	)
	if d.Element != "" {
		if s, err = s.Element(d.Element); err != nil {
			return s, err
		}
	}
	if d.ID != "" {
		if s, err = s.ID(d.ID); err != nil {
			return s, err
		}
	}
	for _, class := range d.Classes {
		if s, err = s.Class(class); err != nil {
			return s, err
		}
	}
	for _, attr := range d.Attrs {
		if s, err = s.Attr(attr); err != nil {
			return s, err
		}
	}
	for _, pc := range d.PseudoClasses {
		if s, err = s.PseudoClass(pc); err != nil {
			return s, err
		}
	}
	if d.PseudoElement != "" {
		if s, err = s.PseudoElement(d.PseudoElement); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Render builds every descriptor in the document in source order.
func (doc *Document) Render(defaultCombinator string) ([]Rendered, error) {
	out := make([]Rendered, 0, len(doc.Selectors))
	for i, d := range doc.Selectors {
		s, err := d.Build(defaultCombinator)
		if err != nil {
			name := d.Name
			if name == "" {
				name = fmt.Sprintf("selector #%d", i+1)
			}
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, Rendered{Name: d.Name, Selector: s.String()})
	}
	return out, nil
}
