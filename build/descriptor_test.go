package build_test

import (
	"strings"
	"testing"

	"cssel/build"
)

func TestParseDocument_Render(t *testing.T) {
	input := []byte(`selectors:
  - name: link
    element: a
    attrs: ['href$=".png"']
    pseudo_classes: [focus]
  - name: editable
    id: main
    classes: [container, editable]
`)
	doc, err := build.ParseDocument(input)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	rendered, err := doc.Render(" ")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(rendered) != 2 {
		t.Fatalf("Render() produced %d selectors, want 2", len(rendered))
	}
	if rendered[0].Selector != `a[href$=".png"]:focus` {
		t.Errorf("selector %q = %q, want %q", rendered[0].Name, rendered[0].Selector, `a[href$=".png"]:focus`)
	}
	if rendered[1].Selector != "#main.container.editable" {
		t.Errorf("selector %q = %q, want %q", rendered[1].Name, rendered[1].Selector, "#main.container.editable")
	}
}

func TestParseDocument_Combine(t *testing.T) {
	input := []byte(`selectors:
  - name: sibling
    combine:
      left: { element: div, id: main }
      combinator: "+"
      right: { element: span }
  - name: descendant
    combine:
      left: { element: ul }
      right: { element: li }
`)
	doc, err := build.ParseDocument(input)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	rendered, err := doc.Render(">")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if rendered[0].Selector != "div#main + span" {
		t.Errorf("sibling = %q, want %q", rendered[0].Selector, "div#main + span")
	}
	// missing combinator falls back to the default
	if rendered[1].Selector != "ul > li" {
		t.Errorf("descendant = %q, want %q", rendered[1].Selector, "ul > li")
	}
}

func TestParseDocument_NestedCombine(t *testing.T) {
	input := []byte(`selectors:
  - combine:
      left: { element: div }
      combinator: ">"
      right:
        combine:
          left: { element: p }
          combinator: "~"
          right: { element: span }
`)
	doc, err := build.ParseDocument(input)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	rendered, err := doc.Render(" ")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if rendered[0].Selector != "div > p ~ span" {
		t.Errorf("nested = %q, want %q", rendered[0].Selector, "div > p ~ span")
	}
}

func TestParseDocument_UnknownField(t *testing.T) {
	_, err := build.ParseDocument([]byte("selectors:\n  - tag: div\n"))
	if err == nil {
		t.Fatal("ParseDocument() accepted unknown descriptor field")
	}
	if !strings.Contains(err.Error(), "tag") {
		t.Errorf("error does not name the unknown field: %v", err)
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	if _, err := build.ParseDocument([]byte("selectors: [")); err == nil {
		t.Fatal("ParseDocument() accepted malformed yaml")
	}
}
