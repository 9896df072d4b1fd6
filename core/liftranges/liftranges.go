// Package liftranges implements the codec for the companion lift-ranges
// document: the controlled vocabularies (grammatical categories, semantic
// domains, custom possibility lists) that LIFT entries reference by name.
// Range elements nest to arbitrary depth, so semantic-domain trees like
// World > Africa > Kenya round-trip intact.
//
// Like the entry codec, this is a pure transformation: no I/O, no logging,
// no shared state between calls.
package liftranges

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/lexward/lexward/core/encoding"
	"github.com/lexward/lexward/core/errors"
	"github.com/lexward/lexward/core/multitext"
	"github.com/lexward/lexward/core/xml"
)

const (
	// Namespace matches the entry document namespace; ranges documents use
	// the same convention and may likewise omit it.
	Namespace = "http://fieldworks.sil.org/schemas/lift/0.13"

	formatName = "lift-ranges"
)

// Element is one value of a controlled vocabulary. Children hold nested
// sub-values; the nesting depth is unbounded.
type Element struct {
	ID          string               `json:"id"`
	Label       *multitext.MultiText `json:"label,omitempty"`
	Abbrev      *multitext.MultiText `json:"abbrev,omitempty"`
	Description *multitext.MultiText `json:"description,omitempty"`
	Children    []*Element           `json:"children,omitempty"`
}

// Range is one controlled vocabulary: an id plus its ordered top-level values.
type Range struct {
	ID     string     `json:"id"`
	Values []*Element `json:"values"`
}

// RangeSet maps a range id to its definition.
type RangeSet map[string]*Range

// Parse converts a lift-ranges document into a RangeSet. The document may or
// may not declare the LIFT namespace. Unknown elements are ignored.
func Parse(doc string) (RangeSet, error) {
	d, err := xml.Parse([]byte(doc))
	if err != nil {
		return nil, errors.NewMalformed(formatName, err)
	}

	root := d.Root()
	if root == nil || root.Name() != "lift-ranges" {
		return nil, errors.NewMalformedReason(formatName, "root element is not lift-ranges")
	}

	res := xml.NewResolver(root)

	ranges := make(RangeSet)
	idx := 0
	for _, node := range root.Children() {
		if !res.Is(node, "range") {
			continue
		}
		id := node.Attr("id")
		if id == "" {
			return nil, errors.NewMissingField("range", "id", idx)
		}
		r := &Range{ID: id}
		elemIdx := 0
		for _, child := range node.Children() {
			if !res.Is(child, "range-element") {
				continue
			}
			el, err := parseElement(res, child, id, elemIdx)
			if err != nil {
				return nil, err
			}
			r.Values = append(r.Values, el)
			elemIdx++
		}
		ranges[id] = r
		idx++
	}
	return ranges, nil
}

func parseElement(res *xml.Resolver, node *xml.Node, rangeID string, idx int) (*Element, error) {
	id := node.Attr("id")
	if id == "" {
		return nil, &errors.MissingFieldError{Element: "range-element", Field: "id", Scope: rangeID, Index: idx}
	}

	el := &Element{ID: id}
	childIdx := 0
	for _, child := range node.Children() {
		switch {
		case res.Is(child, "label"):
			el.Label = parseForms(child)
		case res.Is(child, "abbrev"):
			el.Abbrev = parseForms(child)
		case res.Is(child, "description"):
			el.Description = parseForms(child)
		case res.Is(child, "range-element"):
			nested, err := parseElement(res, child, rangeID, childIdx)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, nested)
			childIdx++
		}
	}
	return el, nil
}

func parseForms(node *xml.Node) *multitext.MultiText {
	var text *multitext.MultiText
	for _, form := range node.ChildrenNamed("form") {
		lang := form.Attr("lang")
		if lang == "" {
			continue
		}
		if text == nil {
			text = multitext.New()
		}
		if t := form.FirstChildNamed("text"); t != nil {
			text.Set(lang, t.Text())
		} else {
			text.Set(lang, form.Text())
		}
	}
	return text
}

// Generate converts a RangeSet into a pretty-indented lift-ranges document.
// Ranges emit in sorted id order; elements keep their list order. Output is
// identical across calls for the same logical input.
func Generate(ranges RangeSet) (string, error) {
	ids := make([]string, 0, len(ranges))
	for id, r := range ranges {
		if id == "" || r == nil || r.ID == "" {
			return "", errors.NewMissingField("range", "id", len(ids))
		}
		if err := checkElements(id, r.Values); err != nil {
			return "", err
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, "<lift-ranges xmlns=\"%s\">\n", Namespace)
	for _, id := range ids {
		r := ranges[id]
		fmt.Fprintf(&b, "%s<range id=\"%s\">\n", ind(1), attr(r.ID))
		for _, el := range r.Values {
			writeElement(&b, 2, el)
		}
		fmt.Fprintf(&b, "%s</range>\n", ind(1))
	}
	b.WriteString("</lift-ranges>\n")
	return b.String(), nil
}

func checkElements(rangeID string, els []*Element) error {
	for i, el := range els {
		if el == nil || el.ID == "" {
			return &errors.MissingFieldError{Element: "range-element", Field: "id", Scope: rangeID, Index: i}
		}
		if err := checkElements(rangeID, el.Children); err != nil {
			return err
		}
	}
	return nil
}

func writeElement(b *bytes.Buffer, depth int, el *Element) {
	empty := el.Label.IsEmpty() && el.Abbrev.IsEmpty() && el.Description.IsEmpty() && len(el.Children) == 0
	if empty {
		fmt.Fprintf(b, "%s<range-element id=\"%s\"/>\n", ind(depth), attr(el.ID))
		return
	}
	fmt.Fprintf(b, "%s<range-element id=\"%s\">\n", ind(depth), attr(el.ID))
	writeTextBlock(b, depth+1, "label", el.Label)
	writeTextBlock(b, depth+1, "abbrev", el.Abbrev)
	writeTextBlock(b, depth+1, "description", el.Description)
	for _, child := range el.Children {
		writeElement(b, depth+1, child)
	}
	fmt.Fprintf(b, "%s</range-element>\n", ind(depth))
}

func writeTextBlock(b *bytes.Buffer, depth int, name string, mt *multitext.MultiText) {
	if mt.IsEmpty() {
		return
	}
	fmt.Fprintf(b, "%s<%s>\n", ind(depth), name)
	for _, lang := range mt.Langs() {
		fmt.Fprintf(b, "%s<form lang=\"%s\"><text>%s</text></form>\n",
			ind(depth+1), attr(lang), text(mt.Text(lang)))
	}
	fmt.Fprintf(b, "%s</%s>\n", ind(depth), name)
}

func ind(depth int) string {
	return strings.Repeat("  ", depth)
}

func attr(s string) string {
	return encoding.EscapeXMLAttr(s)
}

func text(s string) string {
	return encoding.EscapeXMLText(s)
}
