package lift

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/lexward/lexward/core/encoding"
	"github.com/lexward/lexward/core/errors"
	"github.com/lexward/lexward/core/model"
	"github.com/lexward/lexward/core/multitext"
)

// Generate converts an ordered list of entries into a complete LIFT document.
// Output is canonical: always namespace-qualified, with a stable element and
// attribute order, so the same logical document serializes identically across
// calls. Optional attributes that are absent or empty produce no elements.
//
// Generation never partially emits: the input is checked first and any error
// is returned before output is produced. The entries are not mutated.
func (c *Codec) Generate(entries []*model.Entry) (string, error) {
	for i, entry := range entries {
		if entry == nil || entry.ID == "" {
			return "", errors.NewMissingField("entry", "id", i)
		}
		for j, sense := range entry.Senses {
			if sense == nil || sense.ID == "" {
				return "", &errors.MissingFieldError{Element: "sense", Field: "id", Scope: entry.ID, Index: j}
			}
		}
	}

	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, "<lift xmlns=\"%s\" version=\"%s\" producer=\"%s\">\n", Namespace, Version, producer)
	for _, entry := range entries {
		c.writeEntry(&b, entry)
	}
	b.WriteString("</lift>\n")
	return b.String(), nil
}

func (c *Codec) writeEntry(b *bytes.Buffer, e *model.Entry) {
	fmt.Fprintf(b, "%s<entry id=\"%s\">\n", ind(1), attr(e.ID))

	if !e.LexicalUnit.IsEmpty() {
		fmt.Fprintf(b, "%s<lexical-unit>\n", ind(2))
		writeForms(b, 3, e.LexicalUnit)
		fmt.Fprintf(b, "%s</lexical-unit>\n", ind(2))
	}
	if e.GrammaticalInfo != "" {
		fmt.Fprintf(b, "%s<grammatical-info value=\"%s\"/>\n", ind(2), attr(e.GrammaticalInfo))
	}
	if !e.Pronunciations.IsEmpty() {
		fmt.Fprintf(b, "%s<pronunciation>\n", ind(2))
		writeForms(b, 3, e.Pronunciations)
		fmt.Fprintf(b, "%s</pronunciation>\n", ind(2))
	}
	for _, v := range e.Variants {
		c.writeVariant(b, v)
	}
	for _, s := range e.Senses {
		c.writeSense(b, s)
	}
	writeNotes(b, 2, e.Notes)
	writeRelations(b, 2, e.Relations)
	writeTraits(b, 2, e.Traits)
	writeFields(b, 2, e.CustomFields)
	writeAnnotations(b, 2, e.Annotations)

	fmt.Fprintf(b, "%s</entry>\n", ind(1))
}

func (c *Codec) writeSense(b *bytes.Buffer, s *model.Sense) {
	fmt.Fprintf(b, "%s<sense id=\"%s\">\n", ind(2), attr(s.ID))

	writeGrammaticalInfo(b, 3, s.GrammaticalInfo, s.GrammaticalTraits)
	if !s.Glosses.IsEmpty() {
		for _, lang := range s.Glosses.Langs() {
			fmt.Fprintf(b, "%s<gloss lang=\"%s\"><text>%s</text></gloss>\n",
				ind(3), attr(lang), text(s.Glosses.Text(lang)))
		}
	}
	if !s.Definitions.IsEmpty() {
		fmt.Fprintf(b, "%s<definition>\n", ind(3))
		writeForms(b, 4, s.Definitions)
		fmt.Fprintf(b, "%s</definition>\n", ind(3))
	}
	for _, ex := range s.Examples {
		c.writeExample(b, ex)
	}
	writeRelations(b, 3, s.Relations)
	writeNotes(b, 3, s.Notes)
	for _, ill := range s.Illustrations {
		if ill == nil || ill.Href == "" {
			continue
		}
		if ill.Label.IsEmpty() {
			fmt.Fprintf(b, "%s<illustration href=\"%s\"/>\n", ind(3), attr(ill.Href))
			continue
		}
		fmt.Fprintf(b, "%s<illustration href=\"%s\">\n", ind(3), attr(ill.Href))
		fmt.Fprintf(b, "%s<label>\n", ind(4))
		writeForms(b, 5, ill.Label)
		fmt.Fprintf(b, "%s</label>\n", ind(4))
		fmt.Fprintf(b, "%s</illustration>\n", ind(3))
	}
	for _, v := range s.DomainType {
		fmt.Fprintf(b, "%s<trait name=\"domain-type\" value=\"%s\"/>\n", ind(3), attr(v))
	}
	for _, v := range s.UsageType {
		fmt.Fprintf(b, "%s<trait name=\"usage-type\" value=\"%s\"/>\n", ind(3), attr(v))
	}
	if s.AcademicDomain != "" {
		fmt.Fprintf(b, "%s<trait name=\"academic-domain\" value=\"%s\"/>\n", ind(3), attr(s.AcademicDomain))
	}
	writeTraits(b, 3, s.Traits)
	writeField(b, 3, "exemplar", s.Exemplar)
	writeField(b, 3, "scientific-name", s.ScientificName)
	writeField(b, 3, "literal-meaning", s.LiteralMeaning)
	writeFields(b, 3, s.CustomFields)
	writeAnnotations(b, 3, s.Annotations)

	fmt.Fprintf(b, "%s</sense>\n", ind(2))
}

func (c *Codec) writeExample(b *bytes.Buffer, ex *model.Example) {
	if ex == nil {
		return
	}
	if ex.Source != "" {
		fmt.Fprintf(b, "%s<example source=\"%s\">\n", ind(3), attr(ex.Source))
	} else {
		fmt.Fprintf(b, "%s<example>\n", ind(3))
	}
	writeForms(b, 4, ex.Form)
	if !ex.Translations.IsEmpty() {
		fmt.Fprintf(b, "%s<translation>\n", ind(4))
		writeForms(b, 5, ex.Translations)
		fmt.Fprintf(b, "%s</translation>\n", ind(4))
	}
	writeField(b, 4, "note", ex.Note)
	writeTraits(b, 4, ex.Traits)
	writeFields(b, 4, ex.CustomFields)
	fmt.Fprintf(b, "%s</example>\n", ind(3))
}

func (c *Codec) writeVariant(b *bytes.Buffer, v *model.Variant) {
	if v == nil {
		return
	}
	fmt.Fprintf(b, "%s<variant>\n", ind(2))
	writeForms(b, 3, v.Form)
	writeGrammaticalInfo(b, 3, v.GrammaticalInfo, v.GrammaticalTraits)
	fmt.Fprintf(b, "%s</variant>\n", ind(2))
}

// writeGrammaticalInfo emits a grammatical-info element with its scoped
// traits in sorted name order. Nothing is written when the value is empty.
func writeGrammaticalInfo(b *bytes.Buffer, depth int, value string, traits map[string]string) {
	if value == "" {
		return
	}
	if len(traits) == 0 {
		fmt.Fprintf(b, "%s<grammatical-info value=\"%s\"/>\n", ind(depth), attr(value))
		return
	}
	fmt.Fprintf(b, "%s<grammatical-info value=\"%s\">\n", ind(depth), attr(value))
	for _, name := range sortedKeys(traits) {
		fmt.Fprintf(b, "%s<trait name=\"%s\" value=\"%s\"/>\n", ind(depth+1), attr(name), attr(traits[name]))
	}
	fmt.Fprintf(b, "%s</grammatical-info>\n", ind(depth))
}

// writeForms emits one form element per language tag, in the mapping's
// insertion order. Empty mappings emit nothing.
func writeForms(b *bytes.Buffer, depth int, mt *multitext.MultiText) {
	if mt.IsEmpty() {
		return
	}
	for _, lang := range mt.Langs() {
		fmt.Fprintf(b, "%s<form lang=\"%s\"><text>%s</text></form>\n",
			ind(depth), attr(lang), text(mt.Text(lang)))
	}
}

func writeNotes(b *bytes.Buffer, depth int, notes map[string]*multitext.MultiText) {
	for _, noteType := range sortedKeys(notes) {
		content := notes[noteType]
		if content.IsEmpty() {
			continue
		}
		if noteType == "" {
			fmt.Fprintf(b, "%s<note>\n", ind(depth))
		} else {
			fmt.Fprintf(b, "%s<note type=\"%s\">\n", ind(depth), attr(noteType))
		}
		writeForms(b, depth+1, content)
		fmt.Fprintf(b, "%s</note>\n", ind(depth))
	}
}

func writeRelations(b *bytes.Buffer, depth int, relations []model.Relation) {
	for _, rel := range relations {
		fmt.Fprintf(b, "%s<relation type=\"%s\" ref=\"%s\"/>\n", ind(depth), attr(rel.Type), attr(rel.Ref))
	}
}

func writeTraits(b *bytes.Buffer, depth int, traits map[string]string) {
	for _, name := range sortedKeys(traits) {
		fmt.Fprintf(b, "%s<trait name=\"%s\" value=\"%s\"/>\n", ind(depth), attr(name), attr(traits[name]))
	}
}

// writeField emits a single custom field; empty content is suppressed
// entirely, never emitted as an empty element.
func writeField(b *bytes.Buffer, depth int, fieldType string, content *multitext.MultiText) {
	if content.IsEmpty() {
		return
	}
	fmt.Fprintf(b, "%s<field type=\"%s\">\n", ind(depth), attr(fieldType))
	writeForms(b, depth+1, content)
	fmt.Fprintf(b, "%s</field>\n", ind(depth))
}

func writeFields(b *bytes.Buffer, depth int, fields map[string]*multitext.MultiText) {
	for _, fieldType := range sortedKeys(fields) {
		writeField(b, depth, fieldType, fields[fieldType])
	}
}

func writeAnnotations(b *bytes.Buffer, depth int, annotations []*model.Annotation) {
	for _, a := range annotations {
		if a == nil || a.Name == "" {
			continue
		}
		fmt.Fprintf(b, "%s<annotation name=\"%s\"", ind(depth), attr(a.Name))
		if a.Value != "" {
			fmt.Fprintf(b, " value=\"%s\"", attr(a.Value))
		}
		if a.Who != "" {
			fmt.Fprintf(b, " who=\"%s\"", attr(a.Who))
		}
		if a.When != "" {
			fmt.Fprintf(b, " when=\"%s\"", attr(a.When))
		}
		if a.Content.IsEmpty() {
			b.WriteString("/>\n")
			continue
		}
		b.WriteString(">\n")
		writeForms(b, depth+1, a.Content)
		fmt.Fprintf(b, "%s</annotation>\n", ind(depth))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
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
