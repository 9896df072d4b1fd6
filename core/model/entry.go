package model

import (
	"github.com/google/uuid"

	"github.com/lexward/lexward/core/multitext"
)

// Entry is a single lexical entry. ID is required and non-empty; uniqueness
// within a document is enforced by the storage layer, not the codec.
type Entry struct {
	// ID is the entry identifier, unique within a document instance.
	ID string `json:"id"`

	// LexicalUnit is the citation form of the entry.
	LexicalUnit *multitext.MultiText `json:"lexical_unit,omitempty"`

	// Senses are ordered; document order is meaningful and preserved.
	Senses []*Sense `json:"senses,omitempty"`

	// Pronunciations maps an IPA-style writing-system tag to a transcription.
	Pronunciations *multitext.MultiText `json:"pronunciations,omitempty"`

	// GrammaticalInfo is the entry-level part of speech. Senses without their
	// own grammatical info inherit it; see GrammaticalInfoFor.
	GrammaticalInfo string `json:"grammatical_info,omitempty"`

	// Variants are orthographic or dialectal variant forms.
	Variants []*Variant `json:"variants,omitempty"`

	// Relations are ordered lexical relations to other entries or senses.
	// Refs are opaque; they need not resolve within the current document.
	Relations []Relation `json:"relations,omitempty"`

	// Notes maps a note type to multilingual content. The general note has
	// the empty-string type.
	Notes map[string]*multitext.MultiText `json:"notes,omitempty"`

	// Traits is flat name/value metadata. Values may encode Integer or
	// GenDate fields by convention; see DecodeTraitValue.
	Traits map[string]string `json:"traits,omitempty"`

	// CustomFields maps a field name to multilingual content.
	CustomFields map[string]*multitext.MultiText `json:"custom_fields,omitempty"`

	// Annotations are ordered editorial annotations.
	Annotations []*Annotation `json:"annotations,omitempty"`
}

// NewEntry creates an Entry. An empty id is replaced with a fresh UUID, the
// identifier scheme FieldWorks uses for new entries.
func NewEntry(id string) *Entry {
	if id == "" {
		id = uuid.NewString()
	}
	return &Entry{ID: id}
}

// AddSense appends a sense, preserving order.
func (e *Entry) AddSense(s *Sense) {
	e.Senses = append(e.Senses, s)
}

// AddRelation appends a relation, preserving order.
func (e *Entry) AddRelation(relType, ref string) {
	e.Relations = append(e.Relations, Relation{Type: relType, Ref: ref})
}

// SetTrait sets a flat trait value.
func (e *Entry) SetTrait(name, value string) {
	if e.Traits == nil {
		e.Traits = make(map[string]string)
	}
	e.Traits[name] = value
}

// SetCustomField sets a multilingual custom field.
func (e *Entry) SetCustomField(name string, text *multitext.MultiText) {
	if e.CustomFields == nil {
		e.CustomFields = make(map[string]*multitext.MultiText)
	}
	e.CustomFields[name] = text
}

// SetNote sets the note of the given type. Use "" for the general note.
func (e *Entry) SetNote(noteType string, text *multitext.MultiText) {
	if e.Notes == nil {
		e.Notes = make(map[string]*multitext.MultiText)
	}
	e.Notes[noteType] = text
}

// GrammaticalInfoFor returns the part of speech in effect for a sense: the
// sense's own value when set, otherwise the entry-level value.
func (e *Entry) GrammaticalInfoFor(s *Sense) string {
	if s != nil && s.GrammaticalInfo != "" {
		return s.GrammaticalInfo
	}
	return e.GrammaticalInfo
}
