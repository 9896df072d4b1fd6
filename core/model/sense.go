package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lexward/lexward/core/multitext"
)

// StringList is a list-typed classification value. Always construct through
// ListOf or CoerceList so that a scalar string becomes a one-element list and
// is never iterated as characters.
type StringList []string

// ListOf builds a StringList from individual values.
func ListOf(values ...string) StringList {
	if len(values) == 0 {
		return nil
	}
	out := make(StringList, len(values))
	copy(out, values)
	return out
}

// CoerceList normalizes a scalar or list input into a StringList. A plain
// string becomes a one-element list; string slices are copied; nil stays nil.
// Any other scalar is formatted into a single element.
func CoerceList(v interface{}) StringList {
	switch val := v.(type) {
	case nil:
		return nil
	case StringList:
		return ListOf(val...)
	case []string:
		return ListOf(val...)
	case string:
		if val == "" {
			return nil
		}
		return StringList{val}
	default:
		return StringList{fmt.Sprint(val)}
	}
}

// Sense is one meaning of an entry. ID is required and non-empty.
type Sense struct {
	// ID is the sense identifier.
	ID string `json:"id"`

	// Glosses holds the flat per-language glosses.
	Glosses *multitext.MultiText `json:"glosses,omitempty"`

	// Definitions holds the flat per-language definitions.
	Definitions *multitext.MultiText `json:"definitions,omitempty"`

	// GrammaticalInfo is the part of speech for this sense.
	GrammaticalInfo string `json:"grammatical_info,omitempty"`

	// GrammaticalTraits holds free-form key/value pairs scoped to the
	// grammatical-info element only (gender, number, case, tense).
	GrammaticalTraits map[string]string `json:"grammatical_traits,omitempty"`

	// Examples are ordered usage examples.
	Examples []*Example `json:"examples,omitempty"`

	// Relations are ordered sense-level lexical relations.
	Relations []Relation `json:"relations,omitempty"`

	// Notes maps a note type to multilingual content.
	Notes map[string]*multitext.MultiText `json:"notes,omitempty"`

	// Traits is flat name/value metadata scoped to the sense.
	Traits map[string]string `json:"traits,omitempty"`

	// CustomFields maps a field name to multilingual content.
	CustomFields map[string]*multitext.MultiText `json:"custom_fields,omitempty"`

	// Annotations are ordered editorial annotations.
	Annotations []*Annotation `json:"annotations,omitempty"`

	// UsageType holds usage classifications (e.g. archaic, colloquial).
	UsageType StringList `json:"usage_type,omitempty"`

	// DomainType holds domain classifications.
	DomainType StringList `json:"domain_type,omitempty"`

	// AcademicDomain is a single optional classification; the empty string
	// normalizes to absent.
	AcademicDomain string `json:"academic_domain,omitempty"`

	// Illustrations are ordered picture references.
	Illustrations []*Illustration `json:"illustrations,omitempty"`

	// Exemplar, ScientificName and LiteralMeaning are the FieldWorks-standard
	// custom fields. Each is omitted entirely from output when empty.
	Exemplar       *multitext.MultiText `json:"exemplar,omitempty"`
	ScientificName *multitext.MultiText `json:"scientific_name,omitempty"`
	LiteralMeaning *multitext.MultiText `json:"literal_meaning,omitempty"`
}

// NewSense creates a Sense. An empty id is replaced with a fresh UUID.
func NewSense(id string) *Sense {
	if id == "" {
		id = uuid.NewString()
	}
	return &Sense{ID: id}
}

// SetUsageType replaces the usage classification, coercing scalar input.
func (s *Sense) SetUsageType(v interface{}) {
	s.UsageType = CoerceList(v)
}

// SetDomainType replaces the domain classification, coercing scalar input.
func (s *Sense) SetDomainType(v interface{}) {
	s.DomainType = CoerceList(v)
}

// SetAcademicDomain sets the academic domain; "" clears it.
func (s *Sense) SetAcademicDomain(v string) {
	s.AcademicDomain = v
}

// AddExample appends an example, preserving order.
func (s *Sense) AddExample(ex *Example) {
	s.Examples = append(s.Examples, ex)
}

// AddRelation appends a relation, preserving order.
func (s *Sense) AddRelation(relType, ref string) {
	s.Relations = append(s.Relations, Relation{Type: relType, Ref: ref})
}

// SetTrait sets a flat trait value.
func (s *Sense) SetTrait(name, value string) {
	if s.Traits == nil {
		s.Traits = make(map[string]string)
	}
	s.Traits[name] = value
}

// SetGrammaticalTrait sets a trait scoped to the grammatical-info element.
func (s *Sense) SetGrammaticalTrait(name, value string) {
	if s.GrammaticalTraits == nil {
		s.GrammaticalTraits = make(map[string]string)
	}
	s.GrammaticalTraits[name] = value
}

// SetCustomField sets a multilingual custom field.
func (s *Sense) SetCustomField(name string, text *multitext.MultiText) {
	if s.CustomFields == nil {
		s.CustomFields = make(map[string]*multitext.MultiText)
	}
	s.CustomFields[name] = text
}

// SetNote sets the note of the given type. Use "" for the general note.
func (s *Sense) SetNote(noteType string, text *multitext.MultiText) {
	if s.Notes == nil {
		s.Notes = make(map[string]*multitext.MultiText)
	}
	s.Notes[noteType] = text
}
