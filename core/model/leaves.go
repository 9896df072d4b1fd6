package model

import "github.com/lexward/lexward/core/multitext"

// Relation links an entry or sense to another lexical object. Ref is an
// opaque identifier; referential integrity is a higher-layer concern and the
// codec round-trips references that resolve nowhere.
type Relation struct {
	Type string `json:"type"`
	Ref  string `json:"ref"`
}

// Variant is a variant form of an entry (spelling, dialect, inflection).
type Variant struct {
	// Form is the multilingual variant form.
	Form *multitext.MultiText `json:"form,omitempty"`

	// GrammaticalInfo is the part of speech of the variant, when it differs.
	GrammaticalInfo string `json:"grammatical_info,omitempty"`

	// GrammaticalTraits holds key/value pairs scoped to the grammatical-info
	// element of the variant.
	GrammaticalTraits map[string]string `json:"grammatical_traits,omitempty"`
}

// SetGrammaticalTrait sets a trait scoped to the variant's grammatical info.
func (v *Variant) SetGrammaticalTrait(name, value string) {
	if v.GrammaticalTraits == nil {
		v.GrammaticalTraits = make(map[string]string)
	}
	v.GrammaticalTraits[name] = value
}

// Annotation is an editorial annotation on an entry or sense.
type Annotation struct {
	// Name identifies the annotation kind.
	Name string `json:"name"`

	// Value is an optional scalar payload.
	Value string `json:"value,omitempty"`

	// Who identifies the annotator.
	Who string `json:"who,omitempty"`

	// When is the annotation timestamp, kept as the source string.
	When string `json:"when,omitempty"`

	// Content is optional multilingual annotation text.
	Content *multitext.MultiText `json:"content,omitempty"`
}

// Illustration is a picture reference on a sense.
type Illustration struct {
	// Href locates the image.
	Href string `json:"href"`

	// Label is an optional multilingual caption.
	Label *multitext.MultiText `json:"label,omitempty"`
}
