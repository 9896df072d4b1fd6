// Package model defines the in-memory lexicographic data model serialized by
// the LIFT codecs: entries, senses, examples, variants, pronunciations, and
// their nested multilingual and metadata structures.
//
// The codecs construct these objects fresh on every parse and treat them as
// immutable during generation. JSON tags give the validation engine and other
// collaborators a structured view of the same graph; multilingual fields
// marshal in the flat shape (language tag maps directly to a string).
package model
