// Package multitext provides the multilingual text type used throughout the
// lexicographic data model. A MultiText maps a language tag (e.g. "en", "pl",
// "seh-fonipa") to a plain string. Insertion order is remembered so that
// regenerated XML keeps the order of the source document, but equality is
// order-insensitive.
package multitext

import (
	"bytes"
	"encoding/json"
	"sort"
)

// MultiText is an ordered mapping from language tag to text. The zero value
// is not usable; construct with New or FromMap. A nil *MultiText means the
// attribute is absent, which is distinct from an empty mapping.
type MultiText struct {
	langs  []string
	values map[string]string
}

// New returns an empty MultiText.
func New() *MultiText {
	return &MultiText{values: make(map[string]string)}
}

// FromMap builds a MultiText from a plain map. Keys are inserted in sorted
// order so that freshly constructed objects serialize deterministically.
func FromMap(m map[string]string) *MultiText {
	t := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.Set(k, m[k])
	}
	return t
}

// Set stores text under the given language tag. Setting an existing tag
// replaces the text but keeps the tag's original position. Set returns the
// receiver to allow chained construction.
func (t *MultiText) Set(lang, text string) *MultiText {
	if _, ok := t.values[lang]; !ok {
		t.langs = append(t.langs, lang)
	}
	t.values[lang] = text
	return t
}

// Get returns the text for a language tag and whether the tag is present.
func (t *MultiText) Get(lang string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.values[lang]
	return v, ok
}

// Text returns the text for a language tag, or "" when absent.
func (t *MultiText) Text(lang string) string {
	v, _ := t.Get(lang)
	return v
}

// Delete removes a language tag.
func (t *MultiText) Delete(lang string) {
	if t == nil {
		return
	}
	if _, ok := t.values[lang]; !ok {
		return
	}
	delete(t.values, lang)
	for i, l := range t.langs {
		if l == lang {
			t.langs = append(t.langs[:i], t.langs[i+1:]...)
			break
		}
	}
}

// Langs returns the language tags in insertion order.
func (t *MultiText) Langs() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.langs))
	copy(out, t.langs)
	return out
}

// Len returns the number of language entries. Safe on nil.
func (t *MultiText) Len() int {
	if t == nil {
		return 0
	}
	return len(t.langs)
}

// IsEmpty reports whether the mapping is nil or has no entries.
func (t *MultiText) IsEmpty() bool {
	return t.Len() == 0
}

// Map returns a plain map copy of the mapping.
func (t *MultiText) Map() map[string]string {
	if t == nil {
		return nil
	}
	m := make(map[string]string, len(t.values))
	for k, v := range t.values {
		m[k] = v
	}
	return m
}

// Clone returns a deep copy. Cloning nil returns nil.
func (t *MultiText) Clone() *MultiText {
	if t == nil {
		return nil
	}
	c := New()
	for _, lang := range t.langs {
		c.Set(lang, t.values[lang])
	}
	return c
}

// Equal reports whether two mappings hold the same language/text pairs.
// Order does not matter. A nil mapping equals only another nil mapping:
// absent and empty are distinct states.
func (t *MultiText) Equal(o *MultiText) bool {
	if t == nil || o == nil {
		return t == nil && o == nil
	}
	if len(t.values) != len(o.values) {
		return false
	}
	for k, v := range t.values {
		ov, ok := o.values[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// MarshalJSON serializes the mapping as a JSON object in insertion order.
// This is the flat shape consumed by the validation engine: language tag
// maps directly to a string, never to a nested object.
func (t *MultiText) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, lang := range t.langs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(lang)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(t.values[lang])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a flat JSON object. Keys are inserted in sorted order.
func (t *MultiText) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*t = *FromMap(m)
	return nil
}
