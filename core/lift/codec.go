// Package lift implements the bidirectional LIFT 0.13 codec: it parses a
// LIFT XML document into an ordered list of model.Entry and generates a
// canonical, namespace-qualified LIFT document from the same structures.
//
// The codec is a pure, synchronous, stateless transformation. It performs no
// I/O, holds no per-call mutable state, and never logs; Parse and Generate
// are safe to call concurrently on one Codec. It also performs no semantic
// validation: structurally invalid-but-parseable documents (a sense with no
// gloss, a relation to a missing entry) load fine, because semantic validity
// belongs entirely to the validation engine.
package lift

import (
	"github.com/lexward/lexward/core/encoding"
	"github.com/lexward/lexward/core/model"
)

const (
	// Namespace is the LIFT 0.13 namespace URI. Input documents may omit it;
	// generated documents always declare it.
	Namespace = "http://fieldworks.sil.org/schemas/lift/0.13"

	// Version is the LIFT version this codec understands.
	Version = "0.13"

	// formatName appears in error messages.
	formatName = "LIFT"

	// producer identifies generated documents, like other LIFT tools do.
	producer = "LexWard codec"
)

// Options configures a Codec.
type Options struct {
	// NormalizeUnicode folds all parsed text to NFC. FieldWorks producers
	// emit mixed normalization forms; folding makes text comparable.
	NormalizeUnicode bool
}

// Codec converts between LIFT XML documents and []*model.Entry.
type Codec struct {
	opts Options
}

// NewCodec returns a Codec with default options.
func NewCodec() *Codec {
	return &Codec{}
}

// NewCodecWithOptions returns a Codec with the given options.
func NewCodecWithOptions(opts Options) *Codec {
	return &Codec{opts: opts}
}

// Parse converts a LIFT document using a default Codec.
func Parse(doc string) ([]*model.Entry, error) {
	return NewCodec().Parse(doc)
}

// Generate converts entries to a LIFT document using a default Codec.
func Generate(entries []*model.Entry) (string, error) {
	return NewCodec().Generate(entries)
}

// text applies the configured text normalization to parsed content.
func (c *Codec) text(s string) string {
	if c.opts.NormalizeUnicode {
		return encoding.NormalizeNFC(s)
	}
	return s
}
