package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lexward/lexward/core/errors"
	"github.com/lexward/lexward/core/multitext"
)

// FieldKind enumerates the known kinds of trait and field values. Everything
// arrives from LIFT as an untyped string; the kinds let callers preserve
// arbitrary custom fields without a schema registry at parse time.
type FieldKind int

const (
	// KindString is the generic string-trait fallback.
	KindString FieldKind = iota
	// KindInteger is an integer-valued trait.
	KindInteger
	// KindGenDate is a generic date with a precision indicator.
	KindGenDate
	// KindMultiText is multilingual text (a MultiUnicode field).
	KindMultiText
	// KindReferenceAtomic is a single opaque reference.
	KindReferenceAtomic
	// KindReferenceCollection is a list of opaque references.
	KindReferenceCollection
)

func (k FieldKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindGenDate:
		return "gendate"
	case KindMultiText:
		return "multitext"
	case KindReferenceAtomic:
		return "reference"
	case KindReferenceCollection:
		return "reference-collection"
	default:
		return "string"
	}
}

// GenDatePrecision indicates how exact a GenDate is.
type GenDatePrecision int

const (
	// PrecisionExact marks a fully trusted date.
	PrecisionExact GenDatePrecision = iota
	// PrecisionApproximate marks an estimated date.
	PrecisionApproximate
	// PrecisionBefore marks an upper bound.
	PrecisionBefore
	// PrecisionAfter marks a lower bound.
	PrecisionAfter
)

// GenDate is a generic date with explicit precision. Month and Day may be
// zero when unknown; Year is always set on a non-zero GenDate.
type GenDate struct {
	Year      int              `json:"year"`
	Month     int              `json:"month,omitempty"`
	Day       int              `json:"day,omitempty"`
	Precision GenDatePrecision `json:"precision,omitempty"`
}

// IsZero reports whether the date is unset.
func (d GenDate) IsZero() bool {
	return d.Year == 0
}

// String encodes the date in the trait-value convention: an optional
// precision sigil ("~" approximate, "<" before, ">" after) followed by
// YYYY, YYYY-MM or YYYY-MM-DD.
func (d GenDate) String() string {
	var b strings.Builder
	switch d.Precision {
	case PrecisionApproximate:
		b.WriteByte('~')
	case PrecisionBefore:
		b.WriteByte('<')
	case PrecisionAfter:
		b.WriteByte('>')
	}
	fmt.Fprintf(&b, "%04d", d.Year)
	if d.Month > 0 {
		fmt.Fprintf(&b, "-%02d", d.Month)
		if d.Day > 0 {
			fmt.Fprintf(&b, "-%02d", d.Day)
		}
	}
	return b.String()
}

// ParseGenDate decodes a trait-value date string produced by GenDate.String.
func ParseGenDate(s string) (GenDate, error) {
	var d GenDate
	rest := s
	switch {
	case strings.HasPrefix(rest, "~"):
		d.Precision = PrecisionApproximate
		rest = rest[1:]
	case strings.HasPrefix(rest, "<"):
		d.Precision = PrecisionBefore
		rest = rest[1:]
	case strings.HasPrefix(rest, ">"):
		d.Precision = PrecisionAfter
		rest = rest[1:]
	}

	parts := strings.Split(rest, "-")
	if len(parts) == 0 || len(parts) > 3 {
		return GenDate{}, errors.Wrapf(errors.ErrInvalidInput, "gendate %q", s)
	}
	if len(parts[0]) != 4 {
		return GenDate{}, errors.Wrapf(errors.ErrInvalidInput, "gendate %q: year must have four digits", s)
	}

	var err error
	if d.Year, err = strconv.Atoi(parts[0]); err != nil || d.Year == 0 {
		return GenDate{}, errors.Wrapf(errors.ErrInvalidInput, "gendate %q: bad year", s)
	}
	if len(parts) > 1 {
		if d.Month, err = strconv.Atoi(parts[1]); err != nil || d.Month < 1 || d.Month > 12 {
			return GenDate{}, errors.Wrapf(errors.ErrInvalidInput, "gendate %q: bad month", s)
		}
	}
	if len(parts) > 2 {
		if d.Day, err = strconv.Atoi(parts[2]); err != nil || d.Day < 1 || d.Day > 31 {
			return GenDate{}, errors.Wrapf(errors.ErrInvalidInput, "gendate %q: bad day", s)
		}
	}
	return d, nil
}

// FieldValue is a tagged union over the known field kinds with a generic
// string fallback. Only the member selected by Kind is meaningful.
type FieldValue struct {
	Kind FieldKind            `json:"kind"`
	Str  string               `json:"str,omitempty"`
	Int  int64                `json:"int,omitempty"`
	Date GenDate              `json:"date,omitempty"`
	Text *multitext.MultiText `json:"text,omitempty"`
	Refs []string             `json:"refs,omitempty"`
}

// StringValue wraps a plain string.
func StringValue(s string) FieldValue {
	return FieldValue{Kind: KindString, Str: s}
}

// IntegerValue wraps an integer.
func IntegerValue(n int64) FieldValue {
	return FieldValue{Kind: KindInteger, Int: n}
}

// DateValue wraps a GenDate.
func DateValue(d GenDate) FieldValue {
	return FieldValue{Kind: KindGenDate, Date: d}
}

// TextValue wraps multilingual text.
func TextValue(t *multitext.MultiText) FieldValue {
	return FieldValue{Kind: KindMultiText, Text: t}
}

// RefValue wraps a single opaque reference.
func RefValue(ref string) FieldValue {
	return FieldValue{Kind: KindReferenceAtomic, Refs: []string{ref}}
}

// RefsValue wraps a reference collection.
func RefsValue(refs ...string) FieldValue {
	return FieldValue{Kind: KindReferenceCollection, Refs: refs}
}

// Encode renders the value back into the trait-value string convention.
// MultiText values have no single-string encoding and return "".
func (v FieldValue) Encode() string {
	switch v.Kind {
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindGenDate:
		return v.Date.String()
	case KindReferenceAtomic:
		if len(v.Refs) > 0 {
			return v.Refs[0]
		}
		return ""
	case KindReferenceCollection:
		return strings.Join(v.Refs, ";")
	case KindMultiText:
		return ""
	default:
		return v.Str
	}
}

// DecodeTraitValue classifies a trait value string by the encoding
// conventions: integers and GenDates are recognized, anything else stays a
// generic string. The original string always round-trips through Encode.
func DecodeTraitValue(s string) FieldValue {
	if s == "" {
		return StringValue(s)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && len(s) != 4 {
		// Four-digit strings are ambiguous with bare years; keep them as
		// strings unless the caller parses them as dates explicitly.
		return IntegerValue(n)
	}
	if d, err := ParseGenDate(s); err == nil {
		return DateValue(d)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntegerValue(n)
	}
	return StringValue(s)
}
