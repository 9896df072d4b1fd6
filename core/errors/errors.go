// Package errors provides the typed error taxonomy shared by the LIFT codecs.
// The codecs never log and never swallow errors; every failure surfaces as one
// of these types with enough context for the caller to report a precise
// message to a human editor.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the codec error taxonomy.
var (
	// ErrMalformedDocument indicates input that is not well-formed XML.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrMissingRequiredField indicates well-formed XML missing a structurally
	// required identifier (entry id, sense id, range-element id).
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrUnsupportedVersion indicates a document version this codec does not understand.
	ErrUnsupportedVersion = errors.New("unsupported version")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure.
	ErrInvalidInput = errors.New("invalid input")
)

// MalformedDocumentError reports an unparsable byte stream. Unrecoverable;
// surfaced to the caller immediately, no retry at this layer.
type MalformedDocumentError struct {
	Format string // document format being parsed (e.g. "LIFT", "lift-ranges")
	Reason string // human-readable detail when no underlying error exists
	Err    error  // underlying parser error, if any
}

func (e *MalformedDocumentError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("malformed %s document: %v", e.Format, e.Err)
	case e.Reason != "":
		return fmt.Sprintf("malformed %s document: %s", e.Format, e.Reason)
	default:
		return fmt.Sprintf("malformed %s document", e.Format)
	}
}

func (e *MalformedDocumentError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrMalformedDocument
}

// Is lets errors.Is match the sentinel even when Err wraps a parser error.
func (e *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}

// MissingFieldError reports a structurally required identifier that is absent.
// Element names the offending element; Scope and Index locate it within the
// document so the caller can point an editor at the right place.
type MissingFieldError struct {
	Element string // element kind (e.g. "entry", "sense", "range-element")
	Field   string // missing attribute (e.g. "id")
	Scope string // enclosing entry or range id, when known
	Index int    // position of the element among its siblings (0-based)
}

func (e *MissingFieldError) Error() string {
	if e.Scope != "" {
		return fmt.Sprintf("%s %d in %q: missing required %s", e.Element, e.Index, e.Scope, e.Field)
	}
	return fmt.Sprintf("%s %d: missing required %s", e.Element, e.Index, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingRequiredField
}

// UnsupportedVersionError reports a root version attribute the codec does not
// understand. Raised before any parsing work proceeds.
type UnsupportedVersionError struct {
	Format  string // document format
	Version string // version string found on the root element
	Want    string // version the codec supports
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported %s version %q (supported: %s)", e.Format, e.Version, e.Want)
}

func (e *UnsupportedVersionError) Unwrap() error {
	return ErrUnsupportedVersion
}

// NewMalformed creates a MalformedDocumentError wrapping an underlying error.
func NewMalformed(format string, err error) *MalformedDocumentError {
	return &MalformedDocumentError{Format: format, Err: err}
}

// NewMalformedReason creates a MalformedDocumentError with a textual reason.
func NewMalformedReason(format, reason string) *MalformedDocumentError {
	return &MalformedDocumentError{Format: format, Reason: reason}
}

// NewMissingField creates a MissingFieldError.
func NewMissingField(element, field string, index int) *MissingFieldError {
	return &MissingFieldError{Element: element, Field: field, Index: index}
}

// NewUnsupportedVersion creates an UnsupportedVersionError.
func NewUnsupportedVersion(format, version, want string) *UnsupportedVersionError {
	return &UnsupportedVersionError{Format: format, Version: version, Want: want}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
