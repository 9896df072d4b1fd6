package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestMalformedDocumentError(t *testing.T) {
	underlying := stderrors.New("XML syntax error on line 3")
	err := NewMalformed("LIFT", underlying)

	if !Is(err, ErrMalformedDocument) {
		t.Error("errors.Is should match ErrMalformedDocument")
	}
	if !Is(err, underlying) {
		t.Error("errors.Is should match the underlying parser error")
	}
	if !strings.Contains(err.Error(), "LIFT") {
		t.Errorf("message should name the format: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("message should carry the underlying detail: %q", err.Error())
	}
}

func TestMalformedDocumentError_Reason(t *testing.T) {
	err := NewMalformedReason("lift-ranges", "root element is not lift-ranges")
	if !Is(err, ErrMalformedDocument) {
		t.Error("errors.Is should match ErrMalformedDocument")
	}
	if !strings.Contains(err.Error(), "root element is not lift-ranges") {
		t.Errorf("message should carry reason: %q", err.Error())
	}
}

func TestMissingFieldError(t *testing.T) {
	err := &MissingFieldError{Element: "sense", Field: "id", Scope: "e1", Index: 2}

	if !Is(err, ErrMissingRequiredField) {
		t.Error("errors.Is should match ErrMissingRequiredField")
	}
	msg := err.Error()
	for _, want := range []string{"sense", "2", "e1", "id"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should contain %q", msg, want)
		}
	}

	var mf *MissingFieldError
	if !As(err, &mf) {
		t.Fatal("errors.As should extract MissingFieldError")
	}
	if mf.Index != 2 {
		t.Errorf("Index = %d, want 2", mf.Index)
	}
}

func TestMissingFieldError_NoScope(t *testing.T) {
	err := NewMissingField("entry", "id", 0)
	if strings.Contains(err.Error(), `entry ""`) {
		t.Errorf("message should omit empty entry id: %q", err.Error())
	}
}

func TestUnsupportedVersionError(t *testing.T) {
	err := NewUnsupportedVersion("LIFT", "0.15", "0.13")

	if !Is(err, ErrUnsupportedVersion) {
		t.Error("errors.Is should match ErrUnsupportedVersion")
	}
	if !strings.Contains(err.Error(), "0.15") || !strings.Contains(err.Error(), "0.13") {
		t.Errorf("message should carry both versions: %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	base := stderrors.New("base")
	wrapped := Wrap(base, "context")
	if !Is(wrapped, base) {
		t.Error("wrapped error should match base")
	}
	if !strings.HasPrefix(wrapped.Error(), "context: ") {
		t.Errorf("Wrap message = %q", wrapped.Error())
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
	base := stderrors.New("base")
	wrapped := Wrapf(base, "entry %q", "e1")
	if wrapped.Error() != `entry "e1": base` {
		t.Errorf("Wrapf message = %q", wrapped.Error())
	}
}
