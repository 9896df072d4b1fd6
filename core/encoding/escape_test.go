package encoding

import "testing"

func TestEscapeXMLText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "kot", "kot"},
		{"ampersand", "black & white", "black &amp; white"},
		{"angle brackets", "<text>", "&lt;text&gt;"},
		{"quotes untouched", `say "cat"`, `say "cat"`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeXMLText(tt.in); got != tt.want {
				t.Errorf("EscapeXMLText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeXMLAttr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"quotes", `a "b" c`, "a &quot;b&quot; c"},
		{"mixed", `<a="b">`, "&lt;a=&quot;b&quot;&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeXMLAttr(tt.in); got != tt.want {
				t.Errorf("EscapeXMLAttr(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeNFC(t *testing.T) {
	// "ó" as base letter plus combining acute accent (NFD).
	decomposed := "o\u0301"
	composed := "\u00f3"

	if got := NormalizeNFC(decomposed); got != composed {
		t.Errorf("NormalizeNFC(%q) = %q, want %q", decomposed, got, composed)
	}
	if got := NormalizeNFC(composed); got != composed {
		t.Errorf("NormalizeNFC should leave NFC input unchanged, got %q", got)
	}
	if got := NormalizeNFC("plain ascii"); got != "plain ascii" {
		t.Errorf("NormalizeNFC changed ASCII input: %q", got)
	}
}
