// Package encoding provides shared text escaping and normalization utilities
// for the LIFT codecs.
package encoding

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// EscapeXMLText escapes the basic XML entities for element text content.
func EscapeXMLText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// EscapeXMLAttr escapes text for use in XML attribute values.
// Includes quote escaping in addition to the basic XML entities.
func EscapeXMLAttr(s string) string {
	s = EscapeXMLText(s)
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

// NormalizeNFC returns the NFC normalization of s. FieldWorks producers emit
// mixed normalization forms (FLEx itself stores NFD), so parsed text can be
// folded to a single form before comparison or storage.
func NormalizeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
