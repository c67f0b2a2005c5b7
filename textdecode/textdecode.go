// Package textdecode turns the opaque bytes a simfile tag carries into
// text, per spec.md §6: try UTF-8, fall back to a byte->codepoint
// identity mapping (Latin-1) when the bytes aren't valid UTF-8. SkipBOM
// strips a leading UTF-8 BOM from a whole buffer; Decode itself does not
// strip one.
package textdecode

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// SkipBOM drops a leading UTF-8 byte-order mark, if present.
func SkipBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == bom[0] && data[1] == bom[1] && data[2] == bom[2] {
		return data[3:]
	}
	return data
}

// Decode converts raw tag bytes to text. Valid UTF-8 passes through
// unchanged; invalid UTF-8 is reinterpreted as ISO-8859-1 (Latin-1), which
// maps every byte to a codepoint and therefore never fails.
func Decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		// charmap.ISO8859_1 is a single-byte codec and cannot fail to
		// decode; fall back to the identity mapping defensively.
		return latin1Identity(raw)
	}
	return string(out)
}

func latin1Identity(raw []byte) string {
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes)
}
