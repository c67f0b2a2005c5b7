// Package hash implements the chart hasher (spec.md §4.4): a stable
// short identifier derived from a chart's minimized note data and its
// canonicalized tempo map, and nothing else.
package hash

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
)

// ShortLen is the number of hex characters kept from the digest.
const ShortLen = 16

// Short hashes minimized (with any trailing newline stripped) and
// canonicalTempo together and returns the first ShortLen lowercase hex
// characters of the SHA-1 digest. Identical inputs always produce
// identical output; whitespace differences in the tempo text matter only
// if they survive timingmap canonicalization, which is mandatory before
// calling this (spec.md §4.4).
func Short(minimized []byte, canonicalTempo string) string {
	minimized = bytes.TrimRight(minimized, "\n")

	h := sha1.New()
	h.Write(minimized)
	h.Write([]byte(canonicalTempo))
	digest := h.Sum(nil)

	encoded := hex.EncodeToString(digest)
	if len(encoded) < ShortLen {
		return encoded
	}
	return encoded[:ShortLen]
}
