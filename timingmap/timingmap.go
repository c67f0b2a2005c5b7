// Package timingmap parses, cleans, sorts and canonicalizes the seven raw
// timing-map strings a simfile carries (tempos, stops, delays, warps,
// fakes, speeds, scrolls), independent of beat<->time reconstruction
// (spec.md §4.2 steps 1-3).
package timingmap

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"stepcore/numeric"
)

// Entry is one cleaned `beat=value[,value...]` segment. Most maps carry a
// single value; Speeds carries three (ratio, delay, mode).
type Entry struct {
	Beat   float64
	Values []float64
}

// Parse splits raw on ',', drops malformed or empty segments, and returns
// the entries in source order, unsorted and with duplicates intact — the
// first step of spec.md §4.2's three-step normalization. A segment with an
// '=' is dropped if its beat or its value is not a finite number. A
// segment with no '=' that is a finite number is appended as a further
// value of the entry parsed just before it, so a Speeds entry
// "beat=ratio,delay,mode" keeps all three values; any other segment
// without '=' is dropped and ends that entry's value list.
func Parse(raw string) []Entry {
	var entries []Entry
	extend := false // a bare number may still join entries[len(entries)-1]
	for _, seg := range strings.Split(raw, ",") {
		seg = strings.TrimSpace(stripAllWhitespace(seg))
		if seg == "" {
			continue
		}
		eq := strings.IndexByte(seg, '=')
		if eq < 0 {
			v, err := strconv.ParseFloat(seg, 64)
			if extend && err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
				last := &entries[len(entries)-1]
				last.Values = append(last.Values, v)
			} else {
				extend = false
			}
			continue
		}
		extend = false
		beatStr := strings.TrimSpace(seg[:eq])
		valueStr := strings.TrimSpace(seg[eq+1:])
		if beatStr == "" || valueStr == "" {
			continue
		}
		beat, err := strconv.ParseFloat(beatStr, 64)
		if err != nil || math.IsInf(beat, 0) || math.IsNaN(beat) {
			continue
		}

		parts := strings.Split(valueStr, ",")
		values := make([]float64, 0, len(parts))
		ok := true
		for _, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
				ok = false
				break
			}
			values = append(values, v)
		}
		if !ok {
			continue
		}

		entries = append(entries, Entry{Beat: beat, Values: values})
		extend = true
	}
	return entries
}

// stripAllWhitespace removes embedded whitespace and newlines from a
// segment, since spec.md §4.2 step 1 permits them anywhere within a map.
func stripAllWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SortClean sorts entries strictly ascending by beat, keeping the last
// occurrence of any duplicate beat (spec.md §4.2 step 2: "later wins").
func SortClean(entries []Entry) []Entry {
	last := make(map[float64]Entry, len(entries))
	order := make([]float64, 0, len(entries))
	for _, e := range entries {
		if _, seen := last[e.Beat]; !seen {
			order = append(order, e.Beat)
		}
		last[e.Beat] = e
	}
	sort.Float64s(order)
	out := make([]Entry, len(order))
	for i, beat := range order {
		out[i] = last[beat]
	}
	return out
}

// ParseClean runs Parse followed by SortClean, the combination every
// caller wants.
func ParseClean(raw string) []Entry {
	return SortClean(Parse(raw))
}

// CanonicalTempo renders a cleaned, sorted tempo map to its canonical hash
// text: "beat=bpm,beat=bpm,...", beats and BPMs each formatted to exactly
// three fractional digits, with BPM first coerced through the reference
// engine's float32 round-trip (spec.md §4.2 step 3, §9 "numeric parity").
// An empty map renders as the empty string.
func CanonicalTempo(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if len(e.Values) == 0 {
			continue
		}
		bpm := numeric.RoundtripBPMITG(e.Values[0])
		parts = append(parts, numeric.FmtDec3ITG(e.Beat)+"="+numeric.FmtDec3ITG(bpm))
	}
	return strings.Join(parts, ",")
}
