// Package numeric holds the decimal-rounding and formatting helpers the
// timing reconstructor and hasher need to match the reference engine's
// floating-point discipline.
package numeric

import (
	"math"
	"strconv"
)

// RoundSigFigs6 rounds value to 6 significant figures by round-tripping it
// through scientific notation, the same trick the reference engine uses.
func RoundSigFigs6(value float64) float64 {
	if !isFinite(value) || value == 0 {
		return value
	}
	formatted := strconv.FormatFloat(value, 'e', 5, 64)
	parsed, err := strconv.ParseFloat(formatted, 64)
	if err != nil {
		return value
	}
	return parsed
}

// RoundDP rounds value to dp decimal places by formatting and re-parsing,
// rather than scaling, so it inherits Go's correctly-rounded float
// formatting instead of introducing fresh binary error.
func RoundDP(value float64, dp int) float64 {
	if !isFinite(value) {
		return value
	}
	formatted := strconv.FormatFloat(value, 'f', dp, 64)
	parsed, err := strconv.ParseFloat(formatted, 64)
	if err != nil {
		return value
	}
	return parsed
}

// RoundtripBPMITG coerces bpm through a single-precision round-trip the way
// the reference engine does before integrating it into a beat<->time
// mapping: narrow to float32, then perform the engine's own
// divide-by-60-multiply-by-60 identity in that same narrowed precision, so
// the small rounding error the engine itself introduces is reproduced
// rather than avoided.
func RoundtripBPMITG(bpm float64) float64 {
	bpmF := float32(bpm)
	if !isFinite32(bpmF) {
		return 0
	}
	return float64(bpmF / 60.0 * 60.0)
}

// FmtDec3ITG formats value to exactly 3 decimal digits after first
// narrowing it to float32 precision and rounding half-away-from-zero at
// the third digit in that precision. Used for the canonical tempo-map
// text that feeds the hasher.
func FmtDec3ITG(value float64) string {
	v := float32(value) * 1000.0
	v = float32(math.Round(float64(v)))
	v = v / 1000.0
	return strconv.FormatFloat(float64(v), 'f', 3, 32)
}

// FmtDec3HalfUp formats value to exactly 3 decimal digits using explicit
// half-up rounding in double precision. The timing package does not call
// it: its Snapshot keeps stop, delay and warp values as unformatted
// floats.
func FmtDec3HalfUp(value float64) string {
	v := math.Floor(value*1000.0+0.5) / 1000.0
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// LrintF64 rounds v to the nearest integer with ties resolved to even,
// matching the reference engine's CPU-rounding-instruction behavior.
func LrintF64(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return math.RoundToEven(v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isFinite32(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
