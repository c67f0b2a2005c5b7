// Package steptype maps a chart's step-type string to its lane count,
// decides which step-types are non-dance variants to be filtered out
// before analysis, and normalizes difficulty labels (spec.md §3, §9).
package steptype

import "strings"

// LaneCount returns the number of parallel note columns for a step-type,
// and whether the step-type is recognized at all. Step-types are the
// fixed StepMania-style set; unrecognized strings report ok=false so
// callers can decide how to treat them (spec.md §3: "a string drawn from
// a fixed set; each maps to a lane count").
func LaneCount(stepType string) (lanes int, ok bool) {
	lanes, ok = laneCounts[strings.ToLower(strings.TrimSpace(stepType))]
	return lanes, ok
}

var laneCounts = map[string]int{
	"dance-single": 4,
	"dance-double": 8,
	"dance-couple": 8,
	"dance-solo":   6,
	"dance-threepanel": 3,
	"dance-solodouble": 12,
	"dance-routine": 8,

	"pump-single": 5,
	"pump-halfdouble": 6,
	"pump-double": 10,
	"pump-couple": 10,
	"pump-routine": 10,

	"techno-single4": 4,
	"techno-single5": 5,
	"techno-single8": 8,
	"techno-double4": 8,
	"techno-double5": 10,
	"techno-double8": 16,

	"pnm-five": 5,
	"pnm-nine": 9,

	"kb7-single": 7,

	"ez2-single": 5,
	"ez2-double": 10,
	"ez2-real": 7,
	"ez2-single-hard": 5,
	"ez2-double-hard": 10,

	"para-single": 5,

	"ds3ddx-single": 8,

	"bm-single5": 6,
	"bm-double5": 12,
	"bm-single7": 8,
	"bm-double7": 16,

	"maniax-single": 4,
	"maniax-double": 8,

	"beat-single5": 6,
	"beat-double5": 12,
	"beat-single7": 8,
	"beat-double7": 16,

	"popn-five": 5,
	"popn-nine": 9,

	"kickbox-human": 4,
	"kickbox-quadarm": 4,
	"kickbox-insect": 6,
	"kickbox-arachnid": 8,
}

// nonDanceVariants are step-types that don't describe playable note lanes
// for this analysis (cabinet-lights tracks and similar) — spec.md §3:
// "filtered out before analysis." They have no entry in laneCounts, so
// LaneCount reports them as unrecognized.
var nonDanceVariants = map[string]bool{
	"lights-cabinet": true,
}

// IsAnalyzable reports whether a chart with this step-type should be
// included in analysis output: it must be a recognized step-type and not
// a non-dance variant.
func IsAnalyzable(stepType string) bool {
	key := strings.ToLower(strings.TrimSpace(stepType))
	if nonDanceVariants[key] {
		return false
	}
	_, ok := laneCounts[key]
	return ok
}

var difficultyAliases = map[string]string{
	"beginner":  "beginner",
	"easy":      "easy",
	"basic":     "easy",
	"medium":    "medium",
	"trick":     "medium",
	"another":   "medium",
	"hard":      "hard",
	"ssr":       "hard",
	"maniac":    "hard",
	"challenge": "challenge",
	"smaniac":   "challenge",
	"expert":    "challenge",
	"edit":      "edit",
}

// NormalizeDifficulty maps a raw difficulty label to its canonical
// lowercase form (spec.md §9). Unknown labels pass through lowercased.
func NormalizeDifficulty(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	if canonical, ok := difficultyAliases[key]; ok {
		return canonical
	}
	return key
}
