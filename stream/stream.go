// Package stream classifies a chart's per-measure density series into
// run categories and renders the human-readable breakdown strings
// spec.md §4.3 describes.
package stream

import (
	"fmt"
	"strings"
)

// Category is a measure's run-density classification (spec.md §3).
type Category int

const (
	Run32 Category = iota
	Run24
	Run20
	Run16
	Break
)

// Categorize maps a measure's density to its Category.
func Categorize(density int) Category {
	switch {
	case density >= 32:
		return Run32
	case density >= 24:
		return Run24
	case density >= 20:
		return Run20
	case density >= 16:
		return Run16
	default:
		return Break
	}
}

const streamThreshold = 16

// Counts tallies, within the active range, measures of each run category
// plus total break measures (spec.md §4.3).
type Counts struct {
	Run16Streams int
	Run20Streams int
	Run24Streams int
	Run32Streams int
	TotalBreaks  int
	BreakMeasures int
}

// ComputeCounts derives run-category tallies from a chart's per-measure
// density series.
func ComputeCounts(measures []int) Counts {
	cats := make([]Category, len(measures))
	for i, d := range measures {
		cats[i] = Categorize(d)
	}

	start, end, ok := activeRangeCats(cats)
	if !ok {
		return Counts{}
	}

	var c Counts
	for _, cat := range cats[start : end+1] {
		switch cat {
		case Run16:
			c.Run16Streams++
		case Run20:
			c.Run20Streams++
		case Run24:
			c.Run24Streams++
		case Run32:
			c.Run32Streams++
		case Break:
			c.BreakMeasures++
		}
	}

	for _, seg := range Sequences(measures) {
		if seg.IsBreak {
			c.TotalBreaks += seg.End - seg.Start
		}
	}
	return c
}

// Segment is a contiguous stretch of measures, either a run of
// stream-threshold-or-above measures or a break between/around them
// (spec.md §4.3's "segments bounded by the first and last non-break
// measures").
type Segment struct {
	Start   int
	End     int
	IsBreak bool
}

// Sequences builds the Segment list: 1-indexed stream-measure
// positions grouped into contiguous runs, with breaks of at least two
// measures inserted between and around them. Ported from the reference
// engine's stream_sequences.
func Sequences(measures []int) []Segment {
	var streamPositions []int
	for i, d := range measures {
		if d >= streamThreshold {
			streamPositions = append(streamPositions, i+1)
		}
	}
	if len(streamPositions) == 0 {
		return nil
	}

	var segs []Segment

	firstBreak := streamPositions[0] - 1
	if firstBreak < 0 {
		firstBreak = 0
	}
	if firstBreak >= 2 {
		segs = append(segs, Segment{Start: 0, End: firstBreak, IsBreak: true})
	}

	count := 1
	haveEnd := false
	end := 0

	for i, cur := range streamPositions {
		next := maxInt
		if i+1 < len(streamPositions) {
			next = streamPositions[i+1]
		}

		if cur+1 == next {
			count++
			end = cur + 1
			haveEnd = true
			continue
		}

		e := cur
		if haveEnd {
			e = end
		}
		segs = append(segs, Segment{Start: e - count, End: e, IsBreak: false})

		bstart := cur
		var bend int
		if next == maxInt {
			bend = len(measures)
		} else {
			bend = next - 1
		}
		if bend >= bstart+2 {
			segs = append(segs, Segment{Start: bstart, End: bend, IsBreak: true})
		}

		count = 1
		haveEnd = false
		end = 0
	}

	return segs
}

const maxInt = int(^uint(0) >> 1)

func activeRangeCats(cats []Category) (start, end int, ok bool) {
	start = -1
	for i, c := range cats {
		if c != Break {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, 0, false
	}
	for i := len(cats) - 1; i >= 0; i-- {
		if cats[i] != Break {
			return start, i, true
		}
	}
	return 0, 0, false
}

// ActiveRange returns the [start, end] inclusive index range spanning the
// first through last non-break measure, or ok=false if every measure is
// a break.
func ActiveRange(measures []int) (start, end int, ok bool) {
	cats := make([]Category, len(measures))
	for i, d := range measures {
		cats[i] = Categorize(d)
	}
	return activeRangeCats(cats)
}

// Mode selects a breakdown string's merge threshold and break symbology
// (spec.md §4.3).
type Mode int

const (
	Detailed Mode = iota
	Partial
	Simplified
)

type token struct {
	isBreak  bool
	category Category
	count    int
}

func tokenize(densities []int) []token {
	if len(densities) == 0 {
		return nil
	}
	var tokens []token
	cur := Categorize(densities[0])
	count := 1
	for _, d := range densities[1:] {
		next := Categorize(d)
		if next == cur {
			count++
			continue
		}
		tokens = append(tokens, newToken(cur, count))
		cur = next
		count = 1
	}
	tokens = append(tokens, newToken(cur, count))
	return tokens
}

func newToken(cat Category, count int) token {
	if cat == Break {
		return token{isBreak: true, count: count}
	}
	return token{category: cat, count: count}
}

// GenerateBreakdown renders the Detailed/Partial/Simplified breakdown
// string over the active range of a chart's density series.
func GenerateBreakdown(measures []int, mode Mode) string {
	start, end, ok := ActiveRange(measures)
	if !ok {
		return ""
	}
	tokens := tokenize(measures[start : end+1])

	threshold := 0
	switch mode {
	case Partial:
		threshold = 1
	case Simplified:
		threshold = 4
	}

	var out strings.Builder
	i := 0
	for i < len(tokens) {
		if tokens[i].isBreak {
			formatBreak(&out, tokens[i].count, mode)
			i++
			continue
		}
		total, star, next := mergeRuns(tokens, i, tokens[i].category, threshold, mode)
		if out.Len() > 0 {
			out.WriteByte(' ')
		}
		writeRun(&out, tokens[i].category, total, star)
		i = next
	}
	return out.String()
}

func mergeRuns(tokens []token, start int, cat Category, thresh int, mode Mode) (total int, star bool, next int) {
	total = tokens[start].count
	next = start + 1

	for next+1 < len(tokens) {
		brk := tokens[next]
		if !brk.isBreak || brk.count > thresh {
			break
		}
		run := tokens[next+1]
		if run.isBreak {
			break
		}
		if run.category == cat {
			total += brk.count + run.count
			star = true
			next += 2
			continue
		}
		if mode == Simplified && brk.count > 1 && brk.count <= 4 {
			total += brk.count
			star = true
		}
		next++
		break
	}
	return total, star, next
}

func writeRun(out *strings.Builder, cat Category, length int, star bool) {
	pre, suf := "", ""
	switch cat {
	case Run20:
		pre, suf = "~", "~"
	case Run24:
		pre, suf = `\`, `\`
	case Run32:
		pre, suf = "=", "="
	}
	fmt.Fprintf(out, "%s%d%s", pre, length, suf)
	if star {
		out.WriteByte('*')
	}
}

func formatBreak(out *strings.Builder, n int, mode Mode) {
	var sym string
	switch mode {
	case Detailed:
		if n > 1 {
			if out.Len() > 0 {
				out.WriteByte(' ')
			}
			fmt.Fprintf(out, "(%d)", n)
		}
		return
	case Partial:
		switch {
		case n == 1:
			return
		case n >= 2 && n <= 4:
			sym = "-"
		case n >= 5 && n <= 32:
			sym = "/"
		default:
			sym = "|"
		}
	case Simplified:
		switch {
		case n >= 1 && n <= 4:
			return
		case n >= 5 && n <= 32:
			sym = "/"
		default:
			sym = "|"
		}
	}
	if sym == "" {
		return
	}
	if out.Len() > 0 {
		out.WriteByte(' ')
	}
	out.WriteString(sym)
}

// Level selects which of the four "stream breakdown" family strings to
// render (spec.md §4.3's "alternative family").
type Level int

const (
	LevelDetailed Level = iota
	LevelPartial
	LevelSimple
	LevelTotal
)

// NoStreams is the sentinel returned for a chart with no stream segments
// at all (spec.md §8's boundary behaviors).
const NoStreams = "No Streams!"

// StreamBreakdown renders the stream-sequence-based breakdown family.
func StreamBreakdown(measures []int, level Level) string {
	if len(measures) == 0 {
		return NoStreams
	}

	segs := Sequences(measures)
	if len(segs) == 0 {
		return NoStreams
	}

	var out strings.Builder
	sum, broken, total := 0, false, 0

	for i, seg := range segs {
		size := seg.End - seg.Start
		if seg.IsBreak {
			if i != 0 && i+1 != len(segs) {
				flushStream(&out, &sum, &broken, &total, level, size)
			}
			continue
		}

		switch level {
		case LevelSimple, LevelTotal:
			if i > 0 && !segs[i-1].IsBreak {
				broken = true
				if level == LevelSimple {
					sum++
				}
			}
			sum += size
		default:
			if i > 0 && !segs[i-1].IsBreak {
				out.WriteByte('-')
			}
			fmt.Fprintf(&out, "%d", size)
		}
	}

	if sum != 0 {
		switch level {
		case LevelSimple:
			fmt.Fprintf(&out, "%d", sum)
			if broken {
				out.WriteByte('*')
			}
		case LevelTotal:
			total += sum
		}
	}

	if level == LevelTotal {
		return fmt.Sprintf("%d Total", total)
	}
	if out.Len() == 0 {
		return NoStreams
	}
	return out.String()
}

func flushStream(out *strings.Builder, sum *int, broken *bool, total *int, level Level, size int) {
	var sym string
	switch {
	case size >= 1 && size <= 4:
		sym = "-"
	case size >= 5 && size <= 31:
		sym = "/"
	default:
		sym = " | "
	}

	if level == LevelDetailed {
		fmt.Fprintf(out, " (%d) ", size)
		return
	}

	if *sum != 0 && level == LevelSimple {
		fmt.Fprintf(out, "%d", *sum)
		if *broken {
			out.WriteByte('*')
		}
	} else if level == LevelTotal {
		*total += *sum
	}

	if level != LevelTotal {
		out.WriteString(sym)
	}

	*sum = 0
	*broken = false
}
