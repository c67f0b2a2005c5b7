// Package minimize implements the chart minimizer and note/density
// counters (spec.md §4.3): it folds each measure's rows down to the
// coarsest subdivision that still preserves every non-empty row, and
// counts taps, holds, mines, hands, and jumps over the original
// resolution.
package minimize

import "strings"

// splitMeasures splits a raw note-data block into measures, each a
// sequence of row strings, on the `,`-on-its-own-line measure separator
// (spec.md §3). Blank lines within a measure (from CRLF or trailing
// whitespace) are dropped. An entirely blank note-data block yields a
// single zero-row measure.
func splitMeasures(data []byte) [][]string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	blocks := strings.Split(text, ",")
	measures := make([][]string, 0, len(blocks))
	for _, block := range blocks {
		var rows []string
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			rows = append(rows, line)
		}
		measures = append(measures, rows)
	}
	return measures
}

// isEmptyRow reports whether every lane in row is '0'.
func isEmptyRow(row string) bool {
	for _, c := range row {
		if c != '0' {
			return false
		}
	}
	return true
}

func isPowerOfTwo(k int) bool {
	return k > 0 && k&(k-1) == 0
}

// minimizeMeasure drops every row whose index is not a multiple of the
// largest power-of-two k (dividing the row count) for which all other
// rows are empty, preserving relative order (spec.md §4.3). A measure
// with zero rows, or where every row is empty, collapses to a single
// all-zero row of the given lane width.
func minimizeMeasure(rows []string, laneCount int) []string {
	if len(rows) == 0 {
		return []string{strings.Repeat("0", laneCount)}
	}

	n := len(rows)
	best := 1
	for k := n; k >= 1; k-- {
		if n%k != 0 || !isPowerOfTwo(k) {
			continue
		}
		ok := true
		for i := 0; i < n; i++ {
			if i%k != 0 && !isEmptyRow(rows[i]) {
				ok = false
				break
			}
		}
		if ok {
			best = k
			break
		}
	}

	out := make([]string, 0, n/best)
	for i := 0; i < n; i += best {
		out = append(out, rows[i])
	}
	return out
}

// Counts holds the note/event tallies accumulated across a whole chart
// at its original (pre-minimized) resolution (spec.md §4.3).
type Counts struct {
	Taps      int
	HoldHeads int
	RollHeads int
	Mines     int
	Hands     int
	Jumps     int
}

// Grid is the minimizer's output for one chart: the per-measure
// minimized rows (before trailing-empty-measure trimming), the
// per-measure density series aligned to those same pre-trim measures,
// and the whole-chart note counts.
type Grid struct {
	LaneCount int
	Measures  [][]string
	Density   []int
	Counts    Counts
}

// Build runs the minimizer and counters over raw note data for a chart
// with the given lane count.
func Build(noteData []byte, laneCount int) Grid {
	if len(strings.TrimSpace(string(noteData))) == 0 {
		return Grid{LaneCount: laneCount}
	}

	original := splitMeasures(noteData)

	g := Grid{
		LaneCount: laneCount,
		Measures:  make([][]string, len(original)),
		Density:   make([]int, len(original)),
	}

	activeHold := make([]bool, laneCount)
	for mi, rows := range original {
		for _, row := range rows {
			countRow(row, laneCount, activeHold, &g.Counts)
		}
		g.Measures[mi] = minimizeMeasure(rows, laneCount)
		g.Density[mi] = measureDensity(g.Measures[mi])
	}

	return g
}

// countRow tallies one row's events, tracking per-lane active holds
// closed by '3' so hand/jump counts reflect simultaneity correctly
// across rows (spec.md §4.3).
func countRow(row string, laneCount int, activeHold []bool, c *Counts) {
	newEvents := 0
	simultaneous := 0

	for lane := 0; lane < laneCount && lane < len(row); lane++ {
		switch row[lane] {
		case '1':
			c.Taps++
			newEvents++
			simultaneous++
		case '2':
			c.HoldHeads++
			newEvents++
			simultaneous++
			activeHold[lane] = true
		case '4':
			c.RollHeads++
			newEvents++
			simultaneous++
			activeHold[lane] = true
		case '3':
			activeHold[lane] = false
			simultaneous++
		case 'M', 'm':
			c.Mines++
			if activeHold[lane] {
				simultaneous++
			}
		default: // '0', 'F'/'f', 'L'/'l'
			if activeHold[lane] {
				simultaneous++
			}
		}
	}

	if newEvents == 2 {
		c.Jumps++
	}
	if simultaneous >= 3 {
		c.Hands++
	}
}

// measureDensity counts rows containing at least one tap-equivalent
// event (`1`, `2`, or `4`) — the row-count interpretation of spec.md §9's
// open question, chosen over total-event-count because it matches the
// glossary's "a measure whose tap-event density meets or exceeds 16"
// framing of density as a per-row occurrence, not a raw event tally.
func measureDensity(rows []string) int {
	count := 0
	for _, row := range rows {
		for _, c := range row {
			if c == '1' || c == '2' || c == '4' {
				count++
				break
			}
		}
	}
	return count
}

// TrimmedMeasures returns g.Measures with trailing fully-empty measures
// removed (spec.md §3's minimized-chart definition); the density series
// itself is never trimmed (spec.md's invariant ties it to the pre-trim
// measure count).
func (g Grid) TrimmedMeasures() [][]string {
	end := len(g.Measures)
	for end > 0 && isEmptyMeasure(g.Measures[end-1]) {
		end--
	}
	return g.Measures[:end]
}

func isEmptyMeasure(rows []string) bool {
	for _, row := range rows {
		if !isEmptyRow(row) {
			return false
		}
	}
	return true
}

// NoteKind is a note event's type.
type NoteKind int

const (
	Tap NoteKind = iota
	Hold
	Roll
	Mine
	Fake
)

// Note is one note event reconstructed from minimized chart data. TailRow
// is the row index a Hold/Roll's closing '3' was found at, or -1 if the
// head has no resolved tail (an unterminated hold).
type Note struct {
	Row     int
	Column  int
	Kind    NoteKind
	TailRow int
}

// ParseNotes reconstructs ordered note events from a chart's minimized
// note data, resolving each Hold/Roll head's tail row per lane, for
// consumers that need the events themselves rather than just their
// tallies. Build does not call it: the Counts tallies come from Build's
// own per-row pass (countRow) over the original rows.
func ParseNotes(minimizedNoteData []byte, laneCount int) []Note {
	lanes := laneCount
	if lanes < 1 {
		lanes = 1
	}

	var notes []Note
	row := 0
	holdHeads := make([]int, lanes)
	for i := range holdHeads {
		holdHeads[i] = -1
	}

	text := strings.ReplaceAll(string(minimizedNoteData), "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || line == "," {
			continue
		}
		if len(line) >= lanes {
			for col := 0; col < lanes; col++ {
				switch line[col] {
				case '1':
					notes = append(notes, Note{Row: row, Column: col, Kind: Tap, TailRow: -1})
				case 'F', 'f':
					notes = append(notes, Note{Row: row, Column: col, Kind: Fake, TailRow: -1})
				case '2', '4':
					kind := Hold
					if line[col] == '4' {
						kind = Roll
					}
					noteIndex := len(notes)
					notes = append(notes, Note{Row: row, Column: col, Kind: kind, TailRow: -1})
					holdHeads[col] = noteIndex
				case 'M', 'm':
					notes = append(notes, Note{Row: row, Column: col, Kind: Mine, TailRow: -1})
				case '3':
					if headIdx := holdHeads[col]; headIdx >= 0 {
						notes[headIdx].TailRow = row
						holdHeads[col] = -1
					}
				}
			}
		}
		row++
	}

	return notes
}

// MinimizedText renders the trimmed measures as the canonical minimized
// byte form: rows separated by '\n', measures separated by ",\n", and no
// trailing newline (spec.md §3).
func (g Grid) MinimizedText() []byte {
	measures := g.TrimmedMeasures()
	var b strings.Builder
	for mi, rows := range measures {
		if mi > 0 {
			b.WriteString(",\n")
		}
		for ri, row := range rows {
			if ri > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(row)
		}
	}
	return []byte(b.String())
}
