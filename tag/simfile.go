package tag

import (
	"bytes"

	"stepcore/textdecode"
)

// Format distinguishes the two simfile text formats spec.md §1 covers.
type Format int

const (
	// Legacy is the .sm format: a single #NOTES: tag per chart.
	Legacy Format = iota
	// Extended is the .ssc format: #NOTEDATA:...; blocks with inner tags,
	// optionally overriding any of the seven timing maps per chart.
	Extended
)

// FormatFromExtension maps a file extension (with or without a leading
// dot, case-insensitive) to a Format. ok is false for anything else.
func FormatFromExtension(ext string) (Format, bool) {
	ext = trimDot(ext)
	switch {
	case equalFold(ext, "sm"):
		return Legacy, true
	case equalFold(ext, "ssc"):
		return Extended, true
	default:
		return 0, false
	}
}

// TimingMaps is the shape shared by global and per-chart timing: the seven
// raw map strings spec.md §3/§4.2 describes. An empty string means "not
// present."
type TimingMaps struct {
	Tempos  string
	Stops   string
	Delays  string
	Warps   string
	Fakes   string
	Speeds  string
	Scrolls string
}

// ChartRecord is one embedded chart: the five positional header fields,
// the raw note-data block, and — for extended simfiles only — any
// per-chart timing overrides (spec.md §3).
type ChartRecord struct {
	StepType    string
	Description string
	Difficulty  string
	Meter       string
	RadarOrCredit string
	NoteData    []byte

	// HasOverrides is true only for extended-format charts that carried
	// at least one per-chart timing tag.
	HasOverrides bool
	Overrides    TimingMaps
}

// Simfile is the extractor's output: every recognized top-level tag value,
// plus the ordered list of chart records (spec.md §4.1).
type Simfile struct {
	Format Format

	Title             string
	Subtitle          string
	Artist            string
	TitleTranslit     string
	SubtitleTranslit  string
	ArtistTranslit    string
	Offset            string
	Version           string
	Banner            string
	Background        string

	Globals TimingMaps

	// Extra holds every recognized-but-unclassified top-level tag,
	// keyed by upper-cased name, for out-of-scope downstream tooling
	// (asset discovery, pack scanning) that this core doesn't interpret.
	Extra map[string][]byte

	Charts []ChartRecord
}

// Extract runs the section extractor over data for the given format,
// producing a Simfile. It returns a *ParseError only when the buffer
// contains no recognizable tags at all (spec.md §4.1, §7); malformed
// individual tags and chart records are silently skipped.
func Extract(data []byte, format Format) (*Simfile, error) {
	data = textdecode.SkipBOM(data)

	tags, err := Tokenize(data)
	if err != nil {
		return nil, err
	}

	sf := &Simfile{
		Format: format,
		Extra:  make(map[string][]byte),
	}

	switch format {
	case Legacy:
		extractLegacy(sf, tags)
	default:
		extractExtended(sf, tags)
	}

	return sf, nil
}

func extractLegacy(sf *Simfile, tags []Raw) {
	for _, t := range tags {
		if t.Name == "NOTES" {
			if rec, ok := splitLegacyNotes(t.Value); ok {
				sf.Charts = append(sf.Charts, rec)
			}
			continue
		}
		assignGlobal(sf, t)
	}
}

// splitLegacyNotes splits a legacy #NOTES: value on unescaped ':' into
// exactly six fields; the first five are the positional header, the sixth
// is the note-data block (spec.md §4.1). A record with fewer than six
// fields is skipped (spec.md §7).
func splitLegacyNotes(value []byte) (ChartRecord, bool) {
	fields := splitUnescapedColon(value, 6)
	if len(fields) < 6 {
		return ChartRecord{}, false
	}
	return ChartRecord{
		StepType:      trimSpace(string(fields[0])),
		Description:   trimSpace(string(fields[1])),
		Difficulty:    trimSpace(string(fields[2])),
		Meter:         trimSpace(string(fields[3])),
		RadarOrCredit: trimSpace(string(fields[4])),
		NoteData:      fields[5],
	}, true
}

// splitUnescapedColon splits on literal ':' bytes (escapes were already
// resolved by the tag lexer, so any ':' remaining here is a genuine field
// separator), stopping once maxFields are produced — the final field
// absorbs any remaining ':' bytes, matching "split into exactly six
// fields."
func splitUnescapedColon(value []byte, maxFields int) [][]byte {
	var fields [][]byte
	start := 0
	for i := 0; i < len(value) && len(fields) < maxFields-1; i++ {
		if value[i] == ':' {
			fields = append(fields, value[start:i])
			start = i + 1
		}
	}
	fields = append(fields, value[start:])
	return fields
}

func extractExtended(sf *Simfile, tags []Raw) {
	var current *ChartRecord

	flush := func() {
		if current != nil {
			sf.Charts = append(sf.Charts, *current)
			current = nil
		}
	}

	for _, t := range tags {
		switch t.Name {
		case "NOTEDATA":
			flush()
			current = &ChartRecord{}
			continue
		}

		if current == nil {
			assignGlobal(sf, t)
			continue
		}

		switch t.Name {
		case "STEPSTYPE":
			current.StepType = trimSpace(string(t.Value))
		case "DESCRIPTION":
			current.Description = trimSpace(string(t.Value))
		case "DIFFICULTY":
			current.Difficulty = trimSpace(string(t.Value))
		case "METER":
			current.Meter = trimSpace(string(t.Value))
		case "CREDIT", "RADARVALUES":
			if current.RadarOrCredit == "" {
				current.RadarOrCredit = trimSpace(string(t.Value))
			}
		case "NOTES", "NOTES2":
			current.NoteData = t.Value
		case "BPMS":
			current.Overrides.Tempos = string(t.Value)
			current.HasOverrides = true
		case "STOPS":
			current.Overrides.Stops = string(t.Value)
			current.HasOverrides = true
		case "DELAYS":
			current.Overrides.Delays = string(t.Value)
			current.HasOverrides = true
		case "WARPS":
			current.Overrides.Warps = string(t.Value)
			current.HasOverrides = true
		case "SPEEDS":
			current.Overrides.Speeds = string(t.Value)
			current.HasOverrides = true
		case "SCROLLS":
			current.Overrides.Scrolls = string(t.Value)
			current.HasOverrides = true
		case "FAKES":
			current.Overrides.Fakes = string(t.Value)
			current.HasOverrides = true
		default:
			// Unrecognized tag inside a chart block: out of scope for
			// this chart record, but not an error.
		}
	}
	flush()
}

func assignGlobal(sf *Simfile, t Raw) {
	switch t.Name {
	case "TITLE":
		sf.Title = trimSpace(string(t.Value))
	case "SUBTITLE":
		sf.Subtitle = trimSpace(string(t.Value))
	case "ARTIST":
		sf.Artist = trimSpace(string(t.Value))
	case "TITLETRANSLIT":
		sf.TitleTranslit = trimSpace(string(t.Value))
	case "SUBTITLETRANSLIT":
		sf.SubtitleTranslit = trimSpace(string(t.Value))
	case "ARTISTTRANSLIT":
		sf.ArtistTranslit = trimSpace(string(t.Value))
	case "OFFSET":
		sf.Offset = trimSpace(string(t.Value))
	case "VERSION":
		sf.Version = trimSpace(string(t.Value))
	case "BANNER":
		sf.Banner = trimSpace(string(t.Value))
	case "BACKGROUND":
		sf.Background = trimSpace(string(t.Value))
	case "BPMS":
		sf.Globals.Tempos = string(t.Value)
	case "STOPS":
		sf.Globals.Stops = string(t.Value)
	case "DELAYS":
		sf.Globals.Delays = string(t.Value)
	case "WARPS":
		sf.Globals.Warps = string(t.Value)
	case "SPEEDS":
		sf.Globals.Speeds = string(t.Value)
	case "SCROLLS":
		sf.Globals.Scrolls = string(t.Value)
	case "FAKES":
		sf.Globals.Fakes = string(t.Value)
	default:
		sf.Extra[t.Name] = t.Value
	}
}

func trimSpace(s string) string {
	return string(bytes.TrimSpace([]byte(s)))
}

func trimDot(s string) string {
	if len(s) > 0 && s[0] == '.' {
		return s[1:]
	}
	return s
}

func equalFold(a, b string) bool {
	return bytes.EqualFold([]byte(a), []byte(b))
}
