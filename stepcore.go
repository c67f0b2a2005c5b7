// Package stepcore is the pipeline root: it wires the section extractor,
// timing reconstructor, minimizer, stream analyzer and hasher together
// into one Analyze call per spec.md §2's pipeline diagram.
package stepcore

import (
	"path/filepath"
	"strconv"
	"strings"

	"stepcore/hash"
	"stepcore/minimize"
	"stepcore/steptype"
	"stepcore/stream"
	"stepcore/tag"
	"stepcore/timing"
)

// ChartSummary is one analyzed chart (spec.md §6's output contract).
type ChartSummary struct {
	StepType   string
	Difficulty string
	StepArtist string
	Meter      int

	LaneCount int

	MinimizedChart []byte
	MeasureDensity []int

	Counts minimize.Counts

	StreamCounts       stream.Counts
	Detailed           string
	Partial            string
	Simplified         string
	StreamDetailed     string
	StreamPartial      string
	StreamSimple       string
	StreamTotal        string
	PeakNPS            float64

	ShortHash string

	Timing *timing.Snapshot
}

// Summary is the pipeline's output for one simfile.
type Summary struct {
	Title            string
	Subtitle         string
	Artist           string
	TitleTranslit    string
	SubtitleTranslit string
	ArtistTranslit   string
	Offset           float64

	CanonicalTempo string

	Charts []ChartSummary
}

// FormatFromFileName maps a file name's extension to a tag.Format.
func FormatFromFileName(name string) (tag.Format, bool) {
	return tag.FormatFromExtension(filepath.Ext(name))
}

// Analyze runs the full pipeline over one simfile's raw bytes.
func Analyze(data []byte, format tag.Format) (*Summary, error) {
	sf, err := tag.Extract(data, format)
	if err != nil {
		return nil, err
	}

	offset := parseFloat(sf.Offset)

	globalMaps := timing.RawMaps{
		Tempos:  sf.Globals.Tempos,
		Stops:   sf.Globals.Stops,
		Delays:  sf.Globals.Delays,
		Warps:   sf.Globals.Warps,
		Fakes:   sf.Globals.Fakes,
		Speeds:  sf.Globals.Speeds,
		Scrolls: sf.Globals.Scrolls,
	}

	honorOverrides := timing.HonorsOverrides(format == tag.Extended, sf.Version)

	summary := &Summary{
		Title:            sf.Title,
		Subtitle:         sf.Subtitle,
		Artist:           sf.Artist,
		TitleTranslit:    sf.TitleTranslit,
		SubtitleTranslit: sf.SubtitleTranslit,
		ArtistTranslit:   sf.ArtistTranslit,
		Offset:           offset,
	}

	globalSnapshot := timing.Build(globalMaps, offset)
	summary.CanonicalTempo = globalSnapshot.BPMsFormatted

	for _, chart := range sf.Charts {
		if !steptype.IsAnalyzable(chart.StepType) {
			continue
		}
		lanes, ok := steptype.LaneCount(chart.StepType)
		if !ok {
			continue
		}

		overrideMaps := timing.RawMaps{
			Tempos:  chart.Overrides.Tempos,
			Stops:   chart.Overrides.Stops,
			Delays:  chart.Overrides.Delays,
			Warps:   chart.Overrides.Warps,
			Fakes:   chart.Overrides.Fakes,
			Speeds:  chart.Overrides.Speeds,
			Scrolls: chart.Overrides.Scrolls,
		}
		effective := timing.EffectiveMaps(honorOverrides, globalMaps, overrideMaps)
		snapshot := timing.Build(effective, offset)

		grid := minimize.Build(chart.NoteData, lanes)

		cs := ChartSummary{
			StepType:       chart.StepType,
			Difficulty:     steptype.NormalizeDifficulty(chart.Difficulty),
			StepArtist:     chart.Description,
			Meter:          int(parseFloat(chart.Meter)),
			LaneCount:      lanes,
			MinimizedChart: grid.MinimizedText(),
			MeasureDensity: grid.Density,
			Counts:         grid.Counts,
			StreamCounts:   stream.ComputeCounts(grid.Density),
			Detailed:       stream.GenerateBreakdown(grid.Density, stream.Detailed),
			Partial:        stream.GenerateBreakdown(grid.Density, stream.Partial),
			Simplified:     stream.GenerateBreakdown(grid.Density, stream.Simplified),
			StreamDetailed: stream.StreamBreakdown(grid.Density, stream.LevelDetailed),
			StreamPartial:  stream.StreamBreakdown(grid.Density, stream.LevelPartial),
			StreamSimple:   stream.StreamBreakdown(grid.Density, stream.LevelSimple),
			StreamTotal:    stream.StreamBreakdown(grid.Density, stream.LevelTotal),
			PeakNPS:        peakNPS(snapshot, grid.Density),
			Timing:         snapshot,
		}
		cs.ShortHash = hash.Short(cs.MinimizedChart, cs.Timing.BPMsFormatted)

		summary.Charts = append(summary.Charts, cs)
	}

	return summary, nil
}

// peakNPS estimates the highest notes-per-second over any one measure,
// using the timing snapshot to convert each measure's beat span to
// seconds. This is a supplemental metric (spec.md §6 lists it among a
// chart summary's fields) derived from data the core already computes,
// not a new subsystem.
func peakNPS(snapshot *timing.Snapshot, density []int) float64 {
	if len(density) == 0 {
		return 0
	}
	peak := 0.0
	for i, d := range density {
		if d == 0 {
			continue
		}
		startBeat := float64(i) * 4.0
		endBeat := startBeat + 4.0
		dt := snapshot.TimeForBeat(endBeat) - snapshot.TimeForBeat(startBeat)
		if dt <= 0 {
			continue
		}
		nps := float64(d) / dt
		if nps > peak {
			peak = nps
		}
	}
	return peak
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
