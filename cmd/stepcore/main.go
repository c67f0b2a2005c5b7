// Command stepcore is a thin front-end over the stepcore analysis core:
// it reads one or more simfiles, runs the pipeline, and prints a minimal
// plain-text report per chart. Full report formatting (pretty/JSON/CSV),
// pack scanning, and course-file analysis are out of scope (spec.md §1).
package main

import (
	"flag"
	"fmt"
	"os"

	"stepcore"
	"stepcore/internal/applog"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := applog.LevelInfo
	if *debug {
		level = applog.LevelDebug
	}
	logger := applog.NewWithLevel(os.Stderr, level)

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: stepcore <simfile> [simfile...]")
		os.Exit(2)
	}

	exitCode := 0
	for _, path := range args {
		if err := analyzeFile(path, logger); err != nil {
			logger.Error().Src(path).Msg(err.Error())
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func analyzeFile(path string, logger *applog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	format, ok := stepcore.FormatFromFileName(path)
	if !ok {
		return fmt.Errorf("%s: unrecognized extension", path)
	}

	summary, err := stepcore.Analyze(data, format)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", path, err)
	}

	logger.Debug().Src(path).Msgf("parsed %d chart(s)", len(summary.Charts))
	printReport(path, summary)
	return nil
}

func printReport(path string, summary *stepcore.Summary) {
	fmt.Printf("%s\n", path)
	fmt.Printf("  title: %s\n", summary.Title)
	fmt.Printf("  artist: %s\n", summary.Artist)
	fmt.Printf("  tempo: %s\n", summary.CanonicalTempo)
	for _, chart := range summary.Charts {
		fmt.Printf("  [%s %s] meter=%d lanes=%d hash=%s\n",
			chart.StepType, chart.Difficulty, chart.Meter, chart.LaneCount, chart.ShortHash)
		fmt.Printf("    streams: run16=%d run20=%d run24=%d run32=%d breaks=%d\n",
			chart.StreamCounts.Run16Streams, chart.StreamCounts.Run20Streams,
			chart.StreamCounts.Run24Streams, chart.StreamCounts.Run32Streams,
			chart.StreamCounts.TotalBreaks)
		fmt.Printf("    breakdown: %s\n", chart.Detailed)
		fmt.Printf("    peak nps: %.2f\n", chart.PeakNPS)
	}
}
