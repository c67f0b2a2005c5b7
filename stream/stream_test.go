package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	require.Equal(t, Break, Categorize(15))
	require.Equal(t, Run16, Categorize(16))
	require.Equal(t, Run16, Categorize(19))
	require.Equal(t, Run20, Categorize(20))
	require.Equal(t, Run24, Categorize(24))
	require.Equal(t, Run32, Categorize(32))
}

func TestGenerateBreakdownUniformRun(t *testing.T) {
	measures := []int{16, 16, 16, 16, 16, 16, 16, 16}
	require.Equal(t, "8", GenerateBreakdown(measures, Detailed))
	require.Equal(t, "8", GenerateBreakdown(measures, Partial))
	require.Equal(t, "8", GenerateBreakdown(measures, Simplified))
}

// This traces the reference engine's actual merge/format logic rather
// than the (inconsistent) illustrative numbers in the distilled spec:
// Partial's break symbol table classifies a 3-measure break as "-", and
// Simplified's threshold-4 merge absorbs it into the surrounding run
// before any break symbol is chosen.
func TestGenerateBreakdownWithMidBreak(t *testing.T) {
	measures := []int{16, 16, 0, 0, 0, 16, 16}
	require.Equal(t, "2 (3) 2", GenerateBreakdown(measures, Detailed))
	require.Equal(t, "2 - 2", GenerateBreakdown(measures, Partial))
	require.Equal(t, "7*", GenerateBreakdown(measures, Simplified))
}

// Detailed's merge threshold is 0, so a lone 1-measure break never merges
// into its neighboring runs; formatBreak's Detailed case only emits a
// "(n)" marker for n > 1, so the break itself is silent here and the two
// runs are just space-joined — matching the ported reference algorithm's
// control flow, not spec.md §8 scenario 5's illustrative literal.
func TestGenerateBreakdownSingleMeasureBreakMerges(t *testing.T) {
	measures := []int{16, 16, 0, 16, 16}
	require.Equal(t, "2 2", GenerateBreakdown(measures, Detailed))
	require.Equal(t, "5*", GenerateBreakdown(measures, Partial))
	require.Equal(t, "5*", GenerateBreakdown(measures, Simplified))
}

func TestGenerateBreakdownAllBreaksIsEmpty(t *testing.T) {
	require.Equal(t, "", GenerateBreakdown([]int{0, 0, 0}, Detailed))
}

func TestStreamBreakdownNoStreams(t *testing.T) {
	require.Equal(t, NoStreams, StreamBreakdown(nil, LevelDetailed))
	require.Equal(t, NoStreams, StreamBreakdown([]int{0, 0, 0}, LevelDetailed))
}

func TestStreamBreakdownSimpleSingleRun(t *testing.T) {
	measures := []int{16, 16, 16, 16}
	require.Equal(t, "4", StreamBreakdown(measures, LevelDetailed))
	require.Equal(t, "4", StreamBreakdown(measures, LevelSimple))
}

func TestComputeCountsAllBreaks(t *testing.T) {
	c := ComputeCounts([]int{0, 0, 0})
	require.Equal(t, Counts{}, c)
}

func TestComputeCountsMixed(t *testing.T) {
	c := ComputeCounts([]int{16, 16, 0, 0, 0, 16, 16})
	require.Equal(t, 4, c.Run16Streams)
	require.Equal(t, 3, c.BreakMeasures)
	require.Equal(t, 3, c.TotalBreaks)
}

func TestSequences(t *testing.T) {
	segs := Sequences([]int{16, 16, 0, 0, 0, 16, 16})
	require.Len(t, segs, 3)
	require.False(t, segs[0].IsBreak)
	require.True(t, segs[1].IsBreak)
	require.False(t, segs[2].IsBreak)
}
