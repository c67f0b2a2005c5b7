package timingmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	entries := Parse("0.000=120.000,16.000=240.000")
	require.Len(t, entries, 2)
	require.Equal(t, 0.0, entries[0].Beat)
	require.Equal(t, []float64{120.0}, entries[0].Values)
	require.Equal(t, 16.0, entries[1].Beat)
}

func TestParseDropsMalformed(t *testing.T) {
	entries := Parse("0=120,garbage,4=abc,8=180")
	require.Len(t, entries, 2)
	require.Equal(t, 0.0, entries[0].Beat)
	require.Equal(t, 8.0, entries[1].Beat)
}

func TestParseWhitespace(t *testing.T) {
	entries := Parse(" 0.000 = 120.000 ,\n16.000=240.000 ")
	require.Len(t, entries, 2)
}

func TestParseSpeedsTriplet(t *testing.T) {
	entries := Parse("0=1.5,0.5,0")
	require.Len(t, entries, 1)
	require.Equal(t, []float64{1.5, 0.5, 0}, entries[0].Values)
}

func TestSortCleanDuplicateBeatLastWins(t *testing.T) {
	entries := SortClean([]Entry{
		{Beat: 4, Values: []float64{100}},
		{Beat: 0, Values: []float64{120}},
		{Beat: 4, Values: []float64{150}},
	})
	require.Len(t, entries, 2)
	require.Equal(t, 0.0, entries[0].Beat)
	require.Equal(t, 4.0, entries[1].Beat)
	require.Equal(t, []float64{150}, entries[1].Values)
}

func TestCanonicalTempoScenario1(t *testing.T) {
	entries := ParseClean("0.000=120.000,16.000=240.000")
	require.Equal(t, "0.000=120.000,16.000=240.000", CanonicalTempo(entries))
}

func TestCanonicalTempoScenario2(t *testing.T) {
	entries := ParseClean("0=120.0000,4=120.000")
	require.Equal(t, "0.000=120.000,4.000=120.000", CanonicalTempo(entries))
}
