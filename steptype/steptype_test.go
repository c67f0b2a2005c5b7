package steptype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLaneCountKnown(t *testing.T) {
	lanes, ok := LaneCount("dance-single")
	require.True(t, ok)
	require.Equal(t, 4, lanes)

	lanes, ok = LaneCount("  Pump-Double  ")
	require.True(t, ok)
	require.Equal(t, 10, lanes)
}

func TestLaneCountUnknown(t *testing.T) {
	_, ok := LaneCount("not-a-steptype")
	require.False(t, ok)
}

func TestIsAnalyzable(t *testing.T) {
	require.True(t, IsAnalyzable("dance-single"))
	require.False(t, IsAnalyzable("lights-cabinet"))
	require.False(t, IsAnalyzable("unknown-type"))
}

func TestNormalizeDifficulty(t *testing.T) {
	require.Equal(t, "easy", NormalizeDifficulty("Basic"))
	require.Equal(t, "hard", NormalizeDifficulty("Maniac"))
	require.Equal(t, "challenge", NormalizeDifficulty("SMANIAC"))
	require.Equal(t, "somethingelse", NormalizeDifficulty("SomethingElse"))
}
