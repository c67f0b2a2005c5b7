package tag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractLegacy(t *testing.T) {
	data := []byte("#TITLE:My Song;\n" +
		"#OFFSET:0.000;\n" +
		"#BPMS:0.000=120.000;\n" +
		"#NOTES:\n" +
		"     dance-single:\n" +
		"     :\n" +
		"     Hard:\n" +
		"     8:\n" +
		"     0.1,0.2,0.3,0.4,0.5:\n" +
		"0000\n0000\n0000\n0000\n,\n0000\n0000\n0000\n0000\n;\n")

	sf, err := Extract(data, Legacy)
	require.NoError(t, err)
	require.Equal(t, "My Song", sf.Title)
	require.Equal(t, "0.000=120.000", sf.Globals.Tempos)
	require.Len(t, sf.Charts, 1)
	require.Equal(t, "dance-single", sf.Charts[0].StepType)
	require.Equal(t, "Hard", sf.Charts[0].Difficulty)
	require.Equal(t, "8", sf.Charts[0].Meter)
}

func TestExtractExtendedWithOverrides(t *testing.T) {
	data := []byte("#TITLE:Extended;\n" +
		"#BPMS:0=120;\n" +
		"#NOTEDATA:;\n" +
		"#STEPSTYPE:dance-single;\n" +
		"#DIFFICULTY:Challenge;\n" +
		"#METER:12;\n" +
		"#BPMS:0=180;\n" +
		"#NOTES:\n0000\n0000\n0000\n0000\n;\n" +
		"#NOTEDATA:;\n" +
		"#STEPSTYPE:dance-double;\n" +
		"#DIFFICULTY:Easy;\n" +
		"#METER:3;\n" +
		"#NOTES:\n0000000\n0000000\n;\n")

	sf, err := Extract(data, Extended)
	require.NoError(t, err)
	require.Len(t, sf.Charts, 2)

	first := sf.Charts[0]
	require.Equal(t, "dance-single", first.StepType)
	require.True(t, first.HasOverrides)
	require.Equal(t, "0=180", first.Overrides.Tempos)

	second := sf.Charts[1]
	require.Equal(t, "dance-double", second.StepType)
	require.False(t, second.HasOverrides)
}

func TestExtractNoTagsIsError(t *testing.T) {
	_, err := Extract([]byte("not a simfile"), Legacy)
	require.Error(t, err)
}

func TestFormatFromExtension(t *testing.T) {
	f, ok := FormatFromExtension(".SM")
	require.True(t, ok)
	require.Equal(t, Legacy, f)

	f, ok = FormatFromExtension("ssc")
	require.True(t, ok)
	require.Equal(t, Extended, f)

	_, ok = FormatFromExtension("crs")
	require.False(t, ok)
}
