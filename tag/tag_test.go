package tag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeBasic(t *testing.T) {
	data := []byte("#TITLE:My Song;\n#ARTIST:Someone;\n")
	tags, err := Tokenize(data)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	require.Equal(t, "TITLE", tags[0].Name)
	require.Equal(t, "My Song", string(tags[0].Value))
}

func TestTokenizeComment(t *testing.T) {
	data := []byte("#TITLE:Foo // trailing comment\nBar;")
	tags, err := Tokenize(data)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, "Foo \nBar", string(tags[0].Value))
}

func TestTokenizeEscape(t *testing.T) {
	data := []byte(`#TITLE:a\:b\;c\\d;`)
	tags, err := Tokenize(data)
	require.NoError(t, err)
	require.Equal(t, `a:b;c\d`, string(tags[0].Value))
}

func TestTokenizeStrayBackslashIsLiteral(t *testing.T) {
	data := []byte(`#BANNER:gfx\banner.png;`)
	tags, err := Tokenize(data)
	require.NoError(t, err)
	require.Equal(t, `gfx\banner.png`, string(tags[0].Value))
}

func TestTokenizeUnterminated(t *testing.T) {
	data := []byte("#TITLE:no semicolon here")
	tags, err := Tokenize(data)
	require.NoError(t, err)
	require.Equal(t, "no semicolon here", string(tags[0].Value))
}

func TestTokenizeNoTags(t *testing.T) {
	_, err := Tokenize([]byte("just some plain text, no hash at all"))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestTokenizeMalformedSkipped(t *testing.T) {
	data := []byte("#BROKEN no colon #TITLE:Good;")
	tags, err := Tokenize(data)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, "TITLE", tags[0].Name)
}

func TestTokenizeCaseInsensitiveName(t *testing.T) {
	data := []byte("#title:lowercase;")
	tags, err := Tokenize(data)
	require.NoError(t, err)
	require.Equal(t, "TITLE", tags[0].Name)
}
