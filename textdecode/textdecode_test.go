package textdecode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkipBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, "hello"...)
	require.Equal(t, []byte("hello"), SkipBOM(data))
	require.Equal(t, []byte("hello"), SkipBOM([]byte("hello")))
}

func TestDecodeValidUTF8Passthrough(t *testing.T) {
	require.Equal(t, "héllo", Decode([]byte("héllo")))
}

func TestDecodeInvalidUTF8FallsBackToLatin1(t *testing.T) {
	raw := []byte{0xE9} // 'é' in Latin-1, not valid standalone UTF-8
	got := Decode(raw)
	require.Equal(t, "é", got)
}
