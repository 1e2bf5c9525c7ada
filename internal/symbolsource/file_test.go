package symbolsource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QianfengClarkShen/rtl-static-hash/internal/hasher"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "symbols.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadASCIISkipsBlankLinesAndTrimsTrailingWhitespace(t *testing.T) {
	path := writeTempFile(t, "AAPL  \n\nMSFT\r\n\n  GOOGL\n")
	raw, labels, err := Read(path, FormatASCII)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("AAPL"), []byte("MSFT"), []byte("  GOOGL")}, raw)
	assert.Equal(t, []string{"AAPL", "MSFT", "  GOOGL"}, labels)
}

func TestReadASCIIRejectsNonASCII(t *testing.T) {
	path := writeTempFile(t, "AAPL\ncaf\xc3\xa9\n")
	_, _, err := Read(path, FormatASCII)
	assert.ErrorIs(t, err, hasher.ErrInputEncoding)
}

func TestReadHexDecodesEachLine(t *testing.T) {
	path := writeTempFile(t, "4141504c\n4d534654\n")
	raw, labels, err := Read(path, FormatHex)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("AAPL"), []byte("MSFT")}, raw)
	assert.Equal(t, []string{"4141504c", "4d534654"}, labels)
}

func TestReadHexRejectsInvalidHex(t *testing.T) {
	path := writeTempFile(t, "not-hex\n")
	_, _, err := Read(path, FormatHex)
	assert.ErrorIs(t, err, hasher.ErrInputEncoding)
}

func TestReadMissingFile(t *testing.T) {
	_, _, err := Read(filepath.Join(t.TempDir(), "does-not-exist.txt"), FormatASCII)
	assert.ErrorIs(t, err, hasher.ErrInputNotFound)
}
