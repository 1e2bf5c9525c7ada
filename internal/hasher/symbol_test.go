package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLeftJustifiesAndZeroPads(t *testing.T) {
	// spec.md §8 scenario E4.
	out, err := normalize([][]byte{[]byte("A"), []byte("AA")}, 10)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, Symbol{0x41, 0x00}, out[0])
	assert.Equal(t, Symbol{0x41, 0x41}, out[1])
}

func TestNormalizeEqualLengthIsIdentity(t *testing.T) {
	out, err := normalize([][]byte{[]byte("AB"), []byte("CD")}, 10)
	require.NoError(t, err)
	assert.Equal(t, Symbol("AB"), out[0])
	assert.Equal(t, Symbol("CD"), out[1])
}

func TestNormalizeSymbolTooLong(t *testing.T) {
	tooLong := make([]byte, maxSymbolBytes+1)
	_, err := normalize([][]byte{tooLong}, 10)
	assert.ErrorIs(t, err, ErrSymbolTooLong)
}

func TestNormalizeMaxSymbolBytesIsAllowed(t *testing.T) {
	exact := make([]byte, maxSymbolBytes)
	_, err := normalize([][]byte{exact}, 10)
	assert.NoError(t, err)
}

func TestNormalizeTooManySymbols(t *testing.T) {
	raw := [][]byte{[]byte("A"), []byte("B"), []byte("C")}
	_, err := normalize(raw, 2)
	assert.ErrorIs(t, err, ErrTooManySymbols)
}

func TestNormalizeEmptyInput(t *testing.T) {
	out, err := normalize(nil, 10)
	require.NoError(t, err)
	assert.Empty(t, out)
}
