package hasher

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QianfengClarkShen/rtl-static-hash/internal/catalog"
	"github.com/QianfengClarkShen/rtl-static-hash/internal/crc"
)

func TestSelectWidthE1(t *testing.T) {
	width, idMask, err := SelectWidth(8)
	require.NoError(t, err)
	assert.EqualValues(t, 8, width)
	assert.EqualValues(t, 7, idMask)
}

func TestSelectWidthE3(t *testing.T) {
	width, _, err := SelectWidth(65536)
	require.NoError(t, err)
	assert.EqualValues(t, 16, width)
}

func TestSelectWidthE6MaxIdsTooLarge(t *testing.T) {
	_, _, err := SelectWidth(1 << 31)
	assert.ErrorIs(t, err, ErrMaxIdsTooLarge)
}

func TestPackedTableSizeMatchesE1(t *testing.T) {
	pt := newPackedTable(8)
	assert.EqualValues(t, 8*256*4, pt.Size())
}

func TestPackedTableSizeMatchesE3(t *testing.T) {
	pt := newPackedTable(16)
	assert.EqualValues(t, 8*65536*4, pt.Size())
}

func TestPackedTableRoundTrip(t *testing.T) {
	// spec.md §8 property 5.
	width, idMask, err := SelectWidth(8)
	require.NoError(t, err)
	polys := catalog.PolynomialsFor(width)

	symbols, err := normalize([][]byte{[]byte("A"), []byte("B"), []byte("C")}, 8)
	require.NoError(t, err)

	assignments, err := assign(symbols, polys, idMask)
	require.NoError(t, err)

	pt := newPackedTable(width)
	for i, sym := range symbols {
		a := assignments[i]
		polyIdx, err := catalog.IndexOf(width, a.PolynomialName)
		require.NoError(t, err)
		params, err := catalog.ParametersFor(width, a.PolynomialName)
		require.NoError(t, err)
		hashVal := crc.NewHash(params).CalculateCRC(sym) & idMask
		pt.set(polyIdx, hashVal, a.UniqueID)

		payload, valid := pt.Lookup(polyIdx, hashVal)
		require.True(t, valid)
		assert.Equal(t, uint32(a.UniqueID)|(1<<width), payload)
	}
}

func TestPackedTableWriteToProducesExpectedBytes(t *testing.T) {
	pt := newPackedTable(8)
	pt.set(0, 0x41, 5)

	var buf bytes.Buffer
	n, err := pt.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, 8*256*4, n)
	assert.Equal(t, int(n), buf.Len())

	addr := 0x41 * 4
	got := buf.Bytes()[addr : addr+4]
	assert.Equal(t, []byte{5, 1, 0, 0}, got) // 5 | (1<<8) = 0x105, little-endian
}

func TestWriteReadableTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReadableTable(&buf, []ReadableEntry{
		{Symbol: "AAPL", UniqueID: 0},
		{Symbol: "MSFT", UniqueID: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "AAPL -> 0\nMSFT -> 1\n", buf.String())
}
