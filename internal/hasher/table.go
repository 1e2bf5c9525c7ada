package hasher

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
)

const entryBytes = 4

// SelectWidth derives the cascade's CRC width and id mask from max_ids,
// per §4.E. It deliberately preserves the source behavior flagged as an
// open question in spec.md §9: idMask is derived from required_bits
// (floor(log2(max_ids))), not from the rounded-up capacity or from
// crcWidth itself, so idMask can be narrower than what crcWidth's address
// space actually spans.
func SelectWidth(maxIDs int) (crcWidth uint, idMask uint64, err error) {
	if maxIDs < 1 {
		maxIDs = 1
	}
	requiredBits := uint(bits.Len(uint(maxIDs))) - 1

	width := requiredBits
	if width%2 != 0 {
		width++
	}
	if width < 8 {
		width = 8
	}
	if width > 30 {
		return 0, 0, ErrMaxIdsTooLarge
	}

	return width, (uint64(1) << requiredBits) - 1, nil
}

// PackedTable is the flat binary lookup table of §4.E: eight blocks of
// 2^crcWidth entries, one block per catalog polynomial, each entry a
// little-endian entryBytes-wide unique_id | validity-bit payload.
//
// Entries are kept sparse (one map per block) rather than as one
// contiguous byte slice, so construction never needs the full
// 8*2^crcWidth*entryBytes buffer — up to 32 GiB at crcWidth=30 — in memory
// at once; WriteTo materializes one block at a time.
type PackedTable struct {
	crcWidth uint
	blocks   [8]map[uint64]uint32
}

func newPackedTable(crcWidth uint) *PackedTable {
	return &PackedTable{crcWidth: crcWidth}
}

func (t *PackedTable) set(polyIdx int, hashVal uint64, uniqueID int) {
	if t.blocks[polyIdx] == nil {
		t.blocks[polyIdx] = make(map[uint64]uint32)
	}
	t.blocks[polyIdx][hashVal] = uint32(uniqueID) | (1 << t.crcWidth)
}

// blockEntries returns the number of entries (and the slot address range)
// in one polynomial's block: 2^crcWidth.
func (t *PackedTable) blockEntries() uint64 {
	return uint64(1) << t.crcWidth
}

// Size returns the total packed table size in bytes.
func (t *PackedTable) Size() int64 {
	return int64(t.blockEntries()) * 8 * entryBytes
}

// WriteTo writes the packed table to w, one polynomial block at a time,
// in catalog order. It implements io.WriterTo.
func (t *PackedTable) WriteTo(w io.Writer) (int64, error) {
	blockEntries := t.blockEntries()
	buf := make([]byte, blockEntries*entryBytes)

	var total int64
	for polyIdx := 0; polyIdx < 8; polyIdx++ {
		for i := range buf {
			buf[i] = 0
		}
		for hashVal, payload := range t.blocks[polyIdx] {
			binary.LittleEndian.PutUint32(buf[hashVal*entryBytes:], payload)
		}
		n, err := w.Write(buf)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Lookup returns the payload at (polyIdx, hashVal), the same addressing
// §4.E's downstream engine performs, and whether that slot is valid. It is
// used by the packed-table round-trip property test (spec.md §8,
// property 5).
func (t *PackedTable) Lookup(polyIdx int, hashVal uint64) (payload uint32, valid bool) {
	payload, ok := t.blocks[polyIdx][hashVal]
	return payload, ok
}

// ReadableEntry is one line of the human-readable mapping: the original
// (pre-normalization) input symbol text and its assigned unique_id.
type ReadableEntry struct {
	Symbol   string
	UniqueID int
}

// WriteReadableTable writes one "<symbol> -> <unique_id>\n" line per entry,
// in entries' order, per §6.
func WriteReadableTable(w io.Writer, entries []ReadableEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s -> %d\n", e.Symbol, e.UniqueID); err != nil {
			return err
		}
	}
	return nil
}
