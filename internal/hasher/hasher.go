// Package hasher implements the cascade-of-CRCs perfect-hashing builder:
// normalizing a fixed input set of symbols, assigning each to the first
// non-colliding polynomial in a width's catalog, and packing the result
// into the binary lookup table a downstream engine consumes.
package hasher

import (
	"io"

	"github.com/QianfengClarkShen/rtl-static-hash/internal/catalog"
	"github.com/QianfengClarkShen/rtl-static-hash/internal/crc"
)

// Hasher is the builder's lifecycle object (spec.md §3 "Lifecycle"):
// constructed with MaxIDs, which binds the CRC width and polynomial
// cascade; Build is called once; afterward the Hasher is immutable and
// its tables may be serialized any number of times. It is not safe for
// concurrent mutation, though independent Hasher instances never
// interact (spec.md §5).
type Hasher struct {
	maxIDs   int
	crcWidth uint
	idMask   uint64
	polys    []*crc.Parameters

	built       bool
	assignments []Assignment     // indexed like the input symbols given to Build
	readable    []ReadableEntry  // in original input order
	packed      *PackedTable
}

// New constructs a Hasher for up to maxIDs symbols, selecting and binding
// the CRC width and polynomial cascade per §4.E. It fails with
// ErrMaxIdsTooLarge if maxIDs would require a CRC width over 30 bits.
func New(maxIDs int) (*Hasher, error) {
	width, idMask, err := SelectWidth(maxIDs)
	if err != nil {
		return nil, err
	}
	return &Hasher{
		maxIDs:   maxIDs,
		crcWidth: width,
		idMask:   idMask,
		polys:    catalog.PolynomialsFor(width),
	}, nil
}

// CRCWidth returns the CRC width this Hasher was bound to.
func (h *Hasher) CRCWidth() uint { return h.crcWidth }

// Build runs the normalizer and cascade assigner over rawSymbols, in
// order, and packs the resulting table. It may be called only once per
// Hasher. labels[i] is the readable-table text for rawSymbols[i] (its
// original, pre-normalization text); pass the same strings used to build
// rawSymbols.
func (h *Hasher) Build(rawSymbols [][]byte, labels []string) error {
	if h.built {
		panic("hasher: Build called more than once")
	}

	symbols, err := normalize(rawSymbols, h.maxIDs)
	if err != nil {
		return err
	}

	assignments, err := assign(symbols, h.polys, h.idMask)
	if err != nil {
		return err
	}

	packed := newPackedTable(h.crcWidth)
	readable := make([]ReadableEntry, len(symbols))
	for i, sym := range symbols {
		a := assignments[i]
		polyIdx, err := catalog.IndexOf(h.crcWidth, a.PolynomialName)
		if err != nil {
			return ErrUnknownPolynomial
		}
		params, err := catalog.ParametersFor(h.crcWidth, a.PolynomialName)
		if err != nil {
			return ErrUnknownPolynomial
		}
		hashVal := crc.NewHash(params).CalculateCRC(sym) & h.idMask
		packed.set(polyIdx, hashVal, a.UniqueID)

		readable[i] = ReadableEntry{Symbol: labels[i], UniqueID: a.UniqueID}
	}

	h.assignments = assignments
	h.readable = readable
	h.packed = packed
	h.built = true
	return nil
}

// Assignments returns the per-symbol (polynomial, unique_id) results, in
// the same order as the rawSymbols passed to Build. It panics if called
// before a successful Build.
func (h *Hasher) Assignments() []Assignment {
	if !h.built {
		panic("hasher: Assignments called before Build")
	}
	return h.assignments
}

// WritePacked writes the packed binary table to w. It panics if called
// before a successful Build.
func (h *Hasher) WritePacked(w io.Writer) (int64, error) {
	if !h.built {
		panic("hasher: WritePacked called before Build")
	}
	return h.packed.WriteTo(w)
}

// WriteReadable writes the human-readable "<symbol> -> <unique_id>" table
// to w. It panics if called before a successful Build.
func (h *Hasher) WriteReadable(w io.Writer) error {
	if !h.built {
		panic("hasher: WriteReadable called before Build")
	}
	return WriteReadableTable(w, h.readable)
}

// Packed returns the underlying PackedTable for callers that need direct
// addressed lookups (e.g. round-trip tests), after a successful Build.
func (h *Hasher) Packed() *PackedTable {
	if !h.built {
		panic("hasher: Packed called before Build")
	}
	return h.packed
}
