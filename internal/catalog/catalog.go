// Package catalog is the static database of CRC parameter sets used by the
// cascade builder, indexed by (width, name). It is grounded on Philip
// Koopman's published CRC polynomial database, the same source
// original_source/py/crc_polynomials.py draws its KOOPMAN_POLYNOMIALS table
// from.
//
// The catalog is constructed once at package init and never mutated; every
// width offers exactly eight polynomials, and the order within a width is
// the cascade's priority order. Callers must not reorder what
// PolynomialsFor returns.
package catalog

import (
	"fmt"

	"github.com/QianfengClarkShen/rtl-static-hash/internal/crc"
)

// ErrUnknownPolynomial is returned by IndexOf when name is not catalogued
// for its width.
type ErrUnknownPolynomial struct {
	Name string
}

func (e *ErrUnknownPolynomial) Error() string {
	return fmt.Sprintf("catalog: unknown polynomial %q", e.Name)
}

// entry pairs a polynomial's literal (including the implicit leading one at
// bit position Width, which buildCatalog masks off) with its catalog name.
type entry struct {
	name string
	poly uint64
}

// widthTable holds the eight Koopman polynomials for one width, in cascade
// priority order. The literals are bit-exact against
// original_source/py/crc_polynomials.py's KOOPMAN_POLYNOMIALS.
var widthTable = map[uint][]entry{
	8: {
		{"CRC-8F-3", 0x1cf}, {"CRC-8K-3", 0x14d}, {"SAE-J1850", 0x11d}, {"CCITT-8", 0x163},
		{"CRC-8F-8", 0x17f}, {"CRC-8-AUTOSAR", 0x12f}, {"CRC-8-Bluetooth", 0x1a7}, {"WCDMA-8", 0x19b},
	},
	10: {
		{"CRC-10F-3", 0x64f}, {"CRC-10F-8.1", 0x5fb}, {"CRC-10F-6.1", 0x58f}, {"FP-10", 0x409},
		{"CRC-10F-4.2", 0x48f}, {"CRC-10F-8.2", 0x5bd}, {"CRC-10-CDMA2000", 0x7d9}, {"FOP-11", 0x40d},
	},
	12: {
		{"CRC-12F-3", 0x130f}, {"CRC-12K-7", 0x1467}, {"FP-12", 0x1053}, {"CRC-12F-9", 0x1bbf},
		{"CRC-12K-5.2", 0x17bf}, {"CRC-12F-6.1", 0x107d}, {"CRC-12F-4.2", 0x11e7}, {"CRC-12-CDMA2000", 0x1f13},
	},
	14: {
		{"CRC-14F-3", 0x4f9f}, {"CRC-14F-7", 0x5153}, {"CRC-14F-11", 0x6fdf}, {"FP-14", 0x402b},
		{"CRC-14F-10.1", 0x7577}, {"CRC-14F-9", 0x692f}, {"CRC-14K-3", 0x4ed3}, {"CRC-14K-8", 0x549f},
	},
	16: {
		{"CRC-16F-3", 0x11b2b}, {"CRC-16F-11", 0x1fb7f}, {"FP-16", 0x1002d}, {"CRC-16K-3", 0x18f57},
		{"CRC-16F-10.1", 0x12f3d}, {"CRC-16K-5", 0x12c4f}, {"CRC-16-CDMA2000", 0x1c867}, {"CRC-16-T10-DIF", 0x18bb7},
	},
	18: {
		{"CRC-18K-3.1", 0x472f3}, {"FP-18", 0x40027}, {"CRC-18K-3.5", 0x4717d}, {"CRC-18K-3.6", 0x5a13f},
		{"CRC-18K-3.4", 0x43757}, {"CRC-18K-3.2", 0x57dad}, {"CRC-18K-3.3", 0x5dc93}, {"CRC-18K-11", 0x4d47b},
	},
	20: {
		{"CRC-20K-3.1", 0x16b04f}, {"CRC-20K-3.5", 0x168d6f}, {"CRC-20K-3.7", 0x189b0f}, {"CRC-20K-3.2", 0x15eadf},
		{"CRC-20K-3.3", 0x19bdf3}, {"CRC-20K-3.6", 0x174497}, {"CRC-20K-3.8", 0x15f9b7}, {"CRC-20K-3.4", 0x151193},
	},
	22: {
		{"CRC-22K-3.1", 0x611fa7}, {"CRC-22K-3.5", 0x6dc801}, {"CRC-22K-3.7", 0x529aa9}, {"CRC-22K-3.10", 0x722bd3},
		{"CRC-22K-3.9", 0x4e536b}, {"CRC-22K-3.2", 0x77862d}, {"CRC-22K-3.4", 0x7df163}, {"CRC-22K-3.3", 0x4bdefb},
	},
	24: {
		{"CRC-24K-3.1", 0x100001b}, {"CRC-24K-3.2", 0x11f21c7}, {"CRC-24K-3.8", 0x17b49ab}, {"CRC-24K-3.3", 0x127969f},
		{"CRC-24K-3.7", 0x16ebd57}, {"CRC-24K-3.6", 0x12826ad}, {"CRC-24K-3.9", 0x14e6b4f}, {"CRC-24K-3.10", 0x170ea2b},
	},
	26: {
		{"CRC-26K-3.1", 0x67833df}, {"CRC-26K-3.6", 0x74cdc9f}, {"CRC-26K-3.11", 0x4fd6f67}, {"CRC-26K-3.7", 0x52145f5},
		{"CRC-26K-3.2", 0x6c95597}, {"CRC-26K-3.5", 0x76c28cf}, {"CRC-26K-3.12", 0x7d32257}, {"CRC-26K-3.4", 0x529ef3d},
	},
	28: {
		{"CRC-28K-3.1", 0x123b83c7}, {"CRC-28K-3.5", 0x102c41cb}, {"CRC-28K-3.4", 0x17a0e8a7}, {"CRC-28K-3.9", 0x19ed232f},
		{"CRC-28K-3.2", 0x11747ad7}, {"CRC-28K-3.8", 0x112a0cbd}, {"CRC-28K-3.11", 0x10d6cab9}, {"CRC-28K-3.10", 0x169d901f},
	},
	30: {
		{"CRC-30K-3.1", 0x6268545f}, {"CRC-30K-3.3", 0x54b7233b}, {"CRC-30K-3.11", 0x68a55347}, {"CRC-30K-3.8", 0x41667891},
		{"CRC-30K-3.9", 0x4922d0ab}, {"CRC-30K-3.2", 0x6220e663}, {"CRC-30K-3.13", 0x512ff0cb}, {"CRC-30K-3.12", 0x46d305c7},
	},
}

// entriesPerWidth is fixed by §3 of the specification: each width offers
// exactly eight polynomials.
const entriesPerWidth = 8

// catalog maps width -> ordered Parameters slice, built once at init.
var catalog = buildCatalog()

func buildCatalog() map[uint][]*crc.Parameters {
	out := make(map[uint][]*crc.Parameters, len(widthTable))
	for width, entries := range widthTable {
		if len(entries) != entriesPerWidth {
			panic(fmt.Sprintf("catalog: width %d has %d entries, want %d", width, len(entries), entriesPerWidth))
		}
		params := make([]*crc.Parameters, len(entries))
		mask := (uint64(1) << width) - 1
		for i, e := range entries {
			params[i] = &crc.Parameters{
				Name:       e.name,
				Width:      width,
				Polynomial: e.poly & mask,
			}
		}
		out[width] = params
	}
	return out
}

// Widths lists the catalogued CRC widths, in ascending order.
func Widths() []uint {
	return []uint{8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30}
}

// PolynomialsFor returns the ordered cascade for width, in construction
// priority order. Callers must not mutate or reorder the returned slice;
// it is shared, process-wide state.
func PolynomialsFor(width uint) []*crc.Parameters {
	return catalog[width]
}

// IndexOf returns the position of name within its width's ordered list, in
// [0, 8). It fails with *ErrUnknownPolynomial if name isn't catalogued for
// width.
func IndexOf(width uint, name string) (int, error) {
	for i, p := range catalog[width] {
		if p.Name == name {
			return i, nil
		}
	}
	return 0, &ErrUnknownPolynomial{Name: name}
}

// ParametersFor returns the Parameters for name within width's catalog, or
// *ErrUnknownPolynomial if it isn't catalogued.
func ParametersFor(width uint, name string) (*crc.Parameters, error) {
	for _, p := range catalog[width] {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, &ErrUnknownPolynomial{Name: name}
}
