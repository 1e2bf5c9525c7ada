// Copyright 2016, S&K Software Development Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crc implements generic, parameterized CRC calculations up to 64
// bits wide, matching Ross Williams' 1993 "A Painless Guide to CRC Error
// Detection Algorithms" model: width, polynomial, input/output reflection
// and init/final xor fully determine the algorithm.
//
// The cascade builder in internal/hasher only ever uses catalog entries
// with ReflectIn, ReflectOut, Init and FinalXor all zero/false, but the
// engine honors all four parameters so the catalog can grow without
// touching this package.
package crc

// Parameters is an immutable description of one CRC algorithm. Name
// identifies it within a polynomial catalog; it plays no role in the CRC
// computation itself.
type Parameters struct {
	Name       string
	Width      uint   // width of the CRC register, in bits
	Polynomial uint64 // generator polynomial, low Width bits significant
	ReflectIn  bool   // reflect each input byte before processing
	ReflectOut bool   // reflect the final register before FinalXor
	Init       uint64 // initial register value
	FinalXor   uint64 // value XORed into the result before it is returned
}

// reflect reverses the order of the low count bits of in.
func reflect(in uint64, count uint) uint64 {
	ret := in
	for idx := uint(0); idx < count; idx++ {
		srcbit := uint64(1) << idx
		dstbit := uint64(1) << (count - idx - 1)
		if (in & srcbit) != 0 {
			ret |= dstbit
		} else {
			ret = ret &^ dstbit
		}
	}
	return ret
}

// CalculateCRC computes the CRC of data bit-serially, per Parameters. It
// requires no preparation and is the reference definition that the
// table-driven Hash below must agree with for every input.
func CalculateCRC(crcParams *Parameters, data []byte) uint64 {
	curValue := crcParams.Init
	topbit := uint64(1) << (crcParams.Width - 1)
	mask := (topbit << 1) - 1

	for i := 0; i < len(data); i++ {
		curByte := uint64(data[i]) & 0x00FF
		if crcParams.ReflectIn {
			curByte = reflect(curByte, 8)
		}
		curValue ^= curByte << (crcParams.Width - 8)
		for j := 0; j < 8; j++ {
			if (curValue & topbit) != 0 {
				curValue = (curValue << 1) ^ crcParams.Polynomial
			} else {
				curValue = curValue << 1
			}
		}
	}
	if crcParams.ReflectOut {
		curValue = reflect(curValue, crcParams.Width)
	}

	curValue = curValue ^ crcParams.FinalXor

	return curValue & mask
}

// Hash is a table-driven, repeated-use evaluator for one set of
// Parameters. Building it precomputes a 256-entry accelerator table, so
// callers that hash many inputs under the same Parameters should build one
// Hash and reuse it rather than calling CalculateCRC per input.
type Hash struct {
	crcParams Parameters
	crctable  []uint64
	curValue  uint64
	mask      uint64
	size      uint
}

// Size returns the number of bytes the CRC occupies, rounded up.
func (h *Hash) Size() int { return int(h.size) }

// Params returns the Parameters this Hash was built from.
func (h *Hash) Params() Parameters { return h.crcParams }

// Reset restores the Hash to its initial state so it can be reused for a
// new input.
func (h *Hash) Reset() {
	h.curValue = h.crcParams.Init
	if h.crcParams.ReflectIn {
		h.curValue = reflect(h.crcParams.Init, h.crcParams.Width)
	}
}

// Update folds p into the running CRC state.
func (h *Hash) Update(p []byte) {
	if h.crcParams.ReflectIn {
		for _, v := range p {
			h.curValue = h.crctable[(byte(h.curValue)^v)&0xFF] ^ (h.curValue >> 8)
		}
	} else {
		for _, v := range p {
			h.curValue = h.crctable[(byte(h.curValue>>(h.crcParams.Width-8))^v)&0xFF] ^ (h.curValue << 8)
		}
	}
}

// CRC returns the CRC value for the data processed so far.
func (h *Hash) CRC() uint64 {
	ret := h.curValue
	if h.crcParams.ReflectOut != h.crcParams.ReflectIn {
		ret = reflect(ret, h.crcParams.Width)
	}
	return (ret ^ h.crcParams.FinalXor) & h.mask
}

// CalculateCRC resets the Hash, processes data in one call, and returns
// the resulting CRC.
func (h *Hash) CalculateCRC(data []byte) uint64 {
	h.Reset()
	h.Update(data)
	return h.CRC()
}

// NewHash builds a table-driven Hash for crcParams.
func NewHash(crcParams *Parameters) *Hash {
	ret := &Hash{crcParams: *crcParams}
	ret.mask = (uint64(1) << crcParams.Width) - 1
	ret.size = (crcParams.Width + 7) / 8
	ret.crctable = make([]uint64, 256)

	tmp := make([]byte, 1)
	tableParams := *crcParams
	tableParams.Init = 0
	tableParams.ReflectOut = tableParams.ReflectIn
	tableParams.FinalXor = 0
	for i := 0; i < 256; i++ {
		tmp[0] = byte(i)
		ret.crctable[i] = CalculateCRC(&tableParams, tmp)
	}
	ret.Reset()

	return ret
}
