// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"fmt"
)

// packed stores size lanes of bits width back to back in 64 bit words.
// It is the on-disk lane layout: an i1 vector costs one bit per lane.
type packed struct {
	forbiddenMask uint64
	bits          uint8
	space         []uint64
	size          uint
}

func newPacked(bits uint8, size uint) *packed {
	forbiddenMask := ^Kind(bits).Mask()
	words := (size * uint(bits) / 64) + 1
	return &packed{forbiddenMask, bits, make([]uint64, words), size}
}

// packLanes copies zero extended lanes into a new packed array
func packLanes(k Kind, lanes []uint64) *packed {
	p := newPacked(uint8(k), uint(len(lanes)))
	for i, x := range lanes {
		p.set(uint(i), x)
	}
	return p
}

//                 | bitoff, the bit offset into the word
//                 V
//                   1 1 1 1 1 1 1 1 1 1 2 2 2 2 2 2 2 2 2 2 3 3 3
// 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2
//                 \---------------/
//                    getbits - the number of interesting bits in this
//                              word
//
func (p *packed) set(ix uint, val uint64) {
	if val&p.forbiddenMask != 0 {
		panic(fmt.Sprintf("attempt to pack out of range lane: %x does not fit in %d bits", val, p.bits))
	}
	bitstart := ix * uint(p.bits)
	word := bitstart / 64
	bitoff := bitstart % 64
	getbits := 64 - bitoff
	if getbits > uint(p.bits) {
		getbits = uint(p.bits)
	}
	// zero
	p.space[word] =
		((p.space[word] >> (bitoff + getbits)) << (bitoff + getbits)) |
			(p.space[word] << (64 - bitoff) >> (64 - bitoff))

	// or in val
	p.space[word] |= val << bitoff

	if getbits < uint(p.bits) {
		remainder := uint(p.bits) - getbits
		p.space[word+1] = ((p.space[word+1] >> remainder) << remainder) | val>>getbits
	}
}

func (p *packed) get(ix uint) (val uint64) {
	bitstart := ix * uint(p.bits)
	word := bitstart / 64
	bitoff := bitstart % 64
	getbits := 64 - bitoff
	if getbits > uint(p.bits) {
		getbits = uint(p.bits)
	}
	// now get 'getbits' from 'word' starting at 'bitoff'
	val = p.space[word] << (64 - getbits - bitoff)
	val >>= 64 - getbits
	if getbits < uint(p.bits) {
		remainder := uint(p.bits) - getbits
		x := (p.space[word+1] << (64 - remainder)) >> (64 - remainder)
		val |= x << getbits
	}
	return val
}

// lanes unpacks every lane
func (p *packed) lanes() []uint64 {
	out := make([]uint64, p.size)
	for i := range out {
		out[i] = p.get(uint(i))
	}
	return out
}

func (p *packed) len() uint {
	return p.size
}
