// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// BoolVector is the i1 result of a vector comparison.  Like Vector it
// is immutable.
type BoolVector struct {
	length int
	bits   *bitset.BitSet
}

var _ Value = BoolVector{}

// NewBools builds a BoolVector from values
func NewBools(values []bool) BoolVector {
	bits := bitset.New(uint(len(values)))
	for i, b := range values {
		bits.SetTo(uint(i), b)
	}
	return BoolVector{length: len(values), bits: bits}
}

// BoolsFromI1 converts an i1 (or any) vector to booleans: a lane is
// true when its low bit is set
func BoolsFromI1[T Lane](v Vector[T]) BoolVector {
	bits := bitset.New(uint(len(v.lanes)))
	for i, x := range v.lanes {
		bits.SetTo(uint(i), x&1 != 0)
	}
	return BoolVector{length: len(v.lanes), bits: bits}
}

func (v BoolVector) set() *bitset.BitSet {
	if v.bits == nil {
		return bitset.New(0)
	}
	return v.bits
}

func (v BoolVector) Len() int { return v.length }

func (v BoolVector) ElementType() Kind { return I1 }

// Element returns lane index, or false when index is out of range
func (v BoolVector) Element(index int) (value bool, ok bool) {
	if index < 0 || index >= v.length {
		return false, false
	}
	return v.bits.Test(uint(index)), true
}

func (v BoolVector) GetElement(index int) (any, bool) {
	b, ok := v.Element(index)
	if !ok {
		return nil, false
	}
	return b, true
}

func (v BoolVector) Values() []bool {
	out := make([]bool, v.length)
	for i := range out {
		out[i] = v.bits.Test(uint(i))
	}
	return out
}

func (v BoolVector) Uint64s() []uint64 {
	out := make([]uint64, v.length)
	for i := range out {
		if v.bits.Test(uint(i)) {
			out[i] = 1
		}
	}
	return out
}

// Count reports the number of true lanes
func (v BoolVector) Count() int {
	return int(v.set().Count())
}

// AsI1 returns the lanes as an i1 integer vector
func (v BoolVector) AsI1() Vector[int8] {
	lanes := make([]int8, v.length)
	for i := range lanes {
		if v.bits.Test(uint(i)) {
			lanes[i] = 1
		}
	}
	return NewI1(lanes)
}

func (v BoolVector) And(rhs BoolVector) (BoolVector, error) {
	if v.length != rhs.length {
		return BoolVector{}, &LengthError{Op: "and", Left: v.length, Right: rhs.length}
	}
	return BoolVector{length: v.length, bits: v.set().Intersection(rhs.set())}, nil
}

func (v BoolVector) Or(rhs BoolVector) (BoolVector, error) {
	if v.length != rhs.length {
		return BoolVector{}, &LengthError{Op: "or", Left: v.length, Right: rhs.length}
	}
	return BoolVector{length: v.length, bits: v.set().Union(rhs.set())}, nil
}

func (v BoolVector) Xor(rhs BoolVector) (BoolVector, error) {
	if v.length != rhs.length {
		return BoolVector{}, &LengthError{Op: "xor", Left: v.length, Right: rhs.length}
	}
	return BoolVector{length: v.length, bits: v.set().SymmetricDifference(rhs.set())}, nil
}

// Not flips every lane
func (v BoolVector) Not() BoolVector {
	bits := bitset.New(uint(v.length))
	for i := 0; i < v.length; i++ {
		bits.SetTo(uint(i), !v.bits.Test(uint(i)))
	}
	return BoolVector{length: v.length, bits: bits}
}

func (v BoolVector) Equal(o BoolVector) bool {
	if v.length != o.length {
		return false
	}
	for i := 0; i < v.length; i++ {
		if v.bits.Test(uint(i)) != o.bits.Test(uint(i)) {
			return false
		}
	}
	return true
}

func (v BoolVector) String() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(strconv.Itoa(v.length))
	b.WriteString(" x i1> [")
	for i := 0; i < v.length; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		if v.bits.Test(uint(i)) {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	}
	b.WriteByte(']')
	return b.String()
}
