// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

// package vec implements immutable fixed-width integer vector values
// as produced by a bitcode interpreter, supporting:
//  1. the element-wise vector instructions (wrapping arithmetic,
//     signed and unsigned division, bitwise ops and shifts)
//  2. comparison into boolean vectors
//  3. functional single lane update
//  4. read only foreign access (has size, get size, read)
package vec

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"
)

// Lane is the set of native integer types a vector stores its
// elements in.  The storage type must be at least as wide as the
// vector's Kind.
type Lane interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Value is the width independent view of any vector.  Every
// Vector[T] and BoolVector implements it.
type Value interface {
	// Len is the number of lanes
	Len() int
	// ElementType is the kind of each lane
	ElementType() Kind
	// GetElement returns the lane at index, or false if index is
	// out of range.  It never fails.
	GetElement(index int) (any, bool)
	// Uint64s returns a copy of the lanes as zero extended bit patterns
	Uint64s() []uint64
	String() string
}

var (
	_ Value = Vector[int8]{}
	_ Value = Vector[int16]{}
	_ Value = Vector[int32]{}
	_ Value = Vector[int64]{}
)

// Vector is an immutable sequence of integers of a single Kind.  Only
// the low Kind.Bits() of each lane are significant; lanes produced by
// this package always have any wider storage bits cleared.
type Vector[T Lane] struct {
	kind  Kind
	lanes []T
}

func storageBits[T Lane]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

func naturalKind[T Lane]() Kind {
	return Kind(storageBits[T]())
}

// New wraps elems in a vector whose kind is the full width of T.  The
// slice is not copied: ownership passes to the vector and the caller
// must not modify it afterwards.
func New[T Lane](elems []T) Vector[T] {
	return Vector[T]{kind: naturalKind[T](), lanes: elems}
}

// NewNarrow wraps elems in a vector of kind k held in storage T, which
// may be wider than k.  Elements must already be masked to k bits; no
// validation is done.  NewNarrow panics if k does not fit in T.
func NewNarrow[T Lane](k Kind, elems []T) Vector[T] {
	if !k.Valid() || k.Bits() > storageBits[T]() {
		panic(fmt.Sprintf("element kind %s does not fit in %d bit storage", k, storageBits[T]()))
	}
	return Vector[T]{kind: k, lanes: elems}
}

// NewI1 builds an i1 vector; each element must be 0 or 1
func NewI1(elems []int8) Vector[int8] { return NewNarrow(I1, elems) }

func NewI8(elems []int8) Vector[int8]    { return New(elems) }
func NewI16(elems []int16) Vector[int16] { return New(elems) }
func NewI32(elems []int32) Vector[int32] { return New(elems) }
func NewI64(elems []int64) Vector[int64] { return New(elems) }

func (v Vector[T]) width() Kind {
	if v.kind == 0 {
		return naturalKind[T]()
	}
	return v.kind
}

// Len reports the number of lanes
func (v Vector[T]) Len() int {
	return len(v.lanes)
}

// ElementType reports the kind of the lanes
func (v Vector[T]) ElementType() Kind {
	return v.width()
}

// Element returns lane index, or false when index is not in [0, Len())
func (v Vector[T]) Element(index int) (T, bool) {
	if index < 0 || index >= len(v.lanes) {
		var z T
		return z, false
	}
	return v.lanes[index], true
}

// GetElement is the boxed form of Element
func (v Vector[T]) GetElement(index int) (any, bool) {
	e, ok := v.Element(index)
	if !ok {
		return nil, false
	}
	return e, true
}

// Get returns lane index and panics like a slice index when it is out
// of range.  Use Element for a checked read.
func (v Vector[T]) Get(index int) T {
	return v.lanes[index]
}

// Values returns a copy of the lanes
func (v Vector[T]) Values() []T {
	cpy := make([]T, len(v.lanes))
	copy(cpy, v.lanes)
	return cpy
}

func (v Vector[T]) Uint64s() []uint64 {
	mask := v.width().Mask()
	out := make([]uint64, len(v.lanes))
	for i, x := range v.lanes {
		out[i] = uint64(x) & mask
	}
	return out
}

// Int64s returns the lanes sign extended from the vector's kind
func (v Vector[T]) Int64s() []int64 {
	k := v.width()
	out := make([]int64, len(v.lanes))
	for i, x := range v.lanes {
		out[i] = k.SignExtend(uint64(x))
	}
	return out
}

// Insert returns a copy of v with lane index replaced by element,
// masked to the vector's kind.  v is left unmodified.
func (v Vector[T]) Insert(element T, index int) (Vector[T], error) {
	if index < 0 || index >= len(v.lanes) {
		return Vector[T]{}, &BoundsError{Op: "insert", Receiver: v.String(), Index: index, Length: len(v.lanes)}
	}
	k := v.width()
	cpy := v.Values()
	cpy[index] = T(uint64(element) & k.Mask())
	return Vector[T]{kind: k, lanes: cpy}, nil
}

// Equal reports whether v and o have the same kind and lanes
func (v Vector[T]) Equal(o Vector[T]) bool {
	if v.width() != o.width() || len(v.lanes) != len(o.lanes) {
		return false
	}
	mask := v.width().Mask()
	for i := range v.lanes {
		if uint64(v.lanes[i])&mask != uint64(o.lanes[i])&mask {
			return false
		}
	}
	return true
}

// String renders v in bitcode notation, e.g. "<4 x i32> [1, 2, 3, 4]".
// Lanes print signed except for i1.
func (v Vector[T]) String() string {
	return formatLanes(v.width(), v.Uint64s())
}

func formatLanes(k Kind, lanes []uint64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<%d x %s> [", len(lanes), k)
	for i, x := range lanes {
		if i > 0 {
			b.WriteString(", ")
		}
		if k == I1 {
			b.WriteString(strconv.FormatUint(x, 10))
		} else {
			b.WriteString(strconv.FormatInt(k.SignExtend(x), 10))
		}
	}
	b.WriteByte(']')
	return b.String()
}
