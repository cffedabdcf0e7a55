// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// vecVersion is a version number for the serialized representation.
// Any time incompatible changes are made, it is bumped
const vecVersion = uint64(0x0001)

// MaxLanes bounds the length of a vector read from a stream
const MaxLanes = 1 << 24

// Header describes a serialized vector
type Header struct {
	// a version number which changes as the representation changes
	Version uint64
	// the element kind's bit width; lanes are bit packed at this width
	Bits uint64
	// the number of lanes
	Length uint64
	// whether the vector is a BoolVector rather than an i1 integer
	// vector
	Boolean bool
}

// Kind is the element kind recorded in the header
func (h Header) Kind() Kind {
	return Kind(h.Bits)
}

func writeValue(w io.Writer, k Kind, boolean bool, lanes []uint64) (i int64, err error) {
	h := Header{
		Version: vecVersion,
		Bits:    uint64(k),
		Length:  uint64(len(lanes)),
		Boolean: boolean,
	}
	if err = binary.Write(w, binary.LittleEndian, h); err != nil {
		return
	}
	i += int64(binary.Size(h))
	x, err := writeUintSlice(w, packLanes(k, lanes).space)
	i += x
	return
}

// WriteTo serializes v as a header followed by its lanes bit packed at
// the vector's width
func (v Vector[T]) WriteTo(w io.Writer) (int64, error) {
	return writeValue(w, v.width(), false, v.Uint64s())
}

// WriteTo serializes v as one bit per lane
func (v BoolVector) WriteTo(w io.Writer) (int64, error) {
	return writeValue(w, I1, true, v.Uint64s())
}

// WriteValue serializes any vector value the way its WriteTo does
func WriteValue(w io.Writer, v Value) (int64, error) {
	_, boolean := v.(BoolVector)
	return writeValue(w, v.ElementType(), boolean, v.Uint64s())
}

// ReadHeader reads and validates the header of a serialized vector
func ReadHeader(r io.Reader) (h Header, err error) {
	if err = binary.Read(r, binary.LittleEndian, &h); err != nil {
		return h, fmt.Errorf("reading vector header: %w", err)
	}
	if h.Version != vecVersion {
		return h, fmt.Errorf("incompatible vector format: version is %d, expected %d",
			h.Version, vecVersion)
	}
	if !h.Kind().Valid() || h.Bits > 64 {
		return h, fmt.Errorf("corrupt vector header: unsupported element width %d", h.Bits)
	}
	if h.Length > MaxLanes {
		return h, fmt.Errorf("corrupt vector header: %d lanes exceeds limit of %d", h.Length, MaxLanes)
	}
	if h.Boolean && h.Kind() != I1 {
		return h, fmt.Errorf("corrupt vector header: boolean vector with %d bit lanes", h.Bits)
	}
	return h, nil
}

// ReadVector reads a vector written by WriteTo.  The result's storage
// type is the narrowest that holds the recorded kind.
func ReadVector(r io.Reader) (Value, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	words := h.Length*h.Bits/64 + 1
	space, _, err := readUintSlice(r, words)
	if err != nil {
		return nil, fmt.Errorf("reading vector lanes: %w", err)
	}
	if uint64(len(space)) != words {
		return nil, fmt.Errorf("corrupt vector: %d lane words, expected %d", len(space), words)
	}
	p := &packed{forbiddenMask: ^h.Kind().Mask(), bits: uint8(h.Bits), space: space, size: uint(h.Length)}
	if h.Boolean {
		return BoolsFromI1(fromBits[int8](I1, p.lanes())), nil
	}
	return FromBits(h.Kind(), p.lanes())
}

// ReadVectorFromPath reads a single serialized vector from a file
func ReadVectorFromPath(path string) (Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadVector(f)
}

// ReadHeaderFromPath reads only the header of a serialized vector file
func ReadHeaderFromPath(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()
	return ReadHeader(f)
}
