// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"
)

const bytesPerWord = 8

var isLittleEndian bool

func init() {
	buf := []byte{0x1, 0x0}
	val := (*uint16)(unsafe.Pointer(unsafe.SliceData(buf)))
	isLittleEndian = *val == uint16(1)
}

func unsafeUint64SliceToBytes(space []uint64) []byte {
	data := (*byte)(unsafe.Pointer(unsafe.SliceData(space)))
	return unsafe.Slice(data, len(space)*bytesPerWord)
}

func writeUintSlice(w io.Writer, v []uint64) (n int64, err error) {
	if err = binary.Write(w, binary.LittleEndian, uint64(len(v))); err != nil {
		return
	}
	n += 8
	if isLittleEndian {
		var np int
		np, err = w.Write(unsafeUint64SliceToBytes(v))
		n += int64(np)
	} else {
		err = binary.Write(w, binary.LittleEndian, v)
		if err == nil {
			n += int64(len(v)) * bytesPerWord
		}
	}
	return
}

// readUintSlice reads a slice written by writeUintSlice, refusing to
// allocate more than maxWords words
func readUintSlice(r io.Reader, maxWords uint64) (v []uint64, n int64, err error) {
	var length uint64
	if err = binary.Read(r, binary.LittleEndian, &length); err != nil {
		return
	}
	n += 8
	if length > maxWords {
		return nil, n, fmt.Errorf("corrupt lane data: %d words, expected at most %d", length, maxWords)
	}
	v = make([]uint64, length)
	if isLittleEndian {
		var np int
		np, err = io.ReadFull(r, unsafeUint64SliceToBytes(v))
		n += int64(np)
	} else {
		err = binary.Read(r, binary.LittleEndian, v)
		if err == nil {
			n += int64(length) * bytesPerWord
		}
	}
	return
}
