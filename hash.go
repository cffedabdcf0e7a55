// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"encoding/binary"

	murmur "github.com/aviddiviner/go-murmur"
)

const hashSeed = uint64(0x5bd1e995)

// Hash returns a 64 bit murmur hash of the vector's kind and lanes.
// Equal vectors hash equally.
func (v Vector[T]) Hash() uint64 {
	return hashLanes(v.width(), v.Uint64s())
}

func hashLanes(k Kind, lanes []uint64) uint64 {
	buf := make([]byte, 1+len(lanes)*bytesPerWord)
	buf[0] = byte(k)
	for i, x := range lanes {
		binary.LittleEndian.PutUint64(buf[1+i*bytesPerWord:], x)
	}
	return murmur.MurmurHash64A(buf, hashSeed)
}

// HashValue hashes any vector value.  Boolean vectors hash like the
// equivalent i1 vector.
func HashValue(v Value) uint64 {
	return hashLanes(v.ElementType(), v.Uint64s())
}
