// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind describes the element type of a vector: the number of
// semantically significant bits in each lane
type Kind uint8

const (
	I1  Kind = 1
	I8  Kind = 8
	I16 Kind = 16
	I32 Kind = 32
	I64 Kind = 64
)

// Kinds lists every supported element kind, narrowest first
var Kinds = []Kind{I1, I8, I16, I32, I64}

// Bits reports the logical width of a lane
func (k Kind) Bits() uint {
	return uint(k)
}

// Valid reports whether k is one of the supported element kinds
func (k Kind) Valid() bool {
	switch k {
	case I1, I8, I16, I32, I64:
		return true
	}
	return false
}

// Mask has the low k.Bits() bits set
func (k Kind) Mask() uint64 {
	if k >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << k) - 1
}

// SignExtend interprets the low k.Bits() of x as a two's complement
// number
func (k Kind) SignExtend(x uint64) int64 {
	s := 64 - uint(k)
	return int64(x<<s) >> s
}

// MinSigned and MaxSigned bound the signed interpretation of a lane.
func (k Kind) MinSigned() int64 {
	return k.SignExtend(uint64(1) << (k - 1))
}

func (k Kind) MaxSigned() int64 {
	return int64(k.Mask() >> 1)
}

func (k Kind) String() string {
	return fmt.Sprintf("i%d", uint8(k))
}

// ParseKind accepts "i32", "I32" or "32"
func ParseKind(s string) (Kind, error) {
	t := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "i")
	n, err := strconv.ParseUint(t, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("unknown element kind %q", s)
	}
	k := Kind(n)
	if !k.Valid() {
		return 0, fmt.Errorf("unsupported element kind %q", s)
	}
	return k, nil
}
