// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"fmt"
	"strconv"
	"strings"
)

// FromBits builds a vector of kind k from zero extended lane bit
// patterns, choosing the narrowest storage type that holds k.  Bits
// above the kind's width are discarded.
func FromBits(k Kind, lanes []uint64) (Value, error) {
	switch k {
	case I1:
		return fromBits[int8](I1, lanes), nil
	case I8:
		return fromBits[int8](I8, lanes), nil
	case I16:
		return fromBits[int16](I16, lanes), nil
	case I32:
		return fromBits[int32](I32, lanes), nil
	case I64:
		return fromBits[int64](I64, lanes), nil
	}
	return nil, fmt.Errorf("unsupported element kind %s", k)
}

func fromBits[T Lane](k Kind, lanes []uint64) Vector[T] {
	mask := k.Mask()
	out := make([]T, len(lanes))
	for i, x := range lanes {
		out[i] = T(x & mask)
	}
	return NewNarrow(k, out)
}

// Parse reads a vector of kind k from text.  Lanes are separated by
// commas or whitespace and may be wrapped in brackets:
//
//	1, 2, 3, 4
//	[0xff -1 7]
//
// Each lane accepts a signed or unsigned literal in any base
// strconv understands, or true/false.  Literals that do not fit in k
// bits, either signed or unsigned, are rejected.
func Parse(k Kind, text string) (Value, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unsupported element kind %s", k)
	}
	t := strings.TrimSpace(text)
	t = strings.TrimPrefix(t, "[")
	t = strings.TrimSuffix(t, "]")
	fields := strings.FieldsFunc(t, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	lanes := make([]uint64, len(fields))
	for i, f := range fields {
		x, err := parseLane(k, f)
		if err != nil {
			return nil, fmt.Errorf("lane %d: %w", i, err)
		}
		lanes[i] = x
	}
	return FromBits(k, lanes)
}

func parseLane(k Kind, s string) (uint64, error) {
	switch strings.ToLower(s) {
	case "true":
		return 1, nil
	case "false":
		return 0, nil
	}
	if strings.HasPrefix(s, "-") {
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return 0, err
		}
		if n < k.MinSigned() {
			return 0, fmt.Errorf("%s does not fit in %s", s, k)
		}
		return uint64(n) & k.Mask(), nil
	}
	u, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 0, 64)
	if err != nil {
		return 0, err
	}
	if u > k.Mask() {
		return 0, fmt.Errorf("%s does not fit in %s", s, k)
	}
	return u, nil
}
