// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Predicate is an integer comparison condition
type Predicate uint8

const (
	EQ Predicate = iota
	NE
	UGT
	UGE
	ULT
	ULE
	SGT
	SGE
	SLT
	SLE
	numPredicates
)

var predicateNames = [numPredicates]string{
	EQ: "eq", NE: "ne",
	UGT: "ugt", UGE: "uge", ULT: "ult", ULE: "ule",
	SGT: "sgt", SGE: "sge", SLT: "slt", SLE: "sle",
}

func (p Predicate) String() string {
	if p < numPredicates {
		return predicateNames[p]
	}
	return fmt.Sprintf("predicate(%d)", uint8(p))
}

// ParsePredicate maps "eq", "ult", "sgt" ... to a Predicate
func ParsePredicate(s string) (Predicate, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range predicateNames {
		if name == s {
			return Predicate(p), nil
		}
	}
	return 0, fmt.Errorf("unknown comparison predicate %q", s)
}

// holds evaluates p on two lanes zero extended from k
func (p Predicate) holds(k Kind, a, b uint64) bool {
	switch p {
	case EQ:
		return a == b
	case NE:
		return a != b
	case UGT:
		return a > b
	case UGE:
		return a >= b
	case ULT:
		return a < b
	case ULE:
		return a <= b
	case SGT:
		return k.SignExtend(a) > k.SignExtend(b)
	case SGE:
		return k.SignExtend(a) >= k.SignExtend(b)
	case SLT:
		return k.SignExtend(a) < k.SignExtend(b)
	case SLE:
		return k.SignExtend(a) <= k.SignExtend(b)
	}
	panic(fmt.Sprintf("invalid predicate %d", uint8(p)))
}

// DoCompare applies comparison to each pair of lanes.  The lanes are
// passed as stored: for kinds narrower than T they are zero extended.
func (v Vector[T]) DoCompare(rhs Vector[T], comparison func(a, b T) bool) (BoolVector, error) {
	if len(v.lanes) != len(rhs.lanes) {
		return BoolVector{}, &LengthError{Op: "icmp", Left: len(v.lanes), Right: len(rhs.lanes)}
	}
	bits := bitset.New(uint(len(v.lanes)))
	for i := range v.lanes {
		if comparison(v.lanes[i], rhs.lanes[i]) {
			bits.Set(uint(i))
		}
	}
	return BoolVector{length: len(v.lanes), bits: bits}, nil
}

// Compare evaluates p lane by lane with the signedness p implies
func (v Vector[T]) Compare(rhs Vector[T], p Predicate) (BoolVector, error) {
	if p >= numPredicates {
		return BoolVector{}, fmt.Errorf("invalid comparison predicate %s", p)
	}
	k := v.width()
	if k != rhs.width() {
		return BoolVector{}, fmt.Errorf("icmp %s: %w: %s and %s", p, ErrKindMismatch, k, rhs.width())
	}
	mask := k.Mask()
	return v.DoCompare(rhs, func(a, b T) bool {
		return p.holds(k, uint64(a)&mask, uint64(b)&mask)
	})
}
