// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparePredicates(t *testing.T) {
	// -1 is the largest unsigned value and the smallest signed one here
	a := NewI8([]int8{-1, 1, 5})
	b := NewI8([]int8{1, -1, 5})
	want := map[Predicate][]bool{
		EQ:  {false, false, true},
		NE:  {true, true, false},
		UGT: {true, false, false},
		UGE: {true, false, true},
		ULT: {false, true, false},
		ULE: {false, true, true},
		SGT: {false, true, false},
		SGE: {false, true, true},
		SLT: {true, false, false},
		SLE: {true, false, true},
	}
	for p, w := range want {
		got, err := a.Compare(b, p)
		require.NoError(t, err)
		assert.Equal(t, w, got.Values(), p.String())
	}
}

func TestCompareNarrowSignedness(t *testing.T) {
	// 0xff is -1 as an i8 even though the storage is i32
	a := NewNarrow(I8, []int32{0xff})
	b := NewNarrow(I8, []int32{0x01})
	lt, err := a.Compare(b, SLT)
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, lt.Values())
	ugt, err := a.Compare(b, UGT)
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, ugt.Values())
}

func TestDoCompareCustomPredicate(t *testing.T) {
	a := NewI64([]int64{10, 11, 12, 13})
	b := NewI64([]int64{3, 3, 3, 3})
	even, err := a.DoCompare(b, func(x, y int64) bool { return (x+y)%2 == 1 })
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, false}, even.Values())
	assert.Equal(t, 2, even.Count())
}

func TestParsePredicate(t *testing.T) {
	for p := Predicate(0); p < numPredicates; p++ {
		got, err := ParsePredicate(p.String())
		assert.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePredicate("oeq")
	assert.Error(t, err)
	_, err = NewI8(nil).Compare(NewI8(nil), numPredicates)
	assert.Error(t, err)
}
