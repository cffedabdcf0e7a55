// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, I32, NewI32(nil).ElementType())
	assert.Equal(t, I8, NewI8(nil).ElementType())
	assert.Equal(t, I1, NewI1(nil).ElementType())
	assert.Equal(t, I64, Vector[int64]{}.ElementType())

	assert.Equal(t, uint64(1), I1.Mask())
	assert.Equal(t, uint64(0xff), I8.Mask())
	assert.Equal(t, ^uint64(0), I64.Mask())
	assert.Equal(t, int64(-128), I8.SignExtend(0x80))
	assert.Equal(t, int64(-1), I1.SignExtend(1))
	assert.Equal(t, int64(-1), I1.MinSigned())
	assert.Equal(t, int64(0), I1.MaxSigned())
	assert.Equal(t, int64(-1<<31), I32.MinSigned())
	assert.Equal(t, "i16", I16.String())

	for _, s := range []string{"i32", "I32", "32", " i32 "} {
		k, err := ParseKind(s)
		assert.NoError(t, err, s)
		assert.Equal(t, I32, k)
	}
	for _, s := range []string{"i7", "f32", "", "i300"} {
		_, err := ParseKind(s)
		assert.Error(t, err, s)
	}
}

func TestNarrowPanicsWhenKindDoesNotFit(t *testing.T) {
	assert.Panics(t, func() { NewNarrow(I16, []int8{1}) })
	assert.Panics(t, func() { NewNarrow(Kind(12), []int32{1}) })
	assert.NotPanics(t, func() { NewNarrow(I8, []int32{1}) })
}

func TestElementIsTotal(t *testing.T) {
	v := NewI32([]int32{10, 20, 30})
	assert.Equal(t, 3, v.Len())
	for i, want := range []int32{10, 20, 30} {
		got, ok := v.Element(i)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	for _, i := range []int{-1, 3, 1 << 30} {
		_, ok := v.Element(i)
		assert.False(t, ok, "index %d", i)
		e, ok := v.GetElement(i)
		assert.False(t, ok, "index %d", i)
		assert.Nil(t, e)
	}
	assert.Panics(t, func() { v.Get(3) })
}

func TestValuesIsACopy(t *testing.T) {
	v := NewI16([]int16{1, 2, 3})
	vals := v.Values()
	vals[0] = 99
	got, _ := v.Element(0)
	assert.Equal(t, int16(1), got)
}

func TestInsert(t *testing.T) {
	v := NewI32([]int32{1, 2, 3, 4})
	for i := 0; i < v.Len(); i++ {
		u, err := v.Insert(42, i)
		require.NoError(t, err)
		for j := 0; j < v.Len(); j++ {
			got, _ := u.Element(j)
			if j == i {
				assert.Equal(t, int32(42), got)
			} else {
				orig, _ := v.Element(j)
				assert.Equal(t, orig, got)
			}
		}
	}
	// the original is untouched
	assert.Equal(t, []int32{1, 2, 3, 4}, v.Values())
}

func TestInsertOutOfRange(t *testing.T) {
	v := NewI8([]int8{1, 2})
	for _, ix := range []int{-1, 2, 100} {
		_, err := v.Insert(5, ix)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		var be *BoundsError
		if assert.ErrorAs(t, err, &be) {
			assert.Equal(t, "insert", be.Op)
			assert.Equal(t, ix, be.Index)
			assert.Equal(t, 2, be.Length)
			assert.Equal(t, v.String(), be.Receiver)
		}
	}
}

func TestInsertMasksToKind(t *testing.T) {
	v := NewNarrow(I8, []int32{0, 0})
	u, err := v.Insert(0x1ff, 1)
	require.NoError(t, err)
	got, _ := u.Element(1)
	assert.Equal(t, int32(0xff), got)
}

func TestString(t *testing.T) {
	assert.Equal(t, "<4 x i32> [1, 2, 3, 4]", NewI32([]int32{1, 2, 3, 4}).String())
	assert.Equal(t, "<2 x i8> [-128, 127]", NewI8([]int8{-128, 127}).String())
	assert.Equal(t, "<2 x i8> [-1, 1]", NewNarrow(I8, []int32{0xff, 1}).String())
	assert.Equal(t, "<3 x i1> [1, 0, 1]", NewI1([]int8{1, 0, 1}).String())
	assert.Equal(t, "<0 x i64> []", NewI64(nil).String())
}

func TestEqualAndHash(t *testing.T) {
	a := NewI32([]int32{1, 2, 3})
	b := NewI32([]int32{1, 2, 3})
	c := NewI32([]int32{1, 2, 4})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(NewI32([]int32{1, 2})))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())

	// same bits, different kind
	i1 := NewI1([]int8{1, 0})
	i8 := NewI8([]int8{1, 0})
	assert.False(t, i1.Equal(i8))
	assert.NotEqual(t, i1.Hash(), i8.Hash())
}

func TestUint64sAndInt64s(t *testing.T) {
	v := NewI8([]int8{-1, 0x7f, -128})
	assert.Equal(t, []uint64{0xff, 0x7f, 0x80}, v.Uint64s())
	assert.Equal(t, []int64{-1, 127, -128}, v.Int64s())
}
