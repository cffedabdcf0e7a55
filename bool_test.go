package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolVector(t *testing.T) {
	v := NewBools([]bool{true, false, true})
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, I1, v.ElementType())
	assert.Equal(t, []uint64{1, 0, 1}, v.Uint64s())
	assert.Equal(t, "<3 x i1> [true, false, true]", v.String())

	b, ok := v.Element(1)
	assert.True(t, ok)
	assert.False(t, b)
	_, ok = v.Element(3)
	assert.False(t, ok)
	_, ok = v.GetElement(-1)
	assert.False(t, ok)
}

func TestBoolVectorLogic(t *testing.T) {
	a := NewBools([]bool{true, true, false, false})
	b := NewBools([]bool{true, false, true, false})

	and, err := a.And(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false}, and.Values())
	or, err := a.Or(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, false}, or.Values())
	xor, err := a.Xor(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, false}, xor.Values())
	assert.Equal(t, []bool{false, false, true, true}, a.Not().Values())

	// operands are untouched
	assert.Equal(t, []bool{true, true, false, false}, a.Values())

	_, err = a.And(NewBools([]bool{true}))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestBoolVectorI1RoundTrip(t *testing.T) {
	v := NewBools([]bool{false, true, true})
	i1 := v.AsI1()
	assert.Equal(t, I1, i1.ElementType())
	assert.Equal(t, []int8{0, 1, 1}, i1.Values())
	assert.True(t, BoolsFromI1(i1).Equal(v))
	assert.False(t, v.Equal(v.Not()))
}

func TestZeroBoolVector(t *testing.T) {
	var v BoolVector
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Count())
	assert.Equal(t, "<0 x i1> []", v.String())
	r, err := v.Or(BoolVector{})
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
}
