package vec

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireValue(t *testing.T) {
	for _, v := range testValues() {
		data, err := MarshalValue(v)
		require.NoError(t, err)
		got, err := UnmarshalValue(data)
		require.NoError(t, err)
		assert.Equal(t, v.String(), got.String())
		assert.Equal(t, v.Uint64s(), got.Uint64s())
	}
}

func TestWireValueIsCanonical(t *testing.T) {
	a, err := MarshalValue(NewI32([]int32{1, 2, 3}))
	require.NoError(t, err)
	b, err := MarshalValue(NewNarrow(I32, []int64{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestUnmarshalValueRejects(t *testing.T) {
	enc := func(w wireValue) []byte {
		data, err := cbor.Marshal(w)
		require.NoError(t, err)
		return data
	}
	for name, data := range map[string][]byte{
		"garbage":     {0xff, 0x00},
		"width":       enc(wireValue{Bits: 3, Lanes: []uint64{1}}),
		"lane range":  enc(wireValue{Bits: 8, Lanes: []uint64{0x100}}),
		"wide bool":   enc(wireValue{Bits: 8, Lanes: []uint64{1}, Boolean: true}),
		"empty input": nil,
	} {
		_, err := UnmarshalValue(data)
		assert.Error(t, err, name)
	}
}
