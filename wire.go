package vec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// wireValue is the CBOR form of a vector handed across a process
// boundary.  Lanes travel as zero extended bit patterns.
type wireValue struct {
	Bits    uint8    `cbor:"1,keyasint"`
	Lanes   []uint64 `cbor:"2,keyasint"`
	Boolean bool     `cbor:"3,keyasint,omitempty"`
}

// canonical mode keeps encodings deterministic so they can be hashed
// and compared
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("vec: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalValue serializes v to canonical CBOR
func MarshalValue(v Value) ([]byte, error) {
	_, boolean := v.(BoolVector)
	return cborEncMode.Marshal(wireValue{
		Bits:    uint8(v.ElementType()),
		Lanes:   v.Uint64s(),
		Boolean: boolean,
	})
}

// UnmarshalValue deserializes a vector produced by MarshalValue
func UnmarshalValue(data []byte) (Value, error) {
	var w wireValue
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("vec: unmarshal value: %w", err)
	}
	k := Kind(w.Bits)
	if !k.Valid() {
		return nil, fmt.Errorf("vec: unmarshal value: unsupported element width %d", w.Bits)
	}
	if len(w.Lanes) > MaxLanes {
		return nil, fmt.Errorf("vec: unmarshal value: %d lanes exceeds limit of %d", len(w.Lanes), MaxLanes)
	}
	for i, x := range w.Lanes {
		if x&^k.Mask() != 0 {
			return nil, fmt.Errorf("vec: unmarshal value: lane %d value %#x does not fit in %s", i, x, k)
		}
	}
	if w.Boolean {
		if k != I1 {
			return nil, fmt.Errorf("vec: unmarshal value: boolean vector with %d bit lanes", w.Bits)
		}
		return BoolsFromI1(fromBits[int8](I1, w.Lanes)), nil
	}
	return FromBits(k, w.Lanes)
}
