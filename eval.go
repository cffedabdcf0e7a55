// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"fmt"
)

// Eval applies op to two vectors whose width is only known at run time,
// as an instruction evaluator does.  Both operands must have the same
// storage type and kind.  Bitwise ops on BoolVectors are supported.
func Eval(op Op, a, b Value) (Value, error) {
	switch x := a.(type) {
	case Vector[int8]:
		return evalAs(op, x, b)
	case Vector[int16]:
		return evalAs(op, x, b)
	case Vector[int32]:
		return evalAs(op, x, b)
	case Vector[int64]:
		return evalAs(op, x, b)
	case BoolVector:
		y, ok := b.(BoolVector)
		if !ok {
			return nil, kindError(op.String(), a, b)
		}
		var r BoolVector
		var err error
		switch op {
		case OpAnd:
			r, err = x.And(y)
		case OpOr:
			r, err = x.Or(y)
		case OpXor:
			r, err = x.Xor(y)
		default:
			// everything else goes through the i1 integer form
			var iv Vector[int8]
			iv, err = x.AsI1().Binary(op, y.AsI1())
			if err == nil {
				r = BoolsFromI1(iv)
			}
		}
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, fmt.Errorf("%s: unsupported operand %T", op, a)
}

func evalAs[T Lane](op Op, x Vector[T], b Value) (Value, error) {
	y, ok := b.(Vector[T])
	if !ok {
		return nil, kindError(op.String(), x, b)
	}
	r, err := x.Binary(op, y)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// CompareValues is the run time dispatched form of Vector.Compare
func CompareValues(p Predicate, a, b Value) (BoolVector, error) {
	switch x := a.(type) {
	case Vector[int8]:
		return compareAs(p, x, b)
	case Vector[int16]:
		return compareAs(p, x, b)
	case Vector[int32]:
		return compareAs(p, x, b)
	case Vector[int64]:
		return compareAs(p, x, b)
	case BoolVector:
		y, ok := b.(BoolVector)
		if !ok {
			return BoolVector{}, kindError("icmp", a, b)
		}
		return x.AsI1().Compare(y.AsI1(), p)
	}
	return BoolVector{}, fmt.Errorf("icmp: unsupported operand %T", a)
}

func compareAs[T Lane](p Predicate, x Vector[T], b Value) (BoolVector, error) {
	y, ok := b.(Vector[T])
	if !ok {
		return BoolVector{}, kindError("icmp", x, b)
	}
	return x.Compare(y, p)
}

// InsertValue replaces lane index of v with the low bits of element
func InsertValue(v Value, element uint64, index int) (Value, error) {
	var r Value
	var err error
	switch x := v.(type) {
	case Vector[int8]:
		r, err = x.Insert(int8(element), index)
	case Vector[int16]:
		r, err = x.Insert(int16(element), index)
	case Vector[int32]:
		r, err = x.Insert(int32(element), index)
	case Vector[int64]:
		r, err = x.Insert(int64(element), index)
	case BoolVector:
		var iv Vector[int8]
		iv, err = x.AsI1().Insert(int8(element&1), index)
		r = BoolsFromI1(iv)
	default:
		return nil, fmt.Errorf("insertelement: unsupported operand %T", v)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func kindError(op string, a, b Value) error {
	return fmt.Errorf("%s: %w: %s (%T) and %s (%T)", op, ErrKindMismatch, a.ElementType(), a, b.ElementType(), b)
}
