// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"fmt"
	"strings"
)

// Op identifies an element-wise binary vector instruction
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpDivUnsigned
	OpRemUnsigned
	OpAnd
	OpOr
	OpXor
	OpShl
	OpLShr
	OpAShr
	numOps
)

var opNames = [numOps]string{
	OpAdd:         "add",
	OpSub:         "sub",
	OpMul:         "mul",
	OpDiv:         "sdiv",
	OpRem:         "srem",
	OpDivUnsigned: "udiv",
	OpRemUnsigned: "urem",
	OpAnd:         "and",
	OpOr:          "or",
	OpXor:         "xor",
	OpShl:         "shl",
	OpLShr:        "lshr",
	OpAShr:        "ashr",
}

func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}
	return fmt.Sprintf("op(%d)", uint8(op))
}

// ParseOp maps an instruction mnemonic ("add", "udiv", "ashr" ...) to
// its Op
func ParseOp(s string) (Op, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for op, name := range opNames {
		if name == s {
			return Op(op), nil
		}
	}
	return 0, fmt.Errorf("unknown vector instruction %q", s)
}

// laneFn computes one lane.  a and b are zero extended to 64 bits from
// the kind's width; the result is masked by the caller.  ok is false on
// an arithmetic fault.
type laneFn func(k Kind, a, b uint64) (r uint64, ok bool)

var laneFns = [numOps]laneFn{
	OpAdd: func(_ Kind, a, b uint64) (uint64, bool) { return a + b, true },
	OpSub: func(_ Kind, a, b uint64) (uint64, bool) { return a - b, true },
	OpMul: func(_ Kind, a, b uint64) (uint64, bool) { return a * b, true },
	OpDiv: func(k Kind, a, b uint64) (uint64, bool) {
		if b == 0 {
			return 0, false
		}
		// MinInt64 / -1 wraps to MinInt64 in Go, as the instruction requires
		return uint64(k.SignExtend(a) / k.SignExtend(b)), true
	},
	OpRem: func(k Kind, a, b uint64) (uint64, bool) {
		if b == 0 {
			return 0, false
		}
		return uint64(k.SignExtend(a) % k.SignExtend(b)), true
	},
	OpDivUnsigned: func(_ Kind, a, b uint64) (uint64, bool) {
		if b == 0 {
			return 0, false
		}
		return a / b, true
	},
	OpRemUnsigned: func(_ Kind, a, b uint64) (uint64, bool) {
		if b == 0 {
			return 0, false
		}
		return a % b, true
	},
	OpAnd: func(_ Kind, a, b uint64) (uint64, bool) { return a & b, true },
	OpOr:  func(_ Kind, a, b uint64) (uint64, bool) { return a | b, true },
	OpXor: func(_ Kind, a, b uint64) (uint64, bool) { return a ^ b, true },
	// shift amounts are taken modulo the logical width, never the
	// storage width
	OpShl: func(k Kind, a, b uint64) (uint64, bool) {
		return a << (b % uint64(k.Bits())), true
	},
	OpLShr: func(k Kind, a, b uint64) (uint64, bool) {
		return a >> (b % uint64(k.Bits())), true
	},
	OpAShr: func(k Kind, a, b uint64) (uint64, bool) {
		return uint64(k.SignExtend(a) >> (b % uint64(k.Bits()))), true
	},
}

// Binary applies op lane by lane.  Operands must have the same kind and
// length.
func (v Vector[T]) Binary(op Op, rhs Vector[T]) (Vector[T], error) {
	if op >= numOps {
		return Vector[T]{}, fmt.Errorf("unknown vector instruction %s", op)
	}
	return doOperation(op, v, rhs)
}

func doOperation[T Lane](op Op, lhs, rhs Vector[T]) (Vector[T], error) {
	left, right := lhs.lanes, rhs.lanes
	if len(left) != len(right) {
		return Vector[T]{}, &LengthError{Op: op.String(), Left: len(left), Right: len(right)}
	}
	k := lhs.width()
	if k != rhs.width() {
		return Vector[T]{}, fmt.Errorf("%s: %w: %s and %s", op, ErrKindMismatch, k, rhs.width())
	}
	eval := laneFns[op]
	mask := k.Mask()
	result := make([]T, len(left))
	for i := range left {
		r, ok := eval(k, uint64(left[i])&mask, uint64(right[i])&mask)
		if !ok {
			return Vector[T]{}, &ArithmeticError{Op: op.String(), Lane: i}
		}
		result[i] = T(r & mask)
	}
	return Vector[T]{kind: k, lanes: result}, nil
}

// Add returns v + rhs, wrapping modulo 2^bits
func (v Vector[T]) Add(rhs Vector[T]) (Vector[T], error) { return doOperation(OpAdd, v, rhs) }

// Sub returns v - rhs, wrapping modulo 2^bits
func (v Vector[T]) Sub(rhs Vector[T]) (Vector[T], error) { return doOperation(OpSub, v, rhs) }

// Mul returns v * rhs, wrapping modulo 2^bits
func (v Vector[T]) Mul(rhs Vector[T]) (Vector[T], error) { return doOperation(OpMul, v, rhs) }

// Div is signed division truncating toward zero
func (v Vector[T]) Div(rhs Vector[T]) (Vector[T], error) { return doOperation(OpDiv, v, rhs) }

// Rem is the signed remainder; its sign follows the dividend
func (v Vector[T]) Rem(rhs Vector[T]) (Vector[T], error) { return doOperation(OpRem, v, rhs) }

func (v Vector[T]) DivUnsigned(rhs Vector[T]) (Vector[T], error) {
	return doOperation(OpDivUnsigned, v, rhs)
}

func (v Vector[T]) RemUnsigned(rhs Vector[T]) (Vector[T], error) {
	return doOperation(OpRemUnsigned, v, rhs)
}

func (v Vector[T]) And(rhs Vector[T]) (Vector[T], error) { return doOperation(OpAnd, v, rhs) }
func (v Vector[T]) Or(rhs Vector[T]) (Vector[T], error)  { return doOperation(OpOr, v, rhs) }
func (v Vector[T]) Xor(rhs Vector[T]) (Vector[T], error) { return doOperation(OpXor, v, rhs) }

// LeftShift shifts each lane left by the matching lane of rhs, taken
// modulo the vector's bit width
func (v Vector[T]) LeftShift(rhs Vector[T]) (Vector[T], error) {
	return doOperation(OpShl, v, rhs)
}

// LogicalRightShift zero fills from the top of the lane's bit width
func (v Vector[T]) LogicalRightShift(rhs Vector[T]) (Vector[T], error) {
	return doOperation(OpLShr, v, rhs)
}

// ArithmeticRightShift sign extends from the top of the lane's bit width
func (v Vector[T]) ArithmeticRightShift(rhs Vector[T]) (Vector[T], error) {
	return doOperation(OpAShr, v, rhs)
}
