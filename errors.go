// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned by element-wise operations whose
	// operands differ in length.  It indicates a producer bug, not a
	// data condition.
	ErrLengthMismatch = errors.New("vector length mismatch")
	// ErrDivideByZero is the integer division fault
	ErrDivideByZero = errors.New("integer divide by zero")
	// ErrOutOfBounds is returned for any lane index outside [0, length)
	ErrOutOfBounds = errors.New("index out of bounds")
	// ErrUnsupportedMessage is returned by Resolver.Send for messages
	// a vector does not understand, including every kind of write
	ErrUnsupportedMessage = errors.New("unsupported message")
	// ErrKindMismatch is returned by Eval when operands have different
	// element kinds
	ErrKindMismatch = errors.New("vector kind mismatch")
)

type LengthError struct {
	Op          string
	Left, Right int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: operand lengths %d and %d differ", e.Op, e.Left, e.Right)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// ArithmeticError reports the lane at which a division faulted
type ArithmeticError struct {
	Op   string
	Lane int
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s: integer divide by zero in lane %d", e.Op, e.Lane)
}

func (e *ArithmeticError) Unwrap() error { return ErrDivideByZero }

// BoundsError is the one bounds failure shared by foreign reads and
// functional updates.
type BoundsError struct {
	Op       string
	Receiver string
	Index    int
	Length   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: %s does not have index %d (length %d)", e.Op, e.Receiver, e.Index, e.Length)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

type UnsupportedMessageError struct {
	Message  Message
	Receiver string
}

func (e *UnsupportedMessageError) Error() string {
	return fmt.Sprintf("%s does not support message %s", e.Receiver, e.Message)
}

func (e *UnsupportedMessageError) Unwrap() error { return ErrUnsupportedMessage }

// ArgumentError reports a malformed argument to a foreign message
type ArgumentError struct {
	Message Message
	Reason  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Reason)
}
