// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"fmt"
	"strings"
)

// The foreign access protocol presents any Value to code outside the
// interpreter's evaluator (debuggers, embedding languages) as an opaque
// sized and indexable object.  Only reads are possible.

// HasSize is true for every vector
func HasSize(_ Value) bool {
	return true
}

// GetSize reports the number of lanes of receiver
func GetSize(receiver Value) int {
	return receiver.Len()
}

// Read returns lane index of receiver, or a *BoundsError if index is
// outside [0, GetSize(receiver))
func Read(receiver Value, index int) (any, error) {
	if index >= 0 && index < receiver.Len() {
		if e, ok := receiver.GetElement(index); ok {
			return e, nil
		}
	}
	return nil, &BoundsError{Op: "read", Receiver: receiver.String(), Index: index, Length: receiver.Len()}
}

// Message names a foreign access request
type Message uint8

const (
	MessageHasSize Message = iota
	MessageGetSize
	MessageRead
	MessageWrite
	MessageRemove
	MessageKeys
	MessageExecute
	numMessages
)

var messageNames = [numMessages]string{
	MessageHasSize: "HAS_SIZE",
	MessageGetSize: "GET_SIZE",
	MessageRead:    "READ",
	MessageWrite:   "WRITE",
	MessageRemove:  "REMOVE",
	MessageKeys:    "KEYS",
	MessageExecute: "EXECUTE",
}

func (m Message) String() string {
	if m < numMessages {
		return messageNames[m]
	}
	return fmt.Sprintf("MESSAGE(%d)", uint8(m))
}

// ParseMessage accepts a message name in any case, with '-' or '_'
func ParseMessage(s string) (Message, error) {
	t := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
	for m, name := range messageNames {
		if name == t {
			return Message(m), nil
		}
	}
	return 0, fmt.Errorf("unknown foreign message %q", s)
}

// Resolver dispatches foreign messages to vectors.  It holds no state
// and may be shared freely.
type Resolver struct{}

// Send resolves msg against receiver.  READ takes a single integer
// index argument; HAS_SIZE and GET_SIZE take none.  Every other message
// fails with an *UnsupportedMessageError.
func (Resolver) Send(msg Message, receiver Value, args ...any) (any, error) {
	switch msg {
	case MessageHasSize:
		if len(args) != 0 {
			return nil, &ArgumentError{Message: msg, Reason: fmt.Sprintf("expected no arguments, got %d", len(args))}
		}
		return HasSize(receiver), nil
	case MessageGetSize:
		if len(args) != 0 {
			return nil, &ArgumentError{Message: msg, Reason: fmt.Sprintf("expected no arguments, got %d", len(args))}
		}
		return GetSize(receiver), nil
	case MessageRead:
		if len(args) != 1 {
			return nil, &ArgumentError{Message: msg, Reason: fmt.Sprintf("expected 1 argument, got %d", len(args))}
		}
		index, ok := toIndex(args[0])
		if !ok {
			return nil, &ArgumentError{Message: msg, Reason: fmt.Sprintf("index %v (%T) is not an integer", args[0], args[0])}
		}
		return Read(receiver, index)
	}
	return nil, &UnsupportedMessageError{Message: msg, Receiver: receiver.String()}
}

// toIndex narrows any integer argument to an int.  Values that do not
// fit become -1 so they fail the bounds check rather than wrapping
// into range.
func toIndex(arg any) (int, bool) {
	const maxInt = int64(^uint(0) >> 1)
	switch i := arg.(type) {
	case int:
		return i, true
	case int8:
		return int(i), true
	case int16:
		return int(i), true
	case int32:
		return int(i), true
	case int64:
		if i > maxInt || i < -maxInt-1 {
			return -1, true
		}
		return int(i), true
	case uint8:
		return int(i), true
	case uint16:
		return int(i), true
	case uint32:
		if uint64(i) > uint64(maxInt) {
			return -1, true
		}
		return int(i), true
	case uint:
		if uint64(i) > uint64(maxInt) {
			return -1, true
		}
		return int(i), true
	case uint64:
		if i > uint64(maxInt) {
			return -1, true
		}
		return int(i), true
	}
	return 0, false
}

// Dump renders receiver using nothing but the foreign access protocol,
// the way a debugger inspecting a live value sees it
func Dump(receiver Value) (string, error) {
	var r Resolver
	has, err := r.Send(MessageHasSize, receiver)
	if err != nil {
		return "", err
	}
	if !has.(bool) {
		return receiver.String(), nil
	}
	size, err := r.Send(MessageGetSize, receiver)
	if err != nil {
		return "", err
	}
	n := size.(int)
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < n; i++ {
		e, err := r.Send(MessageRead, receiver, i)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, e)
	}
	b.WriteByte(']')
	return b.String(), nil
}
