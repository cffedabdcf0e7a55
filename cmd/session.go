// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"fmt"
	"strconv"
	"strings"

	vec "github.com/facebookincubator/go-vecval"
	"github.com/tliron/commonlog"
)

// session evaluates vector instructions written as text.  The CLI
// commands and the REPL share it.
type session struct {
	kind  vec.Kind
	radix int
	log   commonlog.Logger
}

func newSession(cfg config) (*session, error) {
	k, err := vec.ParseKind(cfg.Kind)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &session{kind: k, radix: cfg.Radix, log: commonlog.GetLogger("vecval")}, nil
}

func (s *session) parse(text string) (vec.Value, error) {
	v, err := vec.Parse(s.kind, text)
	if err != nil {
		return nil, fmt.Errorf("bad %s vector %q: %w", s.kind, text, err)
	}
	return v, nil
}

func (s *session) parseIndex(text string) (int, error) {
	i, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", text)
	}
	return i, nil
}

// format prints v in bitcode notation, in hex when the radix is 16
func (s *session) format(v vec.Value) string {
	if s.radix != 16 {
		return v.String()
	}
	lanes := v.Uint64s()
	parts := make([]string, len(lanes))
	for i, x := range lanes {
		parts[i] = fmt.Sprintf("%#x", x)
	}
	return fmt.Sprintf("<%d x %s> [%s]", len(lanes), v.ElementType(), strings.Join(parts, ", "))
}

func (s *session) eval(mnemonic, a, b string) (string, error) {
	op, err := vec.ParseOp(mnemonic)
	if err != nil {
		return "", err
	}
	x, err := s.parse(a)
	if err != nil {
		return "", err
	}
	y, err := s.parse(b)
	if err != nil {
		return "", err
	}
	s.log.Debugf("%s %s, %s", op, x, y)
	r, err := vec.Eval(op, x, y)
	if err != nil {
		return "", err
	}
	return s.format(r), nil
}

func (s *session) compare(pred, a, b string) (string, error) {
	p, err := vec.ParsePredicate(pred)
	if err != nil {
		return "", err
	}
	x, err := s.parse(a)
	if err != nil {
		return "", err
	}
	y, err := s.parse(b)
	if err != nil {
		return "", err
	}
	s.log.Debugf("icmp %s %s, %s", p, x, y)
	r, err := vec.CompareValues(p, x, y)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func (s *session) insert(v, element, index string) (string, error) {
	x, err := s.parse(v)
	if err != nil {
		return "", err
	}
	e, err := s.parse(element)
	if err != nil {
		return "", err
	}
	if e.Len() != 1 {
		return "", fmt.Errorf("insertelement takes a single element, got %d", e.Len())
	}
	i, err := s.parseIndex(index)
	if err != nil {
		return "", err
	}
	r, err := vec.InsertValue(x, e.Uint64s()[0], i)
	if err != nil {
		return "", err
	}
	return s.format(r), nil
}

// read and size go through the foreign access protocol, as an external
// caller would
func (s *session) read(v, index string) (string, error) {
	x, err := s.parse(v)
	if err != nil {
		return "", err
	}
	i, err := s.parseIndex(index)
	if err != nil {
		return "", err
	}
	var r vec.Resolver
	e, err := r.Send(vec.MessageRead, x, i)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(e), nil
}

func (s *session) size(v string) (string, error) {
	x, err := s.parse(v)
	if err != nil {
		return "", err
	}
	var r vec.Resolver
	n, err := r.Send(vec.MessageGetSize, x)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(n), nil
}

func (s *session) dump(v string) (string, error) {
	x, err := s.parse(v)
	if err != nil {
		return "", err
	}
	return vec.Dump(x)
}

const replHelp = `  <op> A B             add sub mul sdiv srem udiv urem and or xor shl lshr ashr
  icmp <pred> A B      eq ne ugt uge ult ule sgt sge slt sle
  insert V E I         replace lane I of V with E
  read V I             foreign read of lane I
  size V               foreign size
  dump V               render V through the foreign protocol
  :kind K              switch element kind (i1 i8 i16 i32 i64)
  :radix 10|16         output radix
  :quit
vectors are written [1 2 3] or 1,2,3`

// exec runs one REPL line.  quit is true once the user asks to leave.
func (s *session) exec(line string) (out string, quit bool, err error) {
	fields, err := splitLine(line)
	if err != nil {
		return "", false, err
	}
	if len(fields) == 0 {
		return "", false, nil
	}
	want := func(n int) error {
		if len(fields)-1 != n {
			return fmt.Errorf("%s takes %d arguments, got %d", fields[0], n, len(fields)-1)
		}
		return nil
	}
	switch cmd := strings.ToLower(fields[0]); cmd {
	case ":quit", ":q", ":exit":
		return "", true, nil
	case ":help", "help", "?":
		return replHelp, false, nil
	case ":kind":
		if err := want(1); err != nil {
			return "", false, err
		}
		k, err := vec.ParseKind(fields[1])
		if err != nil {
			return "", false, err
		}
		s.kind = k
		return "kind " + k.String(), false, nil
	case ":radix":
		if err := want(1); err != nil {
			return "", false, err
		}
		switch fields[1] {
		case "10":
			s.radix = 10
		case "16":
			s.radix = 16
		default:
			return "", false, fmt.Errorf("radix must be 10 or 16")
		}
		return "radix " + fields[1], false, nil
	case "icmp", "cmp":
		if err := want(3); err != nil {
			return "", false, err
		}
		out, err = s.compare(fields[1], fields[2], fields[3])
	case "insert", "insertelement":
		if err := want(3); err != nil {
			return "", false, err
		}
		out, err = s.insert(fields[1], fields[2], fields[3])
	case "read", "extractelement":
		if err := want(2); err != nil {
			return "", false, err
		}
		out, err = s.read(fields[1], fields[2])
	case "size":
		if err := want(1); err != nil {
			return "", false, err
		}
		out, err = s.size(fields[1])
	case "dump":
		if err := want(1); err != nil {
			return "", false, err
		}
		out, err = s.dump(fields[1])
	default:
		if err := want(2); err != nil {
			return "", false, err
		}
		out, err = s.eval(cmd, fields[1], fields[2])
	}
	return out, false, err
}

// splitLine splits on whitespace except inside brackets, so
// "add [1 2] [3 4]" is three fields
func splitLine(line string) ([]string, error) {
	var fields []string
	var cur strings.Builder
	depth := 0
	flush := func() {
		if cur.Len() > 0 {
			fields = append(fields, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '[':
			depth++
			cur.WriteRune(r)
		case r == ']':
			if depth == 0 {
				return nil, fmt.Errorf("unbalanced ']'")
			}
			depth--
			cur.WriteRune(r)
		case (r == ' ' || r == '\t') && depth == 0:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced '['")
	}
	flush()
	return fields, nil
}
