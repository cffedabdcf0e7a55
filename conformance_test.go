// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const conformancePath = "testdata/conformance"

// conformanceSuite is one YAML file of instruction test cases
type conformanceSuite struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Kind        string            `yaml:"kind"`
	Tests       []conformanceCase `yaml:"tests"`
}

// conformanceCase runs exactly one of Op, Cmp, Read or Insert
type conformanceCase struct {
	Name   string      `yaml:"name"`
	Kind   string      `yaml:"kind,omitempty"` // overrides the suite kind
	Skip   string      `yaml:"skip,omitempty"`
	Op     string      `yaml:"op,omitempty"`
	Cmp    string      `yaml:"cmp,omitempty"`
	Read   *int        `yaml:"read,omitempty"`
	Insert *insertCase `yaml:"insert,omitempty"`
	A      string      `yaml:"a"`
	B      string      `yaml:"b,omitempty"`
	BKind  string      `yaml:"b_kind,omitempty"`
	Expect expectation `yaml:"expect"`
}

type insertCase struct {
	Element uint64 `yaml:"element"`
	Index   int    `yaml:"index"`
}

type expectation struct {
	Value *string `yaml:"value,omitempty"`
	Error string  `yaml:"error,omitempty"` // length_mismatch, divide_by_zero ...
}

var conformanceErrors = map[string]error{
	"length_mismatch": ErrLengthMismatch,
	"divide_by_zero":  ErrDivideByZero,
	"out_of_bounds":   ErrOutOfBounds,
	"kind_mismatch":   ErrKindMismatch,
}

func loadConformanceSuites(t *testing.T) map[string]conformanceSuite {
	paths, err := filepath.Glob(filepath.Join(conformancePath, "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no conformance suites under %s", conformancePath)
	suites := map[string]conformanceSuite{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var suite conformanceSuite
		require.NoError(t, yaml.Unmarshal(data, &suite), path)
		suites[filepath.Base(path)] = suite
	}
	return suites
}

func (tc conformanceCase) run(suiteKind Kind) (got string, err error) {
	k := suiteKind
	if tc.Kind != "" {
		if k, err = ParseKind(tc.Kind); err != nil {
			return "", err
		}
	}
	a, err := Parse(k, tc.A)
	if err != nil {
		return "", fmt.Errorf("operand a: %v", err)
	}
	operandB := func() (Value, error) {
		bk := k
		if tc.BKind != "" {
			if bk, err = ParseKind(tc.BKind); err != nil {
				return nil, err
			}
		}
		return Parse(bk, tc.B)
	}

	switch {
	case tc.Op != "":
		op, err := ParseOp(tc.Op)
		if err != nil {
			return "", err
		}
		b, err := operandB()
		if err != nil {
			return "", fmt.Errorf("operand b: %v", err)
		}
		r, err := Eval(op, a, b)
		if err != nil {
			return "", err
		}
		return formatLanes(r.ElementType(), r.Uint64s()), nil
	case tc.Cmp != "":
		p, err := ParsePredicate(tc.Cmp)
		if err != nil {
			return "", err
		}
		b, err := operandB()
		if err != nil {
			return "", fmt.Errorf("operand b: %v", err)
		}
		r, err := CompareValues(p, a, b)
		if err != nil {
			return "", err
		}
		return formatLanes(I1, r.Uint64s()), nil
	case tc.Read != nil:
		e, err := Read(a, *tc.Read)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(e), nil
	case tc.Insert != nil:
		r, err := InsertValue(a, tc.Insert.Element, tc.Insert.Index)
		if err != nil {
			return "", err
		}
		return formatLanes(r.ElementType(), r.Uint64s()), nil
	}
	return "", fmt.Errorf("test case %q has no operation", tc.Name)
}

func TestConformance(t *testing.T) {
	for file, suite := range loadConformanceSuites(t) {
		suiteKind, err := ParseKind(suite.Kind)
		require.NoError(t, err, file)
		for _, tc := range suite.Tests {
			tc := tc
			t.Run(file+"/"+tc.Name, func(t *testing.T) {
				if tc.Skip != "" {
					t.Skip(tc.Skip)
				}
				got, err := tc.run(suiteKind)
				if tc.Expect.Error != "" {
					want, known := conformanceErrors[tc.Expect.Error]
					require.True(t, known, "unknown expected error %q", tc.Expect.Error)
					assert.True(t, errors.Is(err, want), "expected %s, got %v", tc.Expect.Error, err)
					return
				}
				require.NoError(t, err)
				require.NotNil(t, tc.Expect.Value, "test case has no expectation")
				want := *tc.Expect.Value
				if tc.Read == nil {
					// normalise the expectation through the same printer
					k := suiteKind
					if tc.Cmp != "" {
						k = I1
					} else if tc.Kind != "" {
						k, _ = ParseKind(tc.Kind)
					}
					v, err := Parse(k, want)
					require.NoError(t, err, "expected value %q", want)
					want = formatLanes(k, v.Uint64s())
				}
				assert.Equal(t, want, got)
			})
		}
	}
}
