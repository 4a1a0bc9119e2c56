// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import "slices"

// Value is the closed sum stored for one key: a single scalar or an ordered
// list of scalars of one type, tagged so retrieval can detect mismatches.
type Value struct {
	typ  Type
	list bool

	b bool
	i int
	f float64
	s string

	bl []bool
	il []int
	fl []float64
	sl []string
}

func boolValue(b bool) Value     { return Value{typ: Bool, b: b} }
func intValue(i int) Value       { return Value{typ: Int, i: i} }
func floatValue(f float64) Value { return Value{typ: Float, f: f} }
func strValue(s string) Value    { return Value{typ: Str, s: s} }

// typeName is the human-readable tag used in mismatch diagnostics.
func (v Value) typeName() string {
	if v.list {
		return "list of " + v.typ.String()
	}
	return v.typ.String()
}

// Scalar constrains the typed getters to the four stored scalar types.
type Scalar interface {
	bool | int | float64 | string
}

func scalarType[T Scalar]() Type {
	var z T
	switch any(z).(type) {
	case bool:
		return Bool
	case int:
		return Int
	case float64:
		return Float
	default:
		return Str
	}
}

// Get returns the single scalar stored under key. It fails with
// *UnknownKeyError if the key is absent and with *TypeMismatchError if the
// stored value is a list or has a different type tag than T.
func Get[T Scalar](p *Parser, key string) (T, error) {
	var out T
	v, ok := p.values[key]
	if !ok {
		return out, &UnknownKeyError{Key: key}
	}
	want := scalarType[T]()
	if v.list || v.typ != want {
		return out, &TypeMismatchError{Key: key, Requested: want.String(), Stored: v.typeName()}
	}
	switch dst := any(&out).(type) {
	case *bool:
		*dst = v.b
	case *int:
		*dst = v.i
	case *float64:
		*dst = v.f
	case *string:
		*dst = v.s
	}
	return out, nil
}

// GetList returns the ordered list stored under key. An empty list is a
// valid, non-error result. The returned slice is a copy.
func GetList[T Scalar](p *Parser, key string) ([]T, error) {
	v, ok := p.values[key]
	if !ok {
		return nil, &UnknownKeyError{Key: key}
	}
	want := scalarType[T]()
	if !v.list || v.typ != want {
		return nil, &TypeMismatchError{Key: key, Requested: "list of " + want.String(), Stored: v.typeName()}
	}
	var out []T
	switch dst := any(&out).(type) {
	case *[]bool:
		*dst = append(make([]bool, 0, len(v.bl)), v.bl...)
	case *[]int:
		*dst = append(make([]int, 0, len(v.il)), v.il...)
	case *[]float64:
		*dst = append(make([]float64, 0, len(v.fl)), v.fl...)
	case *[]string:
		*dst = append(make([]string, 0, len(v.sl)), v.sl...)
	}
	return out, nil
}

// GetOr never fails: it returns fallback exactly when the key is absent or
// the stored value does not hold a single scalar of type T.
func GetOr[T Scalar](p *Parser, key string, fallback T) T {
	v, err := Get[T](p, key)
	if err != nil {
		return fallback
	}
	return v
}

// Has reports whether key is present in the value store of the most recent
// parse.
func (p *Parser) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns the sorted keys populated by the most recent parse.
func (p *Parser) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
