// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"slices"
	"strconv"
)

// buildValues turns one scan's captured tokens into the typed value store.
// Specs are processed in declaration order; the first failing check is
// reported and processing stops. The reserved "help" key is always present.
func (p *Parser) buildValues(m *matchSet) (map[string]Value, error) {
	values := map[string]Value{helpKey: boolValue(false)}

	for _, sp := range p.specs {
		if sp.key == helpKey {
			continue
		}
		switch {
		case m.present[sp.key]:
			raw := m.tokens[sp.key]
			if err := checkChoices(sp, raw); err != nil {
				return nil, err
			}
			v, err := coerceSpec(sp, raw)
			if err != nil {
				return nil, err
			}
			values[sp.key] = v

		case sp.arg.Default != "":
			// Defaults are coerced through the same path but bypass choice
			// validation: choices gate matched tokens only.
			v, err := coerceSpec(sp, []string{sp.arg.Default})
			if err != nil {
				return nil, err
			}
			values[sp.key] = v

		case sp.arg.Required:
			return nil, &MissingRequiredError{Name: sp.displayName()}

		case sp.arg.Type == Bool && !sp.positional():
			// Declared flags are always queryable: absent means false.
			values[sp.key] = boolValue(false)
		}
	}

	return values, nil
}

// checkChoices validates every captured token against the spec's choice
// set, on the raw string form, before any coercion.
func checkChoices(sp *spec, raw []string) error {
	if len(sp.arg.Choices) == 0 {
		return nil
	}
	for _, tok := range raw {
		if !slices.Contains(sp.arg.Choices, tok) {
			return &InvalidChoiceError{Name: sp.displayName(), Value: tok, Choices: sp.arg.Choices}
		}
	}
	return nil
}

// coerceSpec converts captured raw tokens into the spec's Value shape:
// a list for multi-valued nargs, a single scalar otherwise. A matched bool
// flag carries no tokens; its presence alone means true.
func coerceSpec(sp *spec, raw []string) (Value, error) {
	if sp.nargs.multi() {
		return coerceList(sp, raw)
	}
	if sp.arg.Type == Bool && !sp.positional() && len(raw) == 0 {
		return boolValue(true), nil
	}
	return coerceScalar(sp, raw[0])
}

func coerceScalar(sp *spec, tok string) (Value, error) {
	switch sp.arg.Type {
	case Bool:
		b, err := strconv.ParseBool(tok)
		if err != nil {
			return Value{}, &ConversionError{Name: sp.displayName(), Value: tok, Type: Bool}
		}
		return boolValue(b), nil
	case Int:
		n, err := strconv.Atoi(tok)
		if err != nil {
			return Value{}, &ConversionError{Name: sp.displayName(), Value: tok, Type: Int}
		}
		return intValue(n), nil
	case Float:
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Value{}, &ConversionError{Name: sp.displayName(), Value: tok, Type: Float}
		}
		return floatValue(f), nil
	default:
		return strValue(tok), nil
	}
}

func coerceList(sp *spec, raw []string) (Value, error) {
	v := Value{typ: sp.arg.Type, list: true}
	switch sp.arg.Type {
	case Int:
		v.il = make([]int, 0, len(raw))
		for _, tok := range raw {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return Value{}, &ConversionError{Name: sp.displayName(), Value: tok, Type: Int}
			}
			v.il = append(v.il, n)
		}
	case Float:
		v.fl = make([]float64, 0, len(raw))
		for _, tok := range raw {
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return Value{}, &ConversionError{Name: sp.displayName(), Value: tok, Type: Float}
			}
			v.fl = append(v.fl, f)
		}
	default: // Str; bool lists are rejected at registration
		v.sl = append(make([]string, 0, len(raw)), raw...)
	}
	return v, nil
}
