// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"strings"
)

// InvalidNargsError is returned by AddArgument when the nargs marker string
// cannot be parsed, or when a cardinality is requested that the spec cannot
// support (multi-valued positionals, multi-valued bool flags).
type InvalidNargsError struct {
	Spec   string // the offending marker, e.g. "invalid"
	Reason string // empty for a plain unparseable marker
}

func (e *InvalidNargsError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid nargs %q: %s", e.Spec, e.Reason)
	}
	return fmt.Sprintf("invalid nargs %q", e.Spec)
}

// DuplicateKeyError is returned by AddArgument when a spec's derived key or
// one of its aliases collides with an already-registered spec (including the
// reserved "help" spec).
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate argument key: %s", e.Key)
}

// UnknownArgumentError reports an option-looking token that matches no
// declared alias, or a positional token with no remaining positional spec
// to receive it.
type UnknownArgumentError struct {
	Token string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument: %s", e.Token)
}

// MissingValueError reports an optional argument whose nargs cardinality
// could not be satisfied by the following tokens.
type MissingValueError struct {
	Name     string // display name of the argument, e.g. "--nums"
	Expected string // "1", "at least 1", "2"
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("argument %s: expected %s value(s)", e.Name, e.Expected)
}

// MissingRequiredError reports a required spec that was never filled.
type MissingRequiredError struct {
	Name string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Name)
}

// InvalidChoiceError reports a captured token outside the spec's choice set.
type InvalidChoiceError struct {
	Name    string
	Value   string
	Choices []string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("argument %s: invalid choice %q (choose from %s)",
		e.Name, e.Value, strings.Join(e.Choices, ", "))
}

// ConversionError reports a captured token that could not be coerced to the
// spec's declared type.
type ConversionError struct {
	Name  string
	Value string
	Type  Type
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("argument %s: invalid %s value %q", e.Name, e.Type, e.Value)
}

// UnknownKeyError is returned by the typed getters when the key is not
// present in the value store.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key: %s", e.Key)
}

// TypeMismatchError is returned by the typed getters when the stored value's
// type differs from the requested one. Requested and Stored are type names
// such as "int" or "list of str".
type TypeMismatchError struct {
	Key       string
	Requested string
	Stored    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("key %q holds %s, not %s", e.Key, e.Stored, e.Requested)
}
