// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"strings"
)

// Type is the scalar type tag of an argument's values.
type Type int

const (
	Bool Type = iota
	Int
	Float
	Str
)

func (t Type) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Str:
		return "str"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Argument declares one argument specification. Aliases must be non-empty
// and dash-consistent: either every alias starts with "-" (an optional
// argument, matched by alias token) or none does (a positional argument,
// matched by stream position).
type Argument struct {
	Aliases  []string
	Help     string
	Type     Type
	Default  string   // raw token form, applied only when the argument is absent
	Required bool
	Key      string   // overrides the derived key when non-empty
	Choices  []string // allowed raw token values; empty means unrestricted
	Metavar  string   // value placeholder in help text
	Nargs    string   // cardinality marker: "", "1", "?", "*", "+", or an integer
}

// specClass classifies a spec once at registration so the scanner never
// re-inspects alias strings.
type specClass int

const (
	optionalSpec specClass = iota
	positionalSpec
)

type spec struct {
	arg   Argument
	key   string
	class specClass
	nargs nargs
}

func (s *spec) positional() bool {
	return s.class == positionalSpec
}

// displayName is the name used in diagnostics and help: the longest alias
// for optionals, the declared name for positionals.
func (s *spec) displayName() string {
	return longestAlias(s.arg.Aliases)
}

// metavar is the value placeholder shown in usage text.
func (s *spec) metavar() string {
	if s.arg.Metavar != "" {
		return s.arg.Metavar
	}
	if len(s.arg.Choices) > 0 {
		return "{" + strings.Join(s.arg.Choices, ",") + "}"
	}
	return strings.ToUpper(s.key)
}

func longestAlias(aliases []string) string {
	longest := aliases[0]
	for _, a := range aliases[1:] {
		if len(a) > len(longest) {
			longest = a
		}
	}
	return longest
}

// deriveKey computes the canonical storage key from the longest alias:
// leading dashes stripped, internal dashes replaced with underscores.
// "-o", "--output-file" derives "output_file".
func deriveKey(aliases []string) string {
	k := strings.TrimLeft(longestAlias(aliases), "-")
	return strings.ReplaceAll(k, "-", "_")
}

// classify validates dash-consistency across the alias list and returns the
// spec class. Mixing dashed and undashed aliases in one spec is an error.
func classify(aliases []string) (specClass, error) {
	dashed := strings.HasPrefix(aliases[0], "-")
	for _, a := range aliases[1:] {
		if strings.HasPrefix(a, "-") != dashed {
			return 0, fmt.Errorf("aliases %v mix dashed and undashed forms", aliases)
		}
	}
	if dashed {
		return optionalSpec, nil
	}
	return positionalSpec, nil
}
