// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argparse provides a declarative command-line argument parser with
// typed retrieval.
//
// Callers register argument specifications on a Parser, feed it a token
// stream, and read strongly-typed results back out. The library follows
// these principles:
//   - Declarative specs: flags and positionals are described by a single
//     Argument struct, not by struct tags or global state
//   - Type-safe retrieval using Go generics
//   - Two error channels: user input errors are absorbed by ParseArgs and
//     reduced to a return code plus a printed diagnostic, while programmer
//     errors (bad registration, wrong-typed retrieval) are returned as
//     error values
//   - Predictable scanning: tokens are matched left to right, and
//     negative numbers are never mistaken for flags
//
// # Basic Usage
//
//	p := argparse.New("example")
//	p.AddArgument(argparse.Argument{
//	    Aliases:  []string{"input"},
//	    Help:     "Input file",
//	    Type:     argparse.Str,
//	    Required: true,
//	})
//	p.AddArgument(argparse.Argument{
//	    Aliases: []string{"-v", "--verbose"},
//	    Help:    "Enable verbose output",
//	    Type:    argparse.Bool,
//	})
//	p.AddArgument(argparse.Argument{
//	    Aliases: []string{"--count"},
//	    Help:    "Number of items to process",
//	    Type:    argparse.Int,
//	    Default: "10",
//	})
//
//	if code := p.Parse(); code != argparse.Success {
//	    os.Exit(1)
//	}
//	input, _ := argparse.Get[string](p, "input")
//	verbose, _ := argparse.Get[bool](p, "verbose")
//	count, _ := argparse.Get[int](p, "count")
//
// # Keys
//
// Every spec is stored under a canonical key derived from its longest
// alias: leading dashes are stripped and internal dashes become
// underscores, so "-o", "--output-file" is retrieved as "output_file".
// An explicit Key on the Argument overrides the derivation.
//
// # Cardinality
//
// The Nargs field controls how many value tokens an optional argument
// consumes:
//   - "" or "1": exactly one value (the default)
//   - "?": zero or one value
//   - "*": zero or more values
//   - "+": one or more values
//   - any non-negative integer string: exactly that many values
//
// Specs with a multi-valued Nargs are retrieved with GetList. Tokens that
// look like negative numbers (-5, -3.14) are always captured as values
// during consumption, so "--values -1.5 2.0 -3.5" works as expected.
//
// Bool flags are special-cased: their presence alone sets true and they
// never consume a following token.
//
// # Help
//
// A "-h"/"--help" flag is registered automatically. When it appears
// anywhere in the token stream, ParseArgs prints the usage text, suppresses
// all other validation, and returns HelpShown.
package argparse
