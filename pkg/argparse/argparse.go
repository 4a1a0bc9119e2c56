// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"io"
	"os"
)

// Code is the result of a parse invocation.
type Code int

const (
	Success    Code = 0  // all tokens matched and validated
	HelpShown  Code = 1  // -h/--help was present; usage printed
	ParseError Code = -1 // user input error; diagnostic printed
)

const helpKey = "help"

// Parser holds the argument registry and, after a parse, the typed value
// store. A Parser is mutated only during registration and by ParseArgs; it
// is not safe for concurrent use. Callers needing concurrent parsing should
// use independent Parser instances.
type Parser struct {
	prog        string
	description string
	out         io.Writer
	errOut      io.Writer

	specs       []*spec          // declaration order, help spec first
	byAlias     map[string]*spec // optional specs, one entry per alias
	byKey       map[string]*spec
	positionals []*spec // declaration order

	values map[string]Value // rebuilt by each ParseArgs call
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithDescription sets the one-line description shown at the top of the
// usage text.
func WithDescription(desc string) Option {
	return func(p *Parser) { p.description = desc }
}

// WithOutput redirects help output, which defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Parser) { p.out = w }
}

// WithErrOutput redirects parse diagnostics, which default to os.Stderr.
func WithErrOutput(w io.Writer) Option {
	return func(p *Parser) { p.errOut = w }
}

// New returns a Parser for the named program. A "-h"/"--help" bool flag is
// pre-registered under the reserved "help" key.
func New(prog string, opts ...Option) *Parser {
	p := &Parser{
		prog:    prog,
		out:     os.Stdout,
		errOut:  os.Stderr,
		byAlias: make(map[string]*spec),
		byKey:   make(map[string]*spec),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.register(&spec{
		arg: Argument{
			Aliases: []string{"-h", "--help"},
			Help:    "Show this help message",
			Type:    Bool,
		},
		key:   helpKey,
		class: optionalSpec,
	})
	return p
}

// AddArgument registers one argument specification. Registration errors
// (empty or inconsistent aliases, malformed nargs, key or alias collisions)
// are returned synchronously; they are programmer errors, not user input
// errors.
func (p *Parser) AddArgument(a Argument) error {
	if len(a.Aliases) == 0 {
		return fmt.Errorf("argument needs at least one alias")
	}
	class, err := classify(a.Aliases)
	if err != nil {
		return err
	}
	na, err := parseNargs(a.Nargs)
	if err != nil {
		return err
	}
	if na.multi() {
		// Multi-valued positionals are not supported, and bool flags are
		// presence-only so a cardinality makes no sense for them either.
		if class == positionalSpec {
			return &InvalidNargsError{Spec: a.Nargs, Reason: "positional arguments take exactly one value"}
		}
		if a.Type == Bool {
			return &InvalidNargsError{Spec: a.Nargs, Reason: "bool flags do not take values"}
		}
	}

	key := a.Key
	if key == "" {
		key = deriveKey(a.Aliases)
	}
	if _, exists := p.byKey[key]; exists {
		return &DuplicateKeyError{Key: key}
	}
	if class == optionalSpec {
		for _, alias := range a.Aliases {
			if _, exists := p.byAlias[alias]; exists {
				return &DuplicateKeyError{Key: alias}
			}
		}
	}

	p.register(&spec{arg: a, key: key, class: class, nargs: na})
	return nil
}

func (p *Parser) register(s *spec) {
	p.specs = append(p.specs, s)
	p.byKey[s.key] = s
	if s.positional() {
		p.positionals = append(p.positionals, s)
		return
	}
	for _, alias := range s.arg.Aliases {
		p.byAlias[alias] = s
	}
}

// Parse is ParseArgs over os.Args.
func (p *Parser) Parse() Code {
	return p.ParseArgs(os.Args)
}

// ParseArgs scans argv (argv[0] is the program name and is stripped),
// validates and coerces every matched token, and rebuilds the value store.
//
// All user input errors are absorbed here: a diagnostic is printed to the
// error writer and ParseError is returned. A help request prints the usage
// text to the output writer and returns HelpShown, suppressing all other
// validation. Any previous parse result is superseded.
func (p *Parser) ParseArgs(argv []string) Code {
	var args []string
	if len(argv) > 0 {
		args = argv[1:]
	}

	matched, helpRequested, err := p.scan(args)
	if helpRequested {
		p.values = map[string]Value{helpKey: boolValue(true)}
		fmt.Fprint(p.out, p.Usage())
		return HelpShown
	}
	if err == nil {
		var values map[string]Value
		values, err = p.buildValues(matched)
		if err == nil {
			p.values = values
			return Success
		}
	}
	fmt.Fprintf(p.errOut, "%s: error: %v\n", p.prog, err)
	return ParseError
}
