// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"strconv"
	"strings"
)

// matchSet accumulates the raw tokens captured for each spec during one
// scan, keyed by canonical key. present records specs that were matched at
// all, which for bool flags is the whole signal.
type matchSet struct {
	tokens  map[string][]string
	present map[string]bool
}

// scan walks the token stream left to right with a single cursor. Each
// token is either the help flag (which aborts the scan), a declared
// optional alias (which consumes following value tokens per its nargs
// rule), or a positional value for the next unfilled positional spec.
// Option-looking tokens that match no alias and are not negative numbers
// fail immediately, as do positional tokens with no spec left to receive
// them.
func (p *Parser) scan(args []string) (*matchSet, bool, error) {
	m := &matchSet{
		tokens:  make(map[string][]string),
		present: make(map[string]bool),
	}
	nextPos := 0

	for i := 0; i < len(args); i++ {
		tok := args[i]

		if isHelpToken(tok) {
			return nil, true, nil
		}

		if sp, ok := p.byAlias[tok]; ok {
			consumed, err := p.consume(sp, args[i+1:], m)
			if err != nil {
				return nil, false, err
			}
			i += consumed
			continue
		}

		if strings.HasPrefix(tok, "-") && !isNegativeNumber(tok) {
			return nil, false, &UnknownArgumentError{Token: tok}
		}

		if nextPos >= len(p.positionals) {
			return nil, false, &UnknownArgumentError{Token: tok}
		}
		sp := p.positionals[nextPos]
		nextPos++
		m.tokens[sp.key] = []string{tok}
		m.present[sp.key] = true
	}

	return m, false, nil
}

// consume captures the value tokens following a matched optional alias,
// per the spec's nargs rule. rest is the token stream after the alias.
// Returns how many tokens were consumed.
func (p *Parser) consume(sp *spec, rest []string, m *matchSet) (int, error) {
	// A repeated flag resets any earlier capture; the last run wins.
	m.present[sp.key] = true
	m.tokens[sp.key] = nil

	// Bool flags are presence-only and never consume a value token.
	if sp.arg.Type == Bool {
		return 0, nil
	}

	switch sp.nargs.kind {
	case exactlyOne:
		if len(rest) == 0 || p.isBoundary(rest[0]) {
			return 0, &MissingValueError{Name: sp.displayName(), Expected: "1"}
		}
		m.tokens[sp.key] = []string{rest[0]}
		return 1, nil

	case optionalOne:
		if len(rest) == 0 || p.isBoundary(rest[0]) {
			return 0, nil
		}
		m.tokens[sp.key] = []string{rest[0]}
		return 1, nil

	case zeroOrMore, oneOrMore:
		n := 0
		for n < len(rest) && !p.isBoundary(rest[n]) {
			n++
		}
		if sp.nargs.kind == oneOrMore && n == 0 {
			return 0, &MissingValueError{Name: sp.displayName(), Expected: "at least 1"}
		}
		m.tokens[sp.key] = append([]string(nil), rest[:n]...)
		return n, nil

	default: // exactlyN
		n := 0
		for n < len(rest) && n < sp.nargs.n && !p.isBoundary(rest[n]) {
			n++
		}
		if n < sp.nargs.n {
			return 0, &MissingValueError{Name: sp.displayName(), Expected: strconv.Itoa(sp.nargs.n)}
		}
		m.tokens[sp.key] = append([]string(nil), rest[:n]...)
		return n, nil
	}
}

// isBoundary reports whether a token ends a value run: a declared alias or
// the help flag. Negative-number-shaped tokens are never boundaries, so
// runs like "-1.5 2.0 -3.5" are captured whole.
func (p *Parser) isBoundary(tok string) bool {
	if isNegativeNumber(tok) {
		return false
	}
	if isHelpToken(tok) {
		return true
	}
	_, ok := p.byAlias[tok]
	return ok
}

func isHelpToken(tok string) bool {
	return tok == "-h" || tok == "--help"
}

// isNumeric checks if a string is a number (e.g., "10", "-10", "3.14", "-3.14")
func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}

	start := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}

	hasDigit := false
	hasDot := false

	for i := start; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			hasDigit = true
		case s[i] == '.':
			if hasDot {
				return false
			}
			hasDot = true
		default:
			return false
		}
	}

	return hasDigit
}

// isNegativeNumber checks if a string is a negative number (e.g., "-10", "-3.14")
func isNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	return isNumeric(s)
}
