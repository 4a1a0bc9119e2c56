// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"strings"
)

// Usage returns the full help text: header, usage line, positional
// arguments, and options with their metavar, default, and required
// annotations. The same text is printed when -h/--help is parsed.
func (p *Parser) Usage() string {
	var b strings.Builder

	// Header
	b.WriteString(p.prog)
	if p.description != "" {
		b.WriteString(" - ")
		b.WriteString(p.description)
	}
	b.WriteString("\n\n")

	// Usage line
	b.WriteString("USAGE:\n")
	usage := fmt.Sprintf("    %s [OPTIONS]", p.prog)
	for _, sp := range p.positionals {
		if sp.arg.Required {
			usage += " " + sp.metavar()
		} else {
			usage += " [" + sp.metavar() + "]"
		}
	}
	b.WriteString(usage + "\n\n")

	// Positional arguments
	if len(p.positionals) > 0 {
		b.WriteString("ARGUMENTS:\n")
		for _, sp := range p.positionals {
			writeEntry(&b, "    "+sp.metavar(), sp)
		}
		b.WriteString("\n")
	}

	// Options, in declaration order, help flag last
	b.WriteString("OPTIONS:\n")
	for _, sp := range p.specs {
		if sp.positional() || sp.key == helpKey {
			continue
		}
		left := "    " + strings.Join(sp.arg.Aliases, ", ") + sp.valuePlaceholder()
		writeEntry(&b, left, sp)
	}
	b.WriteString(fmt.Sprintf("%-28s %s\n", "    -h, --help", "Show this help message"))

	return b.String()
}

func writeEntry(b *strings.Builder, left string, sp *spec) {
	if sp.arg.Help != "" {
		b.WriteString(fmt.Sprintf("%-28s %s", left, sp.arg.Help))
	} else {
		b.WriteString(left)
	}
	if sp.arg.Default != "" {
		b.WriteString(fmt.Sprintf(" (default: %s)", sp.arg.Default))
	}
	if sp.arg.Required {
		b.WriteString(" (required)")
	}
	b.WriteString("\n")
}

// valuePlaceholder renders the value slot for an option per its nargs:
// "N" for one value, "[N]" for an optional one, "[N...]"/"<N...>" for the
// greedy forms, and the metavar repeated for an exact count. Bool flags
// take no value.
func (s *spec) valuePlaceholder() string {
	if s.arg.Type == Bool && !s.positional() {
		return ""
	}
	mv := s.metavar()
	switch s.nargs.kind {
	case exactlyOne:
		return " " + mv
	case optionalOne:
		return " [" + mv + "]"
	case zeroOrMore:
		return " [" + mv + "...]"
	case oneOrMore:
		return " <" + mv + "...>"
	default: // exactlyN
		if s.nargs.n == 0 {
			return ""
		}
		return " " + strings.TrimSpace(strings.Repeat(mv+" ", s.nargs.n))
	}
}
