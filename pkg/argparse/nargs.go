// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import "strconv"

// nargsKind is the closed cardinality vocabulary. The free-form marker
// string is parsed once at registration; scanning dispatches on this enum
// only.
type nargsKind int

const (
	exactlyOne nargsKind = iota // "" or "1", the default
	optionalOne                 // "?"
	zeroOrMore                  // "*"
	oneOrMore                   // "+"
	exactlyN                    // any other non-negative integer
)

type nargs struct {
	kind nargsKind
	n    int // only for exactlyN
}

// multi reports whether the spec stores a list rather than a single scalar.
func (na nargs) multi() bool {
	return na.kind != exactlyOne
}

func parseNargs(marker string) (nargs, error) {
	switch marker {
	case "", "1":
		return nargs{kind: exactlyOne}, nil
	case "?":
		return nargs{kind: optionalOne}, nil
	case "*":
		return nargs{kind: zeroOrMore}, nil
	case "+":
		return nargs{kind: oneOrMore}, nil
	}
	n, err := strconv.Atoi(marker)
	if err != nil || n < 0 {
		return nargs{}, &InvalidNargsError{Spec: marker}
	}
	return nargs{kind: exactlyN, n: n}, nil
}
