// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"testing"
)

func TestParseNargs(t *testing.T) {
	tests := []struct {
		marker  string
		want    nargs
		wantErr bool
	}{
		{marker: "", want: nargs{kind: exactlyOne}},
		{marker: "1", want: nargs{kind: exactlyOne}},
		{marker: "?", want: nargs{kind: optionalOne}},
		{marker: "*", want: nargs{kind: zeroOrMore}},
		{marker: "+", want: nargs{kind: oneOrMore}},
		{marker: "0", want: nargs{kind: exactlyN, n: 0}},
		{marker: "3", want: nargs{kind: exactlyN, n: 3}},
		{marker: "invalid", wantErr: true},
		{marker: "-1", wantErr: true},
		{marker: "1.5", wantErr: true},
		{marker: "++", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseNargs(tt.marker)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseNargs(%q) = %+v, want error", tt.marker, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseNargs(%q): %v", tt.marker, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseNargs(%q) = %+v, want %+v", tt.marker, got, tt.want)
		}
	}
}

func TestRegistrationErrors(t *testing.T) {
	t.Run("invalid nargs marker surfaces at AddArgument", func(t *testing.T) {
		p := newTestParser(t)
		err := p.AddArgument(Argument{Aliases: []string{"--test"}, Type: Str, Nargs: "invalid"})
		var ne *InvalidNargsError
		if !errors.As(err, &ne) {
			t.Fatalf("AddArgument error = %v, want *InvalidNargsError", err)
		}
		if ne.Spec != "invalid" {
			t.Errorf("Spec = %q, want %q", ne.Spec, "invalid")
		}
	})

	t.Run("multi nargs on positional rejected", func(t *testing.T) {
		p := newTestParser(t)
		err := p.AddArgument(Argument{Aliases: []string{"files"}, Type: Str, Nargs: "*"})
		var ne *InvalidNargsError
		if !errors.As(err, &ne) {
			t.Fatalf("AddArgument error = %v, want *InvalidNargsError", err)
		}
	})

	t.Run("multi nargs on bool flag rejected", func(t *testing.T) {
		p := newTestParser(t)
		err := p.AddArgument(Argument{Aliases: []string{"--flags"}, Type: Bool, Nargs: "+"})
		var ne *InvalidNargsError
		if !errors.As(err, &ne) {
			t.Fatalf("AddArgument error = %v, want *InvalidNargsError", err)
		}
	})

	t.Run("duplicate key", func(t *testing.T) {
		p := newTestParser(t, Argument{Aliases: []string{"--value"}, Type: Str})
		err := p.AddArgument(Argument{Aliases: []string{"--value"}, Type: Int})
		var de *DuplicateKeyError
		if !errors.As(err, &de) {
			t.Fatalf("AddArgument error = %v, want *DuplicateKeyError", err)
		}
	})

	t.Run("key override collision", func(t *testing.T) {
		p := newTestParser(t, Argument{Aliases: []string{"--output"}, Type: Str})
		err := p.AddArgument(Argument{Aliases: []string{"--out-file"}, Type: Str, Key: "output"})
		var de *DuplicateKeyError
		if !errors.As(err, &de) {
			t.Fatalf("AddArgument error = %v, want *DuplicateKeyError", err)
		}
	})

	t.Run("reserved help key", func(t *testing.T) {
		p := newTestParser(t)
		err := p.AddArgument(Argument{Aliases: []string{"--help-me"}, Type: Bool, Key: "help"})
		var de *DuplicateKeyError
		if !errors.As(err, &de) {
			t.Fatalf("AddArgument error = %v, want *DuplicateKeyError", err)
		}
	})

	t.Run("alias collision across specs", func(t *testing.T) {
		p := newTestParser(t, Argument{Aliases: []string{"-v", "--verbose"}, Type: Bool})
		err := p.AddArgument(Argument{Aliases: []string{"-v", "--version"}, Type: Bool})
		var de *DuplicateKeyError
		if !errors.As(err, &de) {
			t.Fatalf("AddArgument error = %v, want *DuplicateKeyError", err)
		}
	})

	t.Run("empty alias list", func(t *testing.T) {
		p := newTestParser(t)
		if err := p.AddArgument(Argument{Type: Str}); err == nil {
			t.Fatal("AddArgument accepted empty alias list")
		}
	})

	t.Run("mixed dashed and undashed aliases", func(t *testing.T) {
		p := newTestParser(t)
		if err := p.AddArgument(Argument{Aliases: []string{"input", "--input"}, Type: Str}); err == nil {
			t.Fatal("AddArgument accepted mixed alias forms")
		}
	})
}
