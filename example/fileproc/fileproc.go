// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fileproc is a small demo of the argparse package: one required
// positional, a bool flag, a defaulted int, a choice-restricted string, and
// a zero-or-more file list.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/saursin/argparse-go/pkg/argparse"
)

func main() {
	p := argparse.New("fileproc", argparse.WithDescription("Process input files"))

	for _, a := range []argparse.Argument{
		{Aliases: []string{"input"}, Help: "Input file", Type: argparse.Str, Required: true},
		{Aliases: []string{"-v", "--verbose"}, Help: "Enable verbose output", Type: argparse.Bool},
		{Aliases: []string{"--count"}, Help: "Number of items to process", Type: argparse.Int, Default: "10"},
		{Aliases: []string{"--format"}, Help: "Output format", Type: argparse.Str, Default: "json",
			Choices: []string{"json", "xml", "csv"}},
		{Aliases: []string{"--files"}, Help: "Additional files", Type: argparse.Str, Nargs: "*"},
	} {
		if err := p.AddArgument(a); err != nil {
			log.Fatalf("register %v: %v", a.Aliases, err)
		}
	}

	switch p.Parse() {
	case argparse.HelpShown:
		return
	case argparse.ParseError:
		fmt.Fprint(os.Stderr, color.RedString("fileproc: invalid arguments, see above\n"))
		os.Exit(1)
	}

	input, _ := argparse.Get[string](p, "input")
	verbose, _ := argparse.Get[bool](p, "verbose")
	count := argparse.GetOr(p, "count", 10)
	format := argparse.GetOr(p, "format", "json")
	files, _ := argparse.GetList[string](p, "files")

	fmt.Printf("Processing: %s\n", input)
	fmt.Printf("Format: %s\n", format)
	fmt.Printf("Count: %d\n", count)
	if verbose {
		fmt.Println(color.GreenString("Verbose mode enabled"))
	}
	if len(files) > 0 {
		fmt.Printf("Additional files: %v\n", files)
	}
}
