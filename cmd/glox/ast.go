package main

import (
	"fmt"
	"os"

	"github.com/aledsdavies/glox/pkgs/ast"
	"github.com/aledsdavies/glox/pkgs/parser"
	"github.com/fxamacker/cbor/v2"
)

// runAST parses a file and prints its syntax tree, either as an indented
// text tree (the default) or as CBOR-encoded bytes via the Dump boundary
// (SPEC_FULL.md §6.2's AST export option).
func runAST(path, format string, useColor bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	program, errs := parser.Parse(string(source))
	if len(errs) > 0 {
		printDiagnostics(os.Stderr, path, errs, useColor)
		os.Exit(65)
	}

	switch format {
	case "cbor":
		data, err := cbor.Marshal(ast.Dump(program))
		if err != nil {
			return fmt.Errorf("encoding AST as CBOR: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	case "text", "":
		fmt.Print(ast.Sexpr(program))
		return nil
	default:
		return fmt.Errorf("unknown AST format %q (want \"text\" or \"cbor\")", format)
	}
}
