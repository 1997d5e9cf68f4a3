package main

import (
	"fmt"
	"os"

	"github.com/aledsdavies/glox/pkgs/lexer"
)

// runTokens scans a file and prints its token stream, one token per line —
// useful for debugging the scanner independently of the rest of the
// pipeline.
func runTokens(path string, useColor bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	tokens, errs := lexer.New(string(source)).Scan()
	for _, t := range tokens {
		fmt.Println(t.String())
	}
	if len(errs) > 0 {
		printDiagnostics(os.Stderr, path, errs, useColor)
		os.Exit(65)
	}
	return nil
}
