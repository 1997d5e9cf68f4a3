package main

import (
	"os"

	"github.com/aledsdavies/glox/pkgs/interpreter"
)

// runFile executes a script file to completion, printing any diagnostics.
// It returns ok=false if the scan/parse/resolution/runtime pipeline produced
// at least one diagnostic.
func runFile(path string, useColor bool) (bool, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	in := interpreter.New()
	errs := interpreter.Run(in, string(source))
	if len(errs) > 0 {
		printDiagnostics(os.Stderr, path, errs, useColor)
		return false, nil
	}
	return true, nil
}
