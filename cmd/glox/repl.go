package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/aledsdavies/glox/pkgs/interpreter"
)

// runRepl runs an interactive read-eval-print loop. Each line is scanned,
// parsed, resolved, and interpreted against a single long-lived Interpreter
// so that variable and function definitions persist across lines, mirroring
// the embed façade's single-Interpreter-per-session model (SPEC_FULL.md §6).
func runRepl(useColor bool) error {
	in := interpreter.New()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("glox REPL — Ctrl+D to exit")
	for {
		fmt.Print(colorize("> ", colorCyan, useColor))
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if errs := interpreter.Run(in, line); len(errs) > 0 {
			printDiagnostics(os.Stderr, "repl", errs, useColor)
		}
	}
}
