package main

import (
	"fmt"
	"io"

	"github.com/aledsdavies/glox/pkgs/loxerr"
)

// printDiagnostics renders every *loxerr.Error produced by a pipeline run,
// one per line, colorizing the kind label and the advisory hint (if any)
// the way the teacher's formatCLIError/formatPlanError pair colorize their
// own error/hint lines.
func printDiagnostics(w io.Writer, filename string, errs []*loxerr.Error, useColor bool) {
	for _, e := range errs {
		label := colorize(string(e.Kind), colorRed, useColor)
		fmt.Fprintf(w, "%s: %s:%d:%d: %s\n", label, filename, e.Line, e.Column, e.Message)
		if e.Hint != "" {
			fmt.Fprintf(w, "  %s\n", colorize(e.Hint, colorYellow, useColor))
		}
		if e.Cause != nil {
			fmt.Fprintf(w, "  %s %v\n", colorize("caused by:", colorGray, useColor), e.Cause)
		}
	}
}
