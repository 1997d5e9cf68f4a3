package interpreter

import (
	"bytes"

	"github.com/aledsdavies/glox/pkgs/ast"
	"github.com/aledsdavies/glox/pkgs/loxerr"
	"github.com/aledsdavies/glox/pkgs/parser"
	"github.com/aledsdavies/glox/pkgs/resolver"
)

// Run scans, parses, resolves, and interprets source text against the
// given Interpreter, returning every diagnostic produced along the way
// (scan/parse errors short-circuit before resolution; a resolution error
// short-circuits before interpretation starts; spec.md's pipeline is
// strictly left to right).
func Run(in *Interpreter, source string) []*loxerr.Error {
	program, errs := parser.Parse(source)
	if len(errs) > 0 {
		return errs
	}
	return RunProgram(in, program)
}

// RunProgram resolves and interprets an already-parsed Program.
func RunProgram(in *Interpreter, program *ast.Program) []*loxerr.Error {
	res := resolver.New()
	if errs := res.Resolve(program); len(errs) > 0 {
		return errs
	}
	in.ResolveLocals(res.Locals())

	if err := in.Interpret(program.Statements); err != nil {
		if le, ok := err.(*loxerr.Error); ok {
			return []*loxerr.Error{le}
		}
		return []*loxerr.Error{loxerr.NewRuntimeError(0, 0, err.Error())}
	}
	return nil
}

// RunBuffered implements the embed façade spec.md §6 describes: it
// redirects output and diagnostics to in-memory buffers instead of the
// process's real stdout/stderr, mirroring original_source/rlox-wasm's
// `init()` + `execute_file(source) -> (stdout, stderr)` shape.
func RunBuffered(source string) (stdout string, stderr string) {
	var outBuf, errBuf bytes.Buffer
	in := NewWithWriters(&outBuf, &errBuf)
	for _, e := range Run(in, source) {
		errBuf.WriteString(e.Error())
		errBuf.WriteString("\n")
	}
	return outBuf.String(), errBuf.String()
}
