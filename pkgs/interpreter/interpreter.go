// Package interpreter evaluates a resolved Lox AST against a mutable
// environment chain, producing side effects (prints) and surfacing runtime
// diagnostics.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/aledsdavies/glox/pkgs/ast"
	"github.com/aledsdavies/glox/pkgs/loxerr"
)

// returnSignal is the tagged result that carries a `return` statement's
// value up through nested block scopes to the enclosing Function.Call.
// It is distinct from *loxerr.Error: the two propagate side by side as
// separate return values and are never confused with one another.
type returnSignal struct {
	value interface{}
}

// Interpreter walks a resolved Program, threading a mutable Environment
// chain and a side table of resolved variable-use depths produced by
// pkgs/resolver.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[ast.Expr]int

	stdout io.Writer
	stderr io.Writer
}

// New creates an Interpreter with the standard built-ins bound in its
// global environment and output directed at stdout/stderr.
func New() *Interpreter {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters creates an Interpreter with output redirected to the given
// sinks — the hook the embed façade (RunBuffered in run.go, spec.md §6)
// uses to capture program output in memory instead of the process streams.
func NewWithWriters(stdout, stderr io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	defineBuiltins(globals)
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		stdout:      stdout,
		stderr:      stderr,
	}
}

// Globals exposes the global environment, e.g. so a REPL can pre-seed
// bindings between successive lines.
func (in *Interpreter) Globals() *Environment { return in.globals }

// ResolveLocals adds the side table produced by pkgs/resolver to the
// Interpreter's own. Must be called before Interpret. Entries from earlier
// calls are kept, so functions defined by an earlier program on the same
// Interpreter (e.g. an earlier REPL line) still find their locals.
func (in *Interpreter) ResolveLocals(locals map[ast.Expr]int) {
	for use, depth := range locals {
		in.locals[use] = depth
	}
}

// Interpret executes a resolved program's statements in order. It returns
// the first runtime error encountered; evaluation stops at that point, per
// spec.md §7 ("runtime errors unwind ... to the top-level driver").
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if _, err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// ---- Statement execution ----

func (in *Interpreter) execute(s ast.Stmt) (*returnSignal, error) {
	switch st := s.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(st.Expression)
		return nil, err

	case *ast.PrintStmt:
		v, err := in.evaluate(st.Expression)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(in.stdout, stringify(v))
		return nil, nil

	case *ast.VarStmt:
		v, err := in.evaluate(st.Initializer)
		if err != nil {
			return nil, err
		}
		in.environment.Define(st.Name.Lexeme, v)
		return nil, nil

	case *ast.BlockStmt:
		return in.executeBlock(st.Statements, NewEnvironment(in.environment))

	case *ast.IfStmt:
		cond, err := in.evaluate(st.Condition)
		if err != nil {
			return nil, err
		}
		if isTruthy(cond) {
			return in.execute(st.ThenBranch)
		} else if st.ElseBranch != nil {
			return in.execute(st.ElseBranch)
		}
		return nil, nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(st.Condition)
			if err != nil {
				return nil, err
			}
			if !isTruthy(cond) {
				return nil, nil
			}
			ret, err := in.execute(st.Body)
			if err != nil {
				return nil, err
			}
			if ret != nil {
				return ret, nil
			}
		}

	case *ast.FunctionStmt:
		fn := NewFunction(st, in.environment, false)
		in.environment.Define(st.Name.Lexeme, fn)
		return nil, nil

	case *ast.ReturnStmt:
		var value interface{}
		if st.Value != nil {
			v, err := in.evaluate(st.Value)
			if err != nil {
				return nil, err
			}
			value = v
		}
		return &returnSignal{value: value}, nil

	case *ast.ClassStmt:
		return nil, in.executeClass(st)

	default:
		panic("interpreter: unhandled statement type")
	}
}

// executeBlock runs stmts in a fresh scope nested in env's enclosing chain,
// restoring the previous environment on every exit path — normal
// completion, a runtime error, or a propagating return signal (spec.md
// §5's "scoped acquisition with guaranteed release").
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) (*returnSignal, error) {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, s := range stmts {
		ret, err := in.execute(s)
		if err != nil {
			return nil, err
		}
		if ret != nil {
			return ret, nil
		}
	}
	return nil, nil
}

// executeClass implements spec.md §4.4's class evaluation order precisely:
// evaluate superclass, predeclare the name as nil (so methods may reference
// their own class recursively), optionally push a `super` scope, build the
// methods map with the current environment as every method's closure,
// construct the Class, pop the super scope, then bind the name to the
// finished Class object.
func (in *Interpreter) executeClass(st *ast.ClassStmt) error {
	var superclass *Class
	if st.Superclass != nil {
		sc, err := in.evaluate(st.Superclass)
		if err != nil {
			return err
		}
		class, ok := sc.(*Class)
		if !ok {
			return loxerr.NewRuntimeError(st.Superclass.Name.Line, st.Superclass.Name.Column,
				"Superclass must be a class.")
		}
		superclass = class
	}

	in.environment.Define(st.Name.Lexeme, nil)

	env := in.environment
	if superclass != nil {
		env = NewEnvironment(in.environment)
		env.Define("super", superclass)
	}

	methods := make(map[string]*Function)
	for _, m := range st.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, env, m.Name.Lexeme == "init")
	}

	class := &Class{Name: st.Name.Lexeme, Superclass: superclass, Methods: methods}

	return in.environment.Assign(st.Name.Lexeme, class, st.Name.Line, st.Name.Column)
}
