// Package resolver performs the static pre-evaluation pass that determines,
// for every variable use-site, exactly how many enclosing lexical scopes to
// ascend to find its binding. This eliminates the "late binding" bug where a
// function body would otherwise resolve a name to a later re-definition in
// an enclosing scope.
package resolver

import (
	"github.com/aledsdavies/glox/pkgs/ast"
	"github.com/aledsdavies/glox/pkgs/loxerr"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// scope maps a name to whether its declaration has finished (false between
// declare and define).
type scope map[string]bool

// Resolver walks a Program once and populates a side table mapping each
// Variable/Assign/This/Super use-site (keyed by AST node identity) to its
// resolved depth. Names never found in any pushed scope are left out of the
// table entirely and are treated as globals at evaluation time.
type Resolver struct {
	scopes []scope
	locals map[ast.Expr]int
	errs   []*loxerr.Error

	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver. Built-ins (`clock`, `unixClock`) need no special
// handling here: the Resolver never pushes a scope for globals, so any name
// not found in a local scope — built-in or user-defined — is simply left
// out of the side table and resolved against the globals environment at
// evaluation time.
func New() *Resolver {
	return &Resolver{
		locals: make(map[ast.Expr]int),
	}
}

// Locals returns the resolved side table: for each use-site Expr that the
// Resolver located in some local scope, the number of enclosing scopes to
// ascend from the point of use to reach its binding.
func (r *Resolver) Locals() map[ast.Expr]int {
	return r.locals
}

// Resolve resolves an entire program and returns any resolution errors.
func (r *Resolver) Resolve(program *ast.Program) []*loxerr.Error {
	r.resolveStmts(program.Statements)
	return r.errs
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(st.Statements)
		r.endScope()

	case *ast.VarStmt:
		r.declare(st.Name.Lexeme, st.Name.Line, st.Name.Column)
		r.resolveExpr(st.Initializer)
		r.define(st.Name.Lexeme)

	case *ast.FunctionStmt:
		r.declare(st.Name.Lexeme, st.Name.Line, st.Name.Column)
		r.define(st.Name.Lexeme)
		r.resolveFunction(st, fnFunction)

	case *ast.ExpressionStmt:
		r.resolveExpr(st.Expression)

	case *ast.IfStmt:
		r.resolveExpr(st.Condition)
		r.resolveStmt(st.ThenBranch)
		if st.ElseBranch != nil {
			r.resolveStmt(st.ElseBranch)
		}

	case *ast.PrintStmt:
		r.resolveExpr(st.Expression)

	case *ast.ReturnStmt:
		if r.currentFunction == fnNone {
			r.errs = append(r.errs, loxerr.NewResolutionError(st.Keyword.Line, st.Keyword.Column,
				"Can't return from top-level code."))
		}
		if st.Value != nil {
			if r.currentFunction == fnInitializer {
				r.errs = append(r.errs, loxerr.NewResolutionError(st.Keyword.Line, st.Keyword.Column,
					"Can't return a value from an initializer."))
			}
			r.resolveExpr(st.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpr(st.Condition)
		r.resolveStmt(st.Body)

	case *ast.ClassStmt:
		r.resolveClass(st)

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveClass(st *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(st.Name.Lexeme, st.Name.Line, st.Name.Column)
	r.define(st.Name.Lexeme)

	if st.Superclass != nil {
		if st.Superclass.Name.Lexeme == st.Name.Lexeme {
			r.errs = append(r.errs, loxerr.NewResolutionError(
				st.Superclass.Name.Line, st.Superclass.Name.Column,
				"A class can't inherit from itself."))
		} else {
			r.currentClass = classSubclass
			r.resolveExpr(st.Superclass)
		}
	}

	if st.Superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range st.Methods {
		decl := fnMethod
		if method.Name.Lexeme == "init" {
			decl = fnInitializer
		}
		r.resolveFunction(method, decl)
	}

	r.endScope()

	if st.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param.Lexeme, param.Line, param.Column)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch ex := e.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][ex.Name.Lexeme]; ok && !defined {
				r.errs = append(r.errs, loxerr.NewResolutionError(ex.Name.Line, ex.Name.Column,
					"Can't read local variable in its own initializer."))
			}
		}
		r.resolveLocal(ex, ex.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(ex.Value)
		r.resolveLocal(ex, ex.Name.Lexeme)

	case *ast.Binary:
		r.resolveExpr(ex.Left)
		r.resolveExpr(ex.Right)

	case *ast.Logical:
		r.resolveExpr(ex.Left)
		r.resolveExpr(ex.Right)

	case *ast.Unary:
		r.resolveExpr(ex.Right)

	case *ast.Grouping:
		r.resolveExpr(ex.Expression)

	case *ast.Literal:
		// nothing to resolve

	case *ast.Call:
		r.resolveExpr(ex.Callee)
		for _, arg := range ex.Arguments {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(ex.Object)

	case *ast.Set:
		r.resolveExpr(ex.Value)
		r.resolveExpr(ex.Object)

	case *ast.This:
		if r.currentClass == classNone {
			r.errs = append(r.errs, loxerr.NewResolutionError(ex.Keyword.Line, ex.Keyword.Column,
				"Can't use 'this' outside of a class."))
			return
		}
		r.resolveLocal(ex, "this")

	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.errs = append(r.errs, loxerr.NewResolutionError(ex.Keyword.Line, ex.Keyword.Column,
				"Can't use 'super' outside of a class."))
		case classClass:
			r.errs = append(r.errs, loxerr.NewResolutionError(ex.Keyword.Line, ex.Keyword.Column,
				"Can't use 'super' in a class with no superclass."))
		}
		r.resolveLocal(ex, "super")

	default:
		panic("resolver: unhandled expression type")
	}
}

func (r *Resolver) resolveLocal(use ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[use] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any pushed scope: treated as a global at evaluation time.
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(scope))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name string, line, col int) {
	if len(r.scopes) == 0 {
		return
	}
	current := r.scopes[len(r.scopes)-1]
	if _, ok := current[name]; ok {
		r.errs = append(r.errs, loxerr.NewResolutionError(line, col,
			"Already a variable with this name in this scope."))
	}
	current[name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}
