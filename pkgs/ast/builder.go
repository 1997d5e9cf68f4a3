package ast

import "github.com/aledsdavies/glox/pkgs/token"

// Factory helpers for hand-building AST fixtures in tests, mirroring the
// shape of the parser's own constructions without going through source
// text.

func NewProgram(stmts ...Stmt) *Program {
	return &Program{Statements: stmts}
}

func Num(v float64) *Literal { return &Literal{Value: v} }
func Str(v string) *Literal  { return &Literal{Value: v} }
func Bool(v bool) *Literal   { return &Literal{Value: v} }
func Nil() *Literal          { return &Literal{Value: nil} }

func Ident(name string) token.Token {
	return token.Token{Type: token.IDENTIFIER, Lexeme: name}
}

func Var(name string) *Variable {
	return &Variable{Name: Ident(name)}
}

func BinOp(left Expr, op token.Type, lexeme string, right Expr) *Binary {
	return &Binary{Left: left, Operator: token.Token{Type: op, Lexeme: lexeme}, Right: right}
}

func Block(stmts ...Stmt) *BlockStmt {
	return &BlockStmt{Statements: stmts}
}

func ExprStmt(e Expr) *ExpressionStmt {
	return &ExpressionStmt{Expression: e}
}

func Print(e Expr) *PrintStmt {
	return &PrintStmt{Expression: e}
}

func VarDecl(name string, init Expr) *VarStmt {
	if init == nil {
		init = Nil()
	}
	return &VarStmt{Name: Ident(name), Initializer: init}
}
