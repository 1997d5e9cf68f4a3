package ast

import (
	"fmt"
	"strings"
)

// Dump converts a Program into a plain nested map/slice representation
// suitable for serialization formats (CBOR, JSON) that cannot marshal the
// Expr/Stmt interfaces directly — cmd/glox's `ast --format=cbor` subcommand
// uses this as its encoding boundary instead of teaching fxamacker/cbor/v2
// about every concrete node type.
func Dump(p *Program) map[string]interface{} {
	stmts := make([]interface{}, len(p.Statements))
	for i, s := range p.Statements {
		stmts[i] = dumpStmt(s)
	}
	return map[string]interface{}{"statements": stmts}
}

func dumpExpr(e Expr) interface{} {
	if e == nil {
		return nil
	}
	switch ex := e.(type) {
	case *Binary:
		return node("Binary", "operator", ex.Operator.Lexeme, "left", dumpExpr(ex.Left), "right", dumpExpr(ex.Right))
	case *Logical:
		return node("Logical", "operator", ex.Operator.Lexeme, "left", dumpExpr(ex.Left), "right", dumpExpr(ex.Right))
	case *Unary:
		return node("Unary", "operator", ex.Operator.Lexeme, "right", dumpExpr(ex.Right))
	case *Grouping:
		return node("Grouping", "expression", dumpExpr(ex.Expression))
	case *Literal:
		return node("Literal", "value", fmt.Sprintf("%v", ex.Value))
	case *Variable:
		return node("Variable", "name", ex.Name.Lexeme)
	case *Assign:
		return node("Assign", "name", ex.Name.Lexeme, "value", dumpExpr(ex.Value))
	case *Call:
		args := make([]interface{}, len(ex.Arguments))
		for i, a := range ex.Arguments {
			args[i] = dumpExpr(a)
		}
		return node("Call", "callee", dumpExpr(ex.Callee), "arguments", args)
	case *Get:
		return node("Get", "object", dumpExpr(ex.Object), "name", ex.Name.Lexeme)
	case *Set:
		return node("Set", "object", dumpExpr(ex.Object), "name", ex.Name.Lexeme, "value", dumpExpr(ex.Value))
	case *This:
		return node("This")
	case *Super:
		return node("Super", "method", ex.Method.Lexeme)
	default:
		return node("Unknown")
	}
}

func dumpStmt(s Stmt) interface{} {
	if s == nil {
		return nil
	}
	switch st := s.(type) {
	case *ExpressionStmt:
		return node("ExpressionStmt", "expression", dumpExpr(st.Expression))
	case *PrintStmt:
		return node("PrintStmt", "expression", dumpExpr(st.Expression))
	case *VarStmt:
		return node("VarStmt", "name", st.Name.Lexeme, "initializer", dumpExpr(st.Initializer))
	case *BlockStmt:
		return node("BlockStmt", "statements", dumpStmts(st.Statements))
	case *IfStmt:
		return node("IfStmt", "condition", dumpExpr(st.Condition), "then", dumpStmt(st.ThenBranch), "else", dumpStmt(st.ElseBranch))
	case *WhileStmt:
		return node("WhileStmt", "condition", dumpExpr(st.Condition), "body", dumpStmt(st.Body))
	case *FunctionStmt:
		params := make([]interface{}, len(st.Params))
		for i, p := range st.Params {
			params[i] = p.Lexeme
		}
		return node("FunctionStmt", "name", st.Name.Lexeme, "params", params, "body", dumpStmts(st.Body))
	case *ReturnStmt:
		return node("ReturnStmt", "value", dumpExpr(st.Value))
	case *ClassStmt:
		methods := make([]interface{}, len(st.Methods))
		for i, m := range st.Methods {
			methods[i] = dumpStmt(m)
		}
		var super interface{}
		if st.Superclass != nil {
			super = st.Superclass.Name.Lexeme
		}
		return node("ClassStmt", "name", st.Name.Lexeme, "superclass", super, "methods", methods)
	default:
		return node("Unknown")
	}
}

func dumpStmts(stmts []Stmt) []interface{} {
	out := make([]interface{}, len(stmts))
	for i, s := range stmts {
		out[i] = dumpStmt(s)
	}
	return out
}

func node(kind string, kv ...interface{}) map[string]interface{} {
	m := map[string]interface{}{"node": kind}
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}
	return m
}

// Sexpr renders a Program as an indented text tree for human-readable AST
// inspection (cmd/glox's `ast` subcommand default format). Unlike Dump, this
// walks the typed AST directly so output order is deterministic rather than
// depending on map iteration order.
func Sexpr(p *Program) string {
	var b strings.Builder
	for _, s := range p.Statements {
		writeStmt(&b, s, 0)
	}
	return b.String()
}

func writeLine(b *strings.Builder, depth int, format string, args ...interface{}) {
	fmt.Fprintf(b, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func writeExpr(b *strings.Builder, e Expr, depth int) {
	if e == nil {
		writeLine(b, depth, "nil")
		return
	}
	switch ex := e.(type) {
	case *Binary:
		writeLine(b, depth, "Binary %s", ex.Operator.Lexeme)
		writeExpr(b, ex.Left, depth+1)
		writeExpr(b, ex.Right, depth+1)
	case *Logical:
		writeLine(b, depth, "Logical %s", ex.Operator.Lexeme)
		writeExpr(b, ex.Left, depth+1)
		writeExpr(b, ex.Right, depth+1)
	case *Unary:
		writeLine(b, depth, "Unary %s", ex.Operator.Lexeme)
		writeExpr(b, ex.Right, depth+1)
	case *Grouping:
		writeLine(b, depth, "Grouping")
		writeExpr(b, ex.Expression, depth+1)
	case *Literal:
		writeLine(b, depth, "Literal %v", ex.Value)
	case *Variable:
		writeLine(b, depth, "Variable %s", ex.Name.Lexeme)
	case *Assign:
		writeLine(b, depth, "Assign %s", ex.Name.Lexeme)
		writeExpr(b, ex.Value, depth+1)
	case *Call:
		writeLine(b, depth, "Call")
		writeExpr(b, ex.Callee, depth+1)
		for _, a := range ex.Arguments {
			writeExpr(b, a, depth+1)
		}
	case *Get:
		writeLine(b, depth, "Get %s", ex.Name.Lexeme)
		writeExpr(b, ex.Object, depth+1)
	case *Set:
		writeLine(b, depth, "Set %s", ex.Name.Lexeme)
		writeExpr(b, ex.Object, depth+1)
		writeExpr(b, ex.Value, depth+1)
	case *This:
		writeLine(b, depth, "This")
	case *Super:
		writeLine(b, depth, "Super %s", ex.Method.Lexeme)
	default:
		writeLine(b, depth, "Unknown")
	}
}

func writeStmt(b *strings.Builder, s Stmt, depth int) {
	if s == nil {
		return
	}
	switch st := s.(type) {
	case *ExpressionStmt:
		writeLine(b, depth, "ExpressionStmt")
		writeExpr(b, st.Expression, depth+1)
	case *PrintStmt:
		writeLine(b, depth, "PrintStmt")
		writeExpr(b, st.Expression, depth+1)
	case *VarStmt:
		writeLine(b, depth, "VarStmt %s", st.Name.Lexeme)
		writeExpr(b, st.Initializer, depth+1)
	case *BlockStmt:
		writeLine(b, depth, "BlockStmt")
		for _, inner := range st.Statements {
			writeStmt(b, inner, depth+1)
		}
	case *IfStmt:
		writeLine(b, depth, "IfStmt")
		writeExpr(b, st.Condition, depth+1)
		writeStmt(b, st.ThenBranch, depth+1)
		if st.ElseBranch != nil {
			writeStmt(b, st.ElseBranch, depth+1)
		}
	case *WhileStmt:
		writeLine(b, depth, "WhileStmt")
		writeExpr(b, st.Condition, depth+1)
		writeStmt(b, st.Body, depth+1)
	case *FunctionStmt:
		writeLine(b, depth, "FunctionStmt %s", st.Name.Lexeme)
		for _, inner := range st.Body {
			writeStmt(b, inner, depth+1)
		}
	case *ReturnStmt:
		writeLine(b, depth, "ReturnStmt")
		if st.Value != nil {
			writeExpr(b, st.Value, depth+1)
		}
	case *ClassStmt:
		writeLine(b, depth, "ClassStmt %s", st.Name.Lexeme)
		for _, m := range st.Methods {
			writeStmt(b, m, depth+1)
		}
	default:
		writeLine(b, depth, "Unknown")
	}
}
