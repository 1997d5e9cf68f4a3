package parser

import (
	"testing"

	"github.com/aledsdavies/glox/pkgs/ast"
)

func mustParse(t *testing.T, source string) *ast.Program {
	t.Helper()
	prog, errs := Parse(source)
	if len(errs) != 0 {
		t.Fatalf("Parse(%q) returned unexpected errors: %v", source, errs)
	}
	return prog
}

func TestParseExpressionStatement(t *testing.T) {
	prog := mustParse(t, "1 + 2 * 3;")
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	es, ok := prog.Statements[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ExpressionStmt", prog.Statements[0])
	}
	bin, ok := es.Expression.(*ast.Binary)
	if !ok {
		t.Fatalf("got %T, want *ast.Binary", es.Expression)
	}
	if bin.Operator.Lexeme != "+" {
		t.Errorf("top-level operator = %q, want %q (multiplication should bind tighter)", bin.Operator.Lexeme, "+")
	}
	if _, ok := bin.Right.(*ast.Binary); !ok {
		t.Errorf("right operand = %T, want *ast.Binary (2 * 3)", bin.Right)
	}
}

func TestParseVarDeclWithoutInitializerDefaultsToNil(t *testing.T) {
	prog := mustParse(t, "var x;")
	v := prog.Statements[0].(*ast.VarStmt)
	lit, ok := v.Initializer.(*ast.Literal)
	if !ok || lit.Value != nil {
		t.Fatalf("Initializer = %#v, want &ast.Literal{Value: nil}", v.Initializer)
	}
}

func TestParseIfElseBindsToNearestIf(t *testing.T) {
	prog := mustParse(t, "if (a) if (b) c; else d;")
	outer := prog.Statements[0].(*ast.IfStmt)
	inner, ok := outer.ThenBranch.(*ast.IfStmt)
	if !ok {
		t.Fatalf("ThenBranch = %T, want *ast.IfStmt", outer.ThenBranch)
	}
	if inner.ElseBranch == nil {
		t.Fatal("dangling else should bind to the nearest if")
	}
	if outer.ElseBranch != nil {
		t.Fatal("else incorrectly attached to the outer if")
	}
}

func TestForLoopDesugarsToWhile(t *testing.T) {
	prog := mustParse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	block, ok := prog.Statements[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.BlockStmt (desugared for-loop)", prog.Statements[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("got %d statements in desugared block, want 2 (init, while)", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.VarStmt); !ok {
		t.Errorf("first statement = %T, want *ast.VarStmt", block.Statements[0])
	}
	while, ok := block.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("second statement = %T, want *ast.WhileStmt", block.Statements[1])
	}
	body, ok := while.Body.(*ast.BlockStmt)
	if !ok || len(body.Statements) != 2 {
		t.Fatalf("while body = %#v, want a 2-statement block (body, increment)", while.Body)
	}
}

func TestClassDeclWithSuperclass(t *testing.T) {
	prog := mustParse(t, "class B < A { m() { return 1; } }")
	cls := prog.Statements[0].(*ast.ClassStmt)
	if cls.Name.Lexeme != "B" {
		t.Errorf("Name = %q, want B", cls.Name.Lexeme)
	}
	if cls.Superclass == nil || cls.Superclass.Name.Lexeme != "A" {
		t.Fatalf("Superclass = %#v, want reference to A", cls.Superclass)
	}
	if len(cls.Methods) != 1 || cls.Methods[0].Name.Lexeme != "m" {
		t.Fatalf("Methods = %#v", cls.Methods)
	}
}

func TestAssignmentToNonTargetIsParseError(t *testing.T) {
	_, errs := Parse("1 + 2 = 3;")
	if len(errs) == 0 {
		t.Fatal("expected a parse error for an invalid assignment target")
	}
}

func TestMissingSemicolonIsParseErrorAndSynchronizes(t *testing.T) {
	// Two independent missing-semicolon errors on consecutive statements:
	// synchronize() must let both be reported in a single parse.
	_, errs := Parse("var a = 1\nvar b = 2\n")
	if len(errs) < 2 {
		t.Fatalf("got %d errors, want at least 2 (one per statement): %v", len(errs), errs)
	}
}

func TestTooManyArgumentsIsReportedNotPanicked(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"
	_, errs := Parse(src)
	if len(errs) == 0 {
		t.Fatal("expected an error for more than 255 arguments")
	}
}

func TestSuperExpressionRequiresMethodName(t *testing.T) {
	prog := mustParse(t, "class B < A { m() { return super.greet(); } }")
	cls := prog.Statements[0].(*ast.ClassStmt)
	ret := cls.Methods[0].Body[0].(*ast.ReturnStmt)
	call := ret.Value.(*ast.Call)
	sup, ok := call.Callee.(*ast.Super)
	if !ok || sup.Method.Lexeme != "greet" {
		t.Fatalf("got %#v", call.Callee)
	}
}
