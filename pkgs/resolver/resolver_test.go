package resolver

import (
	"testing"

	"github.com/aledsdavies/glox/pkgs/ast"
	"github.com/aledsdavies/glox/pkgs/parser"
)

func mustResolve(t *testing.T, source string) (*ast.Program, *Resolver) {
	t.Helper()
	prog, errs := parser.Parse(source)
	if len(errs) != 0 {
		t.Fatalf("Parse(%q): %v", source, errs)
	}
	r := New()
	if errs := r.Resolve(prog); len(errs) != 0 {
		t.Fatalf("Resolve(%q) returned unexpected errors: %v", source, errs)
	}
	return prog, r
}

func TestGlobalReferenceIsNotInSideTable(t *testing.T) {
	_, r := mustResolve(t, "print clock();")
	if len(r.Locals()) != 0 {
		t.Fatalf("got %d locals, want 0 (clock is a global)", len(r.Locals()))
	}
}

func TestLocalVariableResolvesToDepthZero(t *testing.T) {
	prog, r := mustResolve(t, "{ var a = 1; print a; }")
	block := prog.Statements[0].(*ast.BlockStmt)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	v := printStmt.Expression.(*ast.Variable)
	depth, ok := r.Locals()[v]
	if !ok || depth != 0 {
		t.Fatalf("depth = %d, ok = %v, want 0, true", depth, ok)
	}
}

func TestClosureOverOuterScopeResolvesNonZeroDepth(t *testing.T) {
	prog, r := mustResolve(t, `
	var outer = "global";
	{
		var outer = "block";
		{
			print outer;
		}
	}`)
	outerBlock := prog.Statements[1].(*ast.BlockStmt)
	innerBlock := outerBlock.Statements[1].(*ast.BlockStmt)
	printStmt := innerBlock.Statements[0].(*ast.PrintStmt)
	v := printStmt.Expression.(*ast.Variable)
	depth, ok := r.Locals()[v]
	if !ok || depth != 1 {
		t.Fatalf("depth = %d, ok = %v, want 1, true", depth, ok)
	}
}

func TestReadingOwnInitializerIsResolutionError(t *testing.T) {
	_, errs := parser.Parse("{ var a = a; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	prog, _ := parser.Parse("{ var a = a; }")
	r := New()
	errs = r.Resolve(prog)
	if len(errs) != 1 {
		t.Fatalf("got %d resolution errors, want 1: %v", len(errs), errs)
	}
}

func TestDuplicateLocalDeclarationIsResolutionError(t *testing.T) {
	prog, _ := parser.Parse("{ var a = 1; var a = 2; }")
	r := New()
	errs := r.Resolve(prog)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}

func TestReturnAtTopLevelIsResolutionError(t *testing.T) {
	prog, _ := parser.Parse("return 1;")
	r := New()
	errs := r.Resolve(prog)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}

func TestReturnValueFromInitializerIsResolutionError(t *testing.T) {
	prog, _ := parser.Parse("class A { init() { return 1; } }")
	r := New()
	errs := r.Resolve(prog)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}

func TestBareReturnFromInitializerIsAllowed(t *testing.T) {
	mustResolve(t, "class A { init() { return; } }")
}

func TestThisOutsideClassIsResolutionError(t *testing.T) {
	prog, _ := parser.Parse("print this;")
	r := New()
	errs := r.Resolve(prog)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}

func TestSuperWithoutSuperclassIsResolutionError(t *testing.T) {
	prog, _ := parser.Parse("class A { m() { super.m(); } }")
	r := New()
	errs := r.Resolve(prog)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}

func TestClassInheritingFromItselfIsResolutionError(t *testing.T) {
	prog, _ := parser.Parse("class A < A {}")
	r := New()
	errs := r.Resolve(prog)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}

func TestSuperResolvesOneScopeOutsideThis(t *testing.T) {
	prog, r := mustResolve(t, `
	class A { greet() { return "A"; } }
	class B < A {
		greet() {
			return super.greet();
		}
	}`)
	classB := prog.Statements[1].(*ast.ClassStmt)
	method := classB.Methods[0]
	retStmt := method.Body[0].(*ast.ReturnStmt)
	sup := retStmt.Value.(*ast.Call).Callee.(*ast.Super)
	depth, ok := r.Locals()[sup]
	if !ok {
		t.Fatal("super use-site missing from side table")
	}
	// super's scope sits one level further out than the method's `this`
	// scope (depth 1 from the method body), per spec.md's two-scope super
	// structure.
	if depth != 2 {
		t.Errorf("super depth = %d, want 2", depth)
	}
}
