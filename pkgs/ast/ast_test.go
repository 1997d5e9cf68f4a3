package ast

import (
	"strings"
	"testing"

	"github.com/aledsdavies/glox/pkgs/token"
	"github.com/google/go-cmp/cmp"
)

func TestBuilderFixturesImplementMarkerInterfaces(t *testing.T) {
	prog := NewProgram(
		VarDecl("a", Num(1)),
		Print(BinOp(Var("a"), token.PLUS, "+", Num(2))),
	)
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}
	if _, ok := prog.Statements[0].(*VarStmt); !ok {
		t.Errorf("got %T, want *VarStmt", prog.Statements[0])
	}
}

func TestSexprRendersNestedStructure(t *testing.T) {
	prog := NewProgram(Print(BinOp(Num(1), token.PLUS, "+", Num(2))))
	out := Sexpr(prog)
	for _, want := range []string{"PrintStmt", "Binary +", "Literal 1", "Literal 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("Sexpr output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpProducesPlainMapSlices(t *testing.T) {
	prog := NewProgram(VarDecl("x", Num(5)))
	dump := Dump(prog)
	stmts, ok := dump["statements"].([]interface{})
	if !ok || len(stmts) != 1 {
		t.Fatalf("got %#v", dump)
	}
	node, ok := stmts[0].(map[string]interface{})
	if !ok || node["node"] != "VarStmt" || node["name"] != "x" {
		t.Fatalf("got %#v", node)
	}
}

func TestDumpIsStableAcrossEquivalentTrees(t *testing.T) {
	a := Dump(NewProgram(VarDecl("x", Num(5))))
	b := Dump(NewProgram(VarDecl("x", Num(5))))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Dump() of equivalent trees differs (-first +second):\n%s", diff)
	}
}
