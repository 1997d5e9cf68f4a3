package interpreter

import "testing"

func TestEnvironmentGetWalksEnclosingChain(t *testing.T) {
	globals := NewEnvironment(nil)
	globals.Define("a", "global-a")
	child := NewEnvironment(globals)

	v, err := child.Get("a", 1, 1)
	if err != nil || v != "global-a" {
		t.Fatalf("Get() = %v, %v", v, err)
	}
}

func TestEnvironmentGetUndefinedIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get("missing", 2, 3)
	if err == nil {
		t.Fatal("expected an error for an undefined variable")
	}
}

func TestEnvironmentAssignWritesNearestDefiningScope(t *testing.T) {
	globals := NewEnvironment(nil)
	globals.Define("a", 1.0)
	child := NewEnvironment(globals)

	if err := child.Assign("a", 2.0, 1, 1); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	v, _ := globals.Get("a", 1, 1)
	if v != 2.0 {
		t.Errorf("globals.a = %v, want 2.0 (assign should not shadow into child)", v)
	}
}

func TestEnvironmentAssignUndefinedIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	if err := env.Assign("missing", 1.0, 1, 1); err == nil {
		t.Fatal("expected an error assigning to an undefined variable")
	}
}

func TestGetAtAndAssignAtUseExactDepth(t *testing.T) {
	globals := NewEnvironment(nil)
	globals.Define("a", "depth2")
	mid := NewEnvironment(globals)
	mid.Define("a", "depth1")
	inner := NewEnvironment(mid)
	inner.Define("a", "depth0")

	if got := inner.GetAt(0, "a"); got != "depth0" {
		t.Errorf("GetAt(0) = %v", got)
	}
	if got := inner.GetAt(1, "a"); got != "depth1" {
		t.Errorf("GetAt(1) = %v", got)
	}
	if got := inner.GetAt(2, "a"); got != "depth2" {
		t.Errorf("GetAt(2) = %v", got)
	}

	inner.AssignAt(1, "a", "mutated")
	if got := mid.GetAt(0, "a"); got != "mutated" {
		t.Errorf("after AssignAt(1), mid.a = %v, want mutated", got)
	}
}

func TestAllNamesWalksFullChainInnermostFirst(t *testing.T) {
	globals := NewEnvironment(nil)
	globals.Define("g", 1.0)
	child := NewEnvironment(globals)
	child.Define("c", 2.0)

	names := child.AllNames()
	if len(names) != 2 {
		t.Fatalf("got %v", names)
	}
	if names[0] != "c" {
		t.Errorf("innermost name first: got %v, want c first", names)
	}
}
