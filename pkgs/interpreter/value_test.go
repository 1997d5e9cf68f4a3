package interpreter

import "testing"

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		v    interface{}
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{0.0, true},
		{"", true},
	}
	for _, tt := range tests {
		if got := isTruthy(tt.v); got != tt.want {
			t.Errorf("isTruthy(%#v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestIsEqual(t *testing.T) {
	tests := []struct {
		a, b interface{}
		want bool
	}{
		{nil, nil, true},
		{nil, false, false},
		{1.0, 1.0, true},
		{1.0, 2.0, false},
		{"a", "a", true},
		{"a", 1.0, false},
		{true, true, true},
	}
	for _, tt := range tests {
		if got := isEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("isEqual(%#v, %#v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		v    interface{}
		want string
	}{
		{nil, "nil"},
		{true, "true"},
		{false, "false"},
		{"hello", "hello"},
		{3.0, "3"},
		{3.25, "3.25"},
	}
	for _, tt := range tests {
		if got := stringify(tt.v); got != tt.want {
			t.Errorf("stringify(%#v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestStringifyInstanceUsesClassNameInstanceForm(t *testing.T) {
	class := &Class{Name: "Widget", Methods: map[string]*Function{}}
	instance := &Instance{class: class, fields: map[string]interface{}{}}
	if got := stringify(instance); got != "Widget instance" {
		t.Errorf("stringify(instance) = %q, want %q", got, "Widget instance")
	}
}

func TestFormatNumberAvoidsExponentialNotation(t *testing.T) {
	if got := formatNumber(1e20); got == "1e+20" {
		t.Errorf("formatNumber(1e20) = %q, should not use exponential notation", got)
	}
}
