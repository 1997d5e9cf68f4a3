package loxerr

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMessageIncludesLineKindAndMessage(t *testing.T) {
	e := NewRuntimeError(3, 5, "Undefined variable 'x'.")
	msg := e.Error()
	if !strings.Contains(msg, "line 3") || !strings.Contains(msg, "RuntimeError") || !strings.Contains(msg, "Undefined variable 'x'.") {
		t.Errorf("Error() = %q", msg)
	}
}

func TestWithHintAppendsToMessage(t *testing.T) {
	e := NewRuntimeError(1, 1, "Undefined variable 'cnt'.").WithHint("Did you mean 'count'?")
	if !strings.Contains(e.Error(), "Did you mean 'count'?") {
		t.Errorf("Error() = %q", e.Error())
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("underlying")
	e := Wrap(ScanError, 1, 1, "wrapped", cause)
	if !errors.Is(e, cause) {
		t.Error("errors.Is should see through Unwrap() to the cause")
	}
}

func TestIsKind(t *testing.T) {
	e := NewParseError(1, 1, "boom")
	if !IsKind(e, ParseErrorKind) {
		t.Error("IsKind should report true for a matching kind")
	}
	if IsKind(e, RuntimeError) {
		t.Error("IsKind should report false for a non-matching kind")
	}
	if IsKind(errors.New("plain"), ScanError) {
		t.Error("IsKind should report false for a non-*Error")
	}
}
