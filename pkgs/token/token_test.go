package token

import "testing"

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{EOF, "EOF"},
		{LPAREN, "LPAREN"},
		{BANG_EQUAL, "BANG_EQUAL"},
		{PRINT, "PRINT"},
		{Type(9999), "Type(9999)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestKeywordsCoverReservedWords(t *testing.T) {
	want := []string{"and", "class", "else", "false", "for", "fun", "if",
		"nil", "or", "print", "return", "super", "this", "true", "var", "while"}
	for _, w := range want {
		if _, ok := Keywords[w]; !ok {
			t.Errorf("Keywords missing reserved word %q", w)
		}
	}
	if len(Keywords) != len(want) {
		t.Errorf("Keywords has %d entries, want %d (unexpected extra keyword)", len(Keywords), len(want))
	}
}

func TestTokenPosition(t *testing.T) {
	tok := Token{Type: IDENTIFIER, Lexeme: "x", Line: 3, Column: 7}
	if got, want := tok.Position(), "3:7"; got != want {
		t.Errorf("Position() = %q, want %q", got, want)
	}
}

func TestTokenString(t *testing.T) {
	withLiteral := Token{Type: NUMBER, Lexeme: "1.5", Literal: 1.5}
	if got := withLiteral.String(); got != `NUMBER "1.5" 1.5` {
		t.Errorf("String() = %q", got)
	}

	noLiteral := Token{Type: PLUS, Lexeme: "+"}
	if got := noLiteral.String(); got != `PLUS "+"` {
		t.Errorf("String() = %q", got)
	}
}
