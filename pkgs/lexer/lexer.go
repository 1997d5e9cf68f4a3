// Package lexer turns Lox source text into a token stream.
package lexer

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/glox/pkgs/loxerr"
	"github.com/aledsdavies/glox/pkgs/token"
)

// ASCII classification tables, fast lookup for the hot scanning path.
var (
	isDigitASCII [128]bool
	isAlphaASCII [128]bool
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isDigitASCII[i] = ch >= '0' && ch <= '9'
		isAlphaASCII[i] = ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
	}
}

// Lexer is a single-pass scanner over a Lox source string.
type Lexer struct {
	runes []rune

	start   int // rune offset of the lexeme currently being scanned
	current int // rune offset of the next unconsumed rune
	line    int
	col     int // 0-based column of `start`

	errs []*loxerr.Error
}

// New creates a Lexer over the given source text.
func New(source string) *Lexer {
	return &Lexer{
		runes: []rune(source),
		line:  1,
		col:   0,
	}
}

// Scan tokenizes the entire source, always terminating with a single EOF
// token, and returns every ScannerError diagnostic encountered along the way.
// Scanning never stops at the first error: it reports and continues.
func (l *Lexer) Scan() ([]token.Token, []*loxerr.Error) {
	var tokens []token.Token
	for {
		tok, ok := l.nextToken()
		if !ok {
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens, l.errs
}

func (l *Lexer) nextToken() (token.Token, bool) {
	l.skipWhitespaceAndComments()
	l.start = l.current
	startLine, startCol := l.line, l.col

	if l.isAtEnd() {
		return token.Token{Type: token.EOF, Line: startLine, Column: startCol}, true
	}

	c := l.advance()

	switch {
	case c == '(':
		return l.makeAt(token.LPAREN, startLine, startCol), true
	case c == ')':
		return l.makeAt(token.RPAREN, startLine, startCol), true
	case c == '{':
		return l.makeAt(token.LBRACE, startLine, startCol), true
	case c == '}':
		return l.makeAt(token.RBRACE, startLine, startCol), true
	case c == ',':
		return l.makeAt(token.COMMA, startLine, startCol), true
	case c == '.':
		return l.makeAt(token.DOT, startLine, startCol), true
	case c == '-':
		return l.makeAt(token.MINUS, startLine, startCol), true
	case c == '+':
		return l.makeAt(token.PLUS, startLine, startCol), true
	case c == ';':
		return l.makeAt(token.SEMICOLON, startLine, startCol), true
	case c == '*':
		return l.makeAt(token.STAR, startLine, startCol), true
	case c == '/':
		return l.makeAt(token.SLASH, startLine, startCol), true
	case c == '!':
		return l.makeAt(l.ifMatch('=', token.BANG_EQUAL, token.BANG), startLine, startCol), true
	case c == '=':
		return l.makeAt(l.ifMatch('=', token.EQUAL_EQUAL, token.EQUAL), startLine, startCol), true
	case c == '<':
		return l.makeAt(l.ifMatch('=', token.LESS_EQUAL, token.LESS), startLine, startCol), true
	case c == '>':
		return l.makeAt(l.ifMatch('=', token.GREATER_EQUAL, token.GREATER), startLine, startCol), true
	case c == '"':
		return l.scanString(startLine, startCol)
	case isDigit(c):
		return l.scanNumber(startLine, startCol), true
	case isAlpha(c):
		return l.scanIdentifier(startLine, startCol), true
	default:
		l.errs = append(l.errs, loxerr.NewScanError(startLine, startCol,
			"Unexpected character '"+string(c)+"'."))
		return token.Token{}, false
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		if l.isAtEnd() {
			return
		}
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		case '\n':
			l.advance()
			l.line++
			l.col = 0
		case '/':
			if l.peekNext() == '/' {
				for !l.isAtEnd() && l.peek() != '\n' {
					l.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanString(startLine, startCol int) (token.Token, bool) {
	var sb strings.Builder
	for !l.isAtEnd() && l.peek() != '"' {
		c := l.advance()
		if c == '\n' {
			l.line++
			l.col = 0
		}
		sb.WriteRune(c)
	}
	if l.isAtEnd() {
		l.errs = append(l.errs, loxerr.NewScanError(startLine, startCol, "Unterminated string."))
		return token.Token{}, false
	}
	l.advance() // closing quote
	tok := l.makeAt(token.STRING, startLine, startCol)
	tok.Literal = sb.String()
	return tok, true
}

func (l *Lexer) scanNumber(startLine, startCol int) token.Token {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}
	if !l.isAtEnd() && l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.advance() // consume '.'
		for !l.isAtEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}
	tok := l.makeAt(token.NUMBER, startLine, startCol)
	f, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		// Unreachable for a well-formed scan, but keep Literal well-defined.
		f = 0
	}
	tok.Literal = f
	return tok
}

func (l *Lexer) scanIdentifier(startLine, startCol int) token.Token {
	for !l.isAtEnd() && isAlphaNumeric(l.peek()) {
		l.advance()
	}
	lexeme := string(l.runes[l.start:l.current])
	typ := token.IDENTIFIER
	if kw, ok := token.Keywords[lexeme]; ok {
		typ = kw
	}
	tok := l.makeAt(typ, startLine, startCol)
	if lexeme == "true" {
		tok.Literal = true
	} else if lexeme == "false" {
		tok.Literal = false
	}
	return tok
}

func (l *Lexer) makeAt(typ token.Type, line, col int) token.Token {
	lexeme := string(l.runes[l.start:l.current])
	return token.Token{
		Type:   typ,
		Lexeme: lexeme,
		Line:   line,
		Column: col,
		Length: l.current - l.start,
	}
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.runes)
}

func (l *Lexer) advance() rune {
	c := l.runes[l.current]
	l.current++
	l.col++
	return c
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.runes[l.current]
}

func (l *Lexer) peekNext() rune {
	return l.peekAt(1)
}

func (l *Lexer) peekAt(offset int) rune {
	idx := l.current + offset
	if idx >= len(l.runes) {
		return 0
	}
	return l.runes[idx]
}

func (l *Lexer) ifMatch(expect rune, ifTrue, ifFalse token.Type) token.Type {
	if !l.isAtEnd() && l.peek() == expect {
		l.advance()
		return ifTrue
	}
	return ifFalse
}

func isDigit(c rune) bool {
	if c < 128 {
		return isDigitASCII[c]
	}
	return false
}

func isAlpha(c rune) bool {
	if c < 128 {
		return isAlphaASCII[c]
	}
	return false
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
