package dtparse

import (
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a run of input characters.
type TokenKind uint8

const (
	TokenNumeric TokenKind = iota + 1
	TokenAlpha
	TokenSeparator
	TokenWhitespace
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumeric:
		return "numeric"
	case TokenAlpha:
		return "alpha"
	case TokenSeparator:
		return "separator"
	case TokenWhitespace:
		return "whitespace"
	}
	return "unknown"
}

// Token is one classified run of the input. Start and End are byte offsets
// into the original string, so input[Start:End] == Text.
type Token struct {
	Kind  TokenKind
	Text  string
	Start int
	End   int
}

// LeadingZero reports a multi digit numeric token written with a leading 0,
// eg "07".
func (t Token) LeadingZero() bool {
	return t.Kind == TokenNumeric && len(t.Text) > 1 && t.Text[0] == '0'
}

func (t Token) is(kind TokenKind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// Tokenizer splits a date string into tokens in a single forward pass.
// To start over, create a new Tokenizer on the same input.
type Tokenizer struct {
	s   string
	pos int
}

// NewTokenizer returns a Tokenizer reading datestr.
func NewTokenizer(datestr string) *Tokenizer {
	return &Tokenizer{s: datestr}
}

// Next returns the next token, false once the input is exhausted.
func (t *Tokenizer) Next() (Token, bool) {
	if t.pos >= len(t.s) {
		return Token{}, false
	}
	start := t.pos
	r, size := utf8.DecodeRuneInString(t.s[start:])

	var kind TokenKind
	var in func(rune) bool
	switch {
	case isDigit(r):
		kind, in = TokenNumeric, isDigit
	case unicode.IsLetter(r):
		kind, in = TokenAlpha, unicode.IsLetter
	case unicode.IsSpace(r):
		kind, in = TokenWhitespace, unicode.IsSpace
	default:
		// separators are always a single rune
		t.pos += size
		return Token{Kind: TokenSeparator, Text: t.s[start:t.pos], Start: start, End: t.pos}, true
	}

	t.pos += size
	for t.pos < len(t.s) {
		r, size = utf8.DecodeRuneInString(t.s[t.pos:])
		if !in(r) {
			break
		}
		t.pos += size
	}
	return Token{Kind: kind, Text: t.s[start:t.pos], Start: start, End: t.pos}, true
}

// Tokenize returns every token of datestr in input order.
func Tokenize(datestr string) []Token {
	var tokens []Token
	tz := NewTokenizer(datestr)
	for {
		tok, ok := tz.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
