package dtparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func tok(kind TokenKind, text string) Token {
	return Token{Kind: kind, Text: text}
}

func TestTokenize(t *testing.T) {
	ws := tok(TokenWhitespace, " ")
	tests := []struct {
		in   string
		want []Token
	}{
		{"", nil},
		{"Sat Oct 11 17:13:46 UTC 2003", []Token{
			tok(TokenAlpha, "Sat"), ws, tok(TokenAlpha, "Oct"), ws, tok(TokenNumeric, "11"), ws,
			tok(TokenNumeric, "17"), tok(TokenSeparator, ":"), tok(TokenNumeric, "13"),
			tok(TokenSeparator, ":"), tok(TokenNumeric, "46"), ws,
			tok(TokenAlpha, "UTC"), ws, tok(TokenNumeric, "2003"),
		}},
		{"2003-09-25T10:49:41.5", []Token{
			tok(TokenNumeric, "2003"), tok(TokenSeparator, "-"), tok(TokenNumeric, "09"),
			tok(TokenSeparator, "-"), tok(TokenNumeric, "25"), tok(TokenAlpha, "T"),
			tok(TokenNumeric, "10"), tok(TokenSeparator, ":"), tok(TokenNumeric, "49"),
			tok(TokenSeparator, ":"), tok(TokenNumeric, "41"), tok(TokenSeparator, "."),
			tok(TokenNumeric, "5"),
		}},
		{"Mon Jan  2", []Token{
			tok(TokenAlpha, "Mon"), ws, tok(TokenAlpha, "Jan"), tok(TokenWhitespace, "  "), tok(TokenNumeric, "2"),
		}},
		{"10h36m", []Token{
			tok(TokenNumeric, "10"), tok(TokenAlpha, "h"), tok(TokenNumeric, "36"), tok(TokenAlpha, "m"),
		}},
		{"(CEST)--", []Token{
			tok(TokenSeparator, "("), tok(TokenAlpha, "CEST"), tok(TokenSeparator, ")"),
			tok(TokenSeparator, "-"), tok(TokenSeparator, "-"),
		}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.in)
		if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(Token{}, "Start", "End")); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTokenOffsets(t *testing.T) {
	for _, in := range []string{
		"Sat Oct 11 17:13:46 UTC 2003",
		"März 5 – 2023",
		"  leading and trailing \t",
		"Tue, 11 Jul 2017 04:08:03 +0200 (CEST)",
	} {
		end := 0
		for _, tk := range Tokenize(in) {
			assert.Equal(t, end, tk.Start, "tokens of %q must be contiguous", in)
			assert.Equal(t, in[tk.Start:tk.End], tk.Text, in)
			end = tk.End
		}
		assert.Equal(t, len(in), end, in)
	}
}

func TestTokenizeUnicode(t *testing.T) {
	got := Tokenize("März 5 – 2023")
	want := []Token{
		{Kind: TokenAlpha, Text: "März", Start: 0, End: 5},
		{Kind: TokenWhitespace, Text: " ", Start: 5, End: 6},
		{Kind: TokenNumeric, Text: "5", Start: 6, End: 7},
		{Kind: TokenWhitespace, Text: " ", Start: 7, End: 8},
		{Kind: TokenSeparator, Text: "–", Start: 8, End: 11},
		{Kind: TokenWhitespace, Text: " ", Start: 11, End: 12},
		{Kind: TokenNumeric, Text: "2023", Start: 12, End: 16},
	}
	assert.Equal(t, want, got)
}

func TestTokenizerNext(t *testing.T) {
	tz := NewTokenizer("10:30")
	var texts []string
	for {
		tk, ok := tz.Next()
		if !ok {
			break
		}
		texts = append(texts, tk.Text)
	}
	assert.Equal(t, []string{"10", ":", "30"}, texts)

	// exhausted tokenizers stay exhausted
	_, ok := tz.Next()
	assert.False(t, ok)
}

func TestLeadingZero(t *testing.T) {
	assert.True(t, tok(TokenNumeric, "07").LeadingZero())
	assert.True(t, tok(TokenNumeric, "0068").LeadingZero())
	assert.False(t, tok(TokenNumeric, "0").LeadingZero())
	assert.False(t, tok(TokenNumeric, "70").LeadingZero())
	assert.False(t, tok(TokenAlpha, "Oh").LeadingZero())
	assert.Equal(t, "numeric", TokenNumeric.String())
	assert.Equal(t, "separator", TokenSeparator.String())
}
