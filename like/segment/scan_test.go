package segment

import (
	"errors"
	"testing"
)

func collectTokens(t *testing.T, pattern string) []Token {
	t.Helper()
	var toks []Token
	err := Scan([]byte(pattern), func(tok Token) bool {
		toks = append(toks, tok)
		return true
	})
	if err != nil {
		t.Fatalf("Scan(%q) returned error: %v", pattern, err)
	}
	return toks
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []Token
	}{
		{
			name:    "plain literals",
			pattern: "ab",
			want: []Token{
				{Kind: TokenLiteral, Byte: 'a', Pos: 0},
				{Kind: TokenLiteral, Byte: 'b', Pos: 1},
			},
		},
		{
			name:    "wildcards",
			pattern: "a%_",
			want: []Token{
				{Kind: TokenLiteral, Byte: 'a', Pos: 0},
				{Kind: TokenAnyRun, Pos: 1},
				{Kind: TokenAnyByte, Pos: 2},
			},
		},
		{
			name:    "escaped percent",
			pattern: `a\%b`,
			want: []Token{
				{Kind: TokenLiteral, Byte: 'a', Pos: 0},
				{Kind: TokenLiteral, Byte: '%', Pos: 1},
				{Kind: TokenLiteral, Byte: 'b', Pos: 3},
			},
		},
		{
			name:    "escaped underscore",
			pattern: `\_`,
			want: []Token{
				{Kind: TokenLiteral, Byte: '_', Pos: 0},
			},
		},
		{
			name:    "escaped backslash then wildcard",
			pattern: `\\%`,
			want: []Token{
				{Kind: TokenLiteral, Byte: '\\', Pos: 0},
				{Kind: TokenAnyRun, Pos: 2},
			},
		},
		{
			name:    "escaped ordinary byte",
			pattern: `\a`,
			want: []Token{
				{Kind: TokenLiteral, Byte: 'a', Pos: 0},
			},
		},
		{
			name:    "empty pattern",
			pattern: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectTokens(t, tt.pattern)
			if len(got) != len(tt.want) {
				t.Fatalf("token count = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScanTrailingEscape(t *testing.T) {
	for _, pattern := range []string{`\`, `abc\`, `a%\`, `\\\`} {
		t.Run(pattern, func(t *testing.T) {
			err := Scan([]byte(pattern), func(Token) bool { return true })
			if err == nil {
				t.Fatalf("Scan(%q) = nil error, want trailing escape error", pattern)
			}
			if !errors.Is(err, ErrTrailingEscape) {
				t.Errorf("error %v does not unwrap to ErrTrailingEscape", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			if pe.Pos != len(pattern)-1 {
				t.Errorf("ParseError.Pos = %d, want %d", pe.Pos, len(pattern)-1)
			}
		})
	}
}

func TestScanEarlyStop(t *testing.T) {
	var seen int
	err := Scan([]byte("abc"), func(Token) bool {
		seen++
		return seen < 2
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != 2 {
		t.Errorf("visited %d tokens, want 2", seen)
	}
}
