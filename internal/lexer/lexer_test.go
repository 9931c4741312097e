package lexer

import (
	"testing"

	"github.com/computorv2/computorv2/internal/token"
)

func TestTokenizeBasic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Type
	}{
		{"arithmetic", "2 + 3 * 4", []token.Type{token.NUMBER, token.PLUS, token.NUMBER, token.ASTERISK, token.NUMBER, token.EOF}},
		{"power_caret", "x ^ 2", []token.Type{token.IDENT, token.POW, token.NUMBER, token.EOF}},
		{"power_star_star", "A ** B", []token.Type{token.IDENT, token.POW, token.IDENT, token.EOF}},
		{"imag_unit_alone", "i", []token.Type{token.IMAG, token.EOF}},
		{"imag_inside_ident", "pi", []token.Type{token.IDENT, token.EOF}},
		{"float", "3.14", []token.Type{token.NUMBER, token.EOF}},
		{"query", "x = 2 ?", []token.Type{token.IDENT, token.ASSIGN, token.NUMBER, token.QUESTION, token.EOF}},
		{"matrix", "[[1,2];[3,4]]", []token.Type{
			token.LBRACKET, token.LBRACKET, token.NUMBER, token.COMMA, token.NUMBER, token.RBRACKET,
			token.SEMICOLON, token.LBRACKET, token.NUMBER, token.COMMA, token.NUMBER, token.RBRACKET,
			token.RBRACKET, token.EOF,
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(tc.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tc.input, err)
			}
			if len(toks) != len(tc.want) {
				t.Fatalf("Tokenize(%q) = %d tokens, want %d: %v", tc.input, len(toks), len(tc.want), toks)
			}
			for i, got := range toks {
				if got.Type != tc.want[i] {
					t.Errorf("token %d: got %s, want %s", i, got.Type, tc.want[i])
				}
			}
		})
	}
}

func TestTrailingDotRejected(t *testing.T) {
	_, err := Tokenize("3.")
	if err == nil {
		t.Fatal("expected error for trailing dot, got nil")
	}
}

func TestUnrecognisedCharacter(t *testing.T) {
	_, err := Tokenize("2 @ 3")
	if err == nil {
		t.Fatal("expected error for '@', got nil")
	}
	lexErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *lexer.Error, got %T", err)
	}
	if lexErr.Char != '@' {
		t.Errorf("Char = %q, want '@'", lexErr.Char)
	}
}

func TestImplicitMultiplicationLexesAsNumberThenIdentifier(t *testing.T) {
	// "2x" is not a single NUMBER token followed by IDENT merge; the lexer
	// itself tokenizes fine (NUMBER, IDENT) but the parser must reject it,
	// since implicit multiplication is unsupported (§4.P).
	toks, err := Tokenize("2x")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	want := []token.Type{token.NUMBER, token.IDENT, token.EOF}
	for i, tok := range toks {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %s, want %s", i, tok.Type, want[i])
		}
	}
}
