package token_test

import (
	"testing"

	"c0nst/internal/token"
)

func TestCloser(t *testing.T) {
	cases := map[token.Kind]token.Kind{
		token.LParen:   token.RParen,
		token.LBrace:   token.RBrace,
		token.LBracket: token.RBracket,
		token.Ident:    token.Invalid,
	}
	for open, want := range cases {
		tok := token.Token{Kind: open}
		if got := tok.Closer(); got != want {
			t.Fatalf("Closer(%v) = %v, want %v", open, got, want)
		}
		if open != token.Ident && !tok.IsOpen() {
			t.Fatalf("%v should open a group", open)
		}
	}
}

func TestIsPunct(t *testing.T) {
	tok := token.Token{Kind: token.Punct, Text: ":"}
	if !tok.IsPunct(':') {
		t.Fatal("expected ':' punct")
	}
	if tok.IsPunct(';') {
		t.Fatal("':' must not match ';'")
	}
	if (token.Token{Kind: token.Ident, Text: ":"}).IsPunct(':') {
		t.Fatal("ident must not be punct")
	}
}

func TestIsKeyword(t *testing.T) {
	for _, kw := range []string{"fn", "impl", "trait", "where", "const"} {
		if !token.IsKeyword(kw) {
			t.Fatalf("%q should be a keyword", kw)
		}
	}
	// контекстные слова - обычные идентификаторы
	for _, s := range []string{"union", "auto", "default", "c0nst", "Fn"} {
		if token.IsKeyword(s) {
			t.Fatalf("%q must not be a keyword", s)
		}
	}
}

func TestDocText(t *testing.T) {
	cases := []struct {
		trivia token.Trivia
		want   string
	}{
		{token.Trivia{Kind: token.TriviaDocLine, Text: "/// Documentation"}, " Documentation"},
		{token.Trivia{Kind: token.TriviaInnerDoc, Text: "//! crate docs"}, " crate docs"},
		{token.Trivia{Kind: token.TriviaDocLine, Text: "/** block */"}, " block "},
		{token.Trivia{Kind: token.TriviaLineComment, Text: "// plain"}, ""},
	}
	for _, c := range cases {
		if got := c.trivia.DocText(); got != c.want {
			t.Errorf("DocText(%q) = %q, want %q", c.trivia.Text, got, c.want)
		}
	}
}
