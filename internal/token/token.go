package token

import (
	"c0nst/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Spacing Spacing // only meaningful for Punct
	Leading []Trivia
}

// IsOpen reports whether the token opens a delimited group.
func (t Token) IsOpen() bool {
	return t.Kind == LParen || t.Kind == LBrace || t.Kind == LBracket
}

// IsClose reports whether the token closes a delimited group.
func (t Token) IsClose() bool {
	return t.Kind == RParen || t.Kind == RBrace || t.Kind == RBracket
}

// Closer returns the closing kind matching an opening delimiter, or Invalid.
func (t Token) Closer() Kind {
	switch t.Kind {
	case LParen:
		return RParen
	case LBrace:
		return RBrace
	case LBracket:
		return RBracket
	default:
		return Invalid
	}
}

// IsPunct reports whether the token is the punctuation character ch.
func (t Token) IsPunct(ch byte) bool {
	return t.Kind == Punct && len(t.Text) == 1 && t.Text[0] == ch
}

// IsIdent reports whether the token is an identifier (or keyword) spelled text.
func (t Token) IsIdent(text string) bool { return t.Kind == Ident && t.Text == text }
