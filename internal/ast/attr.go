package ast

import (
	"c0nst/internal/source"
	"c0nst/internal/tt"
)

// Attr is `#[...]` or, when Inner is set, `#![...]`.
type Attr struct {
	Inner  bool
	Tokens tt.Stream
}

// Meta returns the contents of the attribute brackets.
func (a Attr) Meta() tt.Stream {
	if len(a.Tokens) == 0 {
		return nil
	}
	return a.Tokens[len(a.Tokens)-1].Stream
}

// IsPath reports whether the attribute is exactly `#[name]`.
func (a Attr) IsPath(name string) bool {
	m := a.Meta()
	return len(m) == 1 && m[0].IsIdent(name)
}

func (a Attr) Span() source.Span { return a.Tokens.Span() }

// HasAttr reports whether any outer attribute is exactly `#[name]`.
func HasAttr(attrs []Attr, name string) bool {
	for _, a := range attrs {
		if !a.Inner && a.IsPath(name) {
			return true
		}
	}
	return false
}

// WithoutAttr returns attrs minus every `#[name]`. The input is not modified.
func WithoutAttr(attrs []Attr, name string) []Attr {
	out := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		if !a.Inner && a.IsPath(name) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// NewAttr builds the outer attribute `#[name]`.
func NewAttr(name string) Attr {
	return Attr{Tokens: tt.Stream{tt.Punct('#'), tt.Group(tt.DelimBracket, tt.Stream{tt.Ident(name)})}}
}

// AttrTokens concatenates attribute tokens in order.
func AttrTokens(attrs []Attr) tt.Stream {
	var out tt.Stream
	for _, a := range attrs {
		out = append(out, a.Tokens...)
	}
	return out
}
