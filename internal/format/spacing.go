package format

import (
	"c0nst/internal/token"
	"c0nst/internal/tt"
)

// spaceBefore decides whether s[i] is separated from s[i-1]. Glued pairs
// never merge two words, so the output lexes back to the same trees.
func spaceBefore(s tt.Stream, i int) bool {
	if s[i-1].Joint() || glueAfter(s, i-1) {
		return false
	}
	return !glueBefore(s, i)
}

// glueAfter: prefix punctuation that binds to whatever follows.
func glueAfter(s tt.Stream, i int) bool {
	t := s[i]
	if t.Kind != tt.KindPunct {
		return false
	}
	var next tt.Tree
	if i+1 < len(s) {
		next = s[i+1]
	}
	switch t.Text {
	case "#":
		return next.IsPunct('!') || next.IsGroup(tt.DelimBracket)
	case "!":
		// `#![..]` и `name!(..)`
		if next.Kind == tt.KindGroup && i > 0 && (s[i-1].IsPunct('#') || word(s[i-1])) {
			return true
		}
		return prefix(s, i)
	case "&", "?":
		return prefix(s, i)
	case "$":
		return true
	case "<":
		return true
	case ".":
		// `x.0` склеиваем, `x.0.1` нет: лексер прочтёт `0.1` как число
		return next.Kind != tt.KindLiteral || i+2 >= len(s) || !s[i+2].IsPunct('.')
	case ":":
		// вторая половина `::`
		return i > 0 && s[i-1].IsPunct(':') && s[i-1].Joint()
	}
	return false
}

func glueBefore(s tt.Stream, i int) bool {
	prev, cur := s[i-1], s[i]
	switch cur.Kind {
	case tt.KindPunct:
		switch cur.Text {
		case ",", ";":
			return true
		case ":":
			if cur.Joint() { // `a::b`, но `use ::std`
				return word(prev) || prev.IsPunct('>')
			}
			return operand(prev) || prev.IsPunct('>')
		case ".":
			return operand(prev) && prev.Kind != tt.KindLiteral
		case "?":
			return operand(prev)
		case ">":
			return (operand(prev) || prev.IsPunct('>')) && !assignOrCompare(s, i)
		case "<":
			return (word(prev) || prev.IsIdent("impl") || prev.IsIdent("for")) && !assignOrCompare(s, i)
		case "!":
			return word(prev) && !cur.Joint() && i+1 < len(s) && s[i+1].Kind != tt.KindPunct
		}
	case tt.KindGroup:
		switch cur.Delim {
		case tt.DelimParen, tt.DelimBracket:
			if word(prev) || prev.Kind == tt.KindGroup || prev.IsIdent("pub") {
				return true
			}
			// `fn f<T>()`, но не `-> ()` и не `=> (..)`
			if cur.Delim == tt.DelimParen && prev.IsPunct('>') && i >= 2 {
				return !s[i-2].Joint()
			}
		}
	}
	return false
}

// word is an identifier usable as a value or type name.
func word(t tt.Tree) bool {
	if t.Kind != tt.KindIdent {
		return false
	}
	switch t.Text {
	case "self", "Self", "super", "crate":
		return true
	}
	return !token.IsKeyword(t.Text)
}

func keyword(t tt.Tree) bool { return t.Kind == tt.KindIdent && !word(t) }

// prefix reports whether the punctuation at i is a unary prefix operator.
// A joint predecessor belongs to a compound operator such as `&&`.
func prefix(s tt.Stream, i int) bool {
	if i == 0 || keyword(s[i-1]) {
		return true
	}
	return s[i-1].Kind == tt.KindPunct && !s[i-1].Joint()
}

// assignOrCompare reports whether the joint run starting at i ends in `=`
// (`<=`, `>>=`), i.e. is an operator rather than an angle bracket.
func assignOrCompare(s tt.Stream, i int) bool {
	for ; i+1 < len(s) && s[i].Joint(); i++ {
		if s[i+1].IsPunct('=') {
			return true
		}
	}
	return false
}

// operand can be followed by postfix or closing punctuation.
func operand(t tt.Tree) bool {
	return word(t) || t.Kind == tt.KindLiteral || t.Kind == tt.KindGroup
}
