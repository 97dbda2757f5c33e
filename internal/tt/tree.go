// Package tt models token trees: the order-preserving stream of identifiers,
// punctuation, literals and delimited groups that both rewriting engines consume.
package tt

import (
	"fmt"
	"strings"

	"c0nst/internal/source"
	"c0nst/internal/token"
)

// Kind is the category of a single Tree.
type Kind uint8

const (
	// KindIdent is an identifier or keyword.
	KindIdent Kind = iota
	// KindPunct is a single punctuation character.
	KindPunct
	// KindLiteral is a string, char, byte or numeric literal.
	KindLiteral
	// KindGroup is a delimited sub-stream.
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindIdent:
		return "Ident"
	case KindPunct:
		return "Punct"
	case KindLiteral:
		return "Literal"
	case KindGroup:
		return "Group"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Delimiter of a group.
type Delimiter uint8

const (
	DelimNone Delimiter = iota
	DelimParen
	DelimBrace
	DelimBracket
)

// Open returns the opening character, or "" for DelimNone.
func (d Delimiter) Open() string {
	switch d {
	case DelimParen:
		return "("
	case DelimBrace:
		return "{"
	case DelimBracket:
		return "["
	default:
		return ""
	}
}

// Close returns the closing character, or "" for DelimNone.
func (d Delimiter) Close() string {
	switch d {
	case DelimParen:
		return ")"
	case DelimBrace:
		return "}"
	case DelimBracket:
		return "]"
	default:
		return ""
	}
}

func (d Delimiter) String() string {
	switch d {
	case DelimParen:
		return "paren"
	case DelimBrace:
		return "brace"
	case DelimBracket:
		return "bracket"
	default:
		return "none"
	}
}

// Tree is one token tree. Trees are values; rewriting builds new streams
// and never mutates the input.
type Tree struct {
	Kind    Kind
	Text    string        // Ident, Punct, Literal
	Spacing token.Spacing // Punct only
	Delim   Delimiter     // Group only
	Stream  Stream        // Group only
	Span    source.Span
}

// Stream is an ordered sequence of trees.
type Stream []Tree

// Ident builds an identifier tree.
func Ident(text string) Tree { return Tree{Kind: KindIdent, Text: text} }

// Punct builds an alone punctuation tree.
func Punct(ch byte) Tree { return Tree{Kind: KindPunct, Text: string(ch)} }

// JointPunct builds a punctuation tree glued to the next one.
func JointPunct(ch byte) Tree {
	return Tree{Kind: KindPunct, Text: string(ch), Spacing: token.Joint}
}

// Literal builds a literal tree from its source spelling.
func Literal(text string) Tree { return Tree{Kind: KindLiteral, Text: text} }

// Group builds a delimited group.
func Group(delim Delimiter, inner Stream) Tree {
	return Tree{Kind: KindGroup, Delim: delim, Stream: inner}
}

// IsIdent reports whether t is the identifier text.
func (t Tree) IsIdent(text string) bool { return t.Kind == KindIdent && t.Text == text }

// IsPunct reports whether t is the punctuation character ch.
func (t Tree) IsPunct(ch byte) bool {
	return t.Kind == KindPunct && len(t.Text) == 1 && t.Text[0] == ch
}

// IsGroup reports whether t is a group with the given delimiter.
func (t Tree) IsGroup(delim Delimiter) bool { return t.Kind == KindGroup && t.Delim == delim }

// Joint reports whether t is punctuation glued to the following tree.
func (t Tree) Joint() bool { return t.Kind == KindPunct && t.Spacing == token.Joint }

// String renders the tree. Groups render their contents between delimiters.
func (t Tree) String() string {
	if t.Kind != KindGroup {
		return t.Text
	}
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t Tree) write(sb *strings.Builder) {
	if t.Kind != KindGroup {
		sb.WriteString(t.Text)
		return
	}
	sb.WriteString(t.Delim.Open())
	if t.Delim == DelimBrace && len(t.Stream) > 0 {
		sb.WriteByte(' ')
		t.Stream.write(sb)
		sb.WriteByte(' ')
	} else {
		t.Stream.write(sb)
	}
	sb.WriteString(t.Delim.Close())
}

// String renders the stream with single spaces between trees,
// except directly after joint punctuation.
func (s Stream) String() string {
	var sb strings.Builder
	s.write(&sb)
	return sb.String()
}

func (s Stream) write(sb *strings.Builder) {
	for i, t := range s {
		if i > 0 && !s[i-1].Joint() {
			sb.WriteByte(' ')
		}
		t.write(sb)
	}
}

// Span covers the first through last tree that carries a location.
// Synthesised trees have a zero span and are skipped.
func (s Stream) Span() source.Span {
	var (
		sp  source.Span
		set bool
	)
	for _, t := range s {
		if t.Span == (source.Span{}) {
			continue
		}
		if !set {
			sp, set = t.Span, true
			continue
		}
		sp = sp.Cover(t.Span)
	}
	return sp
}

// Clone returns a deep copy of the stream.
func (s Stream) Clone() Stream {
	if s == nil {
		return nil
	}
	out := make(Stream, len(s))
	for i, t := range s {
		if t.Kind == KindGroup {
			t.Stream = t.Stream.Clone()
		}
		out[i] = t
	}
	return out
}

// Equal compares two trees by rendered text.
func Equal(a, b Tree) bool {
	if a.Kind != KindGroup && b.Kind != KindGroup {
		return a.Text == b.Text
	}
	return a.String() == b.String()
}

// Concat joins streams into a fresh stream.
func Concat(parts ...Stream) Stream {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(Stream, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
