// Package parser turns token trees into the declaration tree.
//
// The parser is deliberately partial: every item it cannot model exactly is
// returned as *ast.Other holding its tokens verbatim, so nothing is guessed.
package parser

import (
	"errors"
	"fmt"

	"c0nst/internal/ast"
	"c0nst/internal/tt"
)

var (
	// ErrEmpty is returned by ParseItem for a stream without items.
	ErrEmpty = errors.New("no item in token stream")
	// ErrTrailing is returned by ParseItem when more than one item follows.
	ErrTrailing = errors.New("unexpected tokens after item")

	errUnsupported = errors.New("unsupported item shape")
	errNative      = errors.New("item already uses native const syntax")
)

// context определяет, какие элементы допустимы на текущем уровне
type context uint8

const (
	ctxModule context = iota
	ctxAssoc          // тела trait/impl
)

// Parser - курсор по одному уровню token tree
type Parser struct {
	s   tt.Stream
	pos int
}

var eofTree = tt.Tree{Kind: tt.KindPunct}

func newParser(s tt.Stream) *Parser { return &Parser{s: s} }

// ParseFile parses every item of a stream. It never fails: unsupported
// declarations come back as *ast.Other.
func ParseFile(s tt.Stream) []ast.Item {
	p := newParser(s)
	return p.parseItems(ctxModule)
}

// ParseItem parses a stream that must hold exactly one item.
func ParseItem(s tt.Stream) (ast.Item, error) {
	items := ParseFile(s)
	switch len(items) {
	case 0:
		return nil, ErrEmpty
	case 1:
		return items[0], nil
	default:
		return nil, fmt.Errorf("%w: %d items, want 1", ErrTrailing, len(items))
	}
}

func (p *Parser) parseItems(ctx context) []ast.Item {
	var items []ast.Item
	for !p.eof() {
		items = append(items, p.parseItem(ctx))
	}
	return items
}

func (p *Parser) eof() bool { return p.pos >= len(p.s) }

func (p *Parser) peek() tt.Tree { return p.peekAt(0) }

func (p *Parser) peekAt(n int) tt.Tree {
	if p.pos+n >= len(p.s) {
		return eofTree
	}
	return p.s[p.pos+n]
}

// prev возвращает последний съеденный токен
func (p *Parser) prev() tt.Tree {
	if p.pos == 0 || p.pos > len(p.s) {
		return eofTree
	}
	return p.s[p.pos-1]
}

func (p *Parser) advance() tt.Tree {
	t := p.peek()
	if !p.eof() {
		p.pos++
	}
	return t
}

func (p *Parser) at(ch byte) bool             { return p.peek().IsPunct(ch) }
func (p *Parser) atIdent(text string) bool    { return p.peek().IsIdent(text) }
func (p *Parser) atGroup(d tt.Delimiter) bool { return p.peek().IsGroup(d) }

func (p *Parser) eat(ch byte) bool {
	if p.at(ch) {
		p.pos++
		return true
	}
	return false
}

func (p *Parser) eatIdent(text string) bool {
	if p.atIdent(text) {
		p.pos++
		return true
	}
	return false
}

// atPathSep - `::` (первое двоеточие склеено со вторым)
func (p *Parser) atPathSep() bool {
	t := p.peek()
	return t.IsPunct(':') && t.Joint() && p.peekAt(1).IsPunct(':')
}

// atColon - одиночное `:`, не часть `::`
func (p *Parser) atColon() bool {
	t := p.peek()
	if !t.IsPunct(':') || (t.Joint() && p.peekAt(1).IsPunct(':')) {
		return false
	}
	prev := p.prev()
	return !(prev.IsPunct(':') && prev.Joint())
}

// atAssign - одиночное `=`, не `==`, `=>`, `<=`, `>=`, `!=`
func (p *Parser) atAssign() bool {
	t := p.peek()
	if !t.IsPunct('=') {
		return false
	}
	if t.Joint() && (p.peekAt(1).IsPunct('=') || p.peekAt(1).IsPunct('>')) {
		return false
	}
	prev := p.prev()
	return !(prev.Joint() && (prev.IsPunct('=') || prev.IsPunct('!') || prev.IsPunct('<') || prev.IsPunct('>')))
}

// atArrow - `->`
func (p *Parser) atArrow() bool {
	t := p.peek()
	return t.IsPunct('-') && t.Joint() && p.peekAt(1).IsPunct('>')
}

func (p *Parser) expectIdent() (string, error) {
	t := p.peek()
	if t.Kind != tt.KindIdent || t.Text == "" {
		return "", errUnsupported
	}
	p.pos++
	return t.Text, nil
}

func (p *Parser) expectGroup(d tt.Delimiter) (tt.Tree, error) {
	if !p.atGroup(d) {
		return tt.Tree{}, errUnsupported
	}
	return p.advance(), nil
}

// collectUntil собирает токены до stop на нулевой глубине угловых скобок.
func (p *Parser) collectUntil(stop func(p *Parser) bool) tt.Stream {
	start := p.pos
	depth := 0
	for !p.eof() {
		if depth == 0 && stop(p) {
			break
		}
		depth = angleDepth(depth, p.prev(), p.peek())
		p.pos++
	}
	return p.s[start:p.pos]
}

// angleDepth обновляет глубину `<...>`; `->` и `=>` не закрывают.
func angleDepth(depth int, prev, t tt.Tree) int {
	switch {
	case t.IsPunct('<'):
		return depth + 1
	case t.IsPunct('>'):
		if prev.Joint() && (prev.IsPunct('-') || prev.IsPunct('=')) {
			return depth
		}
		if depth > 0 {
			return depth - 1
		}
	}
	return depth
}

// angle съедает `<...>` и возвращает содержимое без скобок.
func (p *Parser) angle() (tt.Stream, error) {
	if !p.eat('<') {
		return nil, errUnsupported
	}
	inner := p.collectUntil(func(p *Parser) bool {
		return p.at('>') && !(p.prev().Joint() && (p.prev().IsPunct('-') || p.prev().IsPunct('=')))
	})
	if !p.eat('>') {
		return nil, errUnsupported
	}
	return inner, nil
}

// splitTop делит поток по разделителю sep, игнорируя вложенные `<...>`.
// Пустой хвост после завершающего разделителя отбрасывается.
func splitTop(s tt.Stream, sep byte) []tt.Stream {
	if len(s) == 0 {
		return nil
	}
	var (
		out   []tt.Stream
		start int
		depth int
		prev  = eofTree
	)
	for i, t := range s {
		if depth == 0 && t.IsPunct(sep) {
			out = append(out, s[start:i])
			start = i + 1
		} else {
			depth = angleDepth(depth, prev, t)
		}
		prev = t
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
