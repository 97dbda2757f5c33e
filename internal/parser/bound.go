package parser

import (
	"c0nst/internal/ast"
	"c0nst/internal/token"
	"c0nst/internal/tt"
)

// parseBounds делит список по `+`; каждая граница хранит исходные токены.
func parseBounds(s tt.Stream) []ast.Bound {
	segs := splitTop(s, '+')
	bounds := make([]ast.Bound, 0, len(segs))
	for _, seg := range segs {
		if len(seg) == 0 {
			continue
		}
		bounds = append(bounds, ast.Bound{Raw: seg, Trait: parseTraitBound(seg)})
	}
	return bounds
}

// parseTraitBound возвращает nil для лайфтаймов и нераспознанных форм.
func parseTraitBound(seg tt.Stream) *ast.TraitBound {
	if len(seg) == 1 && seg[0].IsGroup(tt.DelimParen) {
		tb := parseTraitBound(seg[0].Stream)
		if tb != nil {
			tb.Paren = true
		}
		return tb
	}

	p := newParser(seg)
	tb := &ast.TraitBound{}
	if p.at('\'') {
		return nil
	}
	tb.Maybe = p.eat('?')
	if p.atIdent("for") && p.peekAt(1).IsPunct('<') {
		start := p.pos
		p.pos++
		if _, err := p.angle(); err != nil {
			return nil
		}
		tb.ForLifetimes = p.s[start:p.pos]
		if !tb.Maybe {
			tb.Maybe = p.eat('?')
		}
	}

	path, ok := p.parsePath()
	if !ok || !p.eof() {
		return nil
	}
	tb.Path = path
	return tb
}

// parsePath: `::? Seg (::? <Args> | (Args) -> Ty)? (:: Seg ...)*`
func (p *Parser) parsePath() (ast.Path, bool) {
	start := p.pos
	var path ast.Path
	if p.atPathSep() {
		path.Global = true
		p.pos += 2
	}
	for {
		t := p.peek()
		if !isPathIdent(t) {
			return path, false
		}
		p.pos++
		seg := ast.PathSegment{Ident: t.Text}

		if p.atPathSep() && p.peekAt(2).IsPunct('<') {
			p.pos += 2
		}
		switch {
		case p.at('<'):
			argsStart := p.pos
			inner, err := p.angle()
			if err != nil {
				return path, false
			}
			seg.Args = &ast.GenericArgs{Args: splitTop(inner, ','), Raw: p.s[argsStart:p.pos]}
		case p.atGroup(tt.DelimParen):
			argsStart := p.pos
			p.pos++
			if p.atArrow() {
				p.pos = len(p.s)
			}
			seg.Args = &ast.GenericArgs{Paren: true, Raw: p.s[argsStart:p.pos]}
		}
		path.Segments = append(path.Segments, seg)

		if !p.atPathSep() {
			break
		}
		p.pos += 2
	}
	path.Raw = p.s[start:p.pos]
	return path, true
}

func isPathIdent(t tt.Tree) bool {
	if t.Kind != tt.KindIdent || t.Text == "" || t.Text == "_" {
		return false
	}
	switch t.Text {
	case "self", "Self", "super", "crate":
		return true
	}
	return !token.IsKeyword(t.Text)
}

// IsTypePath reports whether a generic argument is a plain type path
// (not a lifetime, literal, block, reference, tuple or associated binding).
func IsTypePath(arg tt.Stream) bool {
	p := newParser(arg)
	if p.at('<') {
		// qualified path `<T as Trait>::Assoc`
		if _, err := p.angle(); err != nil || !p.atPathSep() {
			return false
		}
		p.pos += 2
	}
	if _, ok := p.parsePath(); !ok {
		return false
	}
	return p.eof()
}
