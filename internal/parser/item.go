package parser

import (
	"errors"

	"c0nst/internal/ast"
	"c0nst/internal/tt"
)

// parseItem разбирает один элемент; при неудаче откатывается и возвращает *ast.Other.
func (p *Parser) parseItem(ctx context) ast.Item {
	start := p.pos
	attrs := p.parseOuterAttrs()
	vis := p.parseVis()
	bodyStart := p.pos

	var (
		it  ast.Item
		err error
	)
	switch kw := p.lookKeyword(); {
	case p.at('#'):
		// внутренний атрибут вне начала тела
		err = errUnsupported
	case kw == "fn":
		it, err = p.parseFn()
	case ctx == ctxAssoc:
		err = errUnsupported
	case kw == "trait":
		it, err = p.parseTrait()
	case kw == "impl":
		it, err = p.parseImpl()
	case p.atIdent("struct"):
		it, err = p.parseStruct()
	case p.atIdent("enum"):
		it, err = p.parseEnum()
	case p.atIdent("union") && p.peekAt(1).Kind == tt.KindIdent:
		it, err = p.parseUnion()
	case p.atIdent("type"):
		it, err = p.parseTypeAlias()
	case p.atIdent("mod"):
		it, err = p.parseMod()
	default:
		err = errUnsupported
	}
	if err != nil {
		p.pos = bodyStart
		o := p.parseOther()
		o.Native = errors.Is(err, errNative)
		it = o
	}

	raw := p.s[start:p.pos]
	h := it.Head()
	h.Attrs = attrs
	h.Vis = vis
	h.Raw = raw
	h.Span = raw.Span()
	return it
}

// lookKeyword пропускает квалификаторы (const, async, unsafe, extern "abi",
// default, auto) и возвращает первое ключевое слово элемента.
func (p *Parser) lookKeyword() string {
	for i := 0; ; i++ {
		t := p.peekAt(i)
		if t.Kind != tt.KindIdent {
			return ""
		}
		switch t.Text {
		case "const", "async", "unsafe", "default", "auto":
			continue
		case "extern":
			if p.peekAt(i+1).Kind == tt.KindLiteral {
				i++
			}
			continue
		}
		return t.Text
	}
}

func (p *Parser) parseOuterAttrs() []ast.Attr {
	var attrs []ast.Attr
	for p.at('#') && p.peekAt(1).IsGroup(tt.DelimBracket) {
		start := p.pos
		p.pos += 2
		attrs = append(attrs, ast.Attr{Tokens: p.s[start:p.pos]})
	}
	return attrs
}

func (p *Parser) parseInnerAttrs() []ast.Attr {
	var attrs []ast.Attr
	for p.at('#') && p.peekAt(1).IsPunct('!') && p.peekAt(2).IsGroup(tt.DelimBracket) {
		start := p.pos
		p.pos += 3
		attrs = append(attrs, ast.Attr{Inner: true, Tokens: p.s[start:p.pos]})
	}
	return attrs
}

// parseVis: `pub`, `pub(crate)`, `pub(super)`, `pub(in path)`
func (p *Parser) parseVis() tt.Stream {
	if !p.atIdent("pub") {
		return nil
	}
	start := p.pos
	p.pos++
	if p.atGroup(tt.DelimParen) {
		inner := p.peek().Stream
		if len(inner) > 0 {
			switch inner[0].Text {
			case "crate", "super", "self", "in":
				p.pos++
			}
		}
	}
	return p.s[start:p.pos]
}

// parseBody разбирает содержимое фигурных скобок trait/impl/mod.
func parseBody(group tt.Tree, ctx context) ([]ast.Attr, []ast.Item) {
	bp := newParser(group.Stream)
	inner := bp.parseInnerAttrs()
	return inner, bp.parseItems(ctx)
}

// parseOther съедает неподдерживаемый элемент целиком: до `;` верхнего уровня
// или до тела в фигурных скобках.
func (p *Parser) parseOther() *ast.Other {
	o := &ast.Other{}
	if p.at('#') && p.peekAt(1).IsPunct('!') && p.peekAt(2).IsGroup(tt.DelimBracket) {
		o.What = "inner attribute"
		p.pos += 3
		return o
	}

	untilSemi := false
	switch first := p.peek(); {
	case first.IsIdent("use"), first.IsIdent("let"):
		o.What, untilSemi = first.Text, true
	case first.IsIdent("static"), first.IsIdent("type"):
		o.What, untilSemi = first.Text, true
		o.Name = identAfter(p, 1, "mut")
	case first.IsIdent("const") && p.peekAt(2).IsPunct(':'):
		o.What, untilSemi = "const", true
		o.Name = identAfter(p, 1, "")
	case first.IsIdent("extern") && p.peekAt(1).IsIdent("crate"):
		o.What, untilSemi = "extern crate", true
		o.Name = identAfter(p, 2, "")
	case first.IsIdent("extern"):
		o.What = "extern block"
	case first.IsIdent("macro_rules") && p.peekAt(1).IsPunct('!'):
		o.What = "macro_rules!"
		o.Name = identAfter(p, 2, "")
	case first.Kind == tt.KindIdent && p.peekAt(1).IsPunct('!'):
		o.What = "macro invocation"
		o.Name = first.Text
	default:
		o.What = p.lookKeyword()
	}

	for !p.eof() {
		t := p.advance()
		if t.IsPunct(';') {
			break
		}
		if t.IsGroup(tt.DelimBrace) && !untilSemi {
			p.eat(';')
			break
		}
	}
	return o
}

// identAfter возвращает идентификатор на позиции n, пропуская optional.
func identAfter(p *Parser, n int, optional string) string {
	t := p.peekAt(n)
	if optional != "" && t.IsIdent(optional) {
		t = p.peekAt(n + 1)
	}
	if t.Kind != tt.KindIdent {
		return ""
	}
	return t.Text
}
