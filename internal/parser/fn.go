package parser

import (
	"c0nst/internal/ast"
	"c0nst/internal/tt"
)

// parseFn: `const? async? unsafe? (extern "abi")? fn name<..>(..) -> Ty where .. { .. } | ;`
func (p *Parser) parseFn() (ast.Item, error) {
	fn := &ast.Fn{}
	sig := &fn.Sig

	for {
		switch {
		case p.eatIdent("const"):
			sig.Const = true
			continue
		case p.eatIdent("async"):
			sig.Async = true
			continue
		case p.eatIdent("unsafe"):
			sig.Unsafe = true
			continue
		case p.atIdent("extern"):
			start := p.pos
			p.pos++
			if p.peek().Kind == tt.KindLiteral {
				p.pos++
			}
			sig.Abi = p.s[start:p.pos]
			continue
		}
		break
	}
	if !p.eatIdent("fn") {
		return nil, errUnsupported
	}

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	fn.Name = name

	if p.at('<') {
		if sig.Generics.Params, err = p.parseGenericParams(); err != nil {
			return nil, err
		}
	}

	if sig.Inputs, err = p.expectGroup(tt.DelimParen); err != nil {
		return nil, err
	}

	if p.atArrow() {
		sig.Output = p.collectUntil(func(p *Parser) bool {
			return p.atIdent("where") || p.atGroup(tt.DelimBrace) || p.at(';')
		})
	}

	if p.atIdent("where") {
		if sig.Generics.Where, err = p.parseWhere(false); err != nil {
			return nil, err
		}
	}

	switch {
	case p.atGroup(tt.DelimBrace):
		body := p.advance()
		fn.Body = &body
	case p.eat(';'):
	default:
		return nil, errUnsupported
	}
	return fn, nil
}
