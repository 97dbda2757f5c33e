package parser

import (
	"c0nst/internal/ast"
	"c0nst/internal/tt"
)

// parseTrait: `unsafe? auto? trait Name<..> (: Bounds)? where .. { items }`
func (p *Parser) parseTrait() (ast.Item, error) {
	tr := &ast.Trait{}
	if p.atIdent("const") {
		return nil, errNative
	}
	tr.Unsafe = p.eatIdent("unsafe")
	tr.Auto = p.eatIdent("auto")
	if !p.eatIdent("trait") {
		return nil, errUnsupported
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	tr.Name = name

	if p.at('<') {
		if tr.Generics.Params, err = p.parseGenericParams(); err != nil {
			return nil, err
		}
	}
	if p.atColon() {
		p.pos++
		supers := p.collectUntil(func(p *Parser) bool {
			return p.atIdent("where") || p.atGroup(tt.DelimBrace)
		})
		tr.Supertraits = parseBounds(supers)
	}
	if p.atIdent("where") {
		if tr.Generics.Where, err = p.parseWhere(false); err != nil {
			return nil, err
		}
	}

	body, err := p.expectGroup(tt.DelimBrace)
	if err != nil {
		return nil, err
	}
	tr.Inner, tr.Items = parseBody(body, ctxAssoc)
	return tr, nil
}

// parseImpl: `default? unsafe? impl<..> (!? Trait for)? SelfTy where .. { items }`
func (p *Parser) parseImpl() (ast.Item, error) {
	im := &ast.Impl{}
	im.Default = p.eatIdent("default")
	im.Unsafe = p.eatIdent("unsafe")
	if !p.eatIdent("impl") {
		return nil, errUnsupported
	}

	var err error
	if p.at('<') {
		if im.Generics.Params, err = p.parseGenericParams(); err != nil {
			return nil, err
		}
	}
	if p.atIdent("const") {
		// уже нативный синтаксис `impl const Trait`
		return nil, errNative
	}

	head := p.collectUntil(func(p *Parser) bool {
		return p.atIdent("where") || p.atGroup(tt.DelimBrace)
	})
	if forAt := indexFor(head); forAt >= 0 {
		trait := head[:forAt]
		if len(trait) > 0 && trait[0].IsPunct('!') {
			im.Negative = true
			trait = trait[1:]
		}
		im.Trait = trait
		im.SelfTy = head[forAt+1:]
		if len(im.Trait) == 0 {
			return nil, errUnsupported
		}
	} else {
		im.SelfTy = head
	}
	if len(im.SelfTy) == 0 {
		return nil, errUnsupported
	}

	if p.atIdent("where") {
		if im.Generics.Where, err = p.parseWhere(false); err != nil {
			return nil, err
		}
	}
	body, err := p.expectGroup(tt.DelimBrace)
	if err != nil {
		return nil, err
	}
	im.Inner, im.Items = parseBody(body, ctxAssoc)
	return im, nil
}

// indexFor ищет `for` верхнего уровня, не являющийся `for<'a>`.
func indexFor(s tt.Stream) int {
	depth := 0
	prev := eofTree
	for i, t := range s {
		if depth == 0 && t.IsIdent("for") && !(i+1 < len(s) && s[i+1].IsPunct('<')) {
			return i
		}
		depth = angleDepth(depth, prev, t)
		prev = t
	}
	return -1
}

// parseStruct: braced, tuple or unit struct.
func (p *Parser) parseStruct() (ast.Item, error) {
	st := &ast.Struct{}
	p.pos++ // struct
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	st.Name = name
	if p.at('<') {
		if st.Generics.Params, err = p.parseGenericParams(); err != nil {
			return nil, err
		}
	}

	if p.atGroup(tt.DelimParen) {
		fields := p.advance()
		st.FieldsKind, st.Fields = ast.FieldsTuple, &fields
		if p.atIdent("where") {
			if st.Generics.Where, err = p.parseWhere(false); err != nil {
				return nil, err
			}
		}
		if !p.eat(';') {
			return nil, errUnsupported
		}
		return st, nil
	}

	if p.atIdent("where") {
		if st.Generics.Where, err = p.parseWhere(false); err != nil {
			return nil, err
		}
	}
	switch {
	case p.atGroup(tt.DelimBrace):
		fields := p.advance()
		st.FieldsKind, st.Fields = ast.FieldsNamed, &fields
	case p.eat(';'):
		st.FieldsKind = ast.FieldsUnit
	default:
		return nil, errUnsupported
	}
	return st, nil
}

// parseAdtHead разбирает `kw Name<..> where ..` и тело в фигурных скобках (enum, union).
func (p *Parser) parseAdtHead() (string, ast.Generics, tt.Tree, error) {
	var g ast.Generics
	p.pos++ // enum | union
	name, err := p.expectIdent()
	if err != nil {
		return "", g, tt.Tree{}, err
	}
	if p.at('<') {
		if g.Params, err = p.parseGenericParams(); err != nil {
			return "", g, tt.Tree{}, err
		}
	}
	if p.atIdent("where") {
		if g.Where, err = p.parseWhere(false); err != nil {
			return "", g, tt.Tree{}, err
		}
	}
	body, err := p.expectGroup(tt.DelimBrace)
	return name, g, body, err
}

func (p *Parser) parseEnum() (ast.Item, error) {
	name, g, body, err := p.parseAdtHead()
	if err != nil {
		return nil, err
	}
	en := &ast.Enum{Generics: g, Variants: body}
	en.Name = name
	return en, nil
}

func (p *Parser) parseUnion() (ast.Item, error) {
	name, g, body, err := p.parseAdtHead()
	if err != nil {
		return nil, err
	}
	un := &ast.Union{Generics: g, Fields: body}
	un.Name = name
	return un, nil
}

// parseTypeAlias: `type Name<..> where .. = Ty;` или `type Name<..> = Ty where ..;`
func (p *Parser) parseTypeAlias() (ast.Item, error) {
	ta := &ast.TypeAlias{}
	p.pos++ // type
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	ta.Name = name
	if p.at('<') {
		if ta.Generics.Params, err = p.parseGenericParams(); err != nil {
			return nil, err
		}
	}
	if p.atIdent("where") {
		if ta.Generics.Where, err = p.parseWhere(true); err != nil {
			return nil, err
		}
	}
	if !p.atAssign() {
		return nil, errUnsupported
	}
	p.pos++
	ta.Ty = p.collectUntil(func(p *Parser) bool { return p.atIdent("where") || p.at(';') })
	if len(ta.Ty) == 0 {
		return nil, errUnsupported
	}
	if p.atIdent("where") {
		if ta.Generics.Where != nil {
			return nil, errUnsupported
		}
		if ta.Generics.Where, err = p.parseWhere(false); err != nil {
			return nil, err
		}
		ta.WhereAfterTy = true
	}
	if !p.eat(';') {
		return nil, errUnsupported
	}
	return ta, nil
}

// parseMod: `mod name;` или `mod name { items }`
func (p *Parser) parseMod() (ast.Item, error) {
	m := &ast.Mod{}
	p.pos++ // mod
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	m.Name = name
	switch {
	case p.eat(';'):
		return m, nil
	case p.atGroup(tt.DelimBrace):
		m.Body = true
		m.Inner, m.Items = parseBody(p.advance(), ctxModule)
		return m, nil
	default:
		return nil, errUnsupported
	}
}
