package parser

import (
	"c0nst/internal/ast"
	"c0nst/internal/token"
	"c0nst/internal/tt"
)

// parseGenericParams разбирает `<...>` после имени элемента.
func (p *Parser) parseGenericParams() ([]ast.GenericParam, error) {
	inner, err := p.angle()
	if err != nil {
		return nil, err
	}
	segs := splitTop(inner, ',')
	params := make([]ast.GenericParam, 0, len(segs))
	for _, seg := range segs {
		gp, err := parseGenericParam(seg)
		if err != nil {
			return nil, err
		}
		params = append(params, gp)
	}
	return params, nil
}

func parseGenericParam(seg tt.Stream) (ast.GenericParam, error) {
	p := newParser(seg)
	gp := ast.GenericParam{Attrs: p.parseOuterAttrs(), Raw: seg}

	switch {
	case p.at('\''):
		p.pos++
		name, err := p.expectIdent()
		if err != nil {
			return gp, err
		}
		gp.Kind, gp.Name = ast.ParamLifetime, "'"+name
		return gp, nil

	case p.eatIdent("const"):
		name, err := p.expectIdent()
		if err != nil {
			return gp, err
		}
		gp.Kind, gp.Name = ast.ParamConst, name
		return gp, nil
	}

	name, err := p.expectIdent()
	if err != nil || token.IsKeyword(name) {
		return gp, errUnsupported
	}
	gp.Kind, gp.Name = ast.ParamType, name

	if p.atColon() {
		p.pos++
		bounds := p.collectUntil(func(p *Parser) bool { return p.atAssign() })
		gp.Bounds = parseBounds(bounds)
	}
	if p.atAssign() {
		p.pos++
		gp.Default = p.s[p.pos:]
		if len(gp.Default) == 0 {
			return gp, errUnsupported
		}
		p.pos = len(p.s)
	}
	if !p.eof() {
		return gp, errUnsupported
	}
	return gp, nil
}

// parseWhere разбирает `where` и предикаты до тела, `;` или (stopAtAssign) `=`.
func (p *Parser) parseWhere(stopAtAssign bool) (*ast.WhereClause, error) {
	if !p.eatIdent("where") {
		return nil, errUnsupported
	}
	preds := p.collectUntil(func(p *Parser) bool {
		return p.atGroup(tt.DelimBrace) || p.at(';') || (stopAtAssign && p.atAssign())
	})
	wc := &ast.WhereClause{}
	for _, seg := range splitTop(preds, ',') {
		wp, err := parseWherePredicate(seg)
		if err != nil {
			return nil, err
		}
		wc.Predicates = append(wc.Predicates, wp)
	}
	return wc, nil
}

func parseWherePredicate(seg tt.Stream) (ast.WherePredicate, error) {
	wp := ast.WherePredicate{Raw: seg}
	p := newParser(seg)
	if p.at('\'') {
		wp.Lifetime = true
		return wp, nil
	}
	if p.atIdent("for") && p.peekAt(1).IsPunct('<') {
		start := p.pos
		p.pos++
		if _, err := p.angle(); err != nil {
			return wp, err
		}
		wp.ForLifetimes = p.s[start:p.pos]
	}
	wp.Bounded = p.collectUntil(func(p *Parser) bool { return p.atColon() })
	if len(wp.Bounded) == 0 || !p.atColon() {
		return wp, errUnsupported
	}
	p.pos++
	wp.Bounds = parseBounds(p.s[p.pos:])
	return wp, nil
}
