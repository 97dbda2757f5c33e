package xform

import (
	"c0nst/internal/ast"
	"c0nst/internal/dialect"
	"c0nst/internal/tt"
)

// Params renders `<...>`; nothing when there are no parameters.
func Params(g ast.Generics, target dialect.Target) tt.Stream {
	if len(g.Params) == 0 {
		return nil
	}
	out := tt.Stream{tt.Punct('<')}
	for i, gp := range g.Params {
		if i > 0 {
			out = append(out, tt.Punct(','))
		}
		out = append(out, param(gp, target)...)
	}
	return append(out, tt.Punct('>'))
}

func param(gp ast.GenericParam, target dialect.Target) tt.Stream {
	if gp.Kind != ast.ParamType {
		return gp.Raw
	}
	out := ast.AttrTokens(gp.Attrs)
	out = append(out, tt.Ident(gp.Name))
	if bounds := RewriteBounds(gp.Bounds, target); len(bounds) > 0 {
		out = append(out, tt.Punct(':'))
		out = append(out, bounds...)
	}
	if gp.Default != nil {
		out = append(out, tt.Punct('='))
		out = append(out, gp.Default...)
	}
	return out
}

// Where renders the where clause; nothing when absent.
func Where(g ast.Generics, target dialect.Target) tt.Stream {
	if g.Where == nil {
		return nil
	}
	out := tt.Stream{tt.Ident("where")}
	for i, wp := range g.Where.Predicates {
		if i > 0 {
			out = append(out, tt.Punct(','))
		}
		out = append(out, predicate(wp, target)...)
	}
	return out
}

func predicate(wp ast.WherePredicate, target dialect.Target) tt.Stream {
	if wp.Lifetime {
		return wp.Raw
	}
	out := tt.Concat(wp.ForLifetimes, wp.Bounded)
	out = append(out, tt.Punct(':'))
	return append(out, RewriteBounds(wp.Bounds, target)...)
}

// Generics renders parameters followed by the where clause, the layout used
// by the items whose where clause directly follows the parameters.
func Generics(g ast.Generics, target dialect.Target) tt.Stream {
	if g.Empty() {
		return nil
	}
	return tt.Concat(Params(g, target), Where(g, target))
}
