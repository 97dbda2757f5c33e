package xform

import (
	"slices"

	"c0nst/internal/ast"
	"c0nst/internal/dialect"
	"c0nst/internal/marker"
	"c0nst/internal/tt"
)

// Transform rewrites one item for target.
func Transform(item ast.Item, target dialect.Target) tt.Stream {
	switch it := item.(type) {
	case *ast.Fn:
		return transformFn(it, target)
	case *ast.Trait:
		return transformTrait(it, target)
	case *ast.Impl:
		return transformImpl(it, target)
	case *ast.Struct:
		return transformStruct(it, target)
	case *ast.Enum:
		return transformEnum(it, target)
	case *ast.Union:
		return transformUnion(it, target)
	case *ast.TypeAlias:
		return transformTypeAlias(it, target)
	case *ast.Mod:
		return transformMod(it, target)
	default:
		return slices.Clip(item.Head().Raw)
	}
}

// TransformItems rewrites a sequence of items in order.
func TransformItems(items []ast.Item, target dialect.Target) tt.Stream {
	var out tt.Stream
	for _, it := range items {
		out = append(out, Transform(it, target)...)
	}
	return out
}

// Attrs drops every `#[c0nst]` and `#[adapt]`; both are consumed on both targets.
func Attrs(attrs []ast.Attr) tt.Stream {
	return ast.AttrTokens(ast.WithoutAttr(ast.WithoutAttr(attrs, marker.Const), marker.Adapt))
}

// constKeyword yields `const` when the item carries the marker on Modern.
func constKeyword(h *ast.Header, target dialect.Target) tt.Stream {
	if target == dialect.Modern && ast.HasAttr(h.Attrs, marker.Const) {
		return tt.Stream{tt.Ident(marker.NativeConst)}
	}
	return nil
}

func head(h *ast.Header) tt.Stream {
	return tt.Concat(Attrs(h.Attrs), h.Vis)
}

func transformFn(fn *ast.Fn, target dialect.Target) tt.Stream {
	out := head(&fn.Header)
	sig := fn.Sig
	if sig.Const || len(constKeyword(&fn.Header, target)) > 0 {
		out = append(out, tt.Ident(marker.NativeConst))
	}
	if sig.Async {
		out = append(out, tt.Ident("async"))
	}
	if sig.Unsafe {
		out = append(out, tt.Ident("unsafe"))
	}
	out = append(out, sig.Abi...)
	out = append(out, tt.Ident("fn"), tt.Ident(fn.Name))
	out = append(out, Params(sig.Generics, target)...)
	out = append(out, sig.Inputs)
	out = append(out, sig.Output...)
	out = append(out, Where(sig.Generics, target)...)
	if fn.Body != nil {
		return append(out, *fn.Body)
	}
	return append(out, tt.Punct(';'))
}

// body rebuilds the brace body and keeps the span of the original braces.
func body(h *ast.Header, inner []ast.Attr, items []ast.Item, target dialect.Target) tt.Tree {
	g := tt.Group(tt.DelimBrace, tt.Concat(ast.AttrTokens(inner), TransformItems(items, target)))
	if n := len(h.Raw); n > 0 && h.Raw[n-1].IsGroup(tt.DelimBrace) {
		g.Span = h.Raw[n-1].Span
	}
	return g
}

func transformTrait(tr *ast.Trait, target dialect.Target) tt.Stream {
	out := head(&tr.Header)
	out = append(out, constKeyword(&tr.Header, target)...)
	if tr.Unsafe {
		out = append(out, tt.Ident("unsafe"))
	}
	if tr.Auto {
		out = append(out, tt.Ident("auto"))
	}
	out = append(out, tt.Ident("trait"), tt.Ident(tr.Name))
	out = append(out, Params(tr.Generics, target)...)
	if supers := RewriteBounds(tr.Supertraits, target); len(supers) > 0 {
		out = append(out, tt.Punct(':'))
		out = append(out, supers...)
	}
	out = append(out, Where(tr.Generics, target)...)
	return append(out, body(&tr.Header, tr.Inner, tr.Items, target))
}

// transformImpl: `default? unsafe? impl<..> const? !?Trait for SelfTy where .. { items }`
func transformImpl(im *ast.Impl, target dialect.Target) tt.Stream {
	out := Attrs(im.Attrs)
	if im.Default {
		out = append(out, tt.Ident("default"))
	}
	if im.Unsafe {
		out = append(out, tt.Ident("unsafe"))
	}
	out = append(out, tt.Ident("impl"))
	out = append(out, Params(im.Generics, target)...)
	out = append(out, constKeyword(&im.Header, target)...)
	if im.Trait != nil {
		if im.Negative {
			out = append(out, tt.Punct('!'))
		}
		out = append(out, im.Trait...)
		out = append(out, tt.Ident("for"))
	}
	out = append(out, im.SelfTy...)
	out = append(out, Where(im.Generics, target)...)
	return append(out, body(&im.Header, im.Inner, im.Items, target))
}

func transformStruct(st *ast.Struct, target dialect.Target) tt.Stream {
	out := head(&st.Header)
	out = append(out, tt.Ident("struct"), tt.Ident(st.Name))
	out = append(out, Params(st.Generics, target)...)
	switch st.FieldsKind {
	case ast.FieldsTuple:
		out = append(out, *st.Fields)
		out = append(out, Where(st.Generics, target)...)
		return append(out, tt.Punct(';'))
	case ast.FieldsUnit:
		out = append(out, Where(st.Generics, target)...)
		return append(out, tt.Punct(';'))
	default:
		out = append(out, Where(st.Generics, target)...)
		return append(out, *st.Fields)
	}
}

func transformEnum(en *ast.Enum, target dialect.Target) tt.Stream {
	out := head(&en.Header)
	out = append(out, tt.Ident("enum"), tt.Ident(en.Name))
	out = append(out, Generics(en.Generics, target)...)
	return append(out, en.Variants)
}

func transformUnion(un *ast.Union, target dialect.Target) tt.Stream {
	out := head(&un.Header)
	out = append(out, tt.Ident("union"), tt.Ident(un.Name))
	out = append(out, Generics(un.Generics, target)...)
	return append(out, un.Fields)
}

func transformTypeAlias(ta *ast.TypeAlias, target dialect.Target) tt.Stream {
	out := head(&ta.Header)
	out = append(out, tt.Ident("type"), tt.Ident(ta.Name))
	out = append(out, Params(ta.Generics, target)...)
	if !ta.WhereAfterTy {
		out = append(out, Where(ta.Generics, target)...)
	}
	out = append(out, tt.Punct('='))
	out = append(out, ta.Ty...)
	if ta.WhereAfterTy {
		out = append(out, Where(ta.Generics, target)...)
	}
	return append(out, tt.Punct(';'))
}

// transformMod рекурсивно переписывает тело; модуль без тела выводится как есть.
func transformMod(m *ast.Mod, target dialect.Target) tt.Stream {
	if !m.Body {
		return slices.Clip(m.Raw)
	}
	out := head(&m.Header)
	out = append(out, tt.Ident("mod"), tt.Ident(m.Name))
	return append(out, body(&m.Header, m.Inner, m.Items, target))
}
