package engine

import (
	"slices"

	"c0nst/internal/ast"
	"c0nst/internal/dialect"
	"c0nst/internal/marker"
	"c0nst/internal/tt"
)

// Expand rewrites the items that carry `#[c0nst]` or `#[adapt]` and
// re-emits the others verbatim. Unmarked modules, traits and impls are
// searched for marked items in their bodies. The first legality failure
// aborts the whole file; the error is a *legality.Error.
func Expand(items []ast.Item, target dialect.Target) (tt.Stream, error) {
	var out tt.Stream
	for _, it := range items {
		rewritten, err := expandItem(it, target)
		if err != nil {
			return nil, err
		}
		out = append(out, rewritten...)
	}
	return out, nil
}

func expandItem(it ast.Item, target dialect.Target) (tt.Stream, error) {
	m, ok := markerOf(it)
	if !ok {
		return expandBody(it, target)
	}
	// #[adapt] вызывает макрос и в вывод не попадает
	if attrs := it.Head().Attrs; ast.HasAttr(attrs, marker.Adapt) {
		it = ast.WithAttrs(it, ast.WithoutAttr(attrs, marker.Adapt))
	}
	return Apply(it, m, target)
}

// markerOf picks the macro an item invokes; `#[c0nst]` wins over `#[adapt]`.
func markerOf(it ast.Item) (marker.Kind, bool) {
	attrs := it.Head().Attrs
	switch {
	case ast.HasAttr(attrs, marker.Const):
		return marker.CarryConst, true
	case ast.HasAttr(attrs, marker.Adapt):
		return marker.CarryWrapperBounds, true
	default:
		return 0, false
	}
}

// expandBody keeps an unmarked item's own tokens and only replaces its
// brace body when something inside it is marked.
func expandBody(it ast.Item, target dialect.Target) (tt.Stream, error) {
	raw := it.Head().Raw
	inner, items, ok := body(it)
	if !ok || !Marked(items) || len(raw) == 0 || !raw[len(raw)-1].IsGroup(tt.DelimBrace) {
		return slices.Clip(raw), nil
	}
	nested, err := Expand(items, target)
	if err != nil {
		return nil, err
	}
	group := raw[len(raw)-1]
	group.Stream = tt.Concat(ast.AttrTokens(inner), nested)
	out := make(tt.Stream, 0, len(raw))
	out = append(out, raw[:len(raw)-1]...)
	return append(out, group), nil
}

// body returns the inner attributes and items of a container item.
func body(it ast.Item) ([]ast.Attr, []ast.Item, bool) {
	switch v := it.(type) {
	case *ast.Mod:
		return v.Inner, v.Items, v.Body
	case *ast.Trait:
		return v.Inner, v.Items, true
	case *ast.Impl:
		return v.Inner, v.Items, true
	default:
		return nil, nil, false
	}
}

// Marked reports whether any item, or any item nested in a module, trait
// or impl body, carries a macro attribute.
func Marked(items []ast.Item) bool {
	for _, it := range items {
		if _, ok := markerOf(it); ok {
			return true
		}
		if _, nested, ok := body(it); ok && Marked(nested) {
			return true
		}
	}
	return false
}
