// Package legality decides whether a declaration may carry a marker. It runs
// before any rewriting; an illegal combination is never rewritten.
package legality

import (
	"fmt"

	"c0nst/internal/ast"
	"c0nst/internal/marker"
	"c0nst/internal/source"
)

// Error is the single failure kind of the rewriting pipeline: a marker
// requested on a declaration that cannot carry it.
type Error struct {
	Marker marker.Kind
	Kind   ast.Kind
	What   string // "trait `Default`", "const item `X`"...
	Span   source.Span
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s cannot be applied to %s: %s", e.Marker, e.What, e.Reason)
}

// Check reports whether item may carry m. The returned error is always a *Error.
func Check(item ast.Item, m marker.Kind) error {
	reason, ok := allowed(item, m)
	if ok {
		return nil
	}
	return &Error{
		Marker: m,
		Kind:   item.Kind(),
		What:   ast.Describe(item),
		Span:   item.Head().Span,
		Reason: reason,
	}
}

func allowed(item ast.Item, m marker.Kind) (string, bool) {
	switch it := item.(type) {
	case *ast.Trait, *ast.Impl, *ast.Fn:
		return "", true
	case *ast.Struct, *ast.Enum, *ast.Union, *ast.TypeAlias:
		if m == marker.CarryConst {
			return "only traits, impls and functions have a const form", false
		}
		return "", true
	case *ast.Mod:
		if !it.Body {
			return "the module has no inline body to rewrite", false
		}
		if m == marker.CarryConst {
			return "only traits, impls and functions have a const form", false
		}
		return "", true
	case *ast.Other:
		if it.Native {
			return "it is already written in native const syntax; drop the `const` or the marker", false
		}
		return "this kind of item cannot be adapted", false
	default:
		return "this kind of item cannot be adapted", false
	}
}
