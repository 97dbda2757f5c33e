package xform

import (
	"slices"

	"c0nst/internal/ast"
	"c0nst/internal/dialect"
	"c0nst/internal/marker"
	"c0nst/internal/parser"
	"c0nst/internal/tt"
)

// Wrapper is a recognised `c0nst<Capability>` or `?c0nst<Capability>` bound.
type Wrapper struct {
	Modifier   marker.Modifier
	Capability tt.Stream // first generic argument; further arguments are ignored
}

// MatchWrapper recognises the wrapper bound shape: a single-segment path
// `c0nst` with angle arguments whose first entry is a type path.
func MatchWrapper(b ast.Bound) (Wrapper, bool) {
	tb := b.Trait
	if tb == nil || tb.Path.Global || len(tb.Path.Segments) != 1 {
		return Wrapper{}, false
	}
	seg := tb.Path.Segments[0]
	if seg.Ident != marker.Const || seg.Args == nil || seg.Args.Paren || len(seg.Args.Args) == 0 {
		return Wrapper{}, false
	}
	first := seg.Args.Args[0]
	if !parser.IsTypePath(first) {
		return Wrapper{}, false
	}
	w := Wrapper{Modifier: marker.Required, Capability: first}
	if tb.Maybe {
		w.Modifier = marker.Conditional
	}
	return w, true
}

// IsDestruct reports whether the capability path ends in a bare `Destruct`.
func (w Wrapper) IsDestruct() bool {
	last := w.Capability[len(w.Capability)-1]
	return last.IsIdent(marker.Destruct)
}

// RewriteBound renders one bound for target. keep is false when the bound
// must vanish entirely (a Destruct wrapper on the legacy target).
func RewriteBound(b ast.Bound, target dialect.Target) (out tt.Stream, keep bool) {
	w, ok := MatchWrapper(b)
	if !ok {
		return slices.Clip(b.Raw), true
	}

	capability := w.Capability
	if w.IsDestruct() {
		if target == dialect.Legacy {
			return nil, false
		}
		capability = destructPath()
	}

	tb := b.Trait
	if target == dialect.Legacy {
		plain := tt.Concat(tb.ForLifetimes, capability)
		if tb.Paren {
			return tt.Stream{tt.Group(tt.DelimParen, plain)}, true
		}
		return plain, true
	}

	// `for<'a>` связывает лайфтаймы capability, поэтому стоит перед const
	switch w.Modifier {
	case marker.Conditional:
		return tt.Concat(tb.ForLifetimes, tt.Stream{bracketConst()}, capability), true
	default:
		return tt.Concat(tb.ForLifetimes, tt.Stream{tt.Ident(marker.NativeConst)}, capability), true
	}
}

// RewriteBounds rewrites a `+`-separated list. Dropped bounds take one
// separator with them, so no `+` dangles.
func RewriteBounds(bounds []ast.Bound, target dialect.Target) tt.Stream {
	var out tt.Stream
	n := 0
	for _, b := range bounds {
		rb, keep := RewriteBound(b, target)
		if !keep {
			continue
		}
		if n > 0 {
			out = append(out, tt.Punct('+'))
		}
		out = append(out, rb...)
		n++
	}
	return out
}

func bracketConst() tt.Tree {
	return tt.Group(tt.DelimBracket, tt.Stream{tt.Ident(marker.NativeConst)})
}

var destruct = tt.MustParse(marker.DestructPath)

func destructPath() tt.Stream { return destruct.Clone() }
