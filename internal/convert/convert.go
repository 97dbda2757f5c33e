package convert

import (
	"slices"

	"c0nst/internal/dialect"
	"c0nst/internal/marker"
	"c0nst/internal/tt"
)

// Convert rewrites s for target. The input stream is not modified.
func Convert(s tt.Stream, target dialect.Target) tt.Stream {
	out := slices.Clone(s)
	for _, r := range Rules {
		out = r.applyAll(out, target)
	}

	res := make(tt.Stream, 0, len(out))
	for _, t := range out {
		if t.Kind != tt.KindGroup {
			res = append(res, t)
			continue
		}
		if g, ok := convertGroup(t, target); ok {
			res = append(res, g)
		}
	}
	return res
}

// applyAll удаляет каждое вхождение шаблона слева направо; на Modern
// на его место вставляется замена. Замена никогда не содержит шаблон.
func (r Rule) applyAll(s tt.Stream, target dialect.Target) tt.Stream {
	for {
		at, ok := Find(s, r.Pattern)
		if !ok {
			return s
		}
		end := at + len(r.Pattern)
		var repl tt.Stream
		if target == dialect.Modern {
			repl = r.replacement(s[at:end].Span())
		}
		s = slices.Concat(s[:at], repl, s[end:])
	}
}

// convertGroup handles the bare `[c0nst]` group and otherwise recurses.
// ok is false when the group vanishes.
func convertGroup(g tt.Tree, target dialect.Target) (tt.Tree, bool) {
	if IsBracketMarker(g) {
		if target == dialect.Legacy {
			return tt.Tree{}, false
		}
		out := tt.Group(tt.DelimBracket, tt.Stream{tt.Ident(marker.NativeConst)})
		out.Span = g.Span
		out.Stream[0].Span = g.Stream[0].Span
		return out, true
	}
	g.Stream = Convert(g.Stream, target)
	return g, true
}

// IsBracketMarker reports whether t is exactly `[c0nst]`.
func IsBracketMarker(t tt.Tree) bool {
	return t.IsGroup(tt.DelimBracket) && len(t.Stream) == 1 && t.Stream[0].IsIdent(marker.Const)
}
