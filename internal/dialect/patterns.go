package dialect

import (
	"c0nst/internal/marker"
	"c0nst/internal/tt"
)

type identSignal struct {
	Form   Form
	Score  int
	Reason string
}

var identSignals = map[string]identSignal{
	marker.Const:       {Form: FormPortable, Score: 2, Reason: "portable marker `c0nst`"},
	"const_trait_impl": {Form: FormModern, Score: 6, Reason: "nightly feature `const_trait_impl`"},
	"trait":            {Form: FormLegacy, Score: 1, Reason: "plain `trait` declaration"},
	"impl":             {Form: FormLegacy, Score: 1, Reason: "plain `impl` block"},
}

// Observe walks a token tree stream (recursing into groups) and records
// evidence about the const syntax it uses.
func Observe(e *Evidence, s tt.Stream) {
	if e == nil {
		return
	}
	for i, t := range s {
		var prev tt.Tree
		if i > 0 {
			prev = s[i-1]
		}
		observeTree(e, prev, t, s[i+1:])
		if t.Kind == tt.KindGroup {
			Observe(e, t.Stream)
		}
	}
}

func observeTree(e *Evidence, prev, t tt.Tree, rest tt.Stream) {
	var next tt.Tree
	if len(rest) > 0 {
		next = rest[0]
	}

	switch t.Kind {
	case tt.KindIdent:
		if sig, ok := identSignals[t.Text]; ok {
			e.Add(Hint{Form: sig.Form, Score: sig.Score, Reason: sig.Reason, Span: t.Span})
		}
		switch {
		case t.Text == marker.Const && next.IsPunct('<'):
			score, reason := 5, "wrapper bound `c0nst<T>`"
			if prev.IsPunct('?') {
				score, reason = 6, "conditional wrapper bound `?c0nst<T>`"
			}
			e.Add(Hint{Form: FormPortable, Score: score, Reason: reason, Span: t.Span.Cover(next.Span)})

		case t.Text == marker.NativeConst && next.IsIdent("trait"):
			e.Add(Hint{Form: FormModern, Score: 6, Reason: "native `const trait`", Span: t.Span.Cover(next.Span)})

		case t.Text == marker.NativeConst && next.Kind == tt.KindIdent && (prev.IsPunct(':') || prev.IsPunct('+')):
			e.Add(Hint{Form: FormModern, Score: 5, Reason: "native `const` bound", Span: t.Span.Cover(next.Span)})

		case t.Text == marker.NativeConst && prev.IsPunct('~'):
			e.Add(Hint{Form: FormModern, Score: 4, Reason: "early nightly `~const` bound", Span: prev.Span.Cover(t.Span)})
		}

	case tt.KindGroup:
		if !t.IsGroup(tt.DelimBracket) || len(t.Stream) != 1 {
			return
		}
		inner := t.Stream[0]
		switch {
		case prev.IsPunct('#') && inner.IsIdent(marker.Const):
			e.Add(Hint{Form: FormPortable, Score: 6, Reason: "const-marker attribute `#[c0nst]`", Span: prev.Span.Cover(t.Span)})
		case prev.IsPunct('#') && inner.IsIdent(marker.Adapt):
			e.Add(Hint{Form: FormPortable, Score: 4, Reason: "adapt attribute `#[adapt]`", Span: prev.Span.Cover(t.Span)})
		case inner.IsIdent(marker.Const):
			e.Add(Hint{Form: FormPortable, Score: 5, Reason: "block marker `[c0nst]`", Span: t.Span})
		case inner.IsIdent(marker.NativeConst):
			e.Add(Hint{Form: FormModern, Score: 6, Reason: "native conditional `[const]`", Span: t.Span})
		}
	}
}
