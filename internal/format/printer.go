package format

import (
	"c0nst/internal/tt"
)

type context uint8

const (
	ctxTop    context = iota // file level
	ctxBlock                 // inside an expanded brace block
	ctxInline                // inside parens, brackets or an inline brace group
)

type printer struct {
	w   *Writer
	opt Options
}

// Source renders s. The result always ends with a newline unless s is empty.
func Source(s tt.Stream, opt Options) []byte {
	opt = opt.withDefaults()
	p := printer{w: NewWriter(len(s)*8, opt), opt: opt}
	p.stream(s, ctxTop)
	p.w.Newline()
	return p.w.Bytes()
}

func (p *printer) stream(s tt.Stream, ctx context) {
	for i, t := range s {
		if i > 0 && spaceBefore(s, i) {
			p.w.Space()
		}
		if t.Kind == tt.KindGroup {
			p.group(s, i, ctx)
		} else {
			p.w.WriteString(t.Text)
		}
		if p.breakAfter(s, i, ctx) {
			p.w.Newline()
		}
	}
}

func (p *printer) group(s tt.Stream, i int, ctx context) {
	g := s[i]
	if p.expand(s, i, ctx) {
		p.w.WriteString("{")
		p.w.Newline()
		p.w.IndentPush()
		p.stream(g.Stream, ctxBlock)
		p.w.Newline()
		p.w.IndentPop()
		p.w.WriteString("}")
		return
	}
	p.w.WriteString(g.Delim.Open())
	if g.Delim == tt.DelimBrace && len(g.Stream) > 0 {
		p.w.Space()
		p.stream(g.Stream, ctxInline)
		p.w.Space()
	} else {
		p.stream(g.Stream, ctxInline)
	}
	p.w.WriteString(g.Delim.Close())
}

// expand: non-empty brace groups at item or statement level get their own
// lines in pretty layout; `use a::{b, c}` stays inline.
func (p *printer) expand(s tt.Stream, i int, ctx context) bool {
	g := s[i]
	if p.opt.Layout == LayoutCompact || ctx == ctxInline || !g.IsGroup(tt.DelimBrace) || len(g.Stream) == 0 {
		return false
	}
	return i == 0 || !s[i-1].IsPunct(':')
}

func (p *printer) breakAfter(s tt.Stream, i int, ctx context) bool {
	if ctx == ctxInline {
		return false
	}
	t := s[i]
	last := i+1 >= len(s)
	if last {
		return ctx == ctxTop
	}
	next := s[i+1]

	if p.opt.Layout == LayoutCompact && ctx != ctxTop {
		return false
	}
	switch {
	case t.IsPunct(';'):
		return true
	case t.IsGroup(tt.DelimBrace):
		return !continues(next)
	case p.opt.Layout == LayoutCompact:
		return false
	case t.IsPunct(',') && ctx == ctxBlock:
		return true
	case isAttr(s, i):
		return true
	}
	return false
}

// continues reports whether next extends the construct the brace group ended.
func continues(t tt.Tree) bool {
	if t.Kind == tt.KindPunct {
		// `} ;`, `} ,`, `}.method()`, `}?`, `} else`, `} == x`...
		return true
	}
	return t.IsIdent("else") || t.IsIdent("as")
}

// isAttr: s[i] is the bracket group of `#[..]` or `#![..]`.
func isAttr(s tt.Stream, i int) bool {
	if !s[i].IsGroup(tt.DelimBracket) || i == 0 {
		return false
	}
	if s[i-1].IsPunct('#') {
		return true
	}
	return i >= 2 && s[i-1].IsPunct('!') && s[i-2].IsPunct('#')
}
