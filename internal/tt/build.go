package tt

import (
	"strconv"

	"c0nst/internal/diag"
	"c0nst/internal/source"
	"c0nst/internal/token"
)

type frame struct {
	open   token.Token
	delim  Delimiter
	stream Stream
}

func delimOf(k token.Kind) Delimiter {
	switch k {
	case token.LParen, token.RParen:
		return DelimParen
	case token.LBrace, token.RBrace:
		return DelimBrace
	case token.LBracket, token.RBracket:
		return DelimBracket
	default:
		return DelimNone
	}
}

// Build folds a flat token slice into token trees. Doc comments in leading
// trivia become `#[doc = "..."]` (or `#![doc = "..."]`) attributes.
// Delimiter problems are reported and recovered from: an unmatched closer is
// skipped, a mismatched closer closes the innermost group, and groups left
// open at EOF are closed there.
func Build(tokens []token.Token, rep diag.Reporter) Stream {
	if rep == nil {
		rep = diag.NopReporter{}
	}
	stack := []frame{{}}
	top := func() *frame { return &stack[len(stack)-1] }

	for _, tok := range tokens {
		for _, tr := range tok.Leading {
			if tr.IsDoc() {
				top().stream = append(top().stream, docAttr(tr)...)
			}
		}

		switch {
		case tok.Kind == token.EOF:
			for len(stack) > 1 {
				f := stack[len(stack)-1]
				rep.Report(diag.SynUnclosedDelimiter, diag.SevError, f.open.Span,
					"unclosed delimiter "+strconv.Quote(f.open.Text), nil)
				stack = stack[:len(stack)-1]
				top().stream = append(top().stream, closeFrame(f, tok.Span))
			}
			return stack[0].stream

		case tok.Kind == token.Invalid:
			// уже сообщено лексером

		case tok.IsOpen():
			stack = append(stack, frame{open: tok, delim: delimOf(tok.Kind)})

		case tok.IsClose():
			if len(stack) == 1 {
				rep.Report(diag.SynUnmatchedClose, diag.SevError, tok.Span,
					"unexpected closing delimiter "+strconv.Quote(tok.Text), nil)
				continue
			}
			f := stack[len(stack)-1]
			if f.delim != delimOf(tok.Kind) {
				rep.Report(diag.SynMismatchedClose, diag.SevError, tok.Span,
					"mismatched closing delimiter "+strconv.Quote(tok.Text),
					[]diag.Note{{Span: f.open.Span, Msg: "unclosed delimiter opened here"}})
			}
			stack = stack[:len(stack)-1]
			top().stream = append(top().stream, closeFrame(f, tok.Span))

		case tok.Kind == token.Ident:
			top().stream = append(top().stream, Tree{Kind: KindIdent, Text: tok.Text, Span: tok.Span})

		case tok.Kind == token.Literal:
			top().stream = append(top().stream, Tree{Kind: KindLiteral, Text: tok.Text, Span: tok.Span})

		case tok.Kind == token.Punct:
			top().stream = append(top().stream, Tree{Kind: KindPunct, Text: tok.Text, Spacing: tok.Spacing, Span: tok.Span})
		}
	}

	// срез без EOF: закрываем молча
	for len(stack) > 1 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		top().stream = append(top().stream, closeFrame(f, source.Span{}))
	}
	return stack[0].stream
}

func closeFrame(f frame, closeSpan source.Span) Tree {
	sp := f.open.Span
	if closeSpan != (source.Span{}) {
		sp = sp.Cover(closeSpan)
	}
	return Tree{Kind: KindGroup, Delim: f.delim, Stream: f.stream, Span: sp}
}

// docAttr expands one doc comment into attribute trees.
func docAttr(tr token.Trivia) Stream {
	body := Group(DelimBracket, Stream{
		{Kind: KindIdent, Text: "doc", Span: tr.Span},
		{Kind: KindPunct, Text: "=", Span: tr.Span},
		{Kind: KindLiteral, Text: strconv.Quote(tr.DocText()), Span: tr.Span},
	})
	body.Span = tr.Span
	if tr.Kind == token.TriviaInnerDoc {
		return Stream{
			{Kind: KindPunct, Text: "#", Spacing: token.Joint, Span: tr.Span},
			{Kind: KindPunct, Text: "!", Span: tr.Span},
			body,
		}
	}
	return Stream{{Kind: KindPunct, Text: "#", Span: tr.Span}, body}
}
