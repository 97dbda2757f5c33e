package lexer

import (
	"c0nst/internal/diag"
	"c0nst/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ', '\t', '\r' коалесцируются в один TriviaSpace
// - последовательные '\n' коалесцируются в один TriviaNewline
// - //... до \n -> TriviaLineComment, ///... -> TriviaDocLine, //!... -> TriviaInnerDoc
// - /* ... */ -> TriviaBlockComment (поддерживает вложенность), /** */ и /*! */ - doc
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case b == ' ' || b == '\t' || b == '\r':
			for b2 := lx.cursor.Peek(); b2 == ' ' || b2 == '\t' || b2 == '\r'; b2 = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue

		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue

		case lx.atCommentStart():
			lx.scanComment()
			continue
		}

		// нет больше trivia
		return
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

func (lx *Lexer) scanComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	if lx.cursor.Bump() == '/' {
		kind := token.TriviaLineComment
		switch {
		case lx.cursor.Peek() == '!':
			kind = token.TriviaInnerDoc
		case lx.cursor.Peek() == '/' && lx.cursor.PeekAt(1) != '/':
			// "////" - обычный комментарий
			kind = token.TriviaDocLine
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.pushTrivia(kind, start)
		return
	}

	// "/* ... */" с вложенностью
	kind := token.TriviaBlockComment
	switch b0, b1, _ := lx.cursor.Peek2(); {
	case b0 == '!':
		kind = token.TriviaInnerDoc
	case b0 == '*' && b1 != '*' && b1 != '/':
		kind = token.TriviaDocLine
	}

	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		if b0, b1, ok := lx.cursor.Peek2(); ok {
			if b0 == '/' && b1 == '*' {
				lx.cursor.BumpN(2)
				depth++
				continue
			}
			if b0 == '*' && b1 == '/' {
				lx.cursor.BumpN(2)
				depth--
				continue
			}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	}
	lx.pushTrivia(kind, start)
}
