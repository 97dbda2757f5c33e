package lexer

import (
	"c0nst/internal/diag"
	"c0nst/internal/token"
)

// scanPunctOrDelim выдаёт разделители и одиночные знаки пунктуации.
// Составные операторы (::, ->, =>) остаются последовательностью Punct со Spacing == Joint.
func (lx *Lexer) scanPunctOrDelim() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	switch ch {
	case '(':
		return lx.emit(token.LParen, start)
	case ')':
		return lx.emit(token.RParen, start)
	case '{':
		return lx.emit(token.LBrace, start)
	case '}':
		return lx.emit(token.RBrace, start)
	case '[':
		return lx.emit(token.LBracket, start)
	case ']':
		return lx.emit(token.RBracket, start)
	}

	if isPunctByte(ch) {
		tok := lx.emit(token.Punct, start)
		if isPunctByte(lx.cursor.Peek()) && !lx.atCommentStart() {
			tok.Spacing = token.Joint
		}
		return tok
	}

	// неизвестный символ: съедаем всю руну целиком
	lx.cursor.Reset(start)
	lx.bumpRune()
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character")
	return tok
}

func (lx *Lexer) atCommentStart() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '/' && (b1 == '/' || b1 == '*')
}
