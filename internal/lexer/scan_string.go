package lexer

import (
	"c0nst/internal/diag"
	"c0nst/internal/token"
)

// atStringPrefix проверяет префиксы b", b', r", r#", br", br#", c", cr", cr#".
func (lx *Lexer) atStringPrefix() bool {
	b0 := lx.cursor.Peek()
	b1 := lx.cursor.PeekAt(1)
	switch b0 {
	case 'b':
		if b1 == '"' || b1 == '\'' {
			return true
		}
		if b1 == 'r' {
			return lx.rawStart(2)
		}
	case 'c':
		if b1 == '"' {
			return true
		}
		if b1 == 'r' {
			return lx.rawStart(2)
		}
	case 'r':
		return lx.rawStart(1)
	}
	return false
}

// rawStart: после n байт префикса идут ноль или больше '#' и затем '"'.
func (lx *Lexer) rawStart(n uint32) bool {
	for lx.cursor.PeekAt(n) == '#' {
		n++
	}
	return lx.cursor.PeekAt(n) == '"'
}

func (lx *Lexer) scanPrefixedLiteral() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.Peek() != 'r' {
		lx.cursor.Bump() // b или c
	}
	switch lx.cursor.Peek() {
	case '"':
		return lx.scanString(start)
	case '\'':
		return lx.scanCharFrom(start)
	default: // 'r'
		return lx.scanRawString(start)
	}
}

// scanString сканирует "..." с escape-последовательностями; переводы строк допустимы.
func (lx *Lexer) scanString(start Mark) token.Token {
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '"' {
			lx.scanSuffix()
			return lx.emit(token.Literal, start)
		}
		if b == '\\' {
			// грубая обработка escape: съесть следующий байт, не валидируем глубоко здесь
			lx.cursor.Bump()
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

func (lx *Lexer) scanRawString(start Mark) token.Token {
	lx.cursor.Bump() // 'r'
	hashes := 0
	for lx.cursor.Eat('#') {
		hashes++
	}
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != '"' {
			continue
		}
		closing := 0
		for closing < hashes && lx.cursor.Peek() == '#' {
			lx.cursor.Bump()
			closing++
		}
		if closing == hashes {
			lx.scanSuffix()
			return lx.emit(token.Literal, start)
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated raw string literal")
	return tok
}

// scanQuote различает символьный литерал 'x' и лайфтайм 'a.
// Лайфтайм выдаётся как Punct('\'', Joint); идентификатор лексится следующим токеном.
func (lx *Lexer) scanQuote() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.PeekAt(1) == '\\' {
		return lx.scanCharFrom(start)
	}

	lx.cursor.Bump() // '\''
	_, sz := lx.peekRune()
	closes := sz > 0 && lx.cursor.PeekAt(uint32(sz)) == '\''
	lx.cursor.Reset(start)
	if closes {
		return lx.scanCharFrom(start)
	}

	lx.cursor.Bump()
	tok := lx.emit(token.Punct, start)
	tok.Spacing = token.Joint
	return tok
}

func (lx *Lexer) scanCharFrom(start Mark) token.Token {
	lx.cursor.Bump() // opening '\''
	if lx.cursor.Peek() == '\\' {
		lx.cursor.Bump()
		// \u{...} и \x.. - дочитываем до закрывающей кавычки
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\'' && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
	} else {
		lx.bumpRune()
	}
	if !lx.cursor.Eat('\'') {
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexUnterminatedChar, tok.Span, "unterminated character literal")
		return tok
	}
	lx.scanSuffix()
	return lx.emit(token.Literal, start)
}
