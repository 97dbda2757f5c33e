package lexer

import (
	"c0nst/internal/diag"
	"c0nst/internal/token"
)

// Поддержка: 0, 123, 1_000, 0b..., 0o..., 0x..., 1.0, 1e-3, 1.0e+10 и суффиксы (u8, f32, usize).
// Суффикс остаётся частью Token.Text.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'b', 'B', 'o', 'O', 'x', 'X':
			lx.cursor.BumpN(2)
			digits := 0
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
				digits++
			}
			if digits == 0 {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "expected digits after base prefix")
			}
			lx.scanSuffix()
			return lx.emit(token.Literal, start)
		}
	}

	lx.scanDigits()

	// дробная часть: только если за точкой цифра (не `..`, не `1.method()`)
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		lx.scanDigits()
	}

	// экспонента
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		next := lx.cursor.PeekAt(1)
		if isDec(next) || ((next == '+' || next == '-') && isDec(lx.cursor.PeekAt(2))) {
			lx.cursor.BumpN(2)
			lx.scanDigits()
		}
	}

	lx.scanSuffix()
	return lx.emit(token.Literal, start)
}

func (lx *Lexer) scanDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

// суффикс литерала - любой идентификатор сразу после числа
func (lx *Lexer) scanSuffix() {
	if !isIdentStartByte(lx.cursor.Peek()) {
		return
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
