package lexer

import (
	"golang.org/x/text/unicode/norm"

	"c0nst/internal/diag"
	"c0nst/internal/token"
)

// scanIdent сканирует идентификатор. Ключевые слова - тоже Ident,
// парсер различает их по тексту. Не-ASCII идентификаторы нормализуются в NFC,
// как это делает компилятор хоста, поэтому `é` и `é` совпадают при сравнении.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	ascii := true

	r, sz := lx.peekRune()
	if sz == 0 || (r >= utf8RuneSelf && !isIdentStartRune(r)) {
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	for {
		r, sz = lx.peekRune()
		if sz == 0 {
			break
		}
		if r < utf8RuneSelf {
			if !isIdentContinueByte(byte(r)) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if !isIdentContinueRune(r) {
			break
		}
		ascii = false
		lx.bumpRune()
	}

	tok := lx.emit(token.Ident, start)
	if !ascii {
		tok.Text = norm.NFC.String(tok.Text)
	}
	return tok
}

// scanRawIdent сканирует r#ident; текст сохраняет префикс.
func (lx *Lexer) scanRawIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(2) // r#
	ident := lx.scanIdent()
	tok := lx.emit(token.Ident, start)
	tok.Text = "r#" + ident.Text
	return tok
}
