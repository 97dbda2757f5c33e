// Package fuzztests houses Go fuzz harnesses that push arbitrary bytes through
// the c0nst pipeline (source -> lexer -> token trees -> parser -> rewrite ->
// format). They guard against panics and hangs on malformed input.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер, построитель деревьев и все движки переписывания.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/tt, internal/diag,
// internal/driver, internal/dialect, internal/engine.
package fuzztests
