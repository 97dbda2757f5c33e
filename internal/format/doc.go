// Package format lays out rewritten token streams as readable source.
//
// Назначение: печать результата переписывания (команды expand/convert).
// Не делает: сохранения исходного форматирования и комментариев; вывод
// всегда повторно лексируется в ту же последовательность токенов.
// Зависимости: internal/tt, internal/lexer, internal/diag.
package format
