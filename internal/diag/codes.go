package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005

	// Структура токенов и декларации
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedDelimiter Code = 2002
	SynUnmatchedClose    Code = 2003
	SynMismatchedClose   Code = 2004
	SynUnsupportedItem   Code = 2005

	// Переписывание
	XformInfo          Code = 3000
	XformIllegalMarker Code = 3001
	XformNotIdempotent Code = 3002
	XformRoundTrip     Code = 3003

	// I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Invalid number literal",
	LexUnterminatedChar:         "Unterminated character literal",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedDelimiter:        "Unclosed delimiter",
	SynUnmatchedClose:           "Unmatched closing delimiter",
	SynMismatchedClose:          "Mismatched closing delimiter",
	SynUnsupportedItem:          "Unsupported item passed through",
	XformInfo:                   "Rewrite information",
	XformIllegalMarker:          "Illegal marker use on this declaration kind",
	XformNotIdempotent:          "Legacy output changes when expanded again",
	XformRoundTrip:              "Formatted output does not lex back to the same tokens",
	IOLoadFileError:             "I/O load file error",
	IOWriteFileError:            "I/O write file error",
}

// ID returns the stable short identifier, e.g. "LEX1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("XFM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
