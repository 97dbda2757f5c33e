package token

import "fmt"

// Kind represents the category of a flat source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier or keyword (keywords are not separate kinds).
	Ident
	// Literal represents a string, char, byte or numeric literal including its suffix.
	Literal
	// Punct represents a single punctuation character.
	Punct

	// LParen represents the left parenthesis.
	LParen // (
	// RParen represents the right parenthesis.
	RParen // )
	// LBrace represents the left brace.
	LBrace // {
	// RBrace represents the right brace.
	RBrace // }
	// LBracket represents the left bracket.
	LBracket // [
	// RBracket represents the right bracket.
	RBracket // ]
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Literal:
		return "Literal"
	case Punct:
		return "Punct"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Spacing tells whether a Punct is immediately followed by another Punct.
type Spacing uint8

const (
	// Alone means the next character is not punctuation.
	Alone Spacing = iota
	// Joint means the punctuation continues into the next token (e.g. the first ':' of '::').
	Joint
)

func (s Spacing) String() string {
	if s == Joint {
		return "joint"
	}
	return "alone"
}
