package token

import "c0nst/internal/source"

// TriviaKind classifies non-significant source text.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	// TriviaDocLine is an outer doc comment: /// or /** */.
	TriviaDocLine
	// TriviaInnerDoc is an inner doc comment: //! or /*! */.
	TriviaInnerDoc
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaDocLine:
		return "DocLine"
	case TriviaInnerDoc:
		return "InnerDoc"
	}
	return "Trivia(?)"
}

// Trivia is whitespace or a comment preceding a significant token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsDoc reports whether the trivia becomes a doc attribute.
func (t Trivia) IsDoc() bool {
	return t.Kind == TriviaDocLine || t.Kind == TriviaInnerDoc
}

// DocText returns the comment body without its doc markers: `/// text` -> " text".
func (t Trivia) DocText() string {
	s := t.Text
	switch {
	case len(s) >= 3 && (s[:3] == "///" || s[:3] == "//!"):
		return s[3:]
	case len(s) >= 5 && (s[:3] == "/**" || s[:3] == "/*!") && s[len(s)-2:] == "*/":
		return s[3 : len(s)-2]
	default:
		return ""
	}
}
