package tt

import (
	"errors"
	"fmt"

	"c0nst/internal/diag"
	"c0nst/internal/lexer"
	"c0nst/internal/source"
)

// ErrInvalidStream is wrapped by Parse when the text does not lex into a balanced stream.
var ErrInvalidStream = errors.New("invalid token stream")

// FromFile lexes a whole file and builds its token trees.
func FromFile(file *source.File, rep diag.Reporter) Stream {
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	return Build(lx.Tokenize(), rep)
}

// Parse builds a stream from a literal snippet. Spans point into a private
// virtual file, so Parse is meant for rule tables and tests, not user input.
func Parse(src string) (Stream, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<snippet>", []byte(src)))
	bag := diag.NewBag(8)
	stream := FromFile(file, diag.BagReporter{Bag: bag})
	if bag.HasErrors() {
		first := bag.Items()[0]
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidStream, first.Code.ID(), first.Message)
	}
	return stripSpans(stream), nil
}

// MustParse is Parse that panics on malformed input.
func MustParse(src string) Stream {
	s, err := Parse(src)
	if err != nil {
		panic(fmt.Errorf("tt.MustParse(%q): %w", src, err))
	}
	return s
}

func stripSpans(s Stream) Stream {
	for i := range s {
		s[i].Span = source.Span{}
		if s[i].Kind == KindGroup {
			stripSpans(s[i].Stream)
		}
	}
	return s
}
