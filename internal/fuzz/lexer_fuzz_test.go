package fuzztests

import (
	"testing"

	"c0nst/internal/diag"
	"c0nst/internal/lexer"
	"c0nst/internal/source"
	"c0nst/internal/token"
	"c0nst/internal/tt"
)

func FuzzLexerTrees(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.rs", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		reporter := diag.BagReporter{Bag: bag}
		tokens := lexer.New(file, lexer.Options{Reporter: reporter}).Tokenize()
		if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
			t.Fatalf("token stream does not end with EOF: %d tokens", len(tokens))
		}
		_ = tt.Build(tokens, reporter)
	})
}
