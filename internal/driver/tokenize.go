package driver

import (
	"c0nst/internal/diag"
	"c0nst/internal/lexer"
	"c0nst/internal/source"
	"c0nst/internal/token"
	"c0nst/internal/tt"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Trees   tt.Stream
	Bag     *diag.Bag
}

// Tokenize lexes the file at path and builds its token trees.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource is Tokenize over in-memory content.
func TokenizeSource(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenizeFile(fs, fs.AddVirtual(name, content), maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, id source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(id)
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	tokens := lexer.New(file, lexer.Options{Reporter: reporter}).Tokenize()
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Trees:   tt.Build(tokens, reporter),
		Bag:     bag,
	}
}
