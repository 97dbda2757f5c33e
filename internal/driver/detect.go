package driver

import (
	"context"
	"fmt"

	"c0nst/internal/diag"
	"c0nst/internal/dialect"
	"c0nst/internal/source"
	"c0nst/internal/trace"
	"c0nst/internal/tt"
)

// DetectResult describes which const syntax a file is written in.
type DetectResult struct {
	Path           string
	Classification dialect.Classification
	Hints          []dialect.Hint
	Bag            *diag.Bag
}

// DetectFile collects dialect evidence over the token trees of one file.
// Lexical errors are reported but do not stop detection.
func DetectFile(ctx context.Context, fs *source.FileSet, id source.FileID, maxDiagnostics int) (*DetectResult, error) {
	file := fs.Get(id)
	if file == nil {
		return nil, fmt.Errorf("file %d: %w", id, ErrUnknownFile)
	}
	_, span := trace.BeginCtx(ctx, trace.ScopeFile, "detect_file")
	span.WithExtra("path", file.Path)

	bag := diag.NewBag(maxDiagnostics)
	evidence := dialect.NewEvidence()
	dialect.Observe(evidence, tt.FromFile(file, diag.BagReporter{Bag: bag}))
	cls := dialect.Classifier{}.Classify(evidence)

	span.WithExtra("form", cls.Form.String()).End("")
	return &DetectResult{
		Path:           file.Path,
		Classification: cls,
		Hints:          evidence.Hints(),
		Bag:            bag,
	}, nil
}
