package driver

import (
	"context"
	"fmt"

	"c0nst/internal/diag"
	"c0nst/internal/dialect"
	"c0nst/internal/engine"
	"c0nst/internal/source"
	"c0nst/internal/trace"
	"c0nst/internal/tt"
)

// CheckResult - итог проверки одного файла.
type CheckResult struct {
	Path    string
	FileID  source.FileID
	Changed bool // expansion for some target alters the file
	Bag     *diag.Bag
}

// OK reports whether every check passed.
func (r *CheckResult) OK() bool { return r.Bag == nil || !r.Bag.HasErrors() }

// CheckFile verifies that a file expands cleanly for both targets, that
// expanding the Legacy output again changes nothing, and that the formatted
// output of each target lexes back to the same tokens.
func CheckFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) (*CheckResult, error) {
	file := fs.Get(id)
	if file == nil {
		return nil, fmt.Errorf("file %d: %w", id, ErrUnknownFile)
	}
	rw, err := engine.ByName(opts.Engine)
	if err != nil {
		return nil, err
	}

	ctx, span := trace.BeginCtx(ctx, trace.ScopeFile, "check_file")
	span.WithExtra("path", file.Path)
	defer span.End("")

	res := &CheckResult{Path: file.Path, FileID: id, Bag: diag.NewBag(opts.MaxDiagnostics)}

	var stream tt.Stream
	runPhase(ctx, opts.Timer, "lex", func() {
		stream = tt.FromFile(file, diag.BagReporter{Bag: res.Bag})
	})
	if res.Bag.HasErrors() {
		return res, nil
	}

	for _, target := range []dialect.Target{dialect.Legacy, dialect.Modern} {
		topts := opts
		topts.Target = target
		out, err := rewrite(ctx, rw, stream, topts)
		if err != nil {
			if addLegality(res.Bag, err) {
				return res, nil
			}
			return nil, fmt.Errorf("%s: %w", file.Path, err)
		}
		if out.String() != stream.String() {
			res.Changed = true
		}

		if target == dialect.Legacy {
			var again tt.Stream
			runPhase(ctx, opts.Timer, "idempotence", func() {
				again, err = rw.Rewrite(out, dialect.Legacy)
			})
			if err != nil {
				addLegality(res.Bag, err)
				return res, nil
			}
			if i, differ := firstDifference(out, again); differ {
				res.Bag.Add(diag.NewError(diag.XformNotIdempotent, anchor(out, i, id),
					"expanding the legacy output again changes it"))
			}
		}

		runPhase(ctx, opts.Timer, "round_trip", func() {
			err = checkRoundTrip(file, stream, out, topts)
		})
		if err != nil {
			res.Bag.Add(diag.NewError(diag.XformRoundTrip, anchor(out, 0, id),
				fmt.Sprintf("%s output: %v", target, err)))
		}
	}
	return res, nil
}

// firstDifference compares two streams tree by tree on rendered text.
func firstDifference(a, b tt.Stream) (int, bool) {
	for i := range min(len(a), len(b)) {
		if !tt.Equal(a[i], b[i]) {
			return i, true
		}
	}
	return min(len(a), len(b)), len(a) != len(b)
}

// anchor picks the span of s[i] when it has one, else the whole file.
func anchor(s tt.Stream, i int, id source.FileID) source.Span {
	if i < len(s) && s[i].Span != (source.Span{}) {
		return s[i].Span
	}
	return source.Span{File: id}
}
