package driver

import (
	"context"
	"errors"
	"fmt"

	"c0nst/internal/ast"
	"c0nst/internal/diag"
	"c0nst/internal/engine"
	"c0nst/internal/legality"
	"c0nst/internal/parser"
	"c0nst/internal/source"
	"c0nst/internal/trace"
	"c0nst/internal/tt"
)

// Result содержит результат обработки одного файла
type Result struct {
	Path    string
	FileID  source.FileID
	Output  []byte // nil, если в файле есть ошибки
	Changed bool   // переписывание изменило хотя бы один токен
	Cached  bool
	Bag     *diag.Bag
}

// HasErrors reports whether the file produced error diagnostics.
func (r *Result) HasErrors() bool { return r.Bag != nil && r.Bag.HasErrors() }

// ProcessFile rewrites one file already loaded into fs for opts.Target and
// renders it with opts.Layout. User-facing problems (lexical errors, an
// illegal marker) land in Result.Bag; the error return is reserved for
// misconfiguration and cancellation.
func ProcessFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) (*Result, error) {
	file := fs.Get(id)
	if file == nil {
		return nil, fmt.Errorf("file %d: %w", id, ErrUnknownFile)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rw, err := engine.ByName(opts.Engine)
	if err != nil {
		return nil, err
	}

	ctx, span := trace.BeginCtx(ctx, trace.ScopeFile, "process_file")
	span.WithExtra("path", file.Path)
	if file.Flags != 0 {
		span.WithExtra("flags", file.Flags.String())
	}
	defer span.End("")

	res := &Result{Path: file.Path, FileID: id, Bag: diag.NewBag(opts.MaxDiagnostics)}

	key := cacheKey(file, opts)
	if payload, ok := opts.Cache.lookup(key); ok {
		res.Output, res.Changed, res.Cached = payload.Output, payload.Changed, true
		span.WithExtra("cache", "hit")
		return res, nil
	}

	var stream tt.Stream
	runPhase(ctx, opts.Timer, "lex", func() {
		stream = tt.FromFile(file, diag.BagReporter{Bag: res.Bag})
	})
	if res.Bag.HasErrors() {
		return res, nil
	}

	out, err := rewrite(ctx, rw, stream, opts)
	if err != nil {
		if addLegality(res.Bag, err) {
			return res, nil
		}
		return nil, fmt.Errorf("%s: %w", file.Path, err)
	}

	res.Changed = out.String() != stream.String()
	runPhase(ctx, opts.Timer, "format", func() {
		res.Output = file.Restore(formatOutput(file, stream, out, opts))
	})

	if err := opts.Cache.Put(key, &DiskPayload{
		Schema:  diskCacheSchemaVersion,
		Path:    file.Path,
		Output:  res.Output,
		Changed: res.Changed,
	}); err != nil {
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache_error", err.Error(), span.ID())
	}
	return res, nil
}

// ProcessSource is ProcessFile over in-memory content, e.g. stdin.
func ProcessSource(ctx context.Context, name string, content []byte, opts Options) (*source.FileSet, *Result, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	res, err := ProcessFile(ctx, fs, id, opts)
	return fs, res, err
}

// rewrite runs the selected engine. The structural path is split into
// parse and rewrite phases so both show up in traces and timings.
func rewrite(ctx context.Context, rw engine.Rewriter, stream tt.Stream, opts Options) (out tt.Stream, err error) {
	if _, ok := rw.(engine.Expander); !ok {
		runPhase(ctx, opts.Timer, "rewrite", func() {
			out, err = rw.Rewrite(stream, opts.Target)
		})
		return out, err
	}

	var items []ast.Item
	runPhase(ctx, opts.Timer, "parse", func() {
		items = parser.ParseFile(stream)
	})
	if t := trace.FromContext(ctx); t.Enabled() {
		for _, it := range items {
			if engine.Marked([]ast.Item{it}) {
				trace.Point(t, trace.ScopeItem, "marked_item", ast.Describe(it), trace.ParentID(ctx))
			}
		}
	}
	runPhase(ctx, opts.Timer, "rewrite", func() {
		out, err = engine.Expand(items, opts.Target)
	})
	return out, err
}

// addLegality turns a legality failure into exactly one diagnostic anchored
// to the offending declaration.
func addLegality(bag *diag.Bag, err error) bool {
	var legErr *legality.Error
	if !errors.As(err, &legErr) {
		return false
	}
	bag.Add(diag.NewError(diag.XformIllegalMarker, legErr.Span, legErr.Error()))
	return true
}
