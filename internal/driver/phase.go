package driver

import (
	"context"

	"c0nst/internal/format"
	"c0nst/internal/observ"
	"c0nst/internal/source"
	"c0nst/internal/trace"
	"c0nst/internal/tt"
)

// runPhase wraps fn in a trace span and a timer phase of the same name.
func runPhase(ctx context.Context, timer *observ.Timer, name string, fn func()) {
	_, span := trace.BeginCtx(ctx, trace.ScopePhase, name)
	idx := -1
	if timer != nil {
		idx = timer.Begin(name)
	}
	fn()
	if timer != nil {
		timer.End(idx, "")
	}
	span.End("")
}

// formatOutput prints out, the rewrite of in. The preserving layout copies
// untouched source text from file.
func formatOutput(file *source.File, in, out tt.Stream, opts Options) []byte {
	if opts.Layout == format.LayoutPreserve {
		return format.Preserve(file, in, out)
	}
	return format.Source(out, opts.formatOptions())
}

func checkRoundTrip(file *source.File, in, out tt.Stream, opts Options) error {
	return format.CheckOutput(out, formatOutput(file, in, out, opts))
}
