// Package driver runs the c0nst pipeline over files: lex, parse, rewrite,
// format. It owns the FileSet, converts legality failures into diagnostics
// and fans batches out over a bounded worker pool.
package driver

import (
	"errors"

	"c0nst/internal/dialect"
	"c0nst/internal/format"
	"c0nst/internal/observ"
)

// ErrUnknownFile is returned when a FileID is not part of the FileSet.
var ErrUnknownFile = errors.New("unknown file")

// Options apply to every file of one invocation.
type Options struct {
	Target         dialect.Target
	Engine         string // engine.NameStructural или engine.NameToken
	Layout         format.Layout
	MaxDiagnostics int
	Cache          *DiskCache    // nil отключает кеш результатов
	Timer          *observ.Timer // nil отключает замеры фаз
}

func (o Options) formatOptions() format.Options {
	return format.Options{Layout: o.Layout}
}
