// Package trace records what the rewriting pipeline does and how long it
// takes.
//
// # Usage
//
//	c0nst expand --trace=- --trace-level=phase src/lib.rs
//
// # Tracers
//
//   - Nop: disabled tracing, zero overhead
//   - StreamTracer: writes every event as it happens
//   - RingTracer: keeps the last N events for a dump on failure
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// LevelPhase emits driver and phase boundaries (lex, parse, legality,
// rewrite, format). LevelDetail adds one span per file. LevelDebug adds
// per-item events.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "parse", trace.ParentID(ctx))
//	defer span.End("")
package trace
