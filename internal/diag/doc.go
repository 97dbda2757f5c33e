// Package diag defines the diagnostic model shared by the lexer, the
// token-tree builder, the parser and the legality checker.
//
// Diagnostic is the central record: Severity, Code, Message, a Primary span
// and optional Notes. Producers emit through a Reporter so that storage
// (Bag) and rendering (internal/diagfmt) stay decoupled from the phases.
//
// Package diag performs no formatting beyond the single-line short form used
// by tests and the CLI `--format=short` output.
package diag
