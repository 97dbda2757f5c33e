// Package convert rewrites a flat token stream without building a
// declaration tree. A fixed table of literal substitutions is applied
// most-specific first, then every group is rewritten recursively.
//
// The token dialect spells markers as a bare `c0nst` keyword or the
// bracket group `[c0nst]`, e.g. `impl<T: [c0nst] Default> c0nst Default for Thing<T>`.
package convert
