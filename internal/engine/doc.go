// Package engine puts both rewriting strategies behind one contract.
//
// Structural parses declarations, checks legality and rewrites the tree;
// Token applies the substitution table to a flat stream. Expand emulates
// the `#[c0nst]` and `#[adapt]` attributes over a whole file.
package engine
