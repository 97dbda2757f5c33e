// Package xform is the structural rewriting engine. It rebuilds each
// declaration from its already rewritten parts, resolving const-markers and
// wrapper bounds for the chosen target. It never fails: legality is checked
// beforehand and unrecognised shapes are re-emitted verbatim.
package xform
