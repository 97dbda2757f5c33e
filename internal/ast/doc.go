// Package ast is the declaration tree the structural engine rewrites.
//
// Items form a closed set: every declaration the parser does not model lands
// in *Other with its tokens kept verbatim. Nodes keep the token streams of the
// parts no rewrite touches, so re-emission is structurally exact.
package ast
