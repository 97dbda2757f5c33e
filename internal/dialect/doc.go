// Package dialect names the two output dialects and the build-time default
// target, and classifies a source file by the const syntax it already uses.
//
// Detection is advisory: evidence must never change how a file is rewritten.
package dialect
