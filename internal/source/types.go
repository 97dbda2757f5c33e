package source

import (
	"bytes"
	"strings"
)

type (
	// FileID indexes a file inside its FileSet; zero marks a synthesised span.
	FileID uint32
	// FileFlags records what AddNormalized had to undo before lexing.
	FileFlags uint8
)

const (
	// FileVirtual marks stdin, snippets and test fixtures; they are never written back.
	FileVirtual FileFlags = 1 << iota
	FileHadBOM         // UTF-8 BOM снят перед лексером
	FileNormalizedCRLF // \r\n заменены на \n
)

func (f FileFlags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	if f&FileVirtual != 0 {
		parts = append(parts, "virtual")
	}
	if f&FileHadBOM != 0 {
		parts = append(parts, "bom")
	}
	if f&FileNormalizedCRLF != 0 {
		parts = append(parts, "crlf")
	}
	return strings.Join(parts, "|")
}

// File is one Rust source as the lexer sees it. Content is normalized, so
// spans and LineIdx never count a BOM or a \r.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n'
	Hash    [32]byte // sha256 of Content, part of the result cache key
	Flags   FileFlags
}

// Restore re-applies the BOM and CRLF line endings that AddNormalized
// removed, so a rewritten file keeps the conventions of the one on disk.
func (f *File) Restore(out []byte) []byte {
	if f.Flags&(FileHadBOM|FileNormalizedCRLF) == 0 {
		return out
	}
	if f.Flags&FileNormalizedCRLF != 0 {
		out = bytes.ReplaceAll(out, []byte("\n"), []byte("\r\n"))
	}
	if f.Flags&FileHadBOM != 0 {
		out = append([]byte{0xEF, 0xBB, 0xBF}, out...)
	}
	return out
}

// LineCol is a 1-based position as printed in diagnostics.
type LineCol struct {
	Line uint32
	Col  uint32 // in bytes, not runes
}
