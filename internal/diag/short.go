package diag

import (
	"fmt"
	"strings"

	"c0nst/internal/source"
)

// FormatShort renders diagnostics one per line as
// `<severity> <CODE> <path>:<line>:<col> <message>`, in bag order.
// Notes follow their diagnostic when includeNotes is set.
func FormatShort(diags []*Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, shortLine(d.Severity.Label(), d.Code, d.Primary, d.Message, fs))
		if !includeNotes {
			continue
		}
		for _, note := range d.Notes {
			lines = append(lines, shortLine("note", d.Code, note.Span, note.Msg, fs))
		}
	}
	return strings.Join(lines, "\n")
}

func shortLine(sev string, code Code, span source.Span, msg string, fs *source.FileSet) string {
	path := "<unknown>"
	if f := fs.Get(span.File); f != nil {
		path = f.Path
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s %s %s:%d:%d %s", sev, code.ID(), path, start.Line, start.Col, sanitizeMessage(msg))
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
