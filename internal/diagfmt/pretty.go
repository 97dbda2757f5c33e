package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"c0nst/internal/diag"
	"c0nst/internal/source"
)

const defaultTabWidth = 4

type palette struct {
	sev    map[diag.Severity]*color.Color
	note   *color.Color
	gutter *color.Color
	bold   *color.Color
}

func newColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func newPalette(enabled bool) palette {
	return palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   newColor(enabled, color.FgRed, color.Bold),
			diag.SevWarning: newColor(enabled, color.FgYellow, color.Bold),
			diag.SevInfo:    newColor(enabled, color.FgCyan, color.Bold),
		},
		note:   newColor(enabled, color.FgBlue, color.Bold),
		gutter: newColor(enabled, color.FgBlue),
		bold:   newColor(enabled, color.Bold),
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil || fs == nil {
		return nil
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = defaultTabWidth
	}
	p := newPalette(opts.Color)

	var sb strings.Builder
	for i, d := range bag.Items() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sev := p.sev[d.Severity]
		if sev == nil {
			sev = p.sev[diag.SevInfo]
		}
		fmt.Fprintf(&sb, "%s: %s %s: %s\n",
			p.bold.Sprint(location(fs, d.Primary, opts)),
			sev.Sprint(d.Severity.String()),
			sev.Sprint(d.Code.ID()),
			p.bold.Sprint(d.Message))
		writeSnippet(&sb, fs, d.Primary, opts.Context, opts.TabWidth, sev, p.gutter)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(&sb, "  %s %s: %s\n", p.note.Sprint("note:"), location(fs, n.Span, opts), n.Msg)
			writeSnippet(&sb, fs, n.Span, 0, opts.TabWidth, p.note, p.gutter)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func location(fs *source.FileSet, sp source.Span, opts PrettyOpts) string {
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", displayPath(fs, sp.File, opts.PathMode, opts.BaseDir), start.Line, start.Col)
}

// writeSnippet prints the lines around sp with a gutter and underlines the
// part of the first line the span covers. Multi-line spans are underlined up
// to the end of their first line.
func writeSnippet(sb *strings.Builder, fs *source.FileSet, sp source.Span, context, tab int, caret, gutter *color.Color) {
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(sp)
	count := len(f.LineIdx) + 1
	if n := len(f.Content); n > 0 && f.Content[n-1] == '\n' {
		count-- // пустая строка после последнего перевода
	}
	first := max(1, int(start.Line)-context)
	last := min(max(count, int(start.Line)), int(start.Line)+context)
	width := len(strconv.Itoa(last))
	blank := strings.Repeat(" ", width)

	for n := first; n <= last; n++ {
		line := f.GetLine(uint32(n)) // #nosec G115 -- n <= count
		fmt.Fprintf(sb, "%s %s %s\n", gutter.Sprintf("%*d", width, n), gutter.Sprint("|"), expandTabs(line, tab))
		if n != int(start.Line) {
			continue
		}
		from := clamp(int(start.Col)-1, len(line))
		to := len(line)
		if end.Line == start.Line {
			to = clamp(int(end.Col)-1, len(line))
		}
		pad := runewidth.StringWidth(expandTabs(line[:from], tab))
		span := max(1, runewidth.StringWidth(expandTabs(line[from:max(from, to)], tab)))
		fmt.Fprintf(sb, "%s %s %s%s\n", blank, gutter.Sprint("|"),
			strings.Repeat(" ", pad), caret.Sprint("^"+strings.Repeat("~", span-1)))
	}
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}

func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", width))
}
