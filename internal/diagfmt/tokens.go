package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"c0nst/internal/source"
	"c0nst/internal/token"
	"c0nst/internal/tt"
)

type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Spacing string      `json:"spacing,omitempty"`
	Span    source.Span `json:"span"`
	Leading []string    `json:"leading,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	var sb strings.Builder
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(&sb, "%3d: %-10s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(&sb, " %q", tok.Text)
		}
		if tok.Kind == token.Punct {
			fmt.Fprintf(&sb, " %s", tok.Spacing)
		}
		fmt.Fprintf(&sb, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if leading := triviaKinds(tok.Leading); len(leading) > 0 {
			fmt.Fprintf(&sb, " (leading: %s)", strings.Join(leading, ", "))
		}
		sb.WriteByte('\n')

		if tok.Kind == token.EOF {
			break
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Leading: triviaKinds(tok.Leading),
		}
		if tok.Kind == token.Punct {
			out.Spacing = tok.Spacing.String()
		}
		output = append(output, out)

		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func triviaKinds(trivia []token.Trivia) []string {
	if len(trivia) == 0 {
		return nil
	}
	out := make([]string, len(trivia))
	for i, tr := range trivia {
		out[i] = tr.Kind.String()
	}
	return out
}

// TreeOutput is one token tree in the JSON dump; groups carry children.
type TreeOutput struct {
	Kind     string       `json:"kind"`
	Text     string       `json:"text,omitempty"`
	Spacing  string       `json:"spacing,omitempty"`
	Delim    string       `json:"delim,omitempty"`
	Span     source.Span  `json:"span"`
	Children []TreeOutput `json:"children,omitempty"`
}

// FormatTreesPretty prints the tree structure of s, one tree per line,
// indenting group contents.
func FormatTreesPretty(w io.Writer, s tt.Stream, fs *source.FileSet) error {
	var sb strings.Builder
	writeTrees(&sb, s, fs, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTrees(sb *strings.Builder, s tt.Stream, fs *source.FileSet, depth int) {
	for _, t := range s {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(t.Kind.String())
		switch t.Kind {
		case tt.KindGroup:
			fmt.Fprintf(sb, " %s", t.Delim)
		case tt.KindPunct:
			fmt.Fprintf(sb, " %q %s", t.Text, t.Spacing)
		default:
			fmt.Fprintf(sb, " %q", t.Text)
		}
		if fs != nil && fs.Get(t.Span.File) != nil {
			start, end := fs.Resolve(t.Span)
			fmt.Fprintf(sb, " at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		}
		sb.WriteByte('\n')
		if t.Kind == tt.KindGroup {
			writeTrees(sb, t.Stream, fs, depth+1)
		}
	}
}

// FormatTreesJSON выводит дерево токенов в JSON формате
func FormatTreesJSON(w io.Writer, s tt.Stream) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(treeOutputs(s))
}

func treeOutputs(s tt.Stream) []TreeOutput {
	out := make([]TreeOutput, 0, len(s))
	for _, t := range s {
		o := TreeOutput{Kind: t.Kind.String(), Text: t.Text, Span: t.Span}
		switch t.Kind {
		case tt.KindPunct:
			o.Spacing = t.Spacing.String()
		case tt.KindGroup:
			o.Delim = t.Delim.String()
			o.Children = treeOutputs(t.Stream)
		}
		out = append(out, o)
	}
	return out
}
