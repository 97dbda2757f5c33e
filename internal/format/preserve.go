package format

import (
	"bytes"
	"sort"

	"c0nst/internal/source"
	"c0nst/internal/tt"
)

type role uint8

const (
	roleTree role = iota // leaf or doc comment
	roleOpen
	roleClose
)

// unit is one printable piece of a stream: a leaf, a doc comment or one
// delimiter of a group. s[i] is the tree it came from.
type unit struct {
	s     tt.Stream
	i     int
	role  role
	text  string
	start int // -1 for synthesised trees
	end   int
}

func (u unit) anchored() bool { return u.start >= 0 }

// Preserve renders out against the file it was rewritten from. in is the
// stream the file was parsed into. Runs of trees that keep their source
// spans are printed together with the original whitespace and comments
// between them, so untouched items come out byte for byte; synthesised
// trees are spaced the way Source spaces them.
func Preserve(file *source.File, in, out tt.Stream) []byte {
	src := file.Content
	var marks []unit
	for _, m := range units(nil, in, file) {
		if m.anchored() {
			marks = append(marks, m)
		}
	}
	pieces := units(nil, out, file)

	var buf bytes.Buffer
	buf.Grow(len(src) + len(src)/8)
	pos, fresh := 0, true
	for k, u := range pieces {
		sep, decided := "", false
		if fresh {
			next := len(src)
			if j := nextAnchored(pieces, k); j >= 0 {
				next = pieces[j].start
			}
			if next >= pos {
				sep, decided = gap(src, marks, pos, next)
			}
		}
		if !decided && k > 0 {
			sep = spacing(pieces[k-1], u)
		}
		buf.WriteString(sep)
		buf.WriteString(u.text)

		fresh = u.anchored()
		if fresh {
			pos = u.end
		}
	}

	if fresh {
		if tail, ok := gap(src, marks, pos, len(src)); ok {
			buf.WriteString(tail)
		}
	}
	if buf.Len() > 0 && !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// units flattens s in print order. Trees whose span does not point into
// file are treated as synthesised.
func units(out []unit, s tt.Stream, file *source.File) []unit {
	var doc source.Span
	for i, t := range s {
		start, end := locate(t.Span, file)
		if start >= 0 && t.Span == doc {
			// хвост `#[doc = ".."]`, развёрнутого из комментария
			continue
		}
		switch {
		case t.IsPunct('#') && start >= 0 && end-start > 1:
			doc = t.Span
			out = append(out, unit{s: s, i: i, text: string(file.Content[start:end]), start: start, end: end})
		case t.Kind == tt.KindGroup && t.Delim != tt.DelimNone:
			op := unit{s: s, i: i, role: roleOpen, text: t.Delim.Open(), start: -1}
			cl := unit{s: s, i: i, role: roleClose, text: t.Delim.Close(), start: -1}
			if start >= 0 && end-start >= 2 {
				op.start, op.end = start, start+1
				cl.start, cl.end = end-1, end
			}
			out = append(out, op)
			out = units(out, t.Stream, file)
			out = append(out, cl)
		case t.Kind == tt.KindGroup:
			out = units(out, t.Stream, file)
		default:
			out = append(out, unit{s: s, i: i, text: t.Text, start: start, end: end})
		}
	}
	return out
}

func locate(sp source.Span, file *source.File) (int, int) {
	if sp == (source.Span{}) || sp.File != file.ID || sp.Empty() || int(sp.End) > len(file.Content) {
		return -1, -1
	}
	return int(sp.Start), int(sp.End)
}

func nextAnchored(pieces []unit, k int) int {
	for j := k; j < len(pieces); j++ {
		if pieces[j].anchored() {
			return j
		}
	}
	return -1
}

// gap returns the source text to print between offsets from and to. marks
// are the anchored units of the input, in source order. When no input token
// lies in between, that is the original trivia. Otherwise
// the tokens were removed, and the trivia on either side of them is kept
// only if it breaks the line; ok is false when spacing must decide.
func gap(src []byte, marks []unit, from, to int) (string, bool) {
	k := sort.Search(len(marks), func(k int) bool { return marks[k].start >= from })
	first, last := -1, from
	for ; k < len(marks); k++ {
		m := marks[k]
		if m.start >= to {
			break
		}
		if first < 0 {
			first = m.start
		}
		last = max(last, min(m.end, to))
	}
	if first < 0 {
		return string(src[from:to]), true
	}
	if lead := src[from:first]; bytes.IndexByte(lead, '\n') >= 0 {
		return string(lead), true
	}
	if tail := src[last:to]; bytes.IndexByte(tail, '\n') >= 0 {
		if from == 0 {
			// в начале файла удалённое не оставляет пустой строки
			tail = bytes.TrimLeft(tail, " \t\n")
		}
		return string(tail), true
	}
	return "", false
}

// spacing separates two adjacent units with the rules Source uses.
func spacing(a, b unit) string {
	switch {
	case b.role == roleClose:
		if a.role == roleOpen {
			return ""
		}
		return braceSpace(b)
	case a.role == roleOpen:
		return braceSpace(a)
	case b.i == 0:
		return " "
	case spaceBefore(b.s, b.i):
		return " "
	}
	return ""
}

func braceSpace(u unit) string {
	if u.s[u.i].IsGroup(tt.DelimBrace) {
		return " "
	}
	return ""
}
