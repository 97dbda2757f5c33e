package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"c0nst/internal/diag"
	"c0nst/internal/lexer"
	"c0nst/internal/source"
	"c0nst/internal/tt"
)

func illegalStruct() (*source.FileSet, *diag.Bag) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("src/lib.rs", []byte("mod a;\n#[c0nst] struct S;\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.XformIllegalMarker, source.Span{File: file, Start: 7, End: 25},
		"#[c0nst] cannot be applied to struct `S`").
		WithNote(source.Span{File: file, Start: 7, End: 15}, "marker here"))
	return fs, bag
}

func TestPretty(t *testing.T) {
	fs, bag := illegalStruct()

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{Context: 1}); err != nil {
		t.Fatal(err)
	}
	want := "src/lib.rs:2:1: ERROR XFM3001: #[c0nst] cannot be applied to struct `S`\n" +
		"1 | mod a;\n" +
		"2 | #[c0nst] struct S;\n" +
		"  | ^~~~~~~~~~~~~~~~~\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs, bag := illegalStruct()

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	want := "  note: src/lib.rs:2:1: marker here\n" +
		"2 | #[c0nst] struct S;\n" +
		"  | ^~~~~~~\n"
	if got := buf.String(); !strings.HasSuffix(got, want) {
		t.Fatalf("expected note block at the end, got:\n%s", got)
	}
}

func TestPrettyWideCharacters(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("wide.rs", []byte("s = \"名前\"; bad\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevWarning, diag.SynUnsupportedItem, source.Span{File: file, Start: 14, End: 17}, "passed through"))

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	// 名前 занимает четыре колонки
	want := "  | " + strings.Repeat(" ", 11) + "^~~\n"
	if got := buf.String(); !strings.HasSuffix(got, want) {
		t.Fatalf("caret misaligned:\n%s", got)
	}
	if !strings.Contains(buf.String(), "WARNING SYN2005") {
		t.Fatalf("expected warning header, got:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs, bag := illegalStruct()

	var plain, colored bytes.Buffer
	if err := Pretty(&plain, bag, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if err := Pretty(&colored, bag, fs, PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain output contains escape sequences")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Error("colored output has no escape sequences")
	}
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("/home/user/project/src/test.rs", []byte("#[c0nst] enum E {}\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.XformIllegalMarker, source.Span{File: file, Start: 0, End: 8}, "illegal"))

	tests := []struct {
		name string
		mode PathMode
		want string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/test.rs:1:1:"},
		{"relative", PathModeRelative, "src/test.rs:1:1:"},
		{"basename", PathModeBasename, "test.rs:1:1:"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: tc.mode, BaseDir: "/home/user/project"})
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(buf.String(), tc.want) {
				t.Errorf("expected prefix %q, got:\n%s", tc.want, buf.String())
			}
		})
	}
}

func TestParsePathMode(t *testing.T) {
	if m, ok := ParsePathMode("basename"); !ok || m != PathModeBasename {
		t.Errorf("basename: got %v, %v", m, ok)
	}
	if m, ok := ParsePathMode(""); !ok || m != PathModeAuto {
		t.Errorf("empty: got %v, %v", m, ok)
	}
	if _, ok := ParsePathMode("full"); ok {
		t.Error("expected unknown mode to be rejected")
	}
}

func TestJSON(t *testing.T) {
	fs, bag := illegalStruct()
	bag.Add(diag.New(diag.SevWarning, diag.SynUnsupportedItem, source.Span{File: 0, Start: 0, End: 6}, "passed through"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", out.Count)
	}
	first := out.Diagnostics[0]
	if first.Code != "XFM3001" || first.Severity != "ERROR" {
		t.Errorf("unexpected header %s %s", first.Severity, first.Code)
	}
	if first.Location.StartLine != 2 || first.Location.StartCol != 1 || first.Location.EndCol != 19 {
		t.Errorf("unexpected location %+v", first.Location)
	}
	if len(first.Notes) != 1 || first.Notes[0].Message != "marker here" {
		t.Errorf("unexpected notes %+v", first.Notes)
	}
}

func TestJSONMaxAndNoNotes(t *testing.T) {
	fs, bag := illegalStruct()
	bag.Add(diag.New(diag.SevWarning, diag.SynUnsupportedItem, source.Span{File: 0, Start: 0, End: 6}, "passed through"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Notes != nil {
		t.Errorf("notes must be omitted, got %+v", d.Notes)
	}
	if d.Location.StartLine != 0 {
		t.Errorf("positions must be omitted, got %+v", d.Location)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.rs", []byte("a::b // tail\n")))
	tokens := lexer.New(file, lexer.Options{}).Tokenize()

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`"a" at 1:1-1:2`,
		`":" joint at 1:2-1:3`,
		`":" alone at 1:3-1:4`,
		"EOF",
		"leading: Space, LineComment, Newline",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestFormatTreesPretty(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.rs", []byte("f(x);")))
	stream := tt.FromFile(file, nil)

	var buf bytes.Buffer
	if err := FormatTreesPretty(&buf, stream, fs); err != nil {
		t.Fatal(err)
	}
	want := "Ident \"f\" at 1:1-1:2\n" +
		"Group paren at 1:2-1:5\n" +
		"  Ident \"x\" at 1:3-1:4\n" +
		"Punct \";\" alone at 1:5-1:6\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected tree dump:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatTreesJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTreesJSON(&buf, tt.MustParse("[c0nst] x")); err != nil {
		t.Fatal(err)
	}
	var out []TreeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Delim != "bracket" || len(out[0].Children) != 1 || out[0].Children[0].Text != "c0nst" {
		t.Fatalf("unexpected tree json: %s", buf.String())
	}
}
