package lexer

import (
	"testing"

	"c0nst/internal/source"
)

func TestCursorBounds(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("c.rs", []byte("ab")))
	c := NewCursor(f)

	if b0, b1, ok := c.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	m := c.Mark()
	c.BumpN(5)
	if !c.EOF() || c.Off != 2 {
		t.Fatalf("BumpN must stop at limit, off=%d", c.Off)
	}
	if c.Peek() != 0 || c.PeekAt(3) != 0 || c.Bump() != 0 {
		t.Fatal("reads past EOF must return 0")
	}
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	c.Reset(m)
	if !c.Eat('a') || c.Eat('a') || c.Peek() != 'b' {
		t.Fatal("Eat must consume only a matching byte")
	}
}
