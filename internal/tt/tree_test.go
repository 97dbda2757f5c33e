package tt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"c0nst/internal/diag"
	"c0nst/internal/source"
	"c0nst/internal/tt"
)

func TestStringRendering(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#[c0nst]   fn  f ( ) {}", "# [c0nst] fn f () {}"},
		{"T: core::marker::Destruct + 'a", "T : core::marker::Destruct + 'a"},
		{"impl<T> X for Y { fn m(&self) -> i32 { 1 } }", "impl < T > X for Y { fn m (& self) -> i32 { 1 } }"},
		{"x => y", "x => y"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, tt.MustParse(tc.in).String())
		})
	}
}

func TestRenderIsStable(t *testing.T) {
	src := "pub const fn f<T: [const] Clone>(x: T) -> T where T: Copy { x }"
	once := tt.MustParse(src).String()
	assert.Equal(t, once, tt.MustParse(once).String())
}

func TestGroups(t *testing.T) {
	s := tt.MustParse("[c0nst] (a, b) {}")
	require.Len(t, s, 3)
	assert.True(t, s[0].IsGroup(tt.DelimBracket))
	require.Len(t, s[0].Stream, 1)
	assert.True(t, s[0].Stream[0].IsIdent("c0nst"))
	assert.True(t, s[1].IsGroup(tt.DelimParen))
	assert.Len(t, s[1].Stream, 3)
	assert.True(t, s[2].IsGroup(tt.DelimBrace))
	assert.Empty(t, s[2].Stream)
}

func TestDocCommentBecomesAttribute(t *testing.T) {
	s := tt.MustParse("/// Documentation\nfn f() {}")
	assert.Equal(t, `# [doc = " Documentation"] fn f () {}`, s.String())

	inner := tt.MustParse("//! crate docs\nfn f() {}")
	assert.Equal(t, `#! [doc = " crate docs"] fn f () {}`, inner.String())
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{"(", ")", "(]", `"open`} {
		_, err := tt.Parse(src)
		assert.ErrorIs(t, err, tt.ErrInvalidStream, src)
	}
}

func TestBuildRecovers(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("r.rs", []byte("fn f() { (] }")))
	bag := diag.NewBag(8)
	s := tt.FromFile(file, diag.BagReporter{Bag: bag})

	require.True(t, bag.HasErrors())
	assert.Equal(t, diag.SynMismatchedClose, bag.Items()[0].Code)
	assert.Equal(t, "fn f () { () }", s.String())
}

func TestSpans(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("s.rs", []byte("fn f(x: u8) {}")))
	s := tt.FromFile(file, nil)
	require.Len(t, s, 4)
	args := s[2]
	assert.Equal(t, uint32(4), args.Span.Start)
	assert.Equal(t, uint32(11), args.Span.End)
	sp := s.Span()
	assert.Equal(t, uint32(0), sp.Start)
	assert.Equal(t, uint32(14), sp.End)
}

func TestEqualByText(t *testing.T) {
	a := tt.MustParse("[x]")[0]
	b := tt.Group(tt.DelimBracket, tt.Stream{tt.Ident("x")})
	assert.True(t, tt.Equal(a, b))
	assert.True(t, tt.Equal(tt.Ident("c0nst"), tt.MustParse("c0nst")[0]))
	assert.False(t, tt.Equal(a, tt.Group(tt.DelimParen, tt.Stream{tt.Ident("x")})))
}

func TestCloneIsDeep(t *testing.T) {
	s := tt.MustParse("(a)")
	c := s.Clone()
	c[0].Stream[0] = tt.Ident("b")
	assert.Equal(t, "(a)", s.String())
	assert.Equal(t, "(b)", c.String())
}
