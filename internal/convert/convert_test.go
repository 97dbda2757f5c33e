package convert_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"c0nst/internal/convert"
	"c0nst/internal/dialect"
	"c0nst/internal/source"
	"c0nst/internal/tt"
)

func squash(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		modern string
		legacy string
	}{
		{
			"const fn",
			"c0nst fn f() -> u8 { 1 }",
			"const fn f() -> u8 { 1 }",
			"fn f() -> u8 { 1 }",
		},
		{
			"const trait",
			"pub c0nst trait T { fn m(); }",
			"pub const trait T { fn m(); }",
			"pub trait T { fn m(); }",
		},
		{
			"const impl with conditional bound",
			"impl<T: [c0nst] Default> c0nst Default for Thing<T> { fn default() -> Self { Self(T::default()) } }",
			"impl<T: [const] Default> const Default for Thing<T> { fn default() -> Self { Self(T::default()) } }",
			"impl<T: Default> Default for Thing<T> { fn default() -> Self { Self(T::default()) } }",
		},
		{
			"required bound",
			"fn f<T: c0nst Clone>() {}",
			"fn f<T: const Clone>() {}",
			"fn f<T: Clone>() {}",
		},
		{
			"conditional destruct alone",
			"fn f<T: [c0nst] Destruct>() {}",
			"fn f<T: [const] core::marker::Destruct>() {}",
			"fn f<T>() {}",
		},
		{
			"required destruct alone",
			"fn f<T: c0nst Destruct>() {}",
			"fn f<T: const core::marker::Destruct>() {}",
			"fn f<T>() {}",
		},
		{
			"destruct first",
			"fn f<T: [c0nst] Destruct + Copy>() {}",
			"fn f<T: [const] core::marker::Destruct + Copy>() {}",
			"fn f<T: Copy>() {}",
		},
		{
			"destruct last",
			"fn f<T: Clone + c0nst Destruct>() {}",
			"fn f<T: Clone + const core::marker::Destruct>() {}",
			"fn f<T: Clone>() {}",
		},
		{
			"destruct in the middle",
			"fn f<T: Clone + [c0nst] Destruct + Send>() {}",
			"fn f<T: Clone + [const] core::marker::Destruct + Send>() {}",
			"fn f<T: Clone + Send>() {}",
		},
		{
			"nested groups",
			"mod m { c0nst fn f() { g::<[c0nst]>((c0nst)) } }",
			"mod m { const fn f() { g::<[const]>((const)) } }",
			"mod m { fn f() { g::<>(()) } }",
		},
		{
			"bracket marker in braces",
			"trait A { fn m<T: [c0nst] Clone>(); }",
			"trait A { fn m<T: [const] Clone>(); }",
			"trait A { fn m<T: Clone>(); }",
		},
		{
			"unrelated tokens",
			`fn c0nstant() { let s = "c0nst"; x.c0nst_y }`,
			`fn c0nstant() { let s = "c0nst"; x.c0nst_y }`,
			`fn c0nstant() { let s = "c0nst"; x.c0nst_y }`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := tt.MustParse(tc.input)
			assert.Equal(t, squash(tc.modern), squash(convert.Convert(in, dialect.Modern).String()), "modern")
			assert.Equal(t, squash(tc.legacy), squash(convert.Convert(in, dialect.Legacy).String()), "legacy")
		})
	}
}

func TestConvertLeavesNoMarker(t *testing.T) {
	in := tt.MustParse("c0nst c0nst [c0nst] { [c0nst] c0nst } ( c0nst Destruct + c0nst )")
	for _, target := range []dialect.Target{dialect.Legacy, dialect.Modern} {
		out := convert.Convert(in, target).String()
		assert.NotContains(t, out, "c0nst", target.String())
	}
	assert.Equal(t, "c0nst c0nst [c0nst] { [c0nst] c0nst } (c0nst Destruct + c0nst)", in.String())
}

func TestConvertLegacyIsIdempotent(t *testing.T) {
	in := tt.MustParse("impl<T: [c0nst] Destruct + ?Sized> c0nst X for T where T: c0nst Clone {}")
	once := convert.Convert(in, dialect.Legacy)
	assert.Equal(t, once.String(), convert.Convert(once, dialect.Legacy).String())
}

func TestReplacementTakesMatchedSpan(t *testing.T) {
	in := tt.Stream{
		{Kind: tt.KindIdent, Text: "c0nst", Span: source.Span{Start: 4, End: 9}},
		{Kind: tt.KindIdent, Text: "fn", Span: source.Span{Start: 10, End: 12}},
	}
	out := convert.Convert(in, dialect.Modern)
	require.Len(t, out, 2)
	assert.Equal(t, "const", out[0].Text)
	assert.Equal(t, source.Span{Start: 4, End: 9}, out[0].Span)
	assert.Equal(t, source.Span{Start: 10, End: 12}, out[1].Span)
}

func TestFind(t *testing.T) {
	tests := []struct {
		haystack, needle string
		at               int
		ok               bool
	}{
		{"a b c", "", 0, true},
		{"", "", 0, true},
		{"a", "a b", 0, false},
		{"a b a b", "a b", 0, true},
		{"x a b", "a b", 1, true},
		{"a+b", "a + b", 0, true},
		{"x (b) [b]", "[b]", 2, true},
		{"(b)", "[b]", 0, false},
		{"a b", "b a", 0, false},
	}
	for _, tc := range tests {
		at, ok := convert.Find(tt.MustParse(tc.haystack), tt.MustParse(tc.needle))
		assert.Equal(t, tc.ok, ok, "%q in %q", tc.needle, tc.haystack)
		if tc.ok {
			assert.Equal(t, tc.at, at, "%q in %q", tc.needle, tc.haystack)
		}
	}
}

func TestRulesAreOrderedAndSelfContained(t *testing.T) {
	require.Len(t, convert.Rules, 8)
	for _, r := range convert.Rules {
		require.NotEmpty(t, r.Pattern)
		_, ok := convert.Find(r.Replacement, r.Pattern)
		assert.False(t, ok, "replacement %q reintroduces its pattern", r.Replacement.String())
	}
	assert.Equal(t, "c0nst", convert.Rules[len(convert.Rules)-1].Pattern.String())
}

func TestIsBracketMarker(t *testing.T) {
	assert.True(t, convert.IsBracketMarker(tt.MustParse("[c0nst]")[0]))
	assert.False(t, convert.IsBracketMarker(tt.MustParse("(c0nst)")[0]))
	assert.False(t, convert.IsBracketMarker(tt.MustParse("[c0nst x]")[0]))
}
