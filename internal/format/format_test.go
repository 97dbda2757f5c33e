package format

import (
	"errors"
	"testing"

	"c0nst/internal/tt"
)

const sample = "#[derive(Debug)] pub struct S<T: Clone>(T); " +
	"impl<T> const Default for S<T> where T: Default { fn default() -> Self { Self(T::default()) } }"

func TestSourcePretty(t *testing.T) {
	want := `#[derive(Debug)]
pub struct S<T: Clone>(T);
impl<T> const Default for S<T> where T: Default {
    fn default() -> Self {
        Self(T::default())
    }
}
`
	if got := string(Source(tt.MustParse(sample), Options{})); got != want {
		t.Errorf("pretty output mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSourceCompact(t *testing.T) {
	want := "#[derive(Debug)] pub struct S<T: Clone>(T);\n" +
		"impl<T> const Default for S<T> where T: Default { fn default() -> Self { Self(T::default()) } }\n"
	if got := string(Source(tt.MustParse(sample), Options{Layout: LayoutCompact})); got != want {
		t.Errorf("compact output mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestSourceTraitWithTabs(t *testing.T) {
	want := "trait T {\n\tfn m(&self);\n\tfn n();\n}\n"
	got := string(Source(tt.MustParse("trait T { fn m(&self); fn n(); }"), Options{UseTabs: true}))
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSourceEmpty(t *testing.T) {
	if got := Source(nil, Options{}); len(got) != 0 {
		t.Errorf("empty stream rendered %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		sample,
		"#![allow(dead_code)] use a::{b, c}; use ::std::fmt;",
		"fn f<'a>(x: &'a str, y: &mut [u8]) -> Option<&'a str> { let v = vec![1, 2]; v.len(); x.get(0..1)?; None }",
		"impl !Send for X {} impl<T: ?Sized> Y for Box<T> where for<'a> &'a T: Z {}",
		"fn g() { match x { A => { 1 } B => 2, _ => if a != b { 3 } else { 4 }, } }",
		"pub(crate) fn h() -> (u8, u8) { let t = (1, 2); (t.0, t.1) }",
		"fn n() { let r = 0..10; let m = 1.max(2); let f = 1.5; let q = a.0.1; }",
		"macro_rules! m { ($x:expr) => { $x + 1 }; }",
		"const X: [u8; 4] = [0; 4]; static Y: &[&str] = &[\"a\", \"b\"];",
		"fn c() { a && b || !c; x <= y; x >>= 1; t as u8 < 3; ::a::b::<C>::d(); }",
		"struct P { a: u8, b: Vec<Vec<u8>>, } enum E { A(u8), B { x: i32 }, C = 3, }",
		"fn f() -> impl Fn() -> u8 { || 1 }",
		"#[doc = \" Documentation\"] #[c0nst] fn test() -> i32 { 42 }",
	}
	for _, layout := range []Layout{LayoutPretty, LayoutCompact} {
		for _, in := range inputs {
			if err := CheckRoundTrip(tt.MustParse(in), Options{Layout: layout}); err != nil {
				t.Errorf("%s: %v\n%s", layout, err, Source(tt.MustParse(in), Options{Layout: layout}))
			}
		}
	}
}

func TestCheckRoundTripDetectsChange(t *testing.T) {
	// синтезированный идентификатор с пробелом лексируется как два
	s := tt.Stream{tt.Ident("fn"), tt.Ident("a b"), tt.Group(tt.DelimParen, nil)}
	err := CheckRoundTrip(s, Options{})
	if !errors.Is(err, ErrRoundTrip) {
		t.Fatalf("CheckRoundTrip = %v, want ErrRoundTrip", err)
	}
}

func TestParseLayout(t *testing.T) {
	for in, want := range map[string]Layout{"": LayoutPreserve, "preserve": LayoutPreserve, "pretty": LayoutPretty, "COMPACT": LayoutCompact} {
		got, err := ParseLayout(in)
		if err != nil || got != want {
			t.Errorf("ParseLayout(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLayout("wide"); err == nil {
		t.Error("expected error")
	}
}
