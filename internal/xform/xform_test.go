package xform_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"c0nst/internal/ast"
	"c0nst/internal/dialect"
	"c0nst/internal/parser"
	"c0nst/internal/tt"
	"c0nst/internal/xform"
)

// squash убирает все пробельные символы: сравниваем токены, а не форматирование
func squash(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func transform(t *testing.T, src string, target dialect.Target) string {
	t.Helper()
	item, err := parser.ParseItem(tt.MustParse(src))
	require.NoError(t, err, src)
	return xform.Transform(item, target).String()
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		modern string
		legacy string
	}{
		{
			"basic fn",
			"#[c0nst] fn test() -> i32 { 42 }",
			"const fn test() -> i32 { 42 }",
			"fn test() -> i32 { 42 }",
		},
		{
			"basic trait",
			"#[c0nst] trait MyTrait { fn method(&self) -> i32; }",
			"const trait MyTrait { fn method(&self) -> i32; }",
			"trait MyTrait { fn method(&self) -> i32; }",
		},
		{
			"basic impl",
			"#[c0nst] impl MyTrait for MyType { fn method(&self) -> i32 { 42 } }",
			"impl const MyTrait for MyType { fn method(&self) -> i32 { 42 } }",
			"impl MyTrait for MyType { fn method(&self) -> i32 { 42 } }",
		},
		{
			"wrapper bounds in params and where",
			"#[c0nst] fn test<T: c0nst<Clone> + ?c0nst<Send> + c0nst<From<u64>>>() -> T where T: c0nst<Default> { T::default() }",
			"const fn test<T: const Clone + [const] Send + const From<u64>>() -> T where T: const Default { T::default() }",
			"fn test<T: Clone + Send + From<u64>>() -> T where T: Default { T::default() }",
		},
		{
			"qualifiers and mixed params",
			"#[derive(Debug)] #[c0nst] pub unsafe fn test<'a, const N: usize, T: Clone + c0nst<Send>>() -> Result<T, String> where T: c0nst<Default> { Ok(T::default()) }",
			"#[derive(Debug)] pub const unsafe fn test<'a, const N: usize, T: Clone + const Send>() -> Result<T, String> where T: const Default { Ok(T::default()) }",
			"#[derive(Debug)] pub unsafe fn test<'a, const N: usize, T: Clone + Send>() -> Result<T, String> where T: Default { Ok(T::default()) }",
		},
		{
			"trait method",
			"trait MyTrait { #[c0nst] fn method(&self) -> i32 { 42 } }",
			"trait MyTrait { const fn method(&self) -> i32 { 42 } }",
			"trait MyTrait { fn method(&self) -> i32 { 42 } }",
		},
		{
			"impl method",
			"impl MyTrait for i32 { #[c0nst] fn method(&self) -> i32 { 42 } }",
			"impl MyTrait for i32 { const fn method(&self) -> i32 { 42 } }",
			"impl MyTrait for i32 { fn method(&self) -> i32 { 42 } }",
		},
		{
			"generic impl keeps where after self type",
			"#[c0nst] impl<T: c0nst<Clone>> From<T> for MyType<T> where T: ?c0nst<Send> { fn from(t: T) -> Self { MyType(t) } }",
			"impl<T: const Clone> const From<T> for MyType<T> where T: [const] Send { fn from(t: T) -> Self { MyType(t) } }",
			"impl<T: Clone> From<T> for MyType<T> where T: Send { fn from(t: T) -> Self { MyType(t) } }",
		},
		{
			"struct",
			"struct MyStruct<T: Clone + c0nst<Send>, U: ?c0nst<Sync>> where T: c0nst<Default> { t: T, u: U }",
			"struct MyStruct<T: Clone + const Send, U: [const] Sync> where T: const Default { t: T, u: U }",
			"struct MyStruct<T: Clone + Send, U: Sync> where T: Default { t: T, u: U }",
		},
		{
			"tuple struct",
			"struct MyStruct<T: c0nst<Clone>>(T) where T: c0nst<Copy>;",
			"struct MyStruct<T: const Clone>(T) where T: const Copy;",
			"struct MyStruct<T: Clone>(T) where T: Copy;",
		},
		{
			"enum",
			"enum MyEnum<T: c0nst<Clone> + ?c0nst<Send>> where T: c0nst<Default> { Variant(T), Other }",
			"enum MyEnum<T: const Clone + [const] Send> where T: const Default { Variant(T), Other }",
			"enum MyEnum<T: Clone + Send> where T: Default { Variant(T), Other }",
		},
		{
			"union",
			"union MyUnion<T: c0nst<Copy>> where T: c0nst<Clone> { field: T }",
			"union MyUnion<T: const Copy> where T: const Clone { field: T }",
			"union MyUnion<T: Copy> where T: Clone { field: T }",
		},
		{
			"type alias",
			"type MyType<T: c0nst<Clone> + ?c0nst<Send>> where T: c0nst<Default> = Vec<T>;",
			"type MyType<T: const Clone + [const] Send> where T: const Default = Vec<T>;",
			"type MyType<T: Clone + Send> where T: Default = Vec<T>;",
		},
		{
			"type alias trailing where",
			"pub type A<T> = Vec<T> where T: ?c0nst<Clone>;",
			"pub type A<T> = Vec<T> where T: [const] Clone;",
			"pub type A<T> = Vec<T> where T: Clone;",
		},
		{
			"async ordering",
			"#[c0nst] async fn test() -> i32 { 42 }",
			"const async fn test() -> i32 { 42 }",
			"async fn test() -> i32 { 42 }",
		},
		{
			"doc comment",
			"/// Documentation\n#[c0nst] fn test() -> i32 { 42 }",
			`#[doc = " Documentation"] const fn test() -> i32 { 42 }`,
			`#[doc = " Documentation"] fn test() -> i32 { 42 }`,
		},
		{
			"supertraits",
			"#[c0nst] pub trait Num: ?c0nst<Add> + Copy where Self: Sized { fn zero() -> Self; }",
			"pub const trait Num: [const] Add + Copy where Self: Sized { fn zero() -> Self; }",
			"pub trait Num: Add + Copy where Self: Sized { fn zero() -> Self; }",
		},
		{
			"type param attrs and defaults",
			"struct S<#[cfg(x)] T: c0nst<Clone> = u8>(T);",
			"struct S<#[cfg(x)] T: const Clone = u8>(T);",
			"struct S<#[cfg(x)] T: Clone = u8>(T);",
		},
		{
			"higher ranked where predicate",
			"fn f<F>() where for<'a> F: c0nst<Fn(&'a u8)> {}",
			"fn f<F>() where for<'a> F: const Fn(&'a u8) {}",
			"fn f<F>() where for<'a> F: Fn(&'a u8) {}",
		},
		{
			"higher ranked bound",
			"fn f<T: for<'a> c0nst<Fn(&'a u8)>, U: for<'b> ?c0nst<Fn(&'b u8)>>() {}",
			"fn f<T: for<'a> const Fn(&'a u8), U: for<'b> [const] Fn(&'b u8)>() {}",
			"fn f<T: for<'a> Fn(&'a u8), U: for<'b> Fn(&'b u8)>() {}",
		},
		{
			"parenthesised wrapper",
			"fn f<T: (c0nst<Clone>)>() {}",
			"fn f<T: const Clone>() {}",
			"fn f<T: (Clone)>() {}",
		},
		{
			"module recurses",
			"mod m { #[c0nst] fn f<T: ?c0nst<Clone>>() {} struct S<T: c0nst<Copy>>(T); const X: u8 = 0; }",
			"mod m { const fn f<T: [const] Clone>() {} struct S<T: const Copy>(T); const X: u8 = 0; }",
			"mod m { fn f<T: Clone>() {} struct S<T: Copy>(T); const X: u8 = 0; }",
		},
		{
			"nested modules",
			"pub mod a { #![allow(dead_code)] mod b { #[c0nst] trait T {} } }",
			"pub mod a { #![allow(dead_code)] mod b { const trait T {} } }",
			"pub mod a { #![allow(dead_code)] mod b { trait T {} } }",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, squash(tc.modern), squash(transform(t, tc.input, dialect.Modern)), "modern")
			assert.Equal(t, squash(tc.legacy), squash(transform(t, tc.input, dialect.Legacy)), "legacy")
		})
	}
}

func TestPassThrough(t *testing.T) {
	inputs := []string{
		"fn test<T: c0nst>() {}",
		"fn test<T: c0nst(Clone)>() {}",
		"fn test<T: c0nst<>>() {}",
		"fn test<T: c0nst<'a>>() {}",
		"fn test<T: std::marker::Send>() {}",
		"fn test<T: a::c0nst<Clone>>() {}",
		"fn test<'a, T: 'a>() where T: 'a {}",
		"fn test<'a, 'b>() where 'a: 'b {}",
		"trait MyTrait: Clone + Send { fn method(&self); }",
		"trait MyTrait { type AssocType; }",
		"impl MyTrait for MyType { type AssocType = i32; }",
		"struct MyStruct<T, U> where T: Clone, U: Send { t: T, u: U }",
		"const MY_CONST: i32 = 42;",
		`static MY_STATIC: &str = "hello";`,
		"use std::collections::HashMap;",
		"extern crate serde;",
		"macro_rules! my_macro { () => {}; }",
		"mod my_module { fn test() {} }",
		"mod empty;",
	}
	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			want := squash(src)
			assert.Equal(t, want, squash(transform(t, src, dialect.Modern)))
			assert.Equal(t, want, squash(transform(t, src, dialect.Legacy)))
		})
	}
}

func TestMultipleArgumentsUseFirst(t *testing.T) {
	multi := "fn test<T: c0nst<Clone, Send>>() {}"
	single := "fn test<T: c0nst<Clone>>() {}"
	for _, target := range []dialect.Target{dialect.Legacy, dialect.Modern} {
		assert.Equal(t, transform(t, single, target), transform(t, multi, target), target.String())
	}
	assert.Equal(t, squash("fn test<T: const Clone>() {}"), squash(transform(t, multi, dialect.Modern)))
}

func TestDestruct(t *testing.T) {
	tests := []struct {
		input  string
		modern string
		legacy string
	}{
		{
			"fn f<T: ?c0nst<Destruct>>() {}",
			"fn f<T: [const] core::marker::Destruct>() {}",
			"fn f<T>() {}",
		},
		{
			"fn f<T: c0nst<Destruct>>() {}",
			"fn f<T: const core::marker::Destruct>() {}",
			"fn f<T>() {}",
		},
		{
			"fn f<T: Clone + ?c0nst<Destruct> + Send>() {}",
			"fn f<T: Clone + [const] core::marker::Destruct + Send>() {}",
			"fn f<T: Clone + Send>() {}",
		},
		{
			"fn f<T: ?c0nst<Destruct> + Copy>() {}",
			"fn f<T: [const] core::marker::Destruct + Copy>() {}",
			"fn f<T: Copy>() {}",
		},
		{
			"fn f<T: Copy + ?c0nst<Destruct>>() {}",
			"fn f<T: Copy + [const] core::marker::Destruct>() {}",
			"fn f<T: Copy>() {}",
		},
		{
			"fn f<T>() where T: ?c0nst<core::marker::Destruct> {}",
			"fn f<T>() where T: [const] core::marker::Destruct {}",
			"fn f<T>() where T: {}",
		},
		{
			"trait X: ?c0nst<Destruct> {}",
			"trait X: [const] core::marker::Destruct {}",
			"trait X {}",
		},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, squash(tc.modern), squash(transform(t, tc.input, dialect.Modern)))
			assert.Equal(t, squash(tc.legacy), squash(transform(t, tc.input, dialect.Legacy)))
		})
	}
}

func TestLegacyIsIdempotent(t *testing.T) {
	inputs := []string{
		"#[c0nst] impl<T: ?c0nst<Default>> Default for Thing<T> { fn default() -> Self { Self(T::default()) } }",
		"#[c0nst] pub fn default<T: ?c0nst<Default> + c0nst<Destruct>>() -> T { T::default() }",
		"mod m { #[c0nst] trait A: c0nst<B> {} }",
	}
	for _, src := range inputs {
		once := transform(t, src, dialect.Legacy)
		twice := transform(t, once, dialect.Legacy)
		assert.Equal(t, once, twice, src)
		assert.NotContains(t, once, "c0nst", src)
	}
}

func TestTargetsDifferOnlyAtBounds(t *testing.T) {
	src := "fn keep<T: ?c0nst<Clone>>(x: T) -> T { x }"
	modern := transform(t, src, dialect.Modern)
	legacy := transform(t, src, dialect.Legacy)
	assert.NotEqual(t, modern, legacy)
	assert.Equal(t, legacy, strings.Replace(modern, "[const] ", "", 1))
}

func TestMatchWrapper(t *testing.T) {
	fn, err := parser.ParseItem(tt.MustParse("fn f<T: ?c0nst<a::Destruct> + c0nst<Clone, Send> + Sized>() {}"))
	require.NoError(t, err)
	bounds := fn.(*ast.Fn).Sig.Generics.Params[0].Bounds
	require.Len(t, bounds, 3)

	w, ok := xform.MatchWrapper(bounds[0])
	require.True(t, ok)
	assert.Equal(t, "conditional", w.Modifier.String())
	assert.True(t, w.IsDestruct())

	w, ok = xform.MatchWrapper(bounds[1])
	require.True(t, ok)
	assert.Equal(t, "Clone", w.Capability.String())
	assert.False(t, w.IsDestruct())

	_, ok = xform.MatchWrapper(bounds[2])
	assert.False(t, ok)
}

func TestTransformDoesNotAliasInput(t *testing.T) {
	stream := tt.MustParse("const X: u8 = 1; fn f() {}")
	items := parser.ParseFile(stream)
	require.Len(t, items, 2)
	out := xform.Transform(items[0], dialect.Legacy)
	_ = append(out, tt.Ident("junk"))
	assert.Equal(t, "const X : u8 = 1 ; fn f () {}", stream.String())
}
