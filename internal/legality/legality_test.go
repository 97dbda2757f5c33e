package legality_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"c0nst/internal/ast"
	"c0nst/internal/legality"
	"c0nst/internal/marker"
	"c0nst/internal/parser"
	"c0nst/internal/tt"
)

func TestCheckTable(t *testing.T) {
	tests := []struct {
		src       string
		constOK   bool
		wrapperOK bool
	}{
		{"mod m { fn f() {} }", false, true},
		{"trait T {}", true, true},
		{"impl T for () {}", true, true},
		{"fn f() {}", true, true},
		{"struct S;", false, true},
		{"enum E { A }", false, true},
		{"union U { a: u8 }", false, true},
		{"type A = u8;", false, true},
		{"mod empty;", false, false},
		{"const X: u8 = 1;", false, false},
		{"static Y: u8 = 1;", false, false},
		{"use std::fmt;", false, false},
		{"extern crate core;", false, false},
		{"macro_rules! m { () => {} }", false, false},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			item, err := parser.ParseItem(tt.MustParse(tc.src))
			require.NoError(t, err)
			assert.Equal(t, tc.constOK, legality.Check(item, marker.CarryConst) == nil, "const-marker")
			assert.Equal(t, tc.wrapperOK, legality.Check(item, marker.CarryWrapperBounds) == nil, "wrapper bounds")
		})
	}
}

func TestErrorDescribesItem(t *testing.T) {
	item, err := parser.ParseItem(tt.MustParse("pub struct Thing<T>(T);"))
	require.NoError(t, err)

	err = legality.Check(item, marker.CarryConst)
	var lerr *legality.Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, marker.CarryConst, lerr.Marker)
	assert.Equal(t, "struct `Thing`", lerr.What)
	assert.Equal(t, "#[c0nst] cannot be applied to struct `Thing`: only traits, impls and functions have a const form", err.Error())

	item, err = parser.ParseItem(tt.MustParse("const X: u8 = 1;"))
	require.NoError(t, err)
	assert.EqualError(t, legality.Check(item, marker.CarryWrapperBounds),
		"#[adapt] cannot be applied to const item `X`: this kind of item cannot be adapted")
}

func TestNativeConstSyntaxIsRejected(t *testing.T) {
	for src, what := range map[string]string{
		"impl<T> const X for T {}": "impl item",
		"const trait T {}":         "trait item",
	} {
		item, err := parser.ParseItem(tt.MustParse(src))
		require.NoError(t, err, src)
		other, ok := item.(*ast.Other)
		require.True(t, ok, src)
		assert.True(t, other.Native, src)

		for _, m := range []marker.Kind{marker.CarryConst, marker.CarryWrapperBounds} {
			err := legality.Check(item, m)
			var lerr *legality.Error
			require.True(t, errors.As(err, &lerr), src)
			assert.Equal(t, what, lerr.What, src)
			assert.Contains(t, err.Error(), "already written in native const syntax", src)
		}
	}
}
