// Package marker holds the fixed vocabulary of placeholders recognised in
// portable source and the native spellings they resolve to.
package marker

import "fmt"

const (
	// Const is the const-marker: the attribute `#[c0nst]`, the wrapper bound
	// name in `c0nst<T>` and the bare block-marker keyword.
	Const = "c0nst"
	// Adapt is the attribute that requests rewriting without marking const.
	Adapt = "adapt"

	// NativeConst is the modern keyword every const-marker resolves to.
	NativeConst = "const"
	// Destruct is the capability that gets path-qualified on the modern target.
	Destruct = "Destruct"
	// DestructPath is the fully qualified modern spelling of Destruct.
	DestructPath = "core::marker::Destruct"
)

// Kind is the marker an item is asked to carry.
type Kind uint8

const (
	// CarryConst marks the item itself as const (`#[c0nst]`).
	CarryConst Kind = iota
	// CarryWrapperBounds rewrites wrapper bounds only (`#[adapt]`).
	CarryWrapperBounds
)

func (k Kind) String() string {
	switch k {
	case CarryConst:
		return "#[" + Const + "]"
	case CarryWrapperBounds:
		return "#[" + Adapt + "]"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Modifier of a wrapper bound.
type Modifier uint8

const (
	// Required is `c0nst<T>`: always const.
	Required Modifier = iota
	// Conditional is `?c0nst<T>`: const when the context is const.
	Conditional
)

func (m Modifier) String() string {
	if m == Conditional {
		return "conditional"
	}
	return "required"
}
