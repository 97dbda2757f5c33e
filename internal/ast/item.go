package ast

import (
	"c0nst/internal/source"
	"c0nst/internal/tt"
)

type Kind uint8

const (
	KindFn Kind = iota
	KindTrait
	KindImpl
	KindStruct
	KindEnum
	KindUnion
	KindTypeAlias
	KindMod
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFn:
		return "fn"
	case KindTrait:
		return "trait"
	case KindImpl:
		return "impl"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	case KindTypeAlias:
		return "type alias"
	case KindMod:
		return "mod"
	default:
		return "item"
	}
}

// Item is one declaration. The set of implementations is closed.
type Item interface {
	Kind() Kind
	Head() *Header
	isItem()
}

// Header carries the parts every declaration has.
type Header struct {
	Attrs []Attr
	Vis   tt.Stream // `pub`, `pub(crate)`...; nil when private
	Name  string    // empty for impls and unnamed items
	Raw   tt.Stream // every token of the item, attributes included
	Span  source.Span
}

func (h *Header) Head() *Header { return h }
func (*Header) isItem()         {}

// Fn is a free function or an associated function of a trait/impl.
type Fn struct {
	Header
	Sig  Signature
	Body *tt.Tree // brace group; nil for `fn f();`
}

// Signature is everything from the qualifiers up to the where clause.
type Signature struct {
	Const    bool
	Async    bool
	Unsafe   bool
	Abi      tt.Stream // `extern` with optional ABI literal
	Generics Generics
	Inputs   tt.Tree   // paren group
	Output   tt.Stream // `-> Ty`; nil when absent
}

// Trait is a trait declaration.
type Trait struct {
	Header
	Unsafe      bool
	Auto        bool
	Generics    Generics
	Supertraits []Bound
	Inner       []Attr
	Items       []Item // *Fn or *Other
}

// Impl is an implementation block, inherent or of a trait.
type Impl struct {
	Header
	Default  bool
	Unsafe   bool
	Generics Generics
	Negative bool      // `impl !Trait for T`
	Trait    tt.Stream // trait path; nil for inherent impls
	SelfTy   tt.Stream
	Inner    []Attr
	Items    []Item // *Fn or *Other
}

type FieldsKind uint8

const (
	FieldsNamed FieldsKind = iota
	FieldsTuple
	FieldsUnit
)

// Struct is a struct declaration; Fields is nil for unit structs.
type Struct struct {
	Header
	Generics   Generics
	FieldsKind FieldsKind
	Fields     *tt.Tree
}

// Enum is an enum declaration; variants are kept verbatim.
type Enum struct {
	Header
	Generics Generics
	Variants tt.Tree
}

// Union is a union declaration.
type Union struct {
	Header
	Generics Generics
	Fields   tt.Tree
}

// TypeAlias is `type Name<..> = Ty;`.
type TypeAlias struct {
	Header
	Generics Generics
	Ty       tt.Stream
	// WhereAfterTy is set for `type A<T> = B<T> where T: X;`.
	WhereAfterTy bool
}

// Mod is a module; Body is false for `mod name;`.
type Mod struct {
	Header
	Body  bool
	Inner []Attr
	Items []Item
}

// Other is any declaration the engines do not rewrite.
type Other struct {
	Header
	// What names the declaration for messages: "const", "use", "macro_rules!"...
	What string
	// Native is set for `const trait` and `impl const` written by hand.
	Native bool
}

func (*Fn) Kind() Kind        { return KindFn }
func (*Trait) Kind() Kind     { return KindTrait }
func (*Impl) Kind() Kind      { return KindImpl }
func (*Struct) Kind() Kind    { return KindStruct }
func (*Enum) Kind() Kind      { return KindEnum }
func (*Union) Kind() Kind     { return KindUnion }
func (*TypeAlias) Kind() Kind { return KindTypeAlias }
func (*Mod) Kind() Kind       { return KindMod }
func (*Other) Kind() Kind     { return KindOther }

// Describe names an item for messages, e.g. "trait `Default`" or "const item `X`".
func Describe(it Item) string {
	h := it.Head()
	what := it.Kind().String()
	if o, ok := it.(*Other); ok && o.What != "" {
		what = o.What + " item"
	}
	if h.Name == "" {
		return what
	}
	return what + " `" + h.Name + "`"
}

// WithAttrs returns a shallow copy of it whose outer attributes are attrs.
// Raw is left untouched.
func WithAttrs(it Item, attrs []Attr) Item {
	switch v := it.(type) {
	case *Fn:
		c := *v
		c.Attrs = attrs
		return &c
	case *Trait:
		c := *v
		c.Attrs = attrs
		return &c
	case *Impl:
		c := *v
		c.Attrs = attrs
		return &c
	case *Struct:
		c := *v
		c.Attrs = attrs
		return &c
	case *Enum:
		c := *v
		c.Attrs = attrs
		return &c
	case *Union:
		c := *v
		c.Attrs = attrs
		return &c
	case *TypeAlias:
		c := *v
		c.Attrs = attrs
		return &c
	case *Mod:
		c := *v
		c.Attrs = attrs
		return &c
	case *Other:
		c := *v
		c.Attrs = attrs
		return &c
	default:
		return it
	}
}
