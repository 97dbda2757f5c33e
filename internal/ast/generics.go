package ast

import "c0nst/internal/tt"

// Generics is a parameter list plus an optional where clause.
type Generics struct {
	Params []GenericParam
	Where  *WhereClause
}

// Empty reports whether there is nothing to emit.
func (g Generics) Empty() bool { return len(g.Params) == 0 && g.Where == nil }

type ParamKind uint8

const (
	ParamLifetime ParamKind = iota
	ParamType
	ParamConst
)

// GenericParam is one entry of `<...>`. Lifetime and const params are only
// ever re-emitted from Raw.
type GenericParam struct {
	Kind    ParamKind
	Attrs   []Attr
	Name    string
	Bounds  []Bound   // type params
	Default tt.Stream // after `=`; nil when absent
	Raw     tt.Stream
}

type WhereClause struct {
	Predicates []WherePredicate
}

// WherePredicate is `for<'a> Ty: Bounds` or a raw lifetime predicate.
type WherePredicate struct {
	Lifetime     bool
	ForLifetimes tt.Stream // `for<...>`; nil when absent
	Bounded      tt.Stream
	Bounds       []Bound
	Raw          tt.Stream
}

// Bound is one `+`-separated entry of a bound list. Trait is nil for
// lifetimes and for shapes the parser does not model.
type Bound struct {
	Raw   tt.Stream
	Trait *TraitBound
}

// TraitBound is `(?for<'a> path::Seg<Args>)`.
type TraitBound struct {
	Paren        bool
	Maybe        bool      // `?Trait`
	ForLifetimes tt.Stream // `for<...>`; nil when absent
	Path         Path
}

// Path is a possibly global path with per-segment arguments.
type Path struct {
	Global   bool
	Segments []PathSegment
	Raw      tt.Stream
}

type PathSegment struct {
	Ident string
	Args  *GenericArgs
}

// GenericArgs is `<A, B>` or the parenthesised `(A) -> B` form.
type GenericArgs struct {
	Paren bool
	Args  []tt.Stream // angle form only, split on top-level commas
	Raw   tt.Stream
}
