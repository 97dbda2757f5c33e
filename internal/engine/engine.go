package engine

import (
	"errors"
	"fmt"
	"slices"

	"c0nst/internal/ast"
	"c0nst/internal/convert"
	"c0nst/internal/dialect"
	"c0nst/internal/legality"
	"c0nst/internal/marker"
	"c0nst/internal/parser"
	"c0nst/internal/tt"
	"c0nst/internal/xform"
)

// Rewriter rewrites a token stream for one target.
type Rewriter interface {
	Rewrite(s tt.Stream, target dialect.Target) (tt.Stream, error)
}

// Structural applies a single marker to a single declaration.
type Structural struct {
	Marker marker.Kind
}

func (e Structural) Rewrite(s tt.Stream, target dialect.Target) (tt.Stream, error) {
	item, err := parser.ParseItem(s)
	if err != nil {
		return nil, fmt.Errorf("structural rewrite: %w", err)
	}
	return Apply(item, e.Marker, target)
}

// Token runs the substitution table. It never fails.
type Token struct{}

func (Token) Rewrite(s tt.Stream, target dialect.Target) (tt.Stream, error) {
	return convert.Convert(s, target), nil
}

// Expander rewrites a file of declarations the way the attribute macros do.
type Expander struct{}

func (Expander) Rewrite(s tt.Stream, target dialect.Target) (tt.Stream, error) {
	return Expand(parser.ParseFile(s), target)
}

// Apply checks that item may carry m and rewrites it. The const marker is
// implied by m == CarryConst, so the item need not spell `#[c0nst]` itself.
func Apply(item ast.Item, m marker.Kind, target dialect.Target) (tt.Stream, error) {
	if err := legality.Check(item, m); err != nil {
		return nil, err
	}
	attrs := item.Head().Attrs
	if m == marker.CarryConst && !ast.HasAttr(attrs, marker.Const) {
		item = ast.WithAttrs(item, append([]ast.Attr{ast.NewAttr(marker.Const)}, attrs...))
	}
	return slices.Clip(xform.Transform(item, target)), nil
}

// Names of the selectable engines, as written in c0nst.toml and on the command line.
const (
	NameStructural = "structural"
	NameToken      = "token"
)

// ErrUnknownEngine is returned by ByName.
var ErrUnknownEngine = errors.New("unknown engine")

// ByName returns the file-level rewriter for name.
func ByName(name string) (Rewriter, error) {
	switch name {
	case "", NameStructural:
		return Expander{}, nil
	case NameToken:
		return Token{}, nil
	default:
		return nil, fmt.Errorf("%w %q (want %q or %q)", ErrUnknownEngine, name, NameStructural, NameToken)
	}
}
