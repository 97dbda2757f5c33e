package format

import (
	"fmt"
	"strings"
)

// Layout selects how much structure the printer shows.
type Layout uint8

const (
	// LayoutPretty indents brace blocks and breaks lines after statements.
	LayoutPretty Layout = iota
	// LayoutCompact prints each top-level item on one line.
	LayoutCompact
	// LayoutPreserve keeps the original text, comments included, around
	// every token that comes from the source (see Preserve). Without a
	// source it prints like LayoutPretty.
	LayoutPreserve
)

func (l Layout) String() string {
	switch l {
	case LayoutCompact:
		return "compact"
	case LayoutPreserve:
		return "preserve"
	default:
		return "pretty"
	}
}

// ParseLayout accepts "preserve", "pretty" and "compact"; empty means preserve.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(s) {
	case "", "preserve":
		return LayoutPreserve, nil
	case "pretty":
		return LayoutPretty, nil
	case "compact":
		return LayoutCompact, nil
	default:
		return LayoutPreserve, fmt.Errorf("unknown layout %q (want preserve|pretty|compact)", s)
	}
}

type Options struct {
	Layout      Layout
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}
