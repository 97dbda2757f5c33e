package dialect

import (
	"fmt"
	"strings"
)

// Target selects the emitted dialect. It is resolved once per invocation and
// passed unchanged through every rewrite.
type Target uint8

const (
	// Legacy is the stable toolchain: no native const traits, markers are erased.
	Legacy Target = iota
	// Modern is the nightly toolchain: markers become native const syntax.
	Modern
)

func (t Target) String() string {
	switch t {
	case Legacy:
		return "legacy"
	case Modern:
		return "modern"
	default:
		return fmt.Sprintf("Target(%d)", uint8(t))
	}
}

func (t Target) GoString() string {
	return fmt.Sprintf("Target(%s)", t.String())
}

// ParseTarget accepts legacy/stable and modern/nightly, case-insensitively.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "stable":
		return Legacy, nil
	case "modern", "nightly":
		return Modern, nil
	default:
		return Legacy, fmt.Errorf("unknown target %q (want stable|nightly)", s)
	}
}

// FromNightly maps the single boolean build flag onto a target.
func FromNightly(nightly bool) Target {
	if nightly {
		return Modern
	}
	return Legacy
}

func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Target) UnmarshalText(b []byte) error {
	v, err := ParseTarget(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
