package format

import (
	"errors"
	"fmt"

	"c0nst/internal/tt"
)

// ErrRoundTrip is returned when formatted output lexes to different trees.
var ErrRoundTrip = errors.New("format: round trip changed the token stream")

// CheckRoundTrip formats s and re-lexes the result, ensuring that the
// tree texts and nesting stay identical.
func CheckRoundTrip(s tt.Stream, opt Options) error {
	return CheckOutput(s, Source(s, opt))
}

// CheckOutput re-lexes printed output and compares it with s.
func CheckOutput(s tt.Stream, out []byte) error {
	back, err := tt.Parse(string(out))
	if err != nil {
		return fmt.Errorf("format: reparse failed: %w", err)
	}
	want, got := flatten(s, nil), flatten(back, nil)
	for i := range min(len(want), len(got)) {
		if want[i] != got[i] {
			return fmt.Errorf("%w: token %d is %q, want %q", ErrRoundTrip, i, got[i], want[i])
		}
	}
	if len(want) != len(got) {
		return fmt.Errorf("%w: %d tokens, want %d", ErrRoundTrip, len(got), len(want))
	}
	return nil
}

func flatten(s tt.Stream, out []string) []string {
	for _, t := range s {
		if t.Kind != tt.KindGroup {
			out = append(out, t.Text)
			continue
		}
		out = append(out, t.Delim.Open())
		out = flatten(t.Stream, out)
		out = append(out, t.Delim.Close())
	}
	return out
}
