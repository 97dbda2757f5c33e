package convert

import (
	"c0nst/internal/source"
	"c0nst/internal/tt"
)

// Rule is one literal substitution. On the legacy target only the deletion
// of Pattern happens; Replacement is inserted on the modern target.
type Rule struct {
	Pattern     tt.Stream
	Replacement tt.Stream
}

func rule(pattern, replacement string) Rule {
	return Rule{Pattern: tt.MustParse(pattern), Replacement: tt.MustParse(replacement)}
}

// Rules is the substitution table in application order. Read-only.
var Rules = []Rule{
	rule("[c0nst] Destruct +", "[const] core::marker::Destruct +"),
	rule("+ [c0nst] Destruct", "+ [const] core::marker::Destruct"),
	rule(": [c0nst] Destruct", ": [const] core::marker::Destruct"),
	rule("c0nst Destruct +", "const core::marker::Destruct +"),
	rule("+ c0nst Destruct", "+ const core::marker::Destruct"),
	rule(": c0nst Destruct", ": const core::marker::Destruct"),
	rule("[c0nst]", "[const]"),
	rule("c0nst", "const"),
}

// replacement returns a fresh copy of Replacement located at sp.
func (r Rule) replacement(sp source.Span) tt.Stream {
	out := r.Replacement.Clone()
	for i := range out {
		out[i].Span = sp
	}
	return out
}

// Find returns the index of the leftmost window of haystack matching needle
// tree by tree (by rendered text). An empty needle matches at 0.
func Find(haystack, needle tt.Stream) (int, bool) {
	if len(needle) == 0 {
		return 0, true
	}
	if len(needle) > len(haystack) {
		return 0, false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if matchAt(haystack[i:], needle) {
			return i, true
		}
	}
	return 0, false
}

func matchAt(s, needle tt.Stream) bool {
	for j := range needle {
		if !tt.Equal(s[j], needle[j]) {
			return false
		}
	}
	return true
}
