package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"c0nst/internal/dialect"
	"c0nst/internal/tt"
)

func TestParseTarget(t *testing.T) {
	for in, want := range map[string]dialect.Target{
		"stable": dialect.Legacy, "legacy": dialect.Legacy,
		"Nightly": dialect.Modern, " modern ": dialect.Modern,
	} {
		got, err := dialect.ParseTarget(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := dialect.ParseTarget("beta")
	assert.Error(t, err)
}

func TestTargetText(t *testing.T) {
	var tg dialect.Target
	require.NoError(t, tg.UnmarshalText([]byte("nightly")))
	assert.Equal(t, dialect.Modern, tg)
	b, err := tg.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "modern", string(b))
	assert.Equal(t, dialect.Modern, dialect.FromNightly(true))
	assert.Equal(t, dialect.Legacy, dialect.FromNightly(false))
}

func TestDefaultMatchesBuildTag(t *testing.T) {
	assert.Equal(t, dialect.FromNightly(dialect.Nightly), dialect.Default())
}

func classify(src string) dialect.Classification {
	e := dialect.NewEvidence()
	dialect.Observe(e, tt.MustParse(src))
	return dialect.Classifier{}.Classify(e)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want dialect.Form
	}{
		{"portable attr", "#[c0nst] trait Default { fn default() -> Self; }", dialect.FormPortable},
		{"portable bound", "#[adapt] fn f<T: ?c0nst<Clone>>() {}", dialect.FormPortable},
		{"modern", "const trait Default { fn default() -> Self; } impl<T: [const] Clone> const Default for W<T> {}", dialect.FormModern},
		{"legacy", "trait Default { fn default() -> Self; } impl Default for () {}", dialect.FormLegacy},
		{"nothing", "fn f() {}", dialect.FormUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classify(tc.src).Form)
		})
	}
}

func TestClassifyConfidence(t *testing.T) {
	c := classify("#[c0nst] impl Default for () {}")
	assert.Equal(t, dialect.FormPortable, c.Form)
	assert.Equal(t, dialect.FormLegacy, c.RunnerUp)
	assert.Greater(t, c.Confidence, 0.5)
	assert.Equal(t, c.Score+c.RunnerUpScore, c.TotalScore)
}
