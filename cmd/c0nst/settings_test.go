package main

import (
	"testing"

	"github.com/spf13/cobra"

	"c0nst/internal/dialect"
	"c0nst/internal/project"
	"c0nst/internal/trace"
)

func newRewriteCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addRewriteFlags(cmd)
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatal(err)
	}
	return cmd
}

func TestResolveTargetPrecedence(t *testing.T) {
	nightlyManifest := project.Config{NightlySet: true, Nightly: true}
	stableManifest := project.Config{NightlySet: true, Nightly: false}

	tests := []struct {
		name string
		args []string
		cfg  project.Config
		want dialect.Target
	}{
		{"flag beats manifest", []string{"--target", "stable"}, nightlyManifest, dialect.Legacy},
		{"flag alias", []string{"--target=modern"}, stableManifest, dialect.Modern},
		{"manifest beats build", nil, nightlyManifest, dialect.Modern},
		{"build default", nil, project.Defaults(), dialect.Default()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveTarget(newRewriteCmd(t, tc.args...), tc.cfg)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResolveTargetRejectsUnknown(t *testing.T) {
	if _, err := resolveTarget(newRewriteCmd(t, "--target", "beta"), project.Defaults()); err == nil {
		t.Fatal("expected an error for an unknown target")
	}
}

func TestToolchainName(t *testing.T) {
	if toolchainName(dialect.Legacy) != "stable" || toolchainName(dialect.Modern) != "nightly" {
		t.Fatal("unexpected toolchain names")
	}
}

func TestRingOf(t *testing.T) {
	ring := trace.NewRingTracer(8, trace.LevelPhase)
	if ringOf(ring) != ring {
		t.Error("ring tracer not returned")
	}
	multi := trace.NewMultiTracer(trace.LevelPhase, trace.Nop, ring)
	if ringOf(multi) != ring {
		t.Error("ring inside multi tracer not found")
	}
	if ringOf(trace.Nop) != nil {
		t.Error("nop tracer has no ring")
	}
}
