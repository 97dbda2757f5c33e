package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"c0nst/internal/dialect"
	"c0nst/internal/driver"
	"c0nst/internal/engine"
	"c0nst/internal/format"
	"c0nst/internal/observ"
	"c0nst/internal/project"
)

// addRewriteFlags registers the flags shared by expand, convert and check.
func addRewriteFlags(cmd *cobra.Command) {
	cmd.Flags().String("target", "", "output dialect (stable|nightly); default from c0nst.toml or the build")
	cmd.Flags().String("layout", "", "output layout (preserve|pretty|compact); default from c0nst.toml")
	cmd.Flags().Bool("no-cache", false, "ignore the result cache configured in c0nst.toml")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
}

// loadManifest finds c0nst.toml above the working directory.
func loadManifest() (project.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return project.Config{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := project.Discover(wd)
	if err != nil {
		return project.Config{}, fmt.Errorf("failed to load %s: %w", project.ManifestName, err)
	}
	return cfg, nil
}

// resolveTarget applies the precedence --target > c0nst.toml > build default.
func resolveTarget(cmd *cobra.Command, cfg project.Config) (dialect.Target, error) {
	if f := cmd.Flags().Lookup("target"); f != nil && f.Changed {
		return dialect.ParseTarget(f.Value.String())
	}
	return cfg.Target(dialect.Default()), nil
}

// rewriteOptions resolves driver options once per invocation. engineName
// overrides the manifest when non-empty.
func rewriteOptions(cmd *cobra.Command, engineName string) (driver.Options, error) {
	cfg, err := loadManifest()
	if err != nil {
		return driver.Options{}, err
	}

	target, err := resolveTarget(cmd, cfg)
	if err != nil {
		return driver.Options{}, err
	}

	layoutName := cfg.Layout
	if v, _ := cmd.Flags().GetString("layout"); v != "" {
		layoutName = v
	}
	layout, err := format.ParseLayout(layoutName)
	if err != nil {
		return driver.Options{}, err
	}

	if engineName == "" {
		engineName = cfg.Engine
	}
	if _, err := engine.ByName(engineName); err != nil {
		return driver.Options{}, err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	opts := driver.Options{
		Target:         target,
		Engine:         engineName,
		Layout:         layout,
		MaxDiagnostics: maxDiagnostics,
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")
	if cfg.CacheEnabled && !noCache {
		cache, err := driver.OpenDiskCache(cfg.CacheDir)
		if err != nil {
			return driver.Options{}, err
		}
		opts.Cache = cache
	}

	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		opts.Timer = observ.NewTimer()
	}
	return opts, nil
}

// toolchainName is the user-facing name of a target.
func toolchainName(t dialect.Target) string {
	if t == dialect.Modern {
		return "nightly"
	}
	return "stable"
}
