package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"c0nst/internal/dialect"
)

// Layout of rewritten output.
const (
	LayoutCompact  = "compact"  // one line per item
	LayoutPretty   = "pretty"   // indented blocks
	LayoutPreserve = "preserve" // original text around untouched tokens
)

// DefaultCacheDir is relative to the project root.
const DefaultCacheDir = ".c0nst-cache"

var (
	// ErrUnknownKey is returned for keys c0nst.toml does not define.
	ErrUnknownKey = errors.New("unknown key")
	// ErrInvalidValue is returned for a known key with an unsupported value.
	ErrInvalidValue = errors.New("invalid value")
)

// Config is the decoded c0nst.toml.
type Config struct {
	Path string // manifest path; empty when no manifest was found
	Root string // directory of the manifest

	// NightlySet is false when [target].nightly is absent.
	NightlySet bool
	Nightly    bool

	Engine       string
	CacheEnabled bool
	CacheDir     string // absolute when loaded from a file
	Layout       string
}

type manifest struct {
	Target struct {
		Nightly bool `toml:"nightly"`
	} `toml:"target"`
	Engine struct {
		Kind string `toml:"kind"`
	} `toml:"engine"`
	Cache struct {
		Enabled bool   `toml:"enabled"`
		Dir     string `toml:"dir"`
	} `toml:"cache"`
	Output struct {
		Layout string `toml:"layout"`
	} `toml:"output"`
}

// Defaults is the configuration used without a manifest.
func Defaults() Config {
	return Config{Engine: "structural", CacheDir: DefaultCacheDir, Layout: LayoutPreserve}
}

// Load decodes the manifest at path.
func Load(path string) (Config, error) {
	var m manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}

	cfg := Defaults()
	cfg.Path = path
	cfg.Root = filepath.Dir(path)
	cfg.NightlySet = meta.IsDefined("target", "nightly")
	cfg.Nightly = m.Target.Nightly
	if kind := strings.TrimSpace(m.Engine.Kind); kind != "" {
		cfg.Engine = kind
	}
	cfg.CacheEnabled = m.Cache.Enabled
	if dir := strings.TrimSpace(m.Cache.Dir); dir != "" {
		cfg.CacheDir = dir
	}
	if !filepath.IsAbs(cfg.CacheDir) {
		cfg.CacheDir = filepath.Join(cfg.Root, cfg.CacheDir)
	}
	if layout := strings.TrimSpace(m.Output.Layout); layout != "" {
		cfg.Layout = layout
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !slices.Contains([]string{"structural", "token"}, c.Engine) {
		return fmt.Errorf("%w for [engine].kind: %q (want structural|token)", ErrInvalidValue, c.Engine)
	}
	if !slices.Contains([]string{LayoutPreserve, LayoutPretty, LayoutCompact}, c.Layout) {
		return fmt.Errorf("%w for [output].layout: %q (want preserve|pretty|compact)", ErrInvalidValue, c.Layout)
	}
	return nil
}

// Discover loads the nearest c0nst.toml above startDir, or Defaults.
func Discover(startDir string) (Config, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Defaults(), nil
	}
	return Load(path)
}

// Target resolves the target: an explicit manifest setting wins over def.
func (c Config) Target(def dialect.Target) dialect.Target {
	if c.NightlySet {
		return dialect.FromNightly(c.Nightly)
	}
	return def
}
