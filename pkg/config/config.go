// Package config loads wordladder settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/wordladder/config.toml, falling back to
// ~/.config/wordladder/config.toml. Every key is optional; command-line flags
// override file values.
//
//	dictionary = "/usr/share/dict/words"
//	fold_case  = true
//	index      = "bucket"
//	max_depth  = 0
//
//	[cache]
//	enabled    = true
//	dir        = "/tmp/wordladder-cache"
//	redis_addr = "localhost:6379"
//	ttl        = "168h"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordladder/pkg/errors"
)

const appName = "wordladder"

// Index strategies.
const (
	IndexScan   = "scan"
	IndexBucket = "bucket"
)

// Duration is a time.Duration written as a Go duration string ("24h").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds file-level settings.
type Config struct {
	Dictionary string      `toml:"dictionary"`
	FoldCase   bool        `toml:"fold_case"`
	Index      string      `toml:"index"`
	MaxDepth   int         `toml:"max_depth"`
	Cache      CacheConfig `toml:"cache"`

	// Unknown lists keys present in the file that no field consumed.
	Unknown []string `toml:"-"`
}

// CacheConfig configures result caching.
type CacheConfig struct {
	Enabled   bool     `toml:"enabled"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       Duration `toml:"ttl"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Index: IndexBucket,
		Cache: CacheConfig{
			Enabled: true,
			TTL:     Duration{7 * 24 * time.Hour},
		},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the default cache directory (~/.cache/wordladder/).
func CacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Load reads the file at path over the defaults. A missing file yields the
// defaults; a malformed one is an INVALID_CONFIG error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(string(data))
}

// Parse decodes TOML text over the defaults and validates the result.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	for _, k := range md.Undecoded() {
		cfg.Unknown = append(cfg.Unknown, k.String())
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	c.Index = strings.ToLower(c.Index)
	switch c.Index {
	case IndexScan, IndexBucket:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "index must be %q or %q, got %q", IndexScan, IndexBucket, c.Index)
	}
	if c.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_depth cannot be negative (%d)", c.MaxDepth)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl cannot be negative (%s)", c.Cache.TTL.Duration)
	}
	return nil
}

// String renders the config as TOML.
func (c Config) String() string {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return fmt.Sprintf("# encode config: %v\n", err)
	}
	return sb.String()
}
