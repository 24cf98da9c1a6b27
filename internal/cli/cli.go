// Package cli implements the wordladder command-line interface.
//
// # Commands
//
//   - ladder: find a shortest word ladder between two words
//   - neighbors: list the dictionary words one letter away from a word
//   - play: build a ladder interactively
//   - cache: manage the result cache
//   - config: show the effective configuration
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs go to
// stderr so that --json output on stdout stays machine-readable.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordladder/pkg/buildinfo"
	"github.com/matzehuels/wordladder/pkg/cache"
	"github.com/matzehuels/wordladder/pkg/config"
	"github.com/matzehuels/wordladder/pkg/errors"
	"github.com/matzehuels/wordladder/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "wordladder"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any command runs. Flags override it.
	Config config.Config

	configFlag string // --config value
	configPath string // file actually consulted
}

// New creates a new CLI instance with a default logger and default config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Wordladder finds shortest word ladders",
		Long: `Wordladder connects two words of equal length through dictionary words,
changing one letter at a time, using as few steps as possible.

  COLD → CORD → CARD → WARD → WARM`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFlag, "config", "", "config file (default $XDG_CONFIG_HOME/wordladder/config.toml)")

	// Register all subcommands
	root.AddCommand(c.ladderCommand())
	root.AddCommand(c.neighborsCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// loadConfig reads the config file named by --config, or the default one.
// Only an explicitly named file has to exist.
func (c *CLI) loadConfig() error {
	path := c.configFlag
	if path != "" {
		if err := errors.ValidatePath(path); err != nil {
			return err
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s does not exist", path)
		}
	} else {
		p, err := config.Path()
		if err != nil {
			c.Logger.Debug("no default config path", "error", err)
			return nil
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	for _, key := range cfg.Unknown {
		c.Logger.Warn("unknown config key", "key", key, "file", path)
	}
	c.Config = cfg
	c.configPath = path
	c.Logger.Debug("config loaded", "file", path)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The caller closes
// runner.Cache when done.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cache, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

// newCache picks Redis when configured and reachable, the file cache
// otherwise, and no cache when disabled.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cc := c.Config.Cache
	if noCache || !cc.Enabled {
		return cache.NewNullCache(), nil
	}
	if cc.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: cc.RedisAddr, Prefix: appName + ":"})
		if err == nil {
			c.Logger.Debug("using redis cache", "addr", cc.RedisAddr)
			return rc, nil
		}
		c.Logger.Warn("redis unavailable, using file cache", "addr", cc.RedisAddr, "error", err)
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Debug("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// cacheDir returns the configured cache directory or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return config.CacheDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// dictionaryPath returns the --dict flag value, falling back to the config.
func (c *CLI) dictionaryPath(cmd *cobra.Command, flag string) (string, error) {
	path := flag
	if !cmd.Flags().Changed("dict") {
		path = c.Config.Dictionary
	}
	if path == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "no dictionary: pass --dict or set dictionary in the config file")
	}
	return path, nil
}

// foldCase returns the --fold-case flag value, falling back to the config.
func (c *CLI) foldCase(cmd *cobra.Command, flag bool) bool {
	if cmd.Flags().Changed("fold-case") {
		return flag
	}
	return c.Config.FoldCase
}
