package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ladder/pkg/buildinfo"
	"github.com/matzehuels/ladder/pkg/cache"
	"github.com/matzehuels/ladder/pkg/config"
	"github.com/matzehuels/ladder/pkg/dict"
	"github.com/matzehuels/ladder/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

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

	configPath string
	verbose    bool
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Ladder finds every shortest word ladder between two words",
		Long: `Ladder transforms one word into another by changing a single letter at a
time, where every intermediate word must appear in a dictionary. It reports
all shortest transformation sequences, exports the breadth-first level graph
behind them, and serves both over HTTP.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ladder/ladder.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// config loads the configuration file once per process.
func (c *CLI) config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Source != "" {
		c.Logger.Debug("Loaded config", "path", cfg.Source)
	}
	c.cfg = cfg
	return cfg, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	cc, err := c.newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(cc, cfg.Keyer(), c.Logger)
	r.TTL = cfg.Cache.TTL.Duration
	return r, nil
}

func (c *CLI) newCache(ctx context.Context, cfg *config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := config.CacheDir()
	if err != nil {
		c.Logger.Debug("Caching disabled", "err", err)
		dir = ""
	}
	opts := cfg.CacheOptions(dir)
	if (opts.Backend == "" || opts.Backend == cache.BackendFile) && opts.Dir == "" {
		return cache.NewNullCache(), nil
	}
	cc, err := cache.Open(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("open %s cache: %w", opts.Backend, err)
	}
	c.Logger.Debug("Opened cache", "backend", opts.Backend)
	return cc, nil
}

// =============================================================================
// Dictionary
// =============================================================================

// loadDictionary reads the word list at path (the configured one when path is
// empty) and adds the inline words to it.
func (c *CLI) loadDictionary(ctx context.Context, path string, words []string) (*dict.Dictionary, error) {
	if path == "" {
		cfg, err := c.config()
		if err != nil {
			return nil, err
		}
		path = cfg.Dictionary.Path
	}
	inline := dict.New(words)
	if path == "" {
		return inline, nil
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	d, err := dict.LoadFile(path)
	if err != nil {
		return nil, err
	}
	prog.done("Loaded dictionary", "path", path, "words", d.Len())
	return d.Merge(inline), nil
}

// =============================================================================
// Output
// =============================================================================

// writeOutput writes to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
