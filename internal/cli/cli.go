package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/aurorder/pkg/buildinfo"
	"github.com/matzehuels/aurorder/pkg/cache"
	"github.com/matzehuels/aurorder/pkg/integrations/aur"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "aurorder"

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
	Config Config

	configFile string
	endpoint   string
	useCache   bool
	noCache    bool
	refresh    bool
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
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
		Short: "aurorder computes build orders for AUR packages",
		Long: `aurorder resolves the dependency closure of an AUR package through the
AUR RPC interface and prints the order in which the packages must be built
so that every package comes after its dependencies.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&c.configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/aurorder/config.toml)")
	flags.StringVar(&c.endpoint, "endpoint", "", "AUR RPC endpoint (overrides config)")
	flags.BoolVar(&c.useCache, "cache", false, "cache RPC responses (backend set by cache_backend)")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the response cache even if configured")
	flags.BoolVar(&c.refresh, "refresh", false, "ignore cached responses and fetch fresh data")
	root.MarkFlagsMutuallyExclusive("cache", "no-cache")

	root.AddCommand(c.orderCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and applies the global flags before any
// subcommand runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
		registerLogHooks(c.Logger)
	}

	path, explicit := c.configFile, c.configFile != ""
	if !explicit {
		if p, err := configPath(); err == nil {
			path = p
		}
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return err
	}
	if c.endpoint != "" {
		cfg.Endpoint = c.endpoint
	}
	if c.useCache {
		cfg.Cache = true
	}
	if c.noCache {
		cfg.Cache = false
	}
	c.Config = cfg
	c.Logger.Debug("configuration loaded", "path", path, "endpoint", cfg.Endpoint, "cache", cfg.Cache)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Client Factory
// =============================================================================

// newClient creates an AUR client from the loaded configuration. The
// returned cache must be closed when the client is no longer used.
func (c *CLI) newClient(ctx context.Context) (*aur.Client, cache.Cache, error) {
	cc := cache.NewNullCache()
	if c.Config.Cache {
		var err error
		if cc, err = c.openCache(ctx); err != nil {
			return nil, nil, err
		}
	}
	client := aur.NewClient(aur.Config{
		Endpoint:     c.Config.Endpoint,
		MaxURLLength: c.Config.MaxURLLength,
		UserAgent:    c.Config.UserAgent,
		Timeout:      c.Config.Timeout,
		Retries:      c.Config.Retries,
		Cache:        cc,
		CacheTTL:     c.Config.CacheTTL,
		Logger:       c.Logger,
	})
	return client, cc, nil
}

// openCache opens the configured cache backend.
func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	if c.Config.CacheBackend == backendRedis {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{URL: c.Config.RedisURL})
		if err != nil {
			return nil, err
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, fmt.Errorf("get cache dir: %w", err)
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/aurorder/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
