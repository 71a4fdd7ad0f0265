package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/aurorder/pkg/errors"
	"github.com/matzehuels/aurorder/pkg/integrations/aur"
)

// defaultCacheTTL is how long cached RPC responses stay valid.
const defaultCacheTTL = time.Hour

// Cache backends.
const (
	backendFile  = "file"
	backendRedis = "redis"
)

// Config holds the settings read from the config file. Flags override it.
type Config struct {
	Endpoint     string        `toml:"endpoint"`
	MaxURLLength int           `toml:"max_url_length"`
	UserAgent    string        `toml:"user_agent"`
	Timeout      time.Duration `toml:"timeout"`
	Retries      int           `toml:"retries"`
	Cache        bool          `toml:"cache"`
	CacheTTL     time.Duration `toml:"cache_ttl"`
	CacheBackend string        `toml:"cache_backend"`
	RedisURL     string        `toml:"redis_url"`
}

// defaultConfig returns the built-in settings: the public AUR endpoint,
// no cache and no retries.
func defaultConfig() Config {
	return Config{
		Endpoint:     aur.DefaultEndpoint,
		MaxURLLength: aur.DefaultMaxURLLength,
		CacheTTL:     defaultCacheTTL,
		CacheBackend: backendFile,
	}
}

// loadConfig reads the TOML file at path on top of the defaults.
// A missing file is only an error when the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if err := apperrors.ValidateURL(c.Endpoint); err != nil {
		return fmt.Errorf("config endpoint: %w", err)
	}
	if c.MaxURLLength <= 0 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "config max_url_length must be positive, got %d", c.MaxURLLength)
	}
	switch c.CacheBackend {
	case backendFile:
	case backendRedis:
		if c.RedisURL == "" {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "config redis_url is required for the redis cache backend")
		}
	default:
		return apperrors.New(apperrors.ErrCodeInvalidInput, "config cache_backend must be %q or %q, got %q", backendFile, backendRedis, c.CacheBackend)
	}
	if c.Retries < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "config retries must not be negative, got %d", c.Retries)
	}
	return nil
}

// configPath returns the default config file location using the XDG
// standard (~/.config/aurorder/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
