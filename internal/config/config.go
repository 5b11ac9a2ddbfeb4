package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultLogPath = "taxform.log"

	envCatalog = "TAXFORM_CATALOG"
	envDB      = "TAXFORM_DB"
	envLog     = "TAXFORM_LOG"
	envConfig  = "TAXFORM_CONFIG"
)

// Config holds where the catalog comes from and where logs go.
// An empty CatalogPath and DatabasePath selects the built-in sample catalog.
type Config struct {
	CatalogPath  string `toml:"catalog"`
	DatabasePath string `toml:"database"`
	LogPath      string `toml:"log"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{LogPath: DefaultLogPath}
}

// Path returns the config file location: TAXFORM_CONFIG, or
// $XDG_CONFIG_HOME/taxform/config.toml.
func Path() string {
	if env := os.Getenv(envConfig); env != "" {
		return env
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "taxform", "config.toml")
}

// Load builds the configuration from, in increasing precedence: defaults,
// the TOML config file, a .env file in the working directory, and the
// TAXFORM_* environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if path := Path(); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	// Load .env file if present (ignore errors)
	_ = godotenv.Load()

	cfg.applyEnv()
	cfg.expand()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if env := os.Getenv(envCatalog); env != "" {
		c.CatalogPath = env
	}
	if env := os.Getenv(envDB); env != "" {
		c.DatabasePath = env
	}
	if env := os.Getenv(envLog); env != "" {
		c.LogPath = env
	}
}

func (c *Config) expand() {
	c.CatalogPath = ExpandHome(c.CatalogPath)
	c.DatabasePath = ExpandHome(c.DatabasePath)
	c.LogPath = ExpandHome(c.LogPath)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
