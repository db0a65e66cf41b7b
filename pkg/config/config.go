// Package config assembles the tool's configuration from defaults, an
// optional YAML file, an optional .env file and STOCKROOM_* environment
// overrides, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration surface.
type Config struct {
	// ItemsPerPage is the page size for warehouse listings.
	ItemsPerPage int `yaml:"items_per_page"`
	// CategoryCodeStart is the first code assigned when numbering categories.
	CategoryCodeStart int `yaml:"category_code_start"`
	// MaxPersonnelDepth bounds the credential search against malformed input.
	MaxPersonnelDepth int `yaml:"max_personnel_depth"`
	// InventoryFile points at a stock CSV; empty means the built-in seed data.
	InventoryFile string `yaml:"inventory_file"`
	// PersonnelFile points at a personnel YAML; empty means the built-in seed data.
	PersonnelFile string `yaml:"personnel_file"`
	// LogLevel is the zap level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when nothing else is provided.
func Default() Config {
	return Config{
		ItemsPerPage:      50,
		CategoryCodeStart: 1,
		MaxPersonnelDepth: 32,
		LogLevel:          "info",
	}
}

// Load builds the configuration. path may be empty; a missing config file is
// not an error, a malformed one is. A .env file in the working directory is
// loaded best-effort before environment overrides are applied.
func Load(path string) (Config, error) {
	cfg := Default()

	// .env is optional; ignore absence.
	_ = godotenv.Load()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v, ok := lookupInt("STOCKROOM_ITEMS_PER_PAGE"); ok {
		c.ItemsPerPage = v
	}
	if v, ok := lookupInt("STOCKROOM_CATEGORY_CODE_START"); ok {
		c.CategoryCodeStart = v
	}
	if v, ok := lookupInt("STOCKROOM_MAX_PERSONNEL_DEPTH"); ok {
		c.MaxPersonnelDepth = v
	}
	if v := os.Getenv("STOCKROOM_INVENTORY_FILE"); v != "" {
		c.InventoryFile = v
	}
	if v := os.Getenv("STOCKROOM_PERSONNEL_FILE"); v != "" {
		c.PersonnelFile = v
	}
	if v := os.Getenv("STOCKROOM_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

func lookupInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.ItemsPerPage <= 0 {
		return fmt.Errorf("items_per_page must be positive, got %d", c.ItemsPerPage)
	}
	if c.MaxPersonnelDepth <= 0 {
		return fmt.Errorf("max_personnel_depth must be positive, got %d", c.MaxPersonnelDepth)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
