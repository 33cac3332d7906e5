package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/xolan/waterlog/internal/osutil"
	"github.com/xolan/waterlog/internal/unit"
)

const (
	// AppName is the application name used for config directory
	AppName = "waterlog"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Storage backends
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Config represents the application configuration
type Config struct {
	// Timezone is the IANA zone used to decide which calendar day "today" is
	Timezone string `toml:"timezone"`
	// Storage selects the medium for day state: "file" or "sqlite"
	Storage string `toml:"storage"`
	// DefaultUnit is the unit for a day with no saved state ("oz" or "L")
	DefaultUnit string `toml:"default_unit"`
	// Theme is the bubbletint theme id used by the TUI
	Theme string `toml:"theme"`
	// LogLevel is the diagnostic log level (debug, info, warn, error, disabled)
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns a Config with defaults that match a fresh install.
// - timezone: "Local"
// - storage: "file"
// - default_unit: "oz"
// - theme: "" (TUI default theme)
// - log_level: "warn"
func DefaultConfig() Config {
	return Config{
		Timezone:    "Local",
		Storage:     StorageFile,
		DefaultUnit: "oz",
		Theme:       "",
		LogLevel:    "warn",
	}
}

// GetConfigDir returns the application directory, creating it if it doesn't
// exist. WATERLOG_HOME takes precedence over the user config dir.
func GetConfigDir() (string, error) {
	appDir := osutil.Provider.Getenv(osutil.HomeEnv)
	if appDir == "" {
		configDir, err := osutil.Provider.UserConfigDir()
		if err != nil {
			return "", err
		}
		appDir = filepath.Join(configDir, AppName)
	}

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}
	return appDir, nil
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
func GetConfigPath() (string, error) {
	appDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at path.
// Fields missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config at path, returning DefaultConfig when the
// file does not exist. Any other failure is returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Normalize lowercases enumerated fields and fills empty ones with defaults
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = defaults.Timezone
	}

	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	if c.Storage == "" {
		c.Storage = defaults.Storage
	}

	c.DefaultUnit = strings.TrimSpace(c.DefaultUnit)
	if c.DefaultUnit == "" {
		c.DefaultUnit = defaults.DefaultUnit
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}

	c.Theme = strings.TrimSpace(c.Theme)
}

// Validate checks every field and returns the first problem found
func (c Config) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}

	switch c.Storage {
	case StorageFile, StorageSQLite:
	default:
		return fmt.Errorf("storage %q: must be %q or %q", c.Storage, StorageFile, StorageSQLite)
	}

	if _, err := unit.Lookup(c.DefaultUnit); err != nil {
		return fmt.Errorf("default_unit: %w", err)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}

	return nil
}

// Location returns the configured time zone, or time.Local if it cannot be loaded
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// DefaultUnitIndex returns the index of DefaultUnit in unit.Units (0 if unknown)
func (c Config) DefaultUnitIndex() int {
	idx, err := unit.Lookup(c.DefaultUnit)
	if err != nil {
		return 0
	}
	return idx
}

// Level returns the configured zerolog level (warn if unparsable)
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// Encode renders cfg as a commented TOML document
func Encode(cfg Config) string {
	return fmt.Sprintf(`# waterlog configuration file

# Timezone used to decide which day "today" is: IANA name (e.g., "Europe/Oslo") or "Local"
timezone = %q

# Where daily state is kept: "file" (one JSON file per day) or "sqlite"
storage = %q

# Unit for a day with no saved state: "oz" or "L"
default_unit = %q

# TUI color theme (bubbletint id, e.g., "dracula"); empty uses the default
theme = %q

# Diagnostic log level on stderr: debug, info, warn, error, disabled
log_level = %q
`, cfg.Timezone, cfg.Storage, cfg.DefaultUnit, cfg.Theme, cfg.LogLevel)
}

// GenerateSampleConfig returns a sample config file with default values
func GenerateSampleConfig() string {
	return Encode(DefaultConfig())
}
