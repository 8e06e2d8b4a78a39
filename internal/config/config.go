// Package config loads and saves the atelier TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all atelier configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Display    DisplayConfig    `toml:"display"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds storage and safety preferences.
type GeneralConfig struct {
	DataDir      string `toml:"data_dir,omitempty"`
	ConfirmClear bool   `toml:"confirm_clear"`
}

// DisplayConfig controls how amounts and dates are rendered.
type DisplayConfig struct {
	Currency   string `toml:"currency"`
	Locale     string `toml:"locale"`
	MonthLabel bool   `toml:"month_label"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			ConfirmClear: true,
		},
		Display: DisplayConfig{
			Currency:   "€",
			Locale:     "es-ES",
			MonthLabel: true,
		},
		Appearance: AppearanceConfig{
			Theme: "atelier",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "atelier")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "atelier")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultDataDir returns the XDG data directory used when none is configured.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "atelier")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "atelier")
}

// DefaultLogFile returns where the dashboard writes its log.
func DefaultLogFile() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "atelier", "atelier.log")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "atelier", "atelier.log")
}

// DataDir resolves the effective data directory.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	return DefaultDataDir()
}

// DBPath returns the ledger database path for cfg.
func DBPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "atelier.db")
}

// LogFile resolves the effective dashboard log file.
func LogFile(cfg Config) string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	return DefaultLogFile()
}

// Load reads .env (if present), then the config file, then applies
// environment overrides. A missing config file yields defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ATELIER_DATA_DIR"); v != "" {
		cfg.General.DataDir = v
	}
	if v := os.Getenv("ATELIER_THEME"); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv("ATELIER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
