package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// AuthConfig holds settings for the optional remote login endpoint.
// When Endpoint is empty, credentials are checked against the local store.
type AuthConfig struct {
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
}

// DisplayConfig holds UI preferences.
type DisplayConfig struct {
	Theme    string `mapstructure:"theme" yaml:"theme"`
	PageSize int    `mapstructure:"page_size" yaml:"page_size"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	// DataDir is where the database and log file live.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	Auth    AuthConfig    `mapstructure:"auth" yaml:"auth"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/contactflow/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "contactflow", "config.yaml")
}

// defaultDataDir returns ~/.local/share/contactflow, falling back to the
// working directory when the home directory cannot be resolved.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "contactflow")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		DataDir:  defaultDataDir(),
		LogLevel: "info",
		Display: DisplayConfig{
			Theme:    "default",
			PageSize: 10,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("log_level", "info")
	v.SetDefault("display.theme", "default")
	v.SetDefault("display.page_size", 10)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Display.PageSize <= 0 {
		cfg.Display.PageSize = 10
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("data_dir", cfg.DataDir)
	v.Set("log_level", cfg.LogLevel)
	v.Set("auth", cfg.Auth)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
