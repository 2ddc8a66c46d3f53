package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// userConfigFile is the name of the optional user configuration file.
	userConfigFile = ".emsconfig.yaml"
	// envFile is loaded into the process environment before reading config.
	envFile = ".env"
	// envPrefix prefixes every environment variable override (EMS_DATA_FILE, ...).
	envPrefix = "EMS"

	// Default configuration values
	DefaultLogLevel = "warn"
	DefaultColor    = true
)

// Config keys, shared by the config file and EMS_* environment variables.
const (
	KeyDataFile = "data_file"
	KeyLogLevel = "log_level"
	KeyColor    = "color"
)

// Config represents user configuration.
// Precedence, lowest first: defaults, .emsconfig.yaml, .env, environment.
// Command-line flags are applied on top by the caller.
type Config struct {
	// DataFile is the path of the employees file.
	DataFile string

	// LogLevel is the logrus level for diagnostics written to stderr.
	LogLevel string

	// Color enables ANSI colors when stdout is a terminal.
	Color bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile: DefaultDataFile,
		LogLevel: DefaultLogLevel,
		Color:    DefaultColor,
	}
}

// LoadConfig reads configuration for the given working directory.
// Missing .emsconfig.yaml and .env files are not errors.
// A relative data file path is resolved against dir.
func LoadConfig(dir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(dir, envFile)); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetDefault(KeyDataFile, DefaultDataFile)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyColor, DefaultColor)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	configPath := filepath.Join(dir, userConfigFile)
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := &Config{
		DataFile: v.GetString(KeyDataFile),
		LogLevel: v.GetString(KeyLogLevel),
		Color:    v.GetBool(KeyColor),
	}
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
	if !filepath.IsAbs(cfg.DataFile) {
		cfg.DataFile = filepath.Join(dir, cfg.DataFile)
	}

	return cfg, nil
}

// ConfigPath returns the path to the user config file in dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, userConfigFile)
}
