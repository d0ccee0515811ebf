package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Ning0612/dupfinder/internal/domain"
	"github.com/Ning0612/dupfinder/internal/logger"
)

// Output formats
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputTable = "table"
)

// Config represents the complete configuration for dupfinder
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Parse  ParseConfig  `mapstructure:"parse"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig controls logging
type LogConfig struct {
	Level  string        `mapstructure:"level"`
	Format string        `mapstructure:"format"`
	File   LogFileConfig `mapstructure:"file"`
}

// LogFileConfig enables rotating file logs when Path is set
type LogFileConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// ParseConfig controls the entry parser
type ParseConfig struct {
	// StrictClose rejects file tokens whose last character is not ')'
	StrictClose bool `mapstructure:"strict_close"`
}

// OutputConfig controls result rendering
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
			File: LogFileConfig{
				MaxSizeMB:  10,
				MaxAgeDays: 7,
				MaxBackups: 3,
			},
		},
		Output: OutputConfig{Format: OutputText},
	}
}

// Validate checks if the configuration is complete and consistent
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}
	if _, err := logger.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}
	if c.Log.File.MaxSizeMB < 0 || c.Log.File.MaxAgeDays < 0 || c.Log.File.MaxBackups < 0 {
		return fmt.Errorf("%w: log file limits cannot be negative", domain.ErrConfigInvalid)
	}

	switch c.Output.Format {
	case OutputText, OutputJSON, OutputTable:
	default:
		return fmt.Errorf("%w: unknown output format: %s", domain.ErrConfigInvalid, c.Output.Format)
	}

	return nil
}

// LoggerConfig converts the log section into a logger.Config.
// Call Validate first; unknown values fall back to defaults.
func (c *Config) LoggerConfig() logger.Config {
	level, _ := logger.ParseLevel(c.Log.Level)
	format, _ := logger.ParseFormat(c.Log.Format)

	return logger.Config{
		Level:  level,
		Format: format,
		File: logger.FileConfig{
			Path:       ExpandPath(c.Log.File.Path),
			MaxSizeMB:  c.Log.File.MaxSizeMB,
			MaxAgeDays: c.Log.File.MaxAgeDays,
			MaxBackups: c.Log.File.MaxBackups,
			Compress:   c.Log.File.Compress,
		},
	}
}

// ExpandPath expands ~ and environment variables in a path
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			if len(path) > 1 && (path[1] == '/' || path[1] == filepath.Separator) {
				path = filepath.Join(home, path[2:])
			} else if len(path) == 1 {
				path = home
			}
		}
	}
	path = os.ExpandEnv(path)
	return filepath.Clean(path)
}
