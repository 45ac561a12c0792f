// Package config loads journalbook configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mjbahonar/journalbook/internal/fileutil"
	"github.com/mjbahonar/journalbook/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength      = 200 // document title
	MaxFontLength       = 100 // RTL font name
	MaxDateFormatLength = 50  // date format tokens
	MaxPathLength       = 4096
)

// Config holds all configuration for document generation.
type Config struct {
	Title  string       `yaml:"title"`
	Output OutputConfig `yaml:"output"`
	Cover  CoverConfig  `yaml:"cover"`
	Latex  LatexConfig  `yaml:"latex"`
	PDF    PDFConfig    `yaml:"pdf"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir        string `yaml:"dir"`        // empty = directory named after the input stem
	DateFormat string `yaml:"dateFormat"` // friendly tokens, e.g. "YYYY-MM-DD" or preset name
}

// CoverConfig defines e-book cover options.
type CoverConfig struct {
	Path string `yaml:"path"` // cover image path (empty = cover.jpg in the working directory)
}

// LatexConfig defines typeset output options.
type LatexConfig struct {
	RTLFont         string `yaml:"rtlFont"`         // font for right-to-left output
	DropCaps        bool   `yaml:"dropCaps"`        // decorative first letter (auto-disabled for RTL)
	HeadingFallback string `yaml:"headingFallback"` // "paragraph" or "ignore" for #### and deeper
}

// PDFConfig defines PDF rendering options.
type PDFConfig struct {
	Engine string `yaml:"engine"` // "office", "chrome", or "none"
}

// DefaultConfig returns a neutral configuration; empty fields fall back to
// the library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		limit int
	}{
		{"title", c.Title, MaxTitleLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"output.dateFormat", c.Output.DateFormat, MaxDateFormatLength},
		{"cover.path", c.Cover.Path, MaxPathLength},
		{"latex.rtlFont", c.Latex.RTLFont, MaxFontLength},
	}
	for _, ch := range checks {
		if len(ch.value) > ch.limit {
			return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, ch.name, len(ch.value), ch.limit)
		}
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/journalbook/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "journalbook", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
