package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfigFile(t, "full.yaml", `
title: My Journal
output:
  dir: books
  dateFormat: european
cover:
  path: art/cover.jpg
latex:
  rtlFont: Vazir
  dropCaps: true
  headingFallback: ignore
pdf:
  engine: chrome
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Title != "My Journal" {
			t.Errorf("Title = %q", cfg.Title)
		}
		if cfg.Output.Dir != "books" || cfg.Output.DateFormat != "european" {
			t.Errorf("Output = %+v", cfg.Output)
		}
		if cfg.Cover.Path != "art/cover.jpg" {
			t.Errorf("Cover = %+v", cfg.Cover)
		}
		if cfg.Latex.RTLFont != "Vazir" || !cfg.Latex.DropCaps || cfg.Latex.HeadingFallback != "ignore" {
			t.Errorf("Latex = %+v", cfg.Latex)
		}
		if cfg.PDF.Engine != "chrome" {
			t.Errorf("PDF = %+v", cfg.PDF)
		}
	})

	t.Run("partial config leaves rest zero", func(t *testing.T) {
		path := writeConfigFile(t, "partial.yaml", "title: Only Title\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Title != "Only Title" || cfg.Output.Dir != "" || cfg.PDF.Engine != "" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "absent.yaml")
		if _, err := LoadConfig(missing); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("missing config name", func(t *testing.T) {
		chdir(t, t.TempDir())
		if _, err := LoadConfig("nosuchconfig"); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("name resolved in current directory", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		if err := os.WriteFile("local.yaml", []byte("title: Local\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadConfig("local")
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Title != "Local" {
			t.Errorf("Title = %q, want Local", cfg.Title)
		}
	})

	t.Run("yml extension also resolved", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		if err := os.WriteFile("alt.yml", []byte("title: Alt\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadConfig("alt")
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Title != "Alt" {
			t.Errorf("Title = %q, want Alt", cfg.Title)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfigFile(t, "bad.yaml", "title: [unclosed\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		path := writeConfigFile(t, "unknown.yaml", "titel: typo\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("field too long", func(t *testing.T) {
		path := writeConfigFile(t, "long.yaml", "title: "+strings.Repeat("x", MaxTitleLength+1)+"\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("LoadConfig() error = %v, want ErrFieldTooLong", err)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "empty config valid",
			mutate: func(*Config) {},
		},
		{
			name:   "limits respected",
			mutate: func(c *Config) { c.Title = strings.Repeat("t", MaxTitleLength) },
		},
		{
			name:    "title too long",
			mutate:  func(c *Config) { c.Title = strings.Repeat("t", MaxTitleLength+1) },
			wantErr: true,
		},
		{
			name:    "font too long",
			mutate:  func(c *Config) { c.Latex.RTLFont = strings.Repeat("f", MaxFontLength+1) },
			wantErr: true,
		},
		{
			name:    "date format too long",
			mutate:  func(c *Config) { c.Output.DateFormat = strings.Repeat("Y", MaxDateFormatLength+1) },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("Validate() error = %v, want ErrFieldTooLong", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}
