// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, env overrides, defaults, discovery and
//              validation.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"

	fsserror "github.com/abeimler/fixed-size-string/core/error"
)

const tomlContent = `
[log]
level = "debug"
format = "json"

[defaults]
unit = "u16"
capacity = 32

[render]
color = false
`

const yamlContent = `
log:
  level: warn
defaults:
  unit: wide
  capacity: 8
render:
  color: true
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

// loadTOML loads content from a temporary TOML file
func loadTOML(t *testing.T, content string, opts LoadOptions) *Config {
	t.Helper()
	cfg, err := LoadWithOptions(writeFile(t, t.TempDir(), "fixedstr.toml", content), opts)
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}
	return cfg
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, dir, "fixedstr.toml", tomlContent))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format() != FormatTOML {
			t.Errorf("Format() = %v, want toml", cfg.Format())
		}
		if got := cfg.GetString("log.level"); got != "debug" {
			t.Errorf("log.level = %q, want debug", got)
		}
		if got := cfg.GetInt("defaults.capacity"); got != 32 {
			t.Errorf("defaults.capacity = %d, want 32", got)
		}
		if cfg.GetBool("render.color", true) {
			t.Error("render.color should be false")
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, dir, "fixedstr.yml", yamlContent))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}
		if got := cfg.GetString("defaults.unit"); got != "wide" {
			t.Errorf("defaults.unit = %q, want wide", got)
		}
		if got := cfg.GetInt("defaults.capacity"); got != 8 {
			t.Errorf("defaults.capacity = %d, want 8", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.toml"))
		if !fsserror.HasCode(err, fsserror.CodeNotFound) {
			t.Errorf("Load() error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !fsserror.HasCode(err, fsserror.CodeMissingConfig) {
			t.Errorf("Load() error = %v, want MISSING_CONFIG", err)
		}
	})

	t.Run("malformed content", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "broken.toml", "[log\nlevel ="))
		if !fsserror.HasCode(err, fsserror.CodeInvalidFormat) {
			t.Errorf("Load() error = %v, want INVALID_FORMAT", err)
		}
	})
}

func TestGettersDefaults(t *testing.T) {
	cfg := loadTOML(t, tomlContent, LoadOptions{})

	if got := cfg.GetString("log.missing", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q", got)
	}
	if got := cfg.GetInt("defaults.unit", 7); got != 7 {
		t.Errorf("GetInt on non-int = %d, want default 7", got)
	}
	if got := cfg.GetString("defaults.capacity"); got != "32" {
		t.Errorf("GetString on int = %q, want 32", got)
	}
	if cfg.Has("nope.nothing") {
		t.Error("Has() reported a missing key")
	}
	if !cfg.Has("render.color") {
		t.Error("Has() missed render.color")
	}
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadWithOptions(writeFile(t, dir, "c.toml", tomlContent), LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: "FIXEDSTR",
	})
	if err != nil {
		t.Fatal(err)
	}

	if key := cfg.EnvKey("defaults.capacity"); key != "FIXEDSTR_DEFAULTS_CAPACITY" {
		t.Errorf("EnvKey() = %q", key)
	}

	t.Setenv("FIXEDSTR_LOG_LEVEL", "trace")
	t.Setenv("FIXEDSTR_DEFAULTS_CAPACITY", "64")
	t.Setenv("FIXEDSTR_RENDER_COLOR", "true")

	if got := cfg.GetString("log.level"); got != "trace" {
		t.Errorf("log.level = %q, want trace", got)
	}
	if got := cfg.GetInt("defaults.capacity"); got != 64 {
		t.Errorf("defaults.capacity = %d, want 64", got)
	}
	if !cfg.GetBool("render.color") {
		t.Error("render.color should be overridden to true")
	}
}

func TestDefaultsMergeNested(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadWithOptions(writeFile(t, dir, "c.yaml", "log:\n  level: error\n"), LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"log":      map[string]interface{}{"level": "info", "format": "console"},
			"defaults": map[string]interface{}{"capacity": 16},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetString("log.level"); got != "error" {
		t.Errorf("log.level = %q, want file value error", got)
	}
	if got := cfg.GetString("log.format"); got != "console" {
		t.Errorf("log.format = %q, want default console", got)
	}
	if got := cfg.GetInt("defaults.capacity"); got != 16 {
		t.Errorf("defaults.capacity = %d, want 16", got)
	}
}

func TestSet(t *testing.T) {
	defaults := map[string]interface{}{
		"render": map[string]interface{}{"color": false},
	}
	cfg := Empty("", defaults)
	cfg.Set("render.color", true)
	cfg.Set("log.level", "debug")

	if !cfg.GetBool("render.color") {
		t.Error("Set() value not visible")
	}
	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q, want debug", got)
	}
	if defaults["render"].(map[string]interface{})["color"] != false {
		t.Error("Set() wrote through to the defaults")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	opts := DiscoveryOptions{
		Paths:      []string{filepath.Join(dir, "none"), dir},
		Filenames:  []string{"fixedstr"},
		Extensions: []string{".toml", ".yaml"},
	}

	t.Run("not found and optional", func(t *testing.T) {
		cfg, err := Discover(opts)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.FilePath() != "" {
			t.Errorf("FilePath() = %q, want empty", cfg.FilePath())
		}
	})

	t.Run("not found and required", func(t *testing.T) {
		required := opts
		required.Required = true
		_, err := Discover(required)
		if !fsserror.HasCode(err, fsserror.CodeNotFound) {
			t.Errorf("Discover() error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		path := writeFile(t, dir, "fixedstr.yaml", yamlContent)
		cfg, err := Discover(opts)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.FilePath() != path {
			t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
		}
	})

	if n := len(ListPossibleConfigFiles(opts)); n != 4 {
		t.Errorf("ListPossibleConfigFiles() = %d paths, want 4", n)
	}
}

func TestValidate(t *testing.T) {
	rules := ValidationRules{
		"log.level":         {OneOf: []string{"trace", "debug", "info", "warn", "error"}},
		"defaults.capacity": {Type: "int", Min: IntPtr(1), Max: IntPtr(256)},
		"render.color":      {Type: "bool"},
		"defaults.unit":     {Required: true},
	}

	t.Run("valid", func(t *testing.T) {
		cfg := loadTOML(t, tomlContent, LoadOptions{})
		result := cfg.Validate(rules)
		if !result.Valid || result.Err() != nil {
			t.Errorf("Validate() = %+v", result.Errors)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		cfg := loadTOML(t, `
[log]
level = "loud"
[defaults]
capacity = 1000
[render]
color = "yes"
`, LoadOptions{})
		result := cfg.Validate(rules)
		if result.Valid {
			t.Fatal("Validate() should fail")
		}
		if len(result.Errors) != 4 {
			t.Errorf("got %d errors, want 4", len(result.Errors))
		}
		err := result.Err()
		if !fsserror.HasCode(err, fsserror.CodeInvalidConfig) {
			t.Errorf("Err() = %v, want INVALID_CONFIG", err)
		}
		if !fsserror.HasCode(err, fsserror.CodeValidationFailed) {
			t.Errorf("Err() chain should keep the field error")
		}
	})
}

func TestValidateEnvOverrides(t *testing.T) {
	rules := ValidationRules{
		"defaults.capacity": {Type: "int", Min: IntPtr(1)},
		"render.color":      {Type: "bool"},
	}
	cfg := loadTOML(t, tomlContent, LoadOptions{EnvPrefix: "FIXEDSTR"})

	tests := []struct {
		name       string
		capacity   string
		color      string
		wantErrors int
	}{
		{"valid overrides", "64", "true", 0},
		{"non-numeric capacity", "abc", "true", 1},
		{"capacity below minimum", "0", "false", 1},
		{"non-boolean color", "64", "maybe", 1},
		{"both invalid", "abc", "maybe", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FIXEDSTR_DEFAULTS_CAPACITY", tt.capacity)
			t.Setenv("FIXEDSTR_RENDER_COLOR", tt.color)

			result := cfg.Validate(rules)
			if len(result.Errors) != tt.wantErrors {
				t.Fatalf("got %d errors (%v), want %d", len(result.Errors), result.Errors, tt.wantErrors)
			}
			if tt.wantErrors == 0 {
				return
			}
			if !fsserror.HasCode(result.Err(), fsserror.CodeInvalidConfig) {
				t.Errorf("Err() = %v, want INVALID_CONFIG", result.Err())
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatTOML, "toml"},
		{FormatYAML, "yaml"},
		{FormatAuto, "auto"},
		{Format(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}
