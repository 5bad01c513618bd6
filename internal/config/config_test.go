package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/slot/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.DevMode {
		t.Error("DevMode should be false by default")
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.Render.Indent != DefaultIndent {
		t.Errorf("Render.Indent = %q, want %q", cfg.Render.Indent, DefaultIndent)
	}
	if !cfg.Render.HydrationIDs {
		t.Error("Render.HydrationIDs should be true by default")
	}
	if cfg.Metrics.Namespace != DefaultNamespace || cfg.Metrics.Subsystem != DefaultSubsystem {
		t.Errorf("Metrics = %+v", cfg.Metrics)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "vslot.json", `{
  "dev_mode": true,
  "log_level": "debug",
  "render": {"pretty": true}
}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.DevMode || cfg.LogLevel != "debug" || !cfg.Render.Pretty {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Render.Indent != DefaultIndent {
		t.Error("defaults should survive a partial file")
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "vslot.yml", `
metrics:
  enabled: true
  namespace: app
render:
  hydration_ids: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Namespace != "app" {
		t.Errorf("Metrics = %+v", cfg.Metrics)
	}
	if cfg.Render.HydrationIDs {
		t.Error("Render.HydrationIDs should be overridden to false")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "vslot.yaml", "log_level: info\n")
	t.Setenv("SLOT_LOG_LEVEL", "error")
	t.Setenv("SLOT_RENDER__PRETTY", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
	}
	if !cfg.Render.Pretty {
		t.Error("SLOT_RENDER__PRETTY should set render.pretty")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		code string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), errors.CodeConfigLoad},
		{"bad extension", writeFile(t, dir, "vslot.toml", ""), errors.CodeConfigLoad},
		{"bad json", writeFile(t, dir, "bad.json", "{"), errors.CodeConfigLoad},
		{"invalid values", writeFile(t, dir, "invalid.json", `{"log_level": "loud"}`), errors.CodeConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if !errors.HasCode(err, tt.code) {
				t.Errorf("Load() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir(empty) error: %v", err)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}

	writeFile(t, dir, ConfigFileName, "dev_mode: true\n")
	cfg, err = LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error: %v", err)
	}
	if !cfg.DevMode {
		t.Error("LoadDir should read vslot.yaml")
	}
}

func TestValidateAggregates(t *testing.T) {
	cfg := New()
	cfg.LogLevel = "verbose"
	cfg.Render.Indent = "--"
	cfg.Metrics.Enabled = true
	cfg.Metrics.Namespace = "bad-name"
	cfg.Metrics.Subsystem = "9lives"

	err := cfg.Validate()
	if !errors.HasCode(err, errors.CodeConfigInvalid) {
		t.Fatalf("Validate() = %v, want %s", err, errors.CodeConfigInvalid)
	}
	for _, want := range []string{"log_level", "render.indent", "metrics.namespace", "metrics.subsystem"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q: %v", want, err)
		}
	}
}

func TestValidateIgnoresMetricsWhenDisabled(t *testing.T) {
	cfg := New()
	cfg.Metrics.Namespace = "bad-name"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelWarn},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.in}
		if got := cfg.Level(); got != tt.want {
			t.Errorf("Level(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
