package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/knadh/koanf"
	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"

	"github.com/vango-dev/slot/internal/errors"
)

const (
	// ConfigFileName is the file looked up when no path is given.
	ConfigFileName = "vslot.yaml"

	// EnvPrefix prefixes environment overrides. Nested keys use a double
	// underscore: SLOT_RENDER__PRETTY=true sets render.pretty.
	EnvPrefix = "SLOT_"

	// DefaultLogLevel is the default minimum log level.
	DefaultLogLevel = "warn"

	// DefaultIndent is the default pretty-print indentation.
	DefaultIndent = "  "

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "vango"

	// DefaultSubsystem is the default metrics subsystem.
	DefaultSubsystem = "slot"
)

// Config is the vslot configuration.
type Config struct {
	// DevMode enables composition diagnostics.
	DevMode bool `koanf:"dev_mode"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Render configures HTML output.
	Render RenderConfig `koanf:"render"`

	// Metrics configures the Prometheus collector.
	Metrics MetricsConfig `koanf:"metrics"`

	// path is the file the config was loaded from, if any.
	path string
}

// RenderConfig configures HTML output.
type RenderConfig struct {
	Pretty       bool   `koanf:"pretty"`
	Indent       string `koanf:"indent"`
	HydrationIDs bool   `koanf:"hydration_ids"`
}

// MetricsConfig configures the Prometheus collector.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
	Subsystem string `koanf:"subsystem"`
}

func defaults() map[string]any {
	return map[string]any{
		"dev_mode":             false,
		"log_level":            DefaultLogLevel,
		"render.pretty":        false,
		"render.indent":        DefaultIndent,
		"render.hydration_ids": true,
		"metrics.enabled":      false,
		"metrics.namespace":    DefaultNamespace,
		"metrics.subsystem":    DefaultSubsystem,
	}
}

// New returns a Config holding the defaults.
func New() *Config {
	cfg, err := load("")
	if err != nil {
		// The defaults alone cannot fail to unmarshal.
		panic(err)
	}
	return cfg
}

// Load reads configuration from defaults, then the file at path (if path
// is not empty), then SLOT_* environment variables. The result is
// validated.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDir loads ConfigFileName from dir if it exists, and the defaults
// and environment otherwise.
func LoadDir(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return Load("")
	}
	return Load(path)
}

func load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.New(errors.CodeConfigLoad).Wrap(err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err != nil {
			return nil, errors.New(errors.CodeConfigLoad).
				WithDetail("Cannot read " + path).
				Wrap(err)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.New(errors.CodeConfigLoad).
				WithDetail("Failed to parse " + path).
				Wrap(err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.New(errors.CodeConfigLoad).Wrap(err)
	}

	cfg := &Config{path: path}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.New(errors.CodeConfigLoad).Wrap(err)
	}
	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return kjson.Parser(), nil
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	default:
		return nil, errors.New(errors.CodeConfigLoad).
			WithDetail(fmt.Sprintf("Unsupported config file extension %q", filepath.Ext(path))).
			WithSuggestion("Use a .json, .yaml or .yml file")
	}
}

// envKey maps SLOT_RENDER__PRETTY to render.pretty.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

var metricName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if _, ok := parseLevel(c.LogLevel); !ok {
		result = multierror.Append(result,
			fmt.Errorf("log_level %q must be one of debug, info, warn, error", c.LogLevel))
	}
	if strings.Trim(c.Render.Indent, " \t") != "" {
		result = multierror.Append(result,
			fmt.Errorf("render.indent must contain only spaces and tabs"))
	}
	if c.Metrics.Enabled {
		if !metricName.MatchString(c.Metrics.Namespace) {
			result = multierror.Append(result,
				fmt.Errorf("metrics.namespace %q is not a valid metric name", c.Metrics.Namespace))
		}
		if c.Metrics.Subsystem != "" && !metricName.MatchString(c.Metrics.Subsystem) {
			result = multierror.Append(result,
				fmt.Errorf("metrics.subsystem %q is not a valid metric name", c.Metrics.Subsystem))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.New(errors.CodeConfigInvalid).Wrap(err)
	}
	return nil
}

// Path returns the file the configuration was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// Level returns LogLevel as a slog level. Unknown values map to warn.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelWarn, false
	}
}
