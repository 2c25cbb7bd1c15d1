package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tcdirect/direct-common/pkg/metrics"
)

const (
	// SettingsFileEnv names an optional YAML settings file.
	SettingsFileEnv = "DIRECT_SETTINGS"

	envPrefix = "DIRECT_"
)

// Settings contains process settings for binaries built on this module.
type Settings struct {
	// ResourceDir is the directory holding the XML configuration resources.
	ResourceDir string `koanf:"resource_dir"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsEnabled toggles Prometheus collectors.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// Metric name prefixes; empty keeps the manager defaults.
	MetricsNamespace string `koanf:"metrics_namespace"`
	MetricsSubsystem string `koanf:"metrics_subsystem"`

	// MetricsBuckets overrides the config load duration buckets, in seconds.
	// From the environment: DIRECT_METRICS_BUCKETS=0.005,0.05,0.5
	MetricsBuckets []float64 `koanf:"metrics_buckets"`
}

// DefaultSettings returns Settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ResourceDir:    "conf",
		LogLevel:       "info",
		MetricsEnabled: true,
	}
}

// LoadSettings builds Settings by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults
//  2. file (YAML) if DIRECT_SETTINGS is set
//  3. env (prefix DIRECT_)
func LoadSettings() (*Settings, error) {
	base := DefaultSettings()

	k := koanf.New(".")

	if path := os.Getenv(SettingsFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load settings file %s: %w", path, err)
		}
	}

	// DIRECT_RESOURCE_DIR -> resource_dir; list values are comma separated.
	envProvider := env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.TrimPrefix(strings.ToLower(key), strings.ToLower(envPrefix))
		if key == "metrics_buckets" {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return key, parts
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load settings from environment: %w", err)
	}

	settings := *base
	if err := k.UnmarshalWithConf("", &settings, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if settings.ResourceDir == "" {
		return nil, errors.New("resource_dir must not be empty")
	}
	if _, err := settings.SlogLevel(); err != nil {
		return nil, err
	}
	for i, bucket := range settings.MetricsBuckets {
		if bucket <= 0 || (i > 0 && bucket <= settings.MetricsBuckets[i-1]) {
			return nil, fmt.Errorf("metrics_buckets must be positive and increasing: %v", settings.MetricsBuckets)
		}
	}

	return &settings, nil
}

// MetricsOptions converts the metrics settings into manager options.
func (s *Settings) MetricsOptions() []metrics.Option {
	return []metrics.Option{
		metrics.WithMetricsEnabled(s.MetricsEnabled),
		metrics.WithNamespace(s.MetricsNamespace),
		metrics.WithSubsystem(s.MetricsSubsystem),
		metrics.WithHistogramBuckets(s.MetricsBuckets),
	}
}

// ResourceFS returns the resource root as a file system.
func (s *Settings) ResourceFS() fs.FS {
	return os.DirFS(s.ResourceDir)
}

// SlogLevel parses LogLevel.
// Accepts: debug, info, warn/warning, error (case-insensitive).
func (s *Settings) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", s.LogLevel)
	}
}
