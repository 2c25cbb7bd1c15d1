package config

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/tcdirect/direct-common/pkg/domain"
	"github.com/tcdirect/direct-common/pkg/errors"
	"github.com/tcdirect/direct-common/pkg/metrics"
)

// ConfigLoader loads and validates the XML configuration resources.
// It performs file reading, XML decoding, and validation.
type ConfigLoader struct {
	fsys      fs.FS
	validator *Validator
	logger    *slog.Logger
	metrics   *metrics.Manager
}

// NewConfigLoader creates a new ConfigLoader instance.
//
// Parameters:
//   - fsys: Resource root containing the five XML files (usually os.DirFS)
//   - logger: Structured logger for operational logging
func NewConfigLoader(fsys fs.FS, logger *slog.Logger) *ConfigLoader {
	return &ConfigLoader{
		fsys:      fsys,
		validator: NewValidator(),
		logger:    logger,
	}
}

// WithMetrics makes the loader record load duration and failures.
func (l *ConfigLoader) WithMetrics(m *metrics.Manager) *ConfigLoader {
	l.metrics = m
	return l
}

// LoadConfig loads every configuration resource and returns a validated Config.
// Loading is all-or-nothing: if any resource is missing, malformed, or fails
// validation, no Config is returned and the application should exit.
func (l *ConfigLoader) LoadConfig() (*Config, error) {
	start := time.Now()

	config, err := l.load()
	if err != nil {
		l.metrics.RecordConfigLoadFailure(errors.Code(err))
		return nil, err
	}

	l.metrics.ObserveConfigLoad(time.Since(start))

	l.logger.Info("Config loaded successfully",
		"studio_overviews", len(config.Overview.StudioOverviews()),
		"contest_fees", len(config.ContestFees.ContestFees),
		"file_types", len(config.FileTypes.FileTypes),
		"copilot_fees", len(config.CopilotFees.CopilotFees),
	)

	return config, nil
}

func (l *ConfigLoader) load() (*Config, error) {
	config := &Config{
		Overview:            &domain.Overview{},
		ContestFees:         &domain.ContestFees{},
		FileTypes:           &domain.FileTypes{},
		CopilotFees:         &domain.CopilotFees{},
		IssueTrackingConfig: &domain.IssueTrackingConfig{},
	}

	resources := []struct {
		name string
		dst  any
	}{
		{OverviewFile, config.Overview},
		{ContestFeesFile, config.ContestFees},
		{FileTypesFile, config.FileTypes},
		{CopilotFeesFile, config.CopilotFees},
		{IssueTrackingFile, config.IssueTrackingConfig},
	}

	for _, r := range resources {
		if err := l.decode(r.name, r.dst); err != nil {
			return nil, err
		}
	}

	if err := l.validator.Validate(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// decode reads one resource and unmarshals it into dst.
func (l *ConfigLoader) decode(name string, dst any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", errors.ErrConfigNotFound(name, err))
	}

	if err := xml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse config XML: %w", errors.ErrConfigParse(name, err))
	}

	l.logger.Debug("Config resource decoded", "resource", name, "bytes", len(data))
	return nil
}
