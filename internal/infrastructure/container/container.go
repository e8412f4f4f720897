// Package container provides dependency injection for the application.
package container

import (
	"io"
	"log/slog"

	apperrors "github.com/reglet-dev/shapes/internal/application/errors"
	"github.com/reglet-dev/shapes/internal/application/services"
	"github.com/reglet-dev/shapes/internal/config"
	domainservices "github.com/reglet-dev/shapes/internal/domain/services"
	"github.com/reglet-dev/shapes/internal/infrastructure/validation"
	"github.com/reglet-dev/shapes/internal/output"
)

// Container holds all application dependencies.
type Container struct {
	systemCfg      *config.SystemConfig
	measureService *services.MeasureService
	logger         *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger           *slog.Logger
	SystemConfigPath string

	// Overrides take precedence over the config file when non-empty
	FormatOverride   string
	LogLevelOverride string
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	systemCfg, err := config.LoadSystemConfig(opts.SystemConfigPath)
	if err != nil {
		return nil, apperrors.NewConfigurationError("system config", "failed to load "+opts.SystemConfigPath, err)
	}

	if opts.FormatOverride != "" {
		systemCfg.Output.Format = opts.FormatOverride
	}
	if opts.LogLevelOverride != "" {
		systemCfg.Log.Level = opts.LogLevelOverride
	}
	systemCfg.ApplyDefaults()

	if err := systemCfg.Validate(); err != nil {
		return nil, apperrors.NewConfigurationError("system config", "invalid settings", err)
	}

	opts.Logger.Debug("system config loaded",
		"path", opts.SystemConfigPath,
		"format", systemCfg.Output.Format,
		"log_level", systemCfg.Log.Level)

	measureService := services.NewMeasureService(
		validation.NewSchemaValidator(),
		domainservices.NewExpectationEvaluator(),
		opts.Logger,
	)

	return &Container{
		systemCfg:      systemCfg,
		measureService: measureService,
		logger:         opts.Logger,
	}, nil
}

// MeasureService returns the measure use case.
func (c *Container) MeasureService() *services.MeasureService {
	return c.measureService
}

// SystemConfig returns the effective system configuration.
func (c *Container) SystemConfig() *config.SystemConfig {
	return c.systemCfg
}

// Logger returns the application logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}

// Formatter returns the configured report formatter writing to w.
func (c *Container) Formatter(w io.Writer) (output.Formatter, error) {
	return output.NewFormatter(c.systemCfg.Output.Format, w, c.systemCfg.IndentJSON())
}
