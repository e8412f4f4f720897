package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/shapes/internal/infrastructure/container"
	"github.com/reglet-dev/shapes/internal/output"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
	Out       io.Writer
}

// Formatter returns the report formatter for the command's output stream.
func (c *CommandContext) Formatter() (output.Formatter, error) {
	return c.Container.Formatter(c.Out)
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization:
// config loading, log level and dependency wiring.
func (o *rootOptions) withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		c, err := container.New(container.Options{
			SystemConfigPath: o.cfgFile,
			Logger:           logger,
			FormatOverride:   o.formatOverride(),
			LogLevelOverride: o.logLevelOverride(),
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		logLevel.Set(c.SystemConfig().LogLevel())

		ctx := &CommandContext{
			Container: c,
			Logger:    logger,
			Context:   cmd.Context(),
			Out:       cmd.OutOrStdout(),
		}

		return handler(ctx, cmd, args)
	}
}
