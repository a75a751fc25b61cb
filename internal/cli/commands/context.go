// Package commands implements the formview subcommands.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/waozixyz/formview/compiler"
	"github.com/waozixyz/formview/form"
	"github.com/waozixyz/formview/internal/config"
	"github.com/waozixyz/formview/widget"
)

type configKey struct{}

type loggerKey struct{}

// WithConfig stores cfg in ctx.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// WithLogger stores log in ctx.
func WithLogger(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// GetConfig returns the loaded config, or one holding the defaults.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok && c != nil {
		return c
	}
	return &config.Config{
		Form:     config.DefaultForm,
		LogLevel: config.DefaultLogLevel,
		Window: config.WindowConfig{
			Width:     config.DefaultWindowWidth,
			Height:    config.DefaultWindowHeight,
			Title:     config.DefaultWindowTitle,
			Resizable: true,
			Scale:     config.DefaultWindowScale,
			Border:    config.DefaultWindowBorder,
		},
	}
}

// GetLogger returns the logger from ctx, or a no-op logger.
func GetLogger(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}

// formPath is the positional argument when given, else the configured form.
func formPath(cmd *cobra.Command, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return GetConfig(cmd.Context()).Form
}

// compileForm reads and compiles the form a command operates on.
func compileForm(cmd *cobra.Command, path string) (*widget.Box, error) {
	log := GetLogger(cmd.Context())
	doc, err := form.ReadFile(path)
	if err != nil {
		return nil, err
	}
	root, err := compiler.New(compiler.WithLogger(log.Named("compiler"))).Compile(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}
