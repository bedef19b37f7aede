// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/resourceapi/internal/app"
	"github.com/allisson/resourceapi/internal/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	var commands []*cli.Command
	commands = append(commands, getSystemCommands(version)...)
	commands = append(commands, getAuthCommands()...)

	cmd := &cli.Command{
		Name:     "app",
		Usage:    "Resource API with role-based access control and audit events",
		Version:  version,
		Commands: commands,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

// withContainer runs fn against a container built from the environment and shuts the
// container down afterwards.
func withContainer(ctx context.Context, fn func(container *app.Container) error) error {
	container := app.NewContainer(config.Load())
	defer func() {
		if err := container.Shutdown(ctx); err != nil {
			container.Logger().Error("failed to shutdown container", slog.Any("error", err))
		}
	}()
	return fn(container)
}
