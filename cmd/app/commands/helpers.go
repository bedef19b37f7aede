// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/resourceapi/internal/app"
	eventUseCase "github.com/allisson/resourceapi/internal/event/usecase"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// DispatcherProvider is the part of the container WithEvents needs.
type DispatcherProvider interface {
	EventPublisher() (eventUseCase.Dispatcher, error)
}

var _ DispatcherProvider = (*app.Container)(nil)

// WithEvents runs fn while the event dispatcher drains, so events published by a one-shot
// command are sent before the process exits.
func WithEvents(ctx context.Context, provider DispatcherProvider, fn func(ctx context.Context) error) error {
	dispatcher, err := provider.EventPublisher()
	if err != nil {
		return fmt.Errorf("failed to get event publisher: %w", err)
	}

	dispatchCtx, stop := context.WithCancel(ctx)
	defer stop()

	g := new(errgroup.Group)
	g.Go(func() error {
		return dispatcher.Start(dispatchCtx)
	})

	runErr := fn(ctx)
	stop()

	if err := g.Wait(); err != nil && runErr == nil {
		return err
	}
	return runErr
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// outputJSON writes v as indented JSON for machine consumption.
func outputJSON(v any, writer io.Writer) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
