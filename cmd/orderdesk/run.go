package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// run blocks until a signal arrives or the graph asks to shut down.
func run(ctx context.Context, app *fx.App) {
	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		slog.Error("failed to start orderdesk", slog.String("error", err.Error()))
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case sig := <-app.Done():
		slog.Info("shutdown requested", slog.String("signal", sig.String()))
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("failed to stop orderdesk", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
