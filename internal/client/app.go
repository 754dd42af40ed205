package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes/internal/logger"
)

type App struct {
	frontend Frontend

	logger *logger.Logger
}

func NewApp(frontend Frontend, logger *logger.Logger) (*App, error) {
	if frontend == nil {
		return nil, ErrNoFrontend
	}

	return &App{frontend: frontend, logger: logger}, nil
}

// Run runs the front-end until it returns or SIGINT/SIGTERM/SIGQUIT arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	if err := a.frontend.Run(ctx); err != nil {
		return fmt.Errorf("frontend stopped: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
