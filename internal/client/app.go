package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/internal/service"
	"github.com/MKhiriev/go-bill-desk/internal/tui"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client: nil services")
	}
	if ui == nil {
		return nil, errors.New("client: nil ui")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run blocks until the user leaves the billing form or ctx is cancelled.
// Leaving on purpose is not an error.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("client started")
	defer a.logger.Info().Msg("client stopped")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Err(ctx.Err()).Msg("client interrupted")
		return nil
	default:
		return fmt.Errorf("run ui: %w", err)
	}
}
