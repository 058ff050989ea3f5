package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/internal/tui"
	"github.com/MKhiriev/go-chat-client/internal/workers"
	"github.com/MKhiriev/go-chat-client/models"
)

// ErrAutoLogin is returned by Run when the credentials from the configuration
// are rejected. The process is expected to exit.
var ErrAutoLogin = errors.New("login with configured credentials failed")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	auth     config.ClientAuth
	logger   *logger.Logger

	autoLoginDone bool
}

func NewApp(services *service.ClientServices, ui UI, auth config.ClientAuth, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(services.Refresher, services.Poller),
		auth:     auth,
		logger:   log.Component("app"),
	}, nil
}

// Run loops over login and the main screens until the user quits. Logging
// out returns to the login flow.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		claims, err := a.login(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.runSession(ctx, claims)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
	}
}

func (a *App) login(ctx context.Context) (models.UserClaims, error) {
	if a.auth.HasCredentials() && !a.autoLoginDone {
		a.autoLoginDone = true

		claims, err := a.services.AuthService.Login(ctx, models.Credentials{
			Name:     a.auth.Name,
			Password: a.auth.Password,
		})
		if err != nil {
			return models.UserClaims{}, fmt.Errorf("%w: %w", ErrAutoLogin, err)
		}
		return claims, nil
	}

	return a.ui.LoginFlow(ctx)
}

// runSession starts the workers bound to the fresh session, runs the main
// screens and tears everything down once they return. Leaving the screens
// always ends the session.
func (a *App) runSession(ctx context.Context, claims models.UserClaims) (bool, error) {
	log := a.logger.With().Int64("uid", claims.ID).Logger()

	if err := a.services.Poller.Seed(ctx, claims.ID); err != nil {
		log.Warn().Err(err).Msg("cached conversations unavailable")
	}

	a.workers.Start(ctx)
	log.Info().Msg("session started")

	logout, err := a.ui.MainLoop(ctx, claims)

	a.workers.Stop()
	a.services.AuthService.Logout()
	a.services.ReadIndex.Wait()
	log.Info().Bool("logout", logout).Msg("session ended")

	if err != nil {
		return false, fmt.Errorf("main loop: %w", err)
	}
	return logout, nil
}
