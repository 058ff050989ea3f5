package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    log.Component("tui"),
	}, nil
}

// LoginFlow shows the menu with the login and registration forms and returns
// the claims of the user once a login succeeds.
func (t *TUI) LoginFlow(ctx context.Context) (models.UserClaims, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.UserClaims{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.UserClaims{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.UserClaims{}, ErrUserQuit
	}

	return result.claims, nil
}

// MainLoop runs the conversation screens for the logged-in user. It reports
// whether the user asked to log out.
func (t *TUI) MainLoop(ctx context.Context, claims models.UserClaims) (logout bool, err error) {
	// open conversations are bound to this context
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ref := &programRef{}
	model := newMainLoopModel(ctx, t.services, claims, ref, t.logger)

	program := tea.NewProgram(model, tea.WithAltScreen())
	ref.set(program)

	finalModel, runErr := program.Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
