package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/service"
	"github.com/MKhiriev/go-feed-sync/models"
)

type TUI struct {
	services  *service.ClientServices
	bridge    *Bridge
	app       config.ClientApp
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, bridge *Bridge, app config.ClientApp, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		bridge:    bridge,
		app:       app,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Run shows the feed until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	defer t.bridge.Close()

	model := newFeedModel(ctx, t.app, t.bridge, t.services.Sync, t.services.Permissions, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Debug().Str("func", "TUI.Run").Msg("program stopped by context")
		return nil
	}

	return err
}
