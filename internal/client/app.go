package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-feed-sync/internal/adapter"
	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/service"
	"github.com/MKhiriev/go-feed-sync/internal/tui"
	"github.com/MKhiriev/go-feed-sync/internal/utils"
	"github.com/MKhiriev/go-feed-sync/internal/workers"
	"github.com/MKhiriev/go-feed-sync/models"
)

// UI is the interactive surface the app hands control to.
type UI interface {
	Run(ctx context.Context) error
}

// UIFactory builds the UI once the sync core is wired to bridge.
type UIFactory func(services *service.ClientServices, bridge *tui.Bridge) UI

type App struct {
	cfg      *config.ClientConfig
	adapter  adapter.FeedAdapter
	platform service.NotificationPlatform
	newUI    UIFactory
	logger   *logger.Logger
}

// NewApp wires the client runtime. newUI is called on every Run.
func NewApp(cfg *config.ClientConfig, feedAdapter adapter.FeedAdapter, platform service.NotificationPlatform, newUI UIFactory, log *logger.Logger) (*App, error) {
	if cfg == nil || feedAdapter == nil || newUI == nil {
		return nil, fmt.Errorf("client app: config, adapter and ui factory are required")
	}

	return &App{
		cfg:      cfg,
		adapter:  feedAdapter,
		platform: platform,
		newUI:    newUI,
		logger:   log,
	}, nil
}

// Run renders the initial feed, starts the sync core with its producers and
// blocks in the UI until the user quits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	sessionID := utils.NewUUIDGenerator().Generate()
	log := a.logger.WithSession(sessionID)
	ctx = utils.WithSessionID(ctx, sessionID)
	ctx = log.WithContext(ctx)

	bridge := tui.NewBridge(a.cfg.App)

	initial := a.loadInitialFeed(ctx, log)
	bridge.ReplaceFeed(initial)

	services := service.NewClientServices(ctx, a.cfg, a.adapter, a.platform, bridge, bridge, initial.Meta, log)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	producers := workers.NewWorkers(services.Sync, services.Push, services.Poll)
	done := make(chan struct{})
	go func() {
		defer close(done)
		producers.Run(runCtx)
	}()

	log.Info().
		Str("func", "App.run").
		Str("watermark", services.Sync.Snapshot().LastSeenWatermark).
		Int("entries", len(initial.Entries)).
		Msg("feed sync started")

	err := a.newUI(services, bridge).Run(runCtx)

	cancel()
	<-done
	log.Info().Str("func", "App.run").Msg("feed sync stopped")

	return err
}

// loadInitialFeed fetches the first page the way the server would have
// rendered it. A failure leaves an empty feed; the watermark then falls back
// to now.
func (a *App) loadInitialFeed(ctx context.Context, log *logger.Logger) models.TimelinePage {
	page, err := a.adapter.FetchTimeline(ctx, 1, a.cfg.App.PageLimit)
	if err != nil {
		log.Warn().Err(err).Str("func", "App.loadInitialFeed").Msg("initial feed unavailable")
		return models.TimelinePage{}
	}
	return page
}
