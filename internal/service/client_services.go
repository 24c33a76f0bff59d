package service

import (
	"context"

	"github.com/MKhiriev/go-feed-sync/internal/adapter"
	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/models"
)

// ClientServices groups the synchronization core and its producers.
type ClientServices struct {
	Permissions *PermissionGate
	Sync        *FeedSync
	Push        *PushChannel
	Poll        *PollFallback
}

// NewClientServices wires the core to the transport, the alert platform and
// the feed surface. initial is the metadata of the feed rendered at startup.
func NewClientServices(
	ctx context.Context,
	cfg *config.ClientConfig,
	feedAdapter adapter.FeedAdapter,
	platform NotificationPlatform,
	env Environment,
	surface Surface,
	initial models.FeedMetadata,
	log *logger.Logger,
) *ClientServices {
	gate := NewPermissionGate(platform, surface, log)
	gate.Load(ctx)

	feedSync := NewFeedSync(cfg.App, feedAdapter, env, surface, gate, initial, log)

	push := NewPushChannel(feedAdapter, feedSync, cfg.Workers.ReconnectDelay, log)
	push.OnHealthChange(surface.SetChannelHealth)

	poll := NewPollFallback(feedAdapter, feedSync.Watermark(), feedSync, cfg.Workers.PollInterval, log)

	return &ClientServices{
		Permissions: gate,
		Sync:        feedSync,
		Push:        push,
		Poll:        poll,
	}
}
