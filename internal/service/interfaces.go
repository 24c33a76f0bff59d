// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-feed-sync/models"
)

// Surface is the rendered feed the core keeps in step with the server. All
// methods are called from the reconciler goroutine and must not block for
// long.
type Surface interface {
	// SetUnread updates the badge and the window title decoration.
	SetUnread(indicator models.UnreadIndicator)

	// ReplaceFeed swaps the rendered feed for a freshly fetched first page.
	ReplaceFeed(page models.TimelinePage)

	// SetNotificationsEnabled switches the "enable notifications" action to
	// its enabled (and disabled-for-input) look.
	SetNotificationsEnabled(enabled bool)

	// SetChannelHealth reports the push channel's connection state.
	SetChannelHealth(health models.ChannelHealth)
}

// Environment answers questions about the user's current view of the feed.
type Environment interface {
	// CurrentProximity reports whether the user is at the live head of the
	// home feed. Implementations evaluate [IsNearLiveHead] on their viewport.
	CurrentProximity() bool

	// CurrentFeedMetadata returns the metadata of the feed as it is rendered
	// right now.
	CurrentFeedMetadata() models.FeedMetadata
}

// NotificationPlatform is the local alert capability.
type NotificationPlatform interface {
	// Available reports whether the capability exists at all.
	Available() bool

	// Permission returns the platform's stored decision.
	Permission(ctx context.Context) (models.Permission, error)

	// Request asks the user for permission and blocks until answered.
	Request(ctx context.Context) (models.Permission, error)

	// Show displays one alert.
	Show(title, body string) error
}

// SignalSink receives new-item signals from the producers.
type SignalSink interface {
	Signal(signal models.NewItemSignal)
}

// WatermarkSource exposes the current last-seen watermark.
type WatermarkSource interface {
	Get() string
}
