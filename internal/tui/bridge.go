// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/service"
	"github.com/MKhiriev/go-feed-sync/models"
)

const updatesBuffer = 256

// scrollUnitsPerLine converts a terminal line of scroll into the units the
// proximity threshold is expressed in.
const scrollUnitsPerLine = 24

// Bridge connects the sync core with the running program. It implements
// [service.Environment] from the state the model publishes and
// [service.Surface] by forwarding updates into the program's message loop.
type Bridge struct {
	homePath  string
	threshold int

	mu       sync.RWMutex
	viewport models.Viewport
	meta     models.FeedMetadata

	updates   chan tea.Msg
	done      chan struct{}
	closeOnce sync.Once
}

var (
	_ service.Environment = (*Bridge)(nil)
	_ service.Surface     = (*Bridge)(nil)
)

// NewBridge returns a bridge whose view starts at the top of the home feed.
func NewBridge(app config.ClientApp) *Bridge {
	return &Bridge{
		homePath:  app.HomePath,
		threshold: app.ProximityThreshold,
		viewport:  models.Viewport{Path: app.HomePath, FeedPresent: true},
		updates:   make(chan tea.Msg, updatesBuffer),
		done:      make(chan struct{}),
	}
}

func (b *Bridge) CurrentProximity() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return service.IsNearLiveHead(b.viewport, b.homePath, b.threshold)
}

func (b *Bridge) CurrentFeedMetadata() models.FeedMetadata {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.meta
}

func (b *Bridge) SetUnread(indicator models.UnreadIndicator) {
	b.send(unreadMsg{indicator: indicator})
}

// ReplaceFeed records the page's metadata at once and hands the entries to
// the program for rendering.
func (b *Bridge) ReplaceFeed(page models.TimelinePage) {
	b.mu.Lock()
	b.meta = page.Meta
	b.mu.Unlock()

	b.send(feedMsg{page: page})
}

func (b *Bridge) SetNotificationsEnabled(enabled bool) {
	b.send(notificationsMsg{enabled: enabled})
}

func (b *Bridge) SetChannelHealth(health models.ChannelHealth) {
	b.send(healthMsg{health: health})
}

// Close stops delivery; pending and future updates are dropped.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

func (b *Bridge) setViewport(vp models.Viewport) {
	b.mu.Lock()
	b.viewport = vp
	b.mu.Unlock()
}

func (b *Bridge) send(msg tea.Msg) {
	select {
	case b.updates <- msg:
	case <-b.done:
	}
}

// waitForUpdate delivers the next update to the program. The model re-arms it
// after every update it handles.
func (b *Bridge) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.updates:
			return msg
		case <-b.done:
			return nil
		}
	}
}
