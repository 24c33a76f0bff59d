// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-feed-sync/internal/adapter"
	"github.com/MKhiriev/go-feed-sync/internal/app"
	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/utils"
	"github.com/MKhiriev/go-feed-sync/models"
)

const eventQueueSize = 64

type (
	signalEvent      struct{ signal models.NewItemSignal }
	refreshDoneEvent struct {
		page models.TimelinePage
		err  error
	}
	feedRenderedEvent struct{}
	markAllReadEvent  struct{ watermark string }
	refreshEvent      struct{}
)

// FeedSync is the reconciliation core. Every state change happens on the
// goroutine running Run, which drains one queue fed by the producers, refresh
// completions and user actions.
type FeedSync struct {
	adapter adapter.FeedAdapter
	env     Environment
	surface Surface

	watermark *WatermarkTracker
	unread    *UnreadCounter
	guard     *RefreshGuard
	gate      *PermissionGate
	pageLimit atomic.Int64

	events  chan any
	done    chan struct{}
	stopped sync.Once
	running atomic.Bool
	refresh sync.WaitGroup

	logger *logger.Logger
}

// NewFeedSync builds the core and resets it from the metadata the initial
// feed was rendered with.
func NewFeedSync(
	appCfg config.ClientApp,
	feedAdapter adapter.FeedAdapter,
	env Environment,
	surface Surface,
	gate *PermissionGate,
	initial models.FeedMetadata,
	log *logger.Logger,
) *FeedSync {
	f := &FeedSync{
		adapter:   feedAdapter,
		env:       env,
		surface:   surface,
		watermark: NewWatermarkTracker(""),
		unread:    NewUnreadCounter(appCfg.Name, surface),
		guard:     &RefreshGuard{},
		gate:      gate,
		events:    make(chan any, eventQueueSize),
		done:      make(chan struct{}),
		logger:    log,
	}
	f.Reset(initial, appCfg.PageLimit)

	return f
}

// Reset starts a new session: unread 0, watermark from meta (now when absent)
// and the page limit from meta when present, limit otherwise.
func (f *FeedSync) Reset(meta models.FeedMetadata, limit int) {
	if meta.Limit > 0 {
		limit = meta.Limit
	}
	if limit <= 0 {
		limit = config.DefaultPageLimit
	}
	f.pageLimit.Store(int64(limit))

	watermark := meta.LastSeen
	if watermark == "" {
		watermark = utils.NowWatermark()
	}
	f.watermark.Set(watermark)
	f.unread.Set(0)

	f.logger.Debug().
		Str("func", "FeedSync.Reset").
		Str("watermark", watermark).
		Int("limit", limit).
		Msg("sync state reset")
}

// Watermark exposes the tracker to the poll producer.
func (f *FeedSync) Watermark() *WatermarkTracker {
	return f.watermark
}

func (f *FeedSync) PageLimit() int {
	return int(f.pageLimit.Load())
}

// Snapshot returns the current session state.
func (f *FeedSync) Snapshot() models.SyncState {
	return models.SyncState{
		UnreadCount:            f.unread.Get(),
		LastSeenWatermark:      f.watermark.Get(),
		PageLimit:              f.PageLimit(),
		RefreshInFlight:        f.guard.InFlight(),
		NotificationPermission: f.gate.CurrentState(),
	}
}

// Signal queues a new-item signal. Implements [SignalSink].
func (f *FeedSync) Signal(signal models.NewItemSignal) {
	f.enqueue(signalEvent{signal: signal})
}

// FeedRendered reports that the surface rendered a feed outside a silent
// refresh, e.g. the user navigated home. The core pulls the rendered
// metadata from the environment.
func (f *FeedSync) FeedRendered() {
	f.enqueue(feedRenderedEvent{})
}

// MarkAllRead clears the unread count and, when watermark is non-empty,
// moves the watermark to it.
func (f *FeedSync) MarkAllRead(watermark string) {
	f.enqueue(markAllReadEvent{watermark: watermark})
}

// RequestRefresh asks for a silent refresh of the first page. It is dropped
// when one is already in flight.
func (f *FeedSync) RequestRefresh() {
	f.enqueue(refreshEvent{})
}

func (f *FeedSync) enqueue(ev any) {
	select {
	case f.events <- ev:
	case <-f.done:
	}
}

// Run drains the event queue until ctx is cancelled, then waits for an
// outstanding refresh to finish. Only one Run may be active.
func (f *FeedSync) Run(ctx context.Context) {
	if !f.running.CompareAndSwap(false, true) {
		return
	}
	defer f.refresh.Wait()
	defer f.stopped.Do(func() { close(f.done) })

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-f.events:
			f.handle(ctx, ev)
		}
	}
}

func (f *FeedSync) handle(ctx context.Context, ev any) {
	switch e := ev.(type) {
	case signalEvent:
		f.reconcile(ctx, e.signal)
	case refreshDoneEvent:
		f.completeRefresh(e.page, e.err)
	case feedRenderedEvent:
		f.converge(f.env.CurrentFeedMetadata())
	case markAllReadEvent:
		f.unread.Set(0)
		if e.watermark != "" {
			f.watermark.Set(e.watermark)
		}
	case refreshEvent:
		if f.guard.TryAcquire() {
			f.startRefresh(ctx)
		}
	}
}

// reconcile decides between a silent refresh and counting the item as unread.
func (f *FeedSync) reconcile(ctx context.Context, signal models.NewItemSignal) {
	log := f.logger.With().
		Str("func", "FeedSync.reconcile").
		Str("source", string(signal.Source)).
		Str("created_at", signal.CreatedAt).
		Logger()

	if f.env.CurrentProximity() {
		if !f.guard.TryAcquire() {
			log.Debug().Msg("refresh in flight, signal dropped")
			return
		}
		f.startRefresh(ctx)
		f.unread.Set(0)
		if signal.HasCreatedAt() {
			f.watermark.Set(signal.CreatedAt)
		}
		log.Debug().Msg("near live head, silent refresh started")
		return
	}

	f.unread.Increment()
	if signal.HasCreatedAt() {
		f.watermark.Set(signal.CreatedAt)
	}
	f.gate.NotifyIfGranted(app.MsgNewPostTitle, app.MsgNewPostBody)

	log.Debug().Int("unread", f.unread.Get()).Msg("away from live head, counted as unread")
}

// startRefresh fetches the first page off the reconciler goroutine. The
// guard must already be held.
func (f *FeedSync) startRefresh(ctx context.Context) {
	limit := f.PageLimit()

	f.refresh.Add(1)
	go func() {
		defer f.refresh.Done()

		page, err := f.adapter.FetchTimeline(ctx, 1, limit)
		select {
		case f.events <- refreshDoneEvent{page: page, err: err}:
		case <-f.done:
			f.guard.Release()
		}
	}()
}

func (f *FeedSync) completeRefresh(page models.TimelinePage, err error) {
	defer f.guard.Release()

	if err != nil {
		f.logger.Warn().Err(err).Str("func", "FeedSync.completeRefresh").Msg("silent refresh failed")
		return
	}

	f.surface.ReplaceFeed(page)
	f.converge(page.Meta)
}

// converge re-syncs after a feed render: watermark from the rendered
// metadata, unread cleared.
func (f *FeedSync) converge(meta models.FeedMetadata) {
	if meta.LastSeen != "" {
		f.watermark.Set(meta.LastSeen)
	}
	f.unread.Set(0)
}
