// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-feed-sync/internal/adapter"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/models"
)

// Event names carrying a new item. The reference server emits new_post.
const (
	eventNewItem = "new_item"
	eventNewPost = "new_post"
)

const defaultReconnectDelay = 5 * time.Second

// PushChannel keeps a server event stream open and turns new-item events into
// signals. On any transport failure it waits a fixed delay and reconnects,
// forever, until its context is cancelled.
type PushChannel struct {
	adapter        adapter.FeedAdapter
	sink           SignalSink
	reconnectDelay time.Duration

	running atomic.Bool
	health  atomic.Value

	mu       sync.Mutex
	onHealth func(models.ChannelHealth)

	logger *logger.Logger
}

func NewPushChannel(feedAdapter adapter.FeedAdapter, sink SignalSink, reconnectDelay time.Duration, log *logger.Logger) *PushChannel {
	if reconnectDelay <= 0 {
		reconnectDelay = defaultReconnectDelay
	}

	p := &PushChannel{
		adapter:        feedAdapter,
		sink:           sink,
		reconnectDelay: reconnectDelay,
		logger:         log,
	}
	p.health.Store(models.ChannelDisconnectedRetrying)

	return p
}

// OnHealthChange registers fn to be called on every health transition.
func (p *PushChannel) OnHealthChange(fn func(models.ChannelHealth)) {
	p.mu.Lock()
	p.onHealth = fn
	p.mu.Unlock()
}

func (p *PushChannel) Health() models.ChannelHealth {
	return p.health.Load().(models.ChannelHealth)
}

// Start runs the channel in the background. Calls made while the channel is
// running are no-ops.
func (p *PushChannel) Start(ctx context.Context) {
	if !p.running.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer p.running.Store(false)
		p.loop(ctx)
	}()
}

// Run is the blocking form of Start. It returns immediately when the channel
// is already running.
func (p *PushChannel) Run(ctx context.Context) {
	if !p.running.CompareAndSwap(false, true) {
		return
	}
	defer p.running.Store(false)
	p.loop(ctx)
}

func (p *PushChannel) Running() bool {
	return p.running.Load()
}

func (p *PushChannel) loop(ctx context.Context) {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		err := p.consume(ctx)
		p.setHealth(models.ChannelDisconnectedRetrying)

		if ctx.Err() != nil {
			p.logger.Debug().Str("func", "PushChannel.loop").Msg("push channel stopped")
			return
		}
		p.logger.Warn().Err(err).
			Str("func", "PushChannel.loop").
			Dur("reconnect_in", p.reconnectDelay).
			Msg("push channel disconnected")

		timer.Reset(p.reconnectDelay)
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	}
}

// consume opens one stream and reads it until it fails. It always returns a
// non-nil error.
func (p *PushChannel) consume(ctx context.Context) error {
	stream, err := p.adapter.OpenEventStream(ctx)
	if err != nil {
		return err
	}
	defer stream.Close()

	// unblock Next on teardown
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			stream.Close()
		case <-done:
		}
	}()

	p.setHealth(models.ChannelConnected)
	p.logger.Info().Str("func", "PushChannel.consume").Msg("push channel connected")

	for {
		ev, err := stream.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return io.ErrUnexpectedEOF
			}
			return err
		}

		switch ev.Name {
		case eventNewItem, eventNewPost:
			p.sink.Signal(p.decode(ev.Data))
		default:
			// heartbeat and anything unknown
		}
	}
}

// decode extracts created_at from a new-item payload. A malformed or absent
// payload yields a signal without a timestamp.
func (p *PushChannel) decode(data string) models.NewItemSignal {
	signal := models.NewItemSignal{Source: models.SignalSourcePush}

	var payload models.NewItemPayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		p.logger.Debug().Err(err).Str("func", "PushChannel.decode").Msg("malformed new item payload")
		return signal
	}

	event := p.logger.Debug().Str("func", "PushChannel.decode")
	if payload.PostID != nil {
		event = event.Int64("post_id", *payload.PostID)
	}
	event.Str("created_at", payload.CreatedAt).Msg("new item received")

	signal.CreatedAt = payload.CreatedAt
	return signal
}

func (p *PushChannel) setHealth(h models.ChannelHealth) {
	prev := p.health.Swap(h)
	if prev == h {
		return
	}

	p.mu.Lock()
	fn := p.onHealth
	p.mu.Unlock()
	if fn != nil {
		fn(h)
	}
}
