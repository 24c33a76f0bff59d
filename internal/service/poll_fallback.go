package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-feed-sync/internal/adapter"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/models"
)

const (
	defaultPollInterval = 20 * time.Second
	pollLimit           = 1
)

// PollFallback periodically asks the server whether anything newer than the
// watermark exists and emits an untimestamped signal when it does.
type PollFallback struct {
	adapter   adapter.FeedAdapter
	watermark WatermarkSource
	sink      SignalSink
	interval  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewPollFallback creates an idle poller. If interval is zero or negative it
// defaults to 20 seconds.
func NewPollFallback(feedAdapter adapter.FeedAdapter, watermark WatermarkSource, sink SignalSink, interval time.Duration, log *logger.Logger) *PollFallback {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return &PollFallback{
		adapter:   feedAdapter,
		watermark: watermark,
		sink:      sink,
		interval:  interval,
		logger:    log,
	}
}

// Start stops any previously running poller, then launches a background
// goroutine that polls every interval. The goroutine exits when ctx is
// cancelled or Stop is called.
func (p *PollFallback) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-pollCtx.Done():
				return
			case <-t.C:
				p.tick(pollCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited. Safe
// to call when the poller is not running.
func (p *PollFallback) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// Run polls until ctx is cancelled.
func (p *PollFallback) Run(ctx context.Context) {
	p.Start(ctx)
	<-ctx.Done()
	p.Stop()
}

func (p *PollFallback) tick(ctx context.Context) {
	since := p.watermark.Get()

	posts, err := p.adapter.ListPosts(ctx, since, pollLimit)
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "PollFallback.tick").Str("since", since).Msg("poll failed")
		return
	}
	if len(posts) == 0 {
		return
	}

	p.logger.Debug().Str("func", "PollFallback.tick").Str("since", since).Msg("poll found newer items")
	p.sink.Signal(models.NewItemSignal{Source: models.SignalSourcePoll})
}
