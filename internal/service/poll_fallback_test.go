// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/mock"
	"github.com/MKhiriev/go-feed-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPollFallback_Tick_NewerItemEmitsUntimestampedSignal(t *testing.T) {
	ctrl := gomock.NewController(t)
	feedAdapter := mock.NewMockFeedAdapter(ctrl)
	sink := &signalRecorder{}
	watermark := NewWatermarkTracker("2024-01-01T00:00:00Z")
	ctx := context.Background()

	feedAdapter.EXPECT().
		ListPosts(ctx, "2024-01-01T00:00:00Z", 1).
		Return([]models.Post{{ID: 1, CreatedAt: "2024-01-01T00:01:00Z"}}, nil)

	p := NewPollFallback(feedAdapter, watermark, sink, time.Minute, logger.Nop())
	p.tick(ctx)

	assert.Equal(t, []models.NewItemSignal{{Source: models.SignalSourcePoll}}, sink.all())
}

func TestPollFallback_Tick_EmptyAndErrorsAreSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	feedAdapter := mock.NewMockFeedAdapter(ctrl)
	sink := &signalRecorder{}
	ctx := context.Background()

	gomock.InOrder(
		feedAdapter.EXPECT().ListPosts(ctx, "w", 1).Return([]models.Post{}, nil),
		feedAdapter.EXPECT().ListPosts(ctx, "w", 1).Return(nil, errors.New("503")),
	)

	p := NewPollFallback(feedAdapter, NewWatermarkTracker("w"), sink, time.Minute, logger.Nop())
	p.tick(ctx)
	p.tick(ctx)

	assert.Empty(t, sink.all())
}

func TestPollFallback_UsesCurrentWatermark(t *testing.T) {
	ctrl := gomock.NewController(t)
	feedAdapter := mock.NewMockFeedAdapter(ctrl)
	watermark := NewWatermarkTracker("first")
	ctx := context.Background()

	gomock.InOrder(
		feedAdapter.EXPECT().ListPosts(ctx, "first", 1).Return(nil, nil),
		feedAdapter.EXPECT().ListPosts(ctx, "second", 1).Return(nil, nil),
	)

	p := NewPollFallback(feedAdapter, watermark, &signalRecorder{}, time.Minute, logger.Nop())
	p.tick(ctx)
	watermark.Set("second")
	p.tick(ctx)
}

func TestPollFallback_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	feedAdapter := mock.NewMockFeedAdapter(ctrl)
	sink := &signalRecorder{}

	feedAdapter.EXPECT().ListPosts(gomock.Any(), "w", 1).Return([]models.Post{{ID: 1}}, nil).MinTimes(2)

	p := NewPollFallback(feedAdapter, NewWatermarkTracker("w"), sink, 10*time.Millisecond, logger.Nop())
	p.Start(context.Background())

	require.Eventually(t, func() bool { return len(sink.all()) >= 2 }, time.Second, 5*time.Millisecond)
	p.Stop()

	n := len(sink.all())
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, n, len(sink.all()), "no ticks after Stop")

	// Stop on a stopped poller is a no-op
	p.Stop()
}

func TestPollFallback_RunEndsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	feedAdapter := mock.NewMockFeedAdapter(ctrl)
	feedAdapter.EXPECT().ListPosts(gomock.Any(), gomock.Any(), 1).Return(nil, nil).AnyTimes()

	p := NewPollFallback(feedAdapter, NewWatermarkTracker(""), &signalRecorder{}, 5*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestNewPollFallback_DefaultInterval(t *testing.T) {
	p := NewPollFallback(nil, NewWatermarkTracker(""), &signalRecorder{}, 0, logger.Nop())
	assert.Equal(t, defaultPollInterval, p.interval)
}
