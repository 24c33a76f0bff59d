// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the feed server.
//
// The primary abstraction is [FeedAdapter], which decouples the
// synchronization core from the underlying protocol. The package ships an
// HTTP implementation ([NewHTTPFeedAdapter]) built on resty, a Server-Sent
// Events decoder for the push stream, and a parser for timeline fragments.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrInternalServerError] for 500).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-feed-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/feed_adapter_mock.go -package=mock

// FeedAdapter defines transport-agnostic communication with the feed server.
type FeedAdapter interface {
	// ListPosts asks the posts endpoint for at most limit items created
	// strictly after since. An empty since lists the newest items. Returns an
	// error on network failure, non-2xx status or an undecodable body.
	ListPosts(ctx context.Context, since string, limit int) ([]models.Post, error)

	// FetchTimeline fetches one page of the rendered timeline fragment and
	// parses it into entries and surface metadata (including the watermark
	// the fragment was rendered with).
	FetchTimeline(ctx context.Context, page, limit int) (models.TimelinePage, error)

	// OpenEventStream opens the server's event stream. The returned stream
	// must be closed by the caller. The stream is not bound by the request
	// timeout; it lives until ctx is cancelled or the transport fails.
	OpenEventStream(ctx context.Context) (EventStream, error)
}

// EventStream is an open push stream delivering discrete server events.
type EventStream interface {
	// Next blocks until the next complete event arrives. It returns io.EOF
	// when the server closes the stream.
	Next() (Event, error)

	// Close releases the underlying connection. Safe to call more than once.
	Close() error
}
