// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FeedMetadata is the metadata a rendered feed surface exposes about itself.
// It mirrors the data-* attributes of the timeline-meta element embedded in
// every timeline fragment.
type FeedMetadata struct {
	// LastSeen is the server-issued watermark for the rendered page.
	LastSeen string
	Page     int
	Limit    int
	HasNext  bool
}

// FeedEntry is one rendered item of a timeline fragment.
type FeedEntry struct {
	PostID string
	Text   string
}

// TimelinePage is a parsed timeline fragment: the content that replaces the
// visible feed, and the metadata used to re-sync the watermark.
type TimelinePage struct {
	Meta    FeedMetadata
	Entries []FeedEntry
}

// Viewport describes where the viewer currently is: the navigation path of
// the active view, whether a live feed is rendered, and how far it is
// scrolled from the top.
type Viewport struct {
	Path         string
	FeedPresent  bool
	ScrollOffset int
}
