// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChannelHealth is the connection state of the push channel.
type ChannelHealth string

const (
	ChannelConnected            ChannelHealth = "connected"
	ChannelDisconnectedRetrying ChannelHealth = "disconnected-retrying"
)

// SyncState is a point-in-time snapshot of the synchronization core's
// session state.
type SyncState struct {
	UnreadCount            int
	LastSeenWatermark      string
	PageLimit              int
	RefreshInFlight        bool
	NotificationPermission Permission
}

// UnreadIndicator is the presentation of the unread count pushed to the feed
// surface.
type UnreadIndicator struct {
	Count        int
	BadgeText    string
	BadgeVisible bool
	Title        string
}
