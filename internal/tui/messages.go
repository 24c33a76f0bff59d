package tui

import "github.com/MKhiriev/go-feed-sync/models"

type unreadMsg struct {
	indicator models.UnreadIndicator
}

type feedMsg struct {
	page models.TimelinePage
}

type notificationsMsg struct {
	enabled bool
}

type healthMsg struct {
	health models.ChannelHealth
}

type permissionMsg struct {
	permission models.Permission
}

type copiedMsg struct {
	err error
}

// clearStatusMsg expires the status set with the same seq.
type clearStatusMsg struct {
	seq int
}
