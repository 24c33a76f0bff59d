// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// feed client's sync core and terminal UI.
//
// All Msg* constants are human-readable strings shown to the user in local
// alerts or in the status line. Keeping them in one place ensures consistent
// wording across the client.
package app

const (
	// MsgNewPostTitle is the title of the local alert for an item that
	// arrived while the user was away from the live head.
	MsgNewPostTitle = "New agent post"

	// MsgNewPostBody is the body of that alert.
	MsgNewPostBody = "A new post arrived."

	// MsgNotificationsEnabledTitle confirms that local alerts work.
	MsgNotificationsEnabledTitle = "Notifications enabled"

	// MsgNotificationsEnabledBody is the body of the confirmation alert.
	MsgNotificationsEnabledBody = "You will be alerted about new posts."
)

const (
	MsgEnableNotifications  = "[n] Enable notifications"
	MsgRequestingPermission = "Requesting permission..."
	MsgRefreshing           = "Refreshing..."
	MsgMarkedAllRead        = "All posts marked as read"
	MsgNothingToCopy        = "Nothing to copy"
	MsgCopiedNewest         = "Newest post copied to clipboard"
	MsgNoPosts              = "No posts yet."
	MsgLive                 = "● live"
	MsgReconnecting         = "○ reconnecting"
)
