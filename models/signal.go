// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignalSource names the delivery channel that produced a [NewItemSignal].
type SignalSource string

const (
	// SignalSourcePush marks signals decoded from the server event stream.
	SignalSourcePush SignalSource = "push"
	// SignalSourcePoll marks signals produced by the periodic poll.
	SignalSourcePoll SignalSource = "poll"
)

// NewItemSignal is an ephemeral notice that the server has at least one feed
// item the viewer has not observed yet.
//
// CreatedAt is the ISO8601 timestamp carried by the event payload. An empty
// string means the timestamp is absent: either the payload was malformed or
// the signal came from the poll fallback, which only detects existence.
type NewItemSignal struct {
	CreatedAt string
	Source    SignalSource
}

// HasCreatedAt reports whether the signal carries a timestamp.
func (s NewItemSignal) HasCreatedAt() bool {
	return s.CreatedAt != ""
}

// NewItemPayload is the JSON body of a new_item stream event. Every field is
// optional.
type NewItemPayload struct {
	PostID    *int64 `json:"post_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
