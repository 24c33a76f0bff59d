// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Permission is the state of the local notification capability.
//
// Transitions: unrequested -> requested -> granted | denied. Granted and
// denied are terminal for the lifetime of a session.
type Permission string

const (
	PermissionUnrequested Permission = "unrequested"
	PermissionRequested   Permission = "requested"
	PermissionGranted     Permission = "granted"
	PermissionDenied      Permission = "denied"
)

// IsDecided reports whether p is a terminal state.
func (p Permission) IsDecided() bool {
	return p == PermissionGranted || p == PermissionDenied
}

// ParsePermission converts a stored value back to a [Permission]. Unknown
// values map to [PermissionUnrequested].
func ParsePermission(s string) Permission {
	switch Permission(s) {
	case PermissionRequested, PermissionGranted, PermissionDenied:
		return Permission(s)
	default:
		return PermissionUnrequested
	}
}
