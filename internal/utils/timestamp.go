// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"time"
)

// NowWatermark returns the current UTC time formatted the way the feed server
// formats its watermarks (RFC 3339 with sub-second precision).
func NowWatermark() string {
	return FormatWatermark(time.Now())
}

// FormatWatermark formats t as a feed watermark.
func FormatWatermark(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseWatermark parses an ISO 8601 timestamp produced by the feed server.
// Naive timestamps (no zone designator, as emitted for UTC columns) are read
// as UTC.
func ParseWatermark(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05.999999999", s, time.UTC)
}
