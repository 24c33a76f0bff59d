package service

import "github.com/MKhiriev/go-feed-sync/models"

// IsNearLiveHead reports whether the user is looking at the newest items of
// the home feed: the view is homePath, the feed is present and the scroll
// offset is within threshold (inclusive).
func IsNearLiveHead(vp models.Viewport, homePath string, threshold int) bool {
	return vp.Path == homePath && vp.FeedPresent && vp.ScrollOffset <= threshold
}
