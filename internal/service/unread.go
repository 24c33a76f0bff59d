package service

import (
	"strconv"
	"sync"

	"github.com/MKhiriev/go-feed-sync/models"
)

// UnreadCounter counts items that arrived while the user was away from the
// live head and mirrors the count onto the surface.
type UnreadCounter struct {
	mu      sync.Mutex
	count   int
	appName string
	surface Surface
}

func NewUnreadCounter(appName string, surface Surface) *UnreadCounter {
	return &UnreadCounter{appName: appName, surface: surface}
}

func (u *UnreadCounter) Get() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.count
}

// Set stores n (negative values clamp to 0) and pushes the matching badge and
// title to the surface.
func (u *UnreadCounter) Set(n int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.setLocked(n)
}

func (u *UnreadCounter) Increment() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.setLocked(u.count + 1)
}

func (u *UnreadCounter) setLocked(n int) {
	u.count = max(n, 0)
	if u.surface != nil {
		u.surface.SetUnread(UnreadIndicatorFor(u.appName, u.count))
	}
}

// UnreadIndicatorFor renders count: title "(n) <appName>" and a visible badge
// when n > 0, the bare app name and a hidden badge otherwise.
func UnreadIndicatorFor(appName string, count int) models.UnreadIndicator {
	if count <= 0 {
		return models.UnreadIndicator{Title: appName}
	}

	n := strconv.Itoa(count)
	return models.UnreadIndicator{
		Count:        count,
		BadgeText:    n,
		BadgeVisible: true,
		Title:        "(" + n + ") " + appName,
	}
}
