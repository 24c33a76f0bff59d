package service

import "sync/atomic"

// RefreshGuard admits at most one outstanding silent refresh.
type RefreshGuard struct {
	inFlight atomic.Bool
}

// TryAcquire marks a refresh as in flight. It returns false when one already
// is.
func (g *RefreshGuard) TryAcquire() bool {
	return g.inFlight.CompareAndSwap(false, true)
}

func (g *RefreshGuard) Release() {
	g.inFlight.Store(false)
}

func (g *RefreshGuard) InFlight() bool {
	return g.inFlight.Load()
}
