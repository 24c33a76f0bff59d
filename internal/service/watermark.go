package service

import "sync"

// WatermarkTracker holds the last-seen watermark. Writes overwrite
// unconditionally; there is no ordering check.
type WatermarkTracker struct {
	mu    sync.RWMutex
	value string
}

func NewWatermarkTracker(initial string) *WatermarkTracker {
	return &WatermarkTracker{value: initial}
}

func (w *WatermarkTracker) Get() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.value
}

func (w *WatermarkTracker) Set(t string) {
	w.mu.Lock()
	w.value = t
	w.mu.Unlock()
}
