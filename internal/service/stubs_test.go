package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-feed-sync/models"
)

// stubSurface records everything the core pushes to the surface.
type stubSurface struct {
	mu                   sync.Mutex
	indicators           []models.UnreadIndicator
	replaced             []models.TimelinePage
	notificationsEnabled bool
	health               []models.ChannelHealth
}

func (s *stubSurface) SetUnread(indicator models.UnreadIndicator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indicators = append(s.indicators, indicator)
}

func (s *stubSurface) ReplaceFeed(page models.TimelinePage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaced = append(s.replaced, page)
}

func (s *stubSurface) SetNotificationsEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notificationsEnabled = enabled
}

func (s *stubSurface) SetChannelHealth(health models.ChannelHealth) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.health = append(s.health, health)
}

func (s *stubSurface) lastIndicator() models.UnreadIndicator {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.indicators) == 0 {
		return models.UnreadIndicator{}
	}
	return s.indicators[len(s.indicators)-1]
}

func (s *stubSurface) indicatorCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.indicators)
}

func (s *stubSurface) replacedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.replaced)
}

func (s *stubSurface) enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notificationsEnabled
}

// stubEnv is a settable environment.
type stubEnv struct {
	mu             sync.Mutex
	near           bool
	meta           models.FeedMetadata
	proximityCalls int
}

func (e *stubEnv) CurrentProximity() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.proximityCalls++
	return e.near
}

// asked returns how many signals have reached the proximity check.
func (e *stubEnv) asked() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.proximityCalls
}

func (e *stubEnv) CurrentFeedMetadata() models.FeedMetadata {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.meta
}

func (e *stubEnv) setNear(near bool) {
	e.mu.Lock()
	e.near = near
	e.mu.Unlock()
}

func (e *stubEnv) setMeta(meta models.FeedMetadata) {
	e.mu.Lock()
	e.meta = meta
	e.mu.Unlock()
}

// stubPlatform is a scriptable notification platform.
type stubPlatform struct {
	mu           sync.Mutex
	available    bool
	stored       models.Permission
	storedErr    error
	answer       models.Permission
	requestErr   error
	requestGate  chan struct{}
	requestCalls int
	shown        []string
}

func (p *stubPlatform) Available() bool { return p.available }

func (p *stubPlatform) Permission(_ context.Context) (models.Permission, error) {
	return p.stored, p.storedErr
}

func (p *stubPlatform) Request(_ context.Context) (models.Permission, error) {
	p.mu.Lock()
	p.requestCalls++
	gate := p.requestGate
	p.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return p.answer, p.requestErr
}

func (p *stubPlatform) Show(title, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shown = append(p.shown, title)
	return nil
}

func (p *stubPlatform) shownCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.shown)
}

func (p *stubPlatform) requests() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requestCalls
}

// signalRecorder is a SignalSink collecting signals.
type signalRecorder struct {
	mu      sync.Mutex
	signals []models.NewItemSignal
}

func (r *signalRecorder) Signal(signal models.NewItemSignal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.signals = append(r.signals, signal)
}

func (r *signalRecorder) all() []models.NewItemSignal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.NewItemSignal(nil), r.signals...)
}
