// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/models"
)

// PermissionGate tracks whether local alerts may be shown.
//
// States move unrequested -> requested -> granted | denied; granted and denied
// are terminal for the session. A platform without the capability behaves as
// denied.
type PermissionGate struct {
	platform NotificationPlatform
	surface  Surface

	mu    sync.RWMutex
	state models.Permission

	// serialises prompts so a second request waits for the first answer
	requestMu sync.Mutex

	logger *logger.Logger
}

func NewPermissionGate(platform NotificationPlatform, surface Surface, log *logger.Logger) *PermissionGate {
	return &PermissionGate{
		platform: platform,
		surface:  surface,
		state:    models.PermissionUnrequested,
		logger:   log,
	}
}

// Load adopts the decision the platform already holds. A previous grant is
// surfaced immediately.
func (g *PermissionGate) Load(ctx context.Context) models.Permission {
	if g.platform == nil || !g.platform.Available() {
		g.setState(models.PermissionDenied)
		return models.PermissionDenied
	}

	p, err := g.platform.Permission(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Str("func", "PermissionGate.Load").Msg("failed to load notification permission")
		return g.CurrentState()
	}

	// only decided answers are adopted; a stale "requested" means the
	// previous prompt was never answered
	if p.IsDecided() {
		g.setState(p)
	}
	return g.CurrentState()
}

func (g *PermissionGate) CurrentState() models.Permission {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// RequestPermission prompts the user and blocks until the platform answers.
// Returns immediately when a decision already exists. A failed prompt moves
// the gate back to unrequested.
func (g *PermissionGate) RequestPermission(ctx context.Context) models.Permission {
	g.requestMu.Lock()
	defer g.requestMu.Unlock()

	if current := g.CurrentState(); current.IsDecided() {
		return current
	}

	if g.platform == nil || !g.platform.Available() {
		g.setState(models.PermissionDenied)
		return models.PermissionDenied
	}

	g.setState(models.PermissionRequested)

	answer, err := g.platform.Request(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Str("func", "PermissionGate.RequestPermission").Msg("permission prompt failed")
		g.setState(models.PermissionUnrequested)
		return models.PermissionUnrequested
	}
	if !answer.IsDecided() {
		answer = models.PermissionDenied
	}

	g.setState(answer)
	g.logger.Info().Str("func", "PermissionGate.RequestPermission").Str("permission", string(answer)).Msg("notification permission decided")

	return answer
}

// NotifyIfGranted shows an alert only when permission is granted. Delivery
// failures are logged and dropped.
func (g *PermissionGate) NotifyIfGranted(title, body string) {
	if g.CurrentState() != models.PermissionGranted {
		return
	}

	if err := g.platform.Show(title, body); err != nil {
		g.logger.Debug().Err(err).Str("func", "PermissionGate.NotifyIfGranted").Msg("notification not shown")
	}
}

func (g *PermissionGate) setState(p models.Permission) {
	g.mu.Lock()
	g.state = p
	g.mu.Unlock()

	if g.surface != nil {
		g.surface.SetNotificationsEnabled(p == models.PermissionGranted)
	}
}
