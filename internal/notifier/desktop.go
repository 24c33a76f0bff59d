// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-feed-sync/internal/app"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/store"
	"github.com/MKhiriev/go-feed-sync/models"
)

const (
	alertBurst    = 3
	alertInterval = time.Second
)

var (
	// ErrUnavailable is returned by Show when the capability is switched off.
	ErrUnavailable = errors.New("desktop notifications unavailable")
	// ErrThrottled is returned by Show when the alert was dropped by the
	// rate limiter.
	ErrThrottled = errors.New("notification throttled")
)

// ShowFunc delivers one alert.
type ShowFunc func(title, body string) error

func beeepShow(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Desktop is a notification platform backed by the OS notification facility.
type Desktop struct {
	available bool
	repo      store.PermissionRepository
	show      ShowFunc
	limiter   *rate.Limiter

	mu sync.Mutex

	logger *logger.Logger
}

// NewDesktop returns a platform that persists decisions through repo.
// When available is false every request is answered with denied and nothing
// is ever shown.
func NewDesktop(available bool, repo store.PermissionRepository, log *logger.Logger) *Desktop {
	return newDesktop(available, repo, beeepShow, log)
}

func newDesktop(available bool, repo store.PermissionRepository, show ShowFunc, log *logger.Logger) *Desktop {
	return &Desktop{
		available: available,
		repo:      repo,
		show:      show,
		limiter:   rate.NewLimiter(rate.Every(alertInterval), alertBurst),
		logger:    log,
	}
}

// Available reports whether local alerts can be shown at all.
func (d *Desktop) Available() bool {
	return d.available
}

// Permission returns the persisted decision.
func (d *Desktop) Permission(ctx context.Context) (models.Permission, error) {
	if !d.available {
		return models.PermissionDenied, nil
	}

	p, err := d.repo.GetPermission(ctx)
	if err != nil {
		return models.PermissionUnrequested, fmt.Errorf("load notification permission: %w", err)
	}
	return p, nil
}

// Request asks for permission by showing a confirmation alert. A delivered
// alert means granted; a delivery failure means denied. The answer is
// persisted; a persistence failure is logged and the answer still returned.
func (d *Desktop) Request(ctx context.Context) (models.Permission, error) {
	if !d.available {
		return models.PermissionDenied, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	answer := models.PermissionGranted
	if err := d.show(app.MsgNotificationsEnabledTitle, app.MsgNotificationsEnabledBody); err != nil {
		d.logger.Warn().Err(err).Str("func", "Desktop.Request").Msg("confirmation alert failed, permission denied")
		answer = models.PermissionDenied
	}

	if err := d.repo.SavePermission(ctx, answer); err != nil {
		d.logger.Err(err).Str("func", "Desktop.Request").Str("permission", string(answer)).Msg("failed to persist permission")
	}

	return answer, nil
}

// Show displays one alert.
func (d *Desktop) Show(title, body string) error {
	if !d.available {
		return ErrUnavailable
	}
	if !d.limiter.Allow() {
		return ErrThrottled
	}

	if err := d.show(title, body); err != nil {
		return fmt.Errorf("show notification: %w", err)
	}
	return nil
}
