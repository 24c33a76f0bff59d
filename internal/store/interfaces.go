// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-feed-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PermissionRepository persists the user's decision about local alerts so
// that a grant survives restarts.
type PermissionRepository interface {
	// GetPermission returns the stored decision, or
	// [models.PermissionUnrequested] when nothing has been stored yet.
	GetPermission(ctx context.Context) (models.Permission, error)
	// SavePermission upserts the decision.
	SavePermission(ctx context.Context, permission models.Permission) error
}
