// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPermissionRepo(t *testing.T) (*permissionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &permissionRepository{db: &DB{DB: db, logger: l}, logger: l}, mock
}

func TestGetPermission_Stored(t *testing.T) {
	repo, mock := newTestPermissionRepo(t)

	mock.ExpectQuery("SELECT state FROM notification_permissions").
		WithArgs(permissionRowID).
		WillReturnRows(sqlmock.NewRows([]string{"state"}).AddRow("granted"))

	got, err := repo.GetPermission(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.PermissionGranted, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPermission_NoRows(t *testing.T) {
	repo, mock := newTestPermissionRepo(t)

	mock.ExpectQuery("SELECT state FROM notification_permissions").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetPermission(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.PermissionUnrequested, got)
}

func TestGetPermission_UnknownValue(t *testing.T) {
	repo, mock := newTestPermissionRepo(t)

	mock.ExpectQuery("SELECT state FROM notification_permissions").
		WillReturnRows(sqlmock.NewRows([]string{"state"}).AddRow("garbage"))

	got, err := repo.GetPermission(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.PermissionUnrequested, got)
}

func TestGetPermission_DBError(t *testing.T) {
	repo, mock := newTestPermissionRepo(t)

	mock.ExpectQuery("SELECT state FROM notification_permissions").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.GetPermission(context.Background())

	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestSavePermission_Success(t *testing.T) {
	repo, mock := newTestPermissionRepo(t)

	mock.ExpectExec("INSERT INTO notification_permissions").
		WithArgs(permissionRowID, "denied", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SavePermission(context.Background(), models.PermissionDenied)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavePermission_NoRowsAffected(t *testing.T) {
	repo, mock := newTestPermissionRepo(t)

	mock.ExpectExec("INSERT INTO notification_permissions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SavePermission(context.Background(), models.PermissionGranted)

	assert.ErrorIs(t, err, ErrPermissionNotSaved)
}

func TestSavePermission_ExecError(t *testing.T) {
	repo, mock := newTestPermissionRepo(t)

	mock.ExpectExec("INSERT INTO notification_permissions").
		WillReturnError(errors.New("database is locked"))

	err := repo.SavePermission(context.Background(), models.PermissionGranted)

	assert.ErrorIs(t, err, ErrExecutingQuery)
}
