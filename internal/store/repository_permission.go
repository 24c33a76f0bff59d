package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/utils"
	"github.com/MKhiriev/go-feed-sync/models"
)

type permissionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPermissionRepository(db *DB, logger *logger.Logger) PermissionRepository {
	return &permissionRepository{
		db:     db,
		logger: logger,
	}
}

func (p *permissionRepository) GetPermission(ctx context.Context) (models.Permission, error) {
	query, args, err := buildGetPermissionQuery()
	if err != nil {
		p.logger.Err(err).Str("func", "permissionRepository.GetPermission").Msg("failed to build query")
		return models.PermissionUnrequested, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var state string
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PermissionUnrequested, nil
	}
	if err != nil {
		p.logger.Err(err).Str("func", "permissionRepository.GetPermission").Msg("failed to read permission")
		return models.PermissionUnrequested, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.ParsePermission(state), nil
}

func (p *permissionRepository) SavePermission(ctx context.Context, permission models.Permission) error {
	query, args, err := buildSavePermissionQuery(permission, utils.NowWatermark())
	if err != nil {
		p.logger.Err(err).Str("func", "permissionRepository.SavePermission").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		p.logger.Err(err).
			Str("func", "permissionRepository.SavePermission").
			Str("permission", string(permission)).
			Msg("failed to upsert permission")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPermissionNotSaved
	}

	p.logger.Debug().
		Str("func", "permissionRepository.SavePermission").
		Str("permission", string(permission)).
		Msg("permission saved")

	return nil
}
