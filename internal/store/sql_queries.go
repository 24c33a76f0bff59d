package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-feed-sync/models"
)

const (
	permissionsTable = "notification_permissions"
	// the table holds a single row
	permissionRowID = 1
)

func buildGetPermissionQuery() (string, []any, error) {
	return sq.Select("state").
		From(permissionsTable).
		Where(sq.Eq{"id": permissionRowID}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildSavePermissionQuery(permission models.Permission, updatedAt string) (string, []any, error) {
	return sq.Insert(permissionsTable).
		Columns("id", "state", "updated_at").
		Values(permissionRowID, string(permission), updatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at").
		PlaceholderFormat(sq.Question).
		ToSql()
}
