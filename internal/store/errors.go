package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrPermissionNotSaved is returned when the upsert of the permission row
	// completes without error but affects no rows.
	ErrPermissionNotSaved = errors.New("notification permission was not saved")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when reading a result row fails.
	ErrScanningRow = errors.New("error scanning row")
)
