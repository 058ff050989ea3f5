package store

import "errors"

// Low-level database operation errors. Repository methods wrap them so
// callers can match with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement or query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrCorruptedSnapshot is returned when a stored conversation list can no
	// longer be decoded.
	ErrCorruptedSnapshot = errors.New("cached conversation list is corrupted")
)
