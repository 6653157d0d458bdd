package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRevisionNotFound is returned when no revision matches the lookup,
	// including Latest on an empty store.
	ErrRevisionNotFound = errors.New("site config revision was not found")

	// ErrRevisionConflict is returned when a revision could not be saved
	// because its ID or number is already taken, typically by a concurrent
	// publisher.
	ErrRevisionConflict = errors.New("site config revision conflict occurred")

	// ErrUnsupportedDSN is returned when the DSN names no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan revision row")

	// ErrEncodingConfig is returned when a configuration cannot be
	// serialised to or from its stored JSON form.
	ErrEncodingConfig = errors.New("failed to encode site configuration")
)
