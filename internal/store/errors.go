package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when registering an account whose username
	// already exists in the database.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken is returned when registering an account whose email
	// already exists in the database.
	ErrEmailTaken = errors.New("email already taken")

	// ErrUserNotFound is returned when a lookup or delete targets a username
	// that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrFeedbackNotFound is returned when a lookup, update or delete targets
	// a feedback ID that does not exist.
	ErrFeedbackNotFound = errors.New("feedback not found")

	// ErrSessionNotFound is returned when a session token is unknown or has
	// expired.
	ErrSessionNotFound = errors.New("session not found")
)

// Low-level database operation errors. Repository methods wrap driver errors
// in these so that callers can classify failures without depending on the
// driver package.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result row
	// into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnknownDriver is returned when the configured database driver is
	// neither "pgx" nor "sqlite3".
	ErrUnknownDriver = errors.New("unknown database driver")
)
