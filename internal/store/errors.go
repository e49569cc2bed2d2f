package store

import "errors"

// Consistency errors. They mean local state and the remote listing disagree
// in a way a re-download cannot fix; the affected solution is reported and
// never retried. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrSolutionUUIDMismatch is returned when the backup state stored in a
	// solution directory belongs to another solution.
	ErrSolutionUUIDMismatch = errors.New("solution uuid mismatch")

	// ErrIterationCountRegressed is returned when the stored iteration count
	// is greater than the count the remote side reports.
	ErrIterationCountRegressed = errors.New("stored iteration count exceeds remote count")

	// ErrLastIteratedAtMissing is returned when the stored state holds a
	// "last iterated at" timestamp but the remote solution has none.
	ErrLastIteratedAtMissing = errors.New("remote solution has no last iterated at timestamp")
)

// Filesystem errors.
var (
	// ErrUnsafePath is returned for remote file paths that are absolute or
	// escape the solution directory.
	ErrUnsafePath = errors.New("unsafe file path")

	// ErrNotADirectory is returned when a solution path exists but is a
	// regular file.
	ErrNotADirectory = errors.New("not a directory")
)

// Low-level database operation errors of the backup catalog.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the catalog fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning catalog rows fails.
	ErrScanningRows = errors.New("failed to scan catalog rows")
)
