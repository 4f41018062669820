package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when no catalog item has the requested id.
	ErrItemNotFound = errors.New("item was not found")

	// ErrOrderNotFound is returned when no order has the requested id.
	ErrOrderNotFound = errors.New("order was not found")

	// ErrOrderItemNotFound is returned when an order has no line with the
	// requested id, including when the order itself does not exist.
	ErrOrderItemNotFound = errors.New("order item was not found")

	// ErrCustomerNotFound is returned when no customer has the requested id.
	ErrCustomerNotFound = errors.New("customer was not found")

	// ErrReferenceNotFound is returned when a write violates a foreign key,
	// e.g. an order for an unknown customer or a line for an unknown item.
	ErrReferenceNotFound = errors.New("referenced record does not exist")

	// ErrAlreadyExists is returned when a write violates a unique or primary
	// key constraint.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrItemInUse is returned when deleting an item that order lines still
	// reference.
	ErrItemInUse = errors.New("item is referenced by orders")

	// ErrUnsupportedDriver is returned by [NewConnect] for drivers other than
	// pgx and sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
