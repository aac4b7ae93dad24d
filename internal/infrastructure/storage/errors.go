package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
	sqlitedriver "modernc.org/sqlite"
)

var (
	// ErrConnection marks failures to reach the backend.
	ErrConnection = errors.New("storage: connection unavailable")

	// ErrStatement marks statements the backend rejected.
	ErrStatement = errors.New("storage: statement rejected")

	// ErrDuplicateKey marks unique or primary key violations.
	ErrDuplicateKey = errors.New("storage: duplicate key")

	// ErrNotFound marks single-row lookups that matched nothing.
	ErrNotFound = errors.New("storage: row not found")
)

const (
	pqUniqueViolation = "23505"

	sqliteConstraintUnique     = 2067
	sqliteConstraintPrimaryKey = 1555
)

// classify folds a driver error into the gateway taxonomy while keeping
// the original error in the chain. The statement is carried compacted
// so callers can log what the backend rejected.
func classify(err error, statement string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return errors.Mark(err, ErrNotFound)
	case isDuplicateKey(err):
		return errors.Mark(errors.Wrapf(err, "statement %q", compactStatement(statement)), ErrDuplicateKey)
	case isConnectionFailure(err):
		return errors.Mark(err, ErrConnection)
	default:
		return errors.Mark(errors.Wrapf(err, "statement %q", compactStatement(statement)), ErrStatement)
	}
}

func isDuplicateKey(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}

	var sqliteErr *sqlitedriver.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqliteConstraintUnique || code == sqliteConstraintPrimaryKey
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isConnectionFailure(err error) bool {
	return errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}
