package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqlite3 "github.com/ncruces/go-sqlite3"

	"github.com/taskdeck/taskdeck-api/internal/store"
)

// MapError maps a database error to an appropriate store error.
// It wraps the original error to preserve context for logging.
// This function should be used on every database operation so that callers
// only ever see the sentinel errors defined in internal/store.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var serr *sqlite3.Error
	if errors.As(err, &serr) {
		switch serr.ExtendedCode() {
		case sqlite3.CONSTRAINT_UNIQUE, sqlite3.CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case sqlite3.CONSTRAINT_FOREIGNKEY, sqlite3.CONSTRAINT_CHECK, sqlite3.CONSTRAINT_NOTNULL:
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
		return err
	}

	// Some layers flatten driver errors into plain strings; fall back on the
	// canonical SQLite messages.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case strings.Contains(msg, "constraint failed"):
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	return err
}

// IsUniqueViolation checks if the given error is a SQLite unique constraint
// violation. This is useful for detecting duplicate records before MapError
// has classified them.
func IsUniqueViolation(err error) bool {
	var serr *sqlite3.Error
	if errors.As(err, &serr) {
		code := serr.ExtendedCode()
		return code == sqlite3.CONSTRAINT_UNIQUE || code == sqlite3.CONSTRAINT_PRIMARYKEY
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// checkRowsAffected examines the number of rows touched by an UPDATE or
// DELETE. Zero rows means the target row doesn't exist (or, for task-scoped
// statements, belongs to another user), which is reported as notFound.
func checkRowsAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return notFound
	}

	return nil
}
