package sqlite

import (
	"context"
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/roach88/wyvern/repository"
)

// classify maps a driver error into the repository error taxonomy.
// The cause stays wrapped so callers can still reach the sqlite3.Error.
func classify(op string, err error) *repository.Error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return repository.WrapError(repository.KindConnection, op, err)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			return repository.WrapError(repository.KindConstraintViolation, op, err)
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen:
			return repository.WrapError(repository.KindConnection, op, err)
		}
	}

	return repository.WrapError(repository.KindQuery, op, err)
}
