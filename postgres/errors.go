package postgres

import (
	"context"
	"errors"

	"github.com/lib/pq"

	"github.com/roach88/wyvern/repository"
)

// classify maps a driver error into the repository error taxonomy by
// SQLSTATE class. The cause stays wrapped so callers can still reach the
// pq.Error.
func classify(op string, err error) *repository.Error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return repository.WrapError(repository.KindConnection, op, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "23": // integrity constraint violation
			return repository.WrapError(repository.KindConstraintViolation, op, err)
		case "08": // connection exception
			return repository.WrapError(repository.KindConnection, op, err)
		case "40", "2D", "3B": // transaction rollback / invalid termination / savepoint
			return repository.WrapError(repository.KindTransaction, op, err)
		case "22": // data exception
			return repository.WrapError(repository.KindInvalidInput, op, err)
		}
	}

	return repository.WrapError(repository.KindQuery, op, err)
}
