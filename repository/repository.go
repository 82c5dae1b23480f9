package repository

import (
	"context"

	"github.com/roach88/wyvern/query"
)

// Repository provides standard CRUD operations for one entity type.
//
// T is the entity type, ID the identifier type (typically int64 or a UUID).
// Every operation may block on a storage round trip and honors context
// cancellation to the extent the driver does.
type Repository[T any, ID comparable] interface {
	// Create persists a new entity and returns the persisted
	// representation, which may differ from the input (generated
	// identifiers, database defaults).
	Create(ctx context.Context, entity T) (T, error)

	// FindByID returns the entity with the given identifier, or nil with
	// a nil error when no row matches. Absence is not an error.
	FindByID(ctx context.Context, id ID) (*T, error)

	// Update modifies an existing entity. Updating a missing entity
	// returns a NOT_FOUND error.
	Update(ctx context.Context, entity T) (T, error)

	// Delete removes the entity with the given identifier. The boolean
	// reports whether a row was actually removed; deleting a missing row
	// is false, not an error.
	Delete(ctx context.Context, id ID) (bool, error)

	// FindAll returns every entity, unbounded. This can return an
	// unsafely large result set; prefer Filter or Paginate.
	FindAll(ctx context.Context) ([]T, error)
}

// Queryable extends Repository with criteria-driven querying.
type Queryable[T any, ID comparable] interface {
	Repository[T, ID]

	// Filter returns all entities matching the criteria, applying its
	// conditions, sort orders, limit, and offset.
	Filter(ctx context.Context, criteria query.FilterCriteria) ([]T, error)

	// Count returns the number of entities matching the criteria's
	// conditions. Sort, limit, and offset are ignored.
	Count(ctx context.Context, criteria query.FilterCriteria) (int64, error)

	// Paginate executes Filter and Count with the pagination's offset and
	// limit applied over the criteria (pagination wins over any limit or
	// offset already set) and assembles a result page.
	Paginate(ctx context.Context, criteria query.FilterCriteria, p query.Pagination) (*query.Page[T], error)

	// Exists reports whether at least one entity matches the criteria.
	Exists(ctx context.Context, criteria query.FilterCriteria) (bool, error)
}

// Transactional is the transaction contract, independent of Repository.
//
// Tx is the adapter-defined, opaque transaction handle. Exactly one of
// CommitTransaction or RollbackTransaction must be called per handle, and
// the handle must not be reused afterward; violating this yields an
// adapter-defined error.
type Transactional[Tx any] interface {
	BeginTransaction(ctx context.Context) (Tx, error)
	CommitTransaction(ctx context.Context, tx Tx) error
	RollbackTransaction(ctx context.Context, tx Tx) error
}
