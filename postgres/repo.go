package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/roach88/wyvern/query"
	"github.com/roach88/wyvern/querysql"
	"github.com/roach88/wyvern/repository"
)

// Repo is a generic PostgreSQL repository for one entity type.
//
// It implements repository.Repository, repository.Queryable, and
// repository.Transactional with Tx = *sqlx.Tx. The entity's table shape is
// supplied by a repository.Mapper at construction time.
type Repo[T any, ID comparable] struct {
	db     *sqlx.DB
	mapper repository.Mapper[T, ID]
}

// NewRepo creates a repository over db for the entity described by mapper.
func NewRepo[T any, ID comparable](db *sqlx.DB, mapper repository.Mapper[T, ID]) *Repo[T, ID] {
	return &Repo[T, ID]{db: db, mapper: mapper}
}

// Create inserts the entity and returns the row PostgreSQL persisted, via
// INSERT ... RETURNING.
func (r *Repo[T, ID]) Create(ctx context.Context, entity T) (T, error) {
	var zero T

	cols := r.mapper.Columns()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	stmt := r.db.Rebind(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.mapper.Table(), strings.Join(cols, ", "), placeholders, strings.Join(cols, ", ")))

	row := r.db.QueryRowxContext(ctx, stmt, r.mapper.Values(entity)...)
	persisted, err := r.mapper.Scan(row)
	if err != nil {
		return zero, classify("create entity", err)
	}
	return persisted, nil
}

// FindByID returns the entity with the given identifier, or nil when no row
// matches.
func (r *Repo[T, ID]) FindByID(ctx context.Context, id ID) (*T, error) {
	stmt := r.db.Rebind(fmt.Sprintf("SELECT * FROM %s WHERE %s = ?",
		r.mapper.Table(), r.mapper.IDColumn()))

	row := r.db.QueryRowxContext(ctx, stmt, id)
	entity, err := r.mapper.Scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classify("find entity by id", err)
	}
	return &entity, nil
}

// Update rewrites every non-key column of an existing entity and returns
// the persisted row via UPDATE ... RETURNING. Updating a missing entity
// returns a NOT_FOUND error.
func (r *Repo[T, ID]) Update(ctx context.Context, entity T) (T, error) {
	var zero T

	cols := r.mapper.Columns()
	values := r.mapper.Values(entity)

	assignments := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		if col == r.mapper.IDColumn() {
			continue
		}
		assignments = append(assignments, col+" = ?")
		args = append(args, values[i])
	}
	args = append(args, r.mapper.ID(entity))

	stmt := r.db.Rebind(fmt.Sprintf("UPDATE %s SET %s WHERE %s = ? RETURNING %s",
		r.mapper.Table(), strings.Join(assignments, ", "), r.mapper.IDColumn(),
		strings.Join(cols, ", ")))

	row := r.db.QueryRowxContext(ctx, stmt, args...)
	persisted, err := r.mapper.Scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, repository.NewError(repository.KindNotFound,
				fmt.Sprintf("no %s row matched id %v", r.mapper.Table(), r.mapper.ID(entity)))
		}
		return zero, classify("update entity", err)
	}
	return persisted, nil
}

// Delete removes the entity with the given identifier. Returns false when
// no row matched.
func (r *Repo[T, ID]) Delete(ctx context.Context, id ID) (bool, error) {
	stmt := r.db.Rebind(fmt.Sprintf("DELETE FROM %s WHERE %s = ?",
		r.mapper.Table(), r.mapper.IDColumn()))

	res, err := r.db.ExecContext(ctx, stmt, id)
	if err != nil {
		return false, classify("delete entity", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, classify("delete entity", err)
	}
	return affected > 0, nil
}

// FindAll returns every entity, unbounded.
func (r *Repo[T, ID]) FindAll(ctx context.Context) ([]T, error) {
	return r.Filter(ctx, query.NewCriteria())
}

// Filter returns all entities matching the criteria, using the
// parameterized translation mode.
func (r *Repo[T, ID]) Filter(ctx context.Context, criteria query.FilterCriteria) ([]T, error) {
	stmt, args := querysql.BuildSelectArgs(r.mapper.Table(), criteria)

	rows, err := r.db.QueryxContext(ctx, r.db.Rebind(stmt), args...)
	if err != nil {
		return nil, classify("filter entities", err)
	}
	defer rows.Close()

	entities := []T{}
	for rows.Next() {
		entity, err := r.mapper.Scan(rows)
		if err != nil {
			return nil, classify("scan entity", err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("iterate entities", err)
	}

	return entities, nil
}

// Count returns the number of entities matching the criteria's conditions.
func (r *Repo[T, ID]) Count(ctx context.Context, criteria query.FilterCriteria) (int64, error) {
	stmt, args := querysql.BuildCountArgs(r.mapper.Table(), criteria)

	var count int64
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(stmt), args...); err != nil {
		return 0, classify("count entities", err)
	}
	return count, nil
}

// Paginate runs Filter and Count with the pagination's bounds applied over
// the criteria (pagination wins over any limit/offset already set) and
// assembles a result page.
func (r *Repo[T, ID]) Paginate(ctx context.Context, criteria query.FilterCriteria, p query.Pagination) (*query.Page[T], error) {
	bounded := criteria.WithLimit(p.Limit()).WithOffset(p.Offset())

	items, err := r.Filter(ctx, bounded)
	if err != nil {
		return nil, err
	}
	total, err := r.Count(ctx, criteria)
	if err != nil {
		return nil, err
	}

	return query.NewPage(items, p.Page, p.PerPage, total), nil
}

// Exists reports whether at least one entity matches the criteria's
// conditions, via a bounded single-row probe.
func (r *Repo[T, ID]) Exists(ctx context.Context, criteria query.FilterCriteria) (bool, error) {
	probe := query.FilterCriteria{Conditions: criteria.Conditions}.WithLimit(1)
	stmt, args := querysql.BuildSelectArgs(r.mapper.Table(), probe)

	rows, err := r.db.QueryxContext(ctx, r.db.Rebind(stmt), args...)
	if err != nil {
		return false, classify("probe entities", err)
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, classify("probe entities", err)
	}
	return found, nil
}

// BeginTransaction starts a transaction. The returned handle must see
// exactly one of CommitTransaction or RollbackTransaction.
func (r *Repo[T, ID]) BeginTransaction(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, repository.WrapError(repository.KindTransaction, "begin transaction", err)
	}
	return tx, nil
}

// CommitTransaction commits tx.
func (r *Repo[T, ID]) CommitTransaction(ctx context.Context, tx *sqlx.Tx) error {
	if tx == nil {
		return repository.NewError(repository.KindTransaction, "commit of nil transaction")
	}
	if err := tx.Commit(); err != nil {
		return repository.WrapError(repository.KindTransaction, "commit transaction", err)
	}
	return nil
}

// RollbackTransaction rolls back tx.
func (r *Repo[T, ID]) RollbackTransaction(ctx context.Context, tx *sqlx.Tx) error {
	if tx == nil {
		return repository.NewError(repository.KindTransaction, "rollback of nil transaction")
	}
	if err := tx.Rollback(); err != nil {
		return repository.WrapError(repository.KindTransaction, "rollback transaction", err)
	}
	return nil
}
