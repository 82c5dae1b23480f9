package repository

// RowScanner is the subset of database row types a Mapper decodes from.
// *sql.Row, *sql.Rows, and sqlx row types all satisfy it.
type RowScanner interface {
	Scan(dest ...any) error
}

// Mapper describes one entity's table shape to a generic adapter: the table
// and column names, how to read column values out of an entity, and how to
// decode a database row back into one. Row decoding belongs to the caller;
// the adapter owns statement composition and execution.
//
// Columns must list every persisted column, including IDColumn, in the
// table's declaration order - adapters run "SELECT *" statements produced
// by the translation engine, so Scan receives columns in that order.
// Values must return entity values aligned with Columns.
type Mapper[T any, ID comparable] interface {
	// Table returns the table name. Interpolated verbatim into
	// statements: must be trusted, never user-controlled.
	Table() string

	// IDColumn returns the primary key column name.
	IDColumn() string

	// Columns returns all persisted column names in table order.
	Columns() []string

	// Values returns the entity's column values aligned with Columns.
	Values(entity T) []any

	// ID returns the entity's identifier.
	ID(entity T) ID

	// Scan decodes one row, in Columns order, into an entity.
	Scan(row RowScanner) (T, error)
}
