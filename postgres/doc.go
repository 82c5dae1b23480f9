// Package postgres is a PostgreSQL-backed adapter for the repository
// contracts, built on sqlx.
//
// Unlike package sqlite, which executes the literal SQL text the
// translation engine is specified to emit, this adapter uses the engine's
// parameterized mode (querysql.BuildSelectArgs/BuildCountArgs) and lets
// sqlx rebind ? placeholders to $N. Semantics are identical; only the value
// transport differs.
//
// Driver errors are classified into the repository error taxonomy by
// SQLSTATE class: 23xxx constraint violations, 08xxx connection failures,
// 40/2D/3B transaction failures, 22xxx invalid input.
package postgres
