// Package sqlite is a SQLite-backed adapter for the repository contracts.
//
// Repo is a generic implementation of repository.Repository,
// repository.Queryable, and repository.Transactional for any entity type
// described by a repository.Mapper. Criteria-driven operations (Filter,
// Count, Paginate, Exists) execute the literal SQL text produced by package
// querysql end to end; keyed operations (Create, FindByID, Update, Delete)
// use parameterized statements.
//
// Open configures the database the way this adapter expects it:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
//
// Schema creation is the caller's responsibility.
package sqlite
