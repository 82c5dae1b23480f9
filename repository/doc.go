// Package repository defines the polymorphic data-access contracts:
// Repository (CRUD), Queryable (criteria-driven querying), and Transactional
// (begin/commit/rollback), plus the error taxonomy adapters classify their
// driver errors into.
//
// A concrete storage adapter (see packages sqlite and postgres) is selected
// at construction time and satisfies these interfaces for one entity type.
// The contracts impose no ordering between concurrent calls on the same
// adapter beyond what the storage engine provides, and define no timeout
// parameter: cancellation travels through the context.
//
// Transaction handles are opaque and adapter-defined. Exactly one of
// CommitTransaction/RollbackTransaction must be invoked per
// BeginTransaction, a handle must not be reused after either call, and a
// handle belongs to a single logical flow of control.
package repository
