// Package query provides the storage-agnostic query criteria model:
// condition values, operators, filter criteria, sort orders, and pagination.
//
// The model is the abstraction boundary between callers describing what they
// want and backends deciding how to fetch it. A caller assembles a
// FilterCriteria from Conditions (field + Operator + Value triples), hands it
// to a repository, and the backend lowers it to a concrete query (see package
// querysql for the SQL backend).
//
// SEALED VALUE UNION:
//
// Value is a sealed interface using the marker method pattern. Only types in
// this package implement it:
//   - String, Integer, Float, Boolean, Null, List
//
// This enables exhaustive type switches in backends and compile-time safety
// against external extensions. Adding a variant is a deliberate breaking
// change, not an extension point.
//
// IMMUTABILITY:
//
// All types here are plain values. FilterCriteria builder methods
// (WithCondition, WithSort, WithLimit, WithOffset) take a value receiver and
// return an updated copy, so chained construction never aliases a criteria
// that has already been handed to a backend. A constructed criteria is safe
// to share across concurrent readers.
//
// VALIDATION:
//
// The model performs none. Empty field names, mismatched operator/value
// pairings, and out-of-range pagination are the caller's responsibility;
// backends degrade gracefully rather than fail (see querysql).
package query
