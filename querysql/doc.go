// Package querysql lowers a query.FilterCriteria into SQL text.
//
// Two translation modes exist:
//
// LITERAL MODE (BuildSelect, BuildCount, FormatValue):
// Values are inlined into the statement as SQL literals. String values are
// single-quoted with embedded single quotes doubled; nothing else is altered.
// This is a textual quote-breakout mitigation, not a full sanitizer, and is
// the mode whose output is the compatibility contract: clause order and
// literal formatting are bit-exact and covered by golden tests.
//
// PARAMETERIZED MODE (BuildSelectArgs, BuildCountArgs):
// Values are replaced by ? placeholders and returned as a flat argument
// slice, for backends that bind parameters (see package postgres, which
// rebinds ? to $N via sqlx). IN expands to one placeholder per element;
// IS NULL / IS NOT NULL contribute no arguments.
//
// Both modes are pure functions of their inputs and never fail: degenerate
// input (empty table name, a List under a scalar operator, an In condition
// with a scalar value) produces best-effort text rather than an error. The
// In-with-scalar case degrades to an equality comparison.
//
// Field and table names are interpolated verbatim with no escaping or
// validation. They must come from a trusted, non-user-controlled source;
// only values are escaped.
package querysql
