package querysql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/wyvern/query"
)

// BuildSelectArgs compiles criteria into a SELECT statement with ?
// placeholders and returns the flat argument slice alongside it.
//
// Clause order matches BuildSelect. Limit and offset are inlined as
// integers, not bound: they come from the criteria, never from stored data.
func BuildSelectArgs(table string, c query.FilterCriteria) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(table)

	where, args := buildWhereArgs(c)
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}

	if len(c.Sort) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(buildOrderBy(c.Sort))
	}

	if c.Limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.FormatInt(*c.Limit, 10))
	}

	if c.Offset != nil {
		sb.WriteString(" OFFSET ")
		sb.WriteString(strconv.FormatInt(*c.Offset, 10))
	}

	return sb.String(), args
}

// BuildCountArgs compiles criteria into a COUNT statement with ?
// placeholders. Sort, limit, and offset are ignored as in BuildCount.
func BuildCountArgs(table string, c query.FilterCriteria) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*) FROM ")
	sb.WriteString(table)

	where, args := buildWhereArgs(c)
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}

	return sb.String(), args
}

// buildWhereArgs renders all conditions joined with AND, collecting bind
// arguments in clause order.
func buildWhereArgs(c query.FilterCriteria) (string, []any) {
	if len(c.Conditions) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(c.Conditions))
	var args []any
	for _, cond := range c.Conditions {
		clause, condArgs := conditionSQLArgs(cond)
		clauses = append(clauses, clause)
		args = append(args, condArgs...)
	}
	return strings.Join(clauses, " AND "), args
}

// conditionSQLArgs renders a single condition with placeholders.
func conditionSQLArgs(cond query.Condition) (string, []any) {
	switch cond.Operator {
	case query.Equal:
		return comparisonArgs(cond.Field, "=", cond.Value)
	case query.NotEqual:
		return comparisonArgs(cond.Field, "!=", cond.Value)
	case query.GreaterThan:
		return comparisonArgs(cond.Field, ">", cond.Value)
	case query.GreaterThanOrEqual:
		return comparisonArgs(cond.Field, ">=", cond.Value)
	case query.LessThan:
		return comparisonArgs(cond.Field, "<", cond.Value)
	case query.LessThanOrEqual:
		return comparisonArgs(cond.Field, "<=", cond.Value)
	case query.Like:
		return comparisonArgs(cond.Field, "ILIKE", cond.Value)
	case query.IsNull:
		return fmt.Sprintf("%s IS NULL", cond.Field), nil
	case query.IsNotNull:
		return fmt.Sprintf("%s IS NOT NULL", cond.Field), nil
	case query.In:
		if list, ok := cond.Value.(query.List); ok {
			placeholders := make([]string, 0, len(list))
			args := make([]any, 0, len(list))
			for _, v := range list {
				placeholders = append(placeholders, "?")
				args = append(args, bindArg(v))
			}
			clause := fmt.Sprintf("%s IN (%s)", cond.Field, strings.Join(placeholders, ", "))
			return clause, args
		}
		return comparisonArgs(cond.Field, "=", cond.Value)
	default:
		return comparisonArgs(cond.Field, "=", cond.Value)
	}
}

// comparisonArgs renders "field op ?" with the value as a bind argument.
// Null still binds (as nil); callers comparing against NULL should prefer
// IsNull/IsNotNull, which a relational engine answers correctly.
func comparisonArgs(field, op string, v query.Value) (string, []any) {
	return fmt.Sprintf("%s %s ?", field, op), []any{bindArg(v)}
}

// bindArg converts a Value to a driver-friendly Go native.
func bindArg(v query.Value) any {
	switch val := v.(type) {
	case query.String:
		return string(val)
	case query.Integer:
		return int64(val)
	case query.Float:
		return float64(val)
	case query.Boolean:
		return bool(val)
	case query.Null:
		return nil
	case query.List:
		// A bare List under a scalar comparison has no single binding;
		// fall back to its literal rendering, mirroring literal mode.
		return FormatValue(val)
	default:
		return nil
	}
}
