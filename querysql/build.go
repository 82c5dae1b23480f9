package querysql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/wyvern/query"
)

// BuildSelect compiles criteria into a SELECT statement with inlined
// literal values.
//
// Clause order is fixed regardless of construction order:
//
//	SELECT * FROM <table> [WHERE ...] [ORDER BY ...] [LIMIT n] [OFFSET n]
func BuildSelect(table string, c query.FilterCriteria) string {
	var sb strings.Builder
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(table)

	if where := buildWhere(c); where != "" {
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

	return sb.String()
}

// BuildCount compiles criteria into a COUNT statement with inlined literal
// values. Sort, limit, and offset are ignored: counting is order- and
// pagination-independent, so those clauses are never emitted.
func BuildCount(table string, c query.FilterCriteria) string {
	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*) FROM ")
	sb.WriteString(table)

	if where := buildWhere(c); where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}

	return sb.String()
}

// buildWhere renders all conditions joined with AND. Returns "" when there
// are no conditions. Top-level conditions are AND-only: no OR, no grouping,
// no per-condition negation beyond NotEqual.
func buildWhere(c query.FilterCriteria) string {
	if len(c.Conditions) == 0 {
		return ""
	}

	clauses := make([]string, 0, len(c.Conditions))
	for _, cond := range c.Conditions {
		clauses = append(clauses, conditionSQL(cond))
	}
	return strings.Join(clauses, " AND ")
}

// conditionSQL renders a single condition as a clause fragment.
func conditionSQL(cond query.Condition) string {
	switch cond.Operator {
	case query.Equal:
		return fmt.Sprintf("%s = %s", cond.Field, FormatValue(cond.Value))
	case query.NotEqual:
		return fmt.Sprintf("%s != %s", cond.Field, FormatValue(cond.Value))
	case query.GreaterThan:
		return fmt.Sprintf("%s > %s", cond.Field, FormatValue(cond.Value))
	case query.GreaterThanOrEqual:
		return fmt.Sprintf("%s >= %s", cond.Field, FormatValue(cond.Value))
	case query.LessThan:
		return fmt.Sprintf("%s < %s", cond.Field, FormatValue(cond.Value))
	case query.LessThanOrEqual:
		return fmt.Sprintf("%s <= %s", cond.Field, FormatValue(cond.Value))
	case query.Like:
		// Case-insensitive match is baked into the operator.
		return fmt.Sprintf("%s ILIKE %s", cond.Field, FormatValue(cond.Value))
	case query.IsNull:
		return fmt.Sprintf("%s IS NULL", cond.Field)
	case query.IsNotNull:
		return fmt.Sprintf("%s IS NOT NULL", cond.Field)
	case query.In:
		if list, ok := cond.Value.(query.List); ok {
			elems := make([]string, 0, len(list))
			for _, v := range list {
				elems = append(elems, FormatValue(v))
			}
			return fmt.Sprintf("%s IN (%s)", cond.Field, strings.Join(elems, ", "))
		}
		// Scalar under In degrades to equality rather than failing.
		return fmt.Sprintf("%s = %s", cond.Field, FormatValue(cond.Value))
	default:
		// Unknown operator: degrade to equality, the least surprising form.
		return fmt.Sprintf("%s = %s", cond.Field, FormatValue(cond.Value))
	}
}

// buildOrderBy renders sort orders as "field ASC|DESC" joined by ", ".
func buildOrderBy(sort []query.SortOrder) string {
	clauses := make([]string, 0, len(sort))
	for _, s := range sort {
		direction := "ASC"
		if s.Direction == query.Descending {
			direction = "DESC"
		}
		clauses = append(clauses, fmt.Sprintf("%s %s", s.Field, direction))
	}
	return strings.Join(clauses, ", ")
}

// FormatValue renders a value as a SQL literal.
//
// Strings are single-quoted with every embedded single quote doubled; no
// other character is altered. Booleans render as TRUE/FALSE, Null as NULL,
// numerics in plain decimal. Lists render as a parenthesized ", "-joined
// element list (the IN right-hand side); a List under a non-In operator
// still renders this way rather than erroring.
func FormatValue(v query.Value) string {
	switch val := v.(type) {
	case query.String:
		return "'" + strings.ReplaceAll(string(val), "'", "''") + "'"
	case query.Integer:
		return strconv.FormatInt(int64(val), 10)
	case query.Float:
		return strconv.FormatFloat(float64(val), 'f', -1, 64)
	case query.Boolean:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case query.Null:
		return "NULL"
	case query.List:
		elems := make([]string, 0, len(val))
		for _, elem := range val {
			elems = append(elems, FormatValue(elem))
		}
		return "(" + strings.Join(elems, ", ") + ")"
	default:
		// Unreachable for the sealed union; keep the engine total anyway.
		return "NULL"
	}
}
