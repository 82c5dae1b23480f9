package query

// Operator is a comparison operator for filter conditions.
//
// The set is closed: backends type-switch exhaustively over it. IsNull and
// IsNotNull ignore the paired value. In expects a List value and falls back
// to equality semantics when given a scalar (see querysql).
type Operator int

const (
	Equal Operator = iota
	NotEqual
	GreaterThan
	GreaterThanOrEqual
	LessThan
	LessThanOrEqual
	Like
	In
	IsNull
	IsNotNull
)

// String returns the operator name for diagnostics.
func (op Operator) String() string {
	switch op {
	case Equal:
		return "Equal"
	case NotEqual:
		return "NotEqual"
	case GreaterThan:
		return "GreaterThan"
	case GreaterThanOrEqual:
		return "GreaterThanOrEqual"
	case LessThan:
		return "LessThan"
	case LessThanOrEqual:
		return "LessThanOrEqual"
	case Like:
		return "Like"
	case In:
		return "In"
	case IsNull:
		return "IsNull"
	case IsNotNull:
		return "IsNotNull"
	default:
		return "Unknown"
	}
}

// Condition is a single field/operator/value filter condition.
//
// Field is interpolated verbatim into generated queries - it must come from
// a trusted source, never from user input.
type Condition struct {
	Field    string
	Operator Operator
	Value    Value
}

// NewCondition creates a condition from its three parts.
func NewCondition(field string, op Operator, value Value) Condition {
	return Condition{Field: field, Operator: op, Value: value}
}

// Eq creates a field = value condition.
func Eq(field string, value Value) Condition {
	return NewCondition(field, Equal, value)
}

// Ne creates a field != value condition.
func Ne(field string, value Value) Condition {
	return NewCondition(field, NotEqual, value)
}

// Gt creates a field > value condition.
func Gt(field string, value Value) Condition {
	return NewCondition(field, GreaterThan, value)
}

// Gte creates a field >= value condition.
func Gte(field string, value Value) Condition {
	return NewCondition(field, GreaterThanOrEqual, value)
}

// Lt creates a field < value condition.
func Lt(field string, value Value) Condition {
	return NewCondition(field, LessThan, value)
}

// Lte creates a field <= value condition.
func Lte(field string, value Value) Condition {
	return NewCondition(field, LessThanOrEqual, value)
}

// Match creates a case-insensitive pattern match condition (rendered as
// ILIKE by the SQL backend).
func Match(field string, pattern string) Condition {
	return NewCondition(field, Like, String(pattern))
}

// InList creates a field IN (values...) condition.
func InList(field string, values ...Value) Condition {
	return NewCondition(field, In, List(values))
}

// Missing creates a field IS NULL condition.
func Missing(field string) Condition {
	return NewCondition(field, IsNull, Null{})
}

// Present creates a field IS NOT NULL condition.
func Present(field string) Condition {
	return NewCondition(field, IsNotNull, Null{})
}
