package query

import "fmt"

// Value represents a condition value in a filter.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in backends.
//
// Value types:
//   - String: text
//   - Integer: 64-bit signed integer
//   - Float: 64-bit floating point
//   - Boolean: true/false
//   - Null: absence of a value
//   - List: ordered sequence of Values (used with Operator In)
//
// Values are immutable. Construction never fails; pairing a List with a
// scalar operator is not rejected here - the backend renders it best-effort.
type Value interface {
	conditionValue() // Marker method - seals interface to this package
}

// String is a text condition value.
type String string

// Integer is a 64-bit signed integer condition value.
type Integer int64

// Float is a 64-bit floating point condition value.
type Float float64

// Boolean is a true/false condition value.
type Boolean bool

// Null is the absence of a value. Used with IsNull/IsNotNull, where the
// value is ignored anyway, or to compare against SQL NULL.
type Null struct{}

// List is an ordered sequence of condition values. Lists may nest, but
// backends only recurse one level in practice (IN clause membership).
type List []Value

func (String) conditionValue()  {}
func (Integer) conditionValue() {}
func (Float) conditionValue()   {}
func (Boolean) conditionValue() {}
func (Null) conditionValue()    {}
func (List) conditionValue()    {}

// ValueOf converts a native Go value to a Value.
//
// Supported types: string, bool, int, int32, int64, float64, nil, Value
// (returned unchanged), []Value, and []any (converted element-wise).
// Everything else is an error. Smaller integer widths are widened to 64 bits.
func ValueOf(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case string:
		return String(val), nil
	case bool:
		return Boolean(val), nil
	case int:
		return Integer(val), nil
	case int32:
		return Integer(val), nil
	case int64:
		return Integer(val), nil
	case float64:
		return Float(val), nil
	case []Value:
		return List(val), nil
	case []any:
		list := make(List, 0, len(val))
		for _, elem := range val {
			converted, err := ValueOf(elem)
			if err != nil {
				return nil, err
			}
			list = append(list, converted)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unsupported condition value type: %T", v)
	}
}
