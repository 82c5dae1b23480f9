package query

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns the direction name for diagnostics.
func (d Direction) String() string {
	if d == Descending {
		return "Descending"
	}
	return "Ascending"
}

// SortOrder specifies a sort field and direction. The order of SortOrder
// entries in a FilterCriteria is significant: the first entry is the
// primary sort key.
type SortOrder struct {
	Field     string
	Direction Direction
}

// NewSortOrder creates a sort order.
func NewSortOrder(field string, direction Direction) SortOrder {
	return SortOrder{Field: field, Direction: direction}
}

// Asc creates an ascending sort order on field.
func Asc(field string) SortOrder {
	return NewSortOrder(field, Ascending)
}

// Desc creates a descending sort order on field.
func Desc(field string) SortOrder {
	return NewSortOrder(field, Descending)
}
