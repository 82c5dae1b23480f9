package query

// FilterCriteria aggregates conditions, sort orders, and pagination bounds
// for a query operation.
//
// Conditions are combined with AND in the order they were added. Sort order
// precedence follows insertion order. Limit and Offset are optional; nil
// means "not set".
//
// Build criteria with the With* methods; each returns an updated copy, so a
// criteria already handed to a backend is never mutated by further building:
//
//	c := query.NewCriteria().
//	    WithCondition(query.Eq("provider", query.String("openai"))).
//	    WithCondition(query.Gt("price", query.Integer(10))).
//	    WithSort(query.Desc("created_at")).
//	    WithLimit(10)
type FilterCriteria struct {
	Conditions []Condition
	Sort       []SortOrder
	Limit      *int64
	Offset     *int64
}

// NewCriteria returns an empty filter criteria.
func NewCriteria() FilterCriteria {
	return FilterCriteria{}
}

// WithCondition returns a copy of the criteria with the condition appended.
func (c FilterCriteria) WithCondition(cond Condition) FilterCriteria {
	// Full slice expression caps the copy so appends from two branches of
	// the same base criteria cannot overwrite each other's backing array.
	c.Conditions = append(c.Conditions[:len(c.Conditions):len(c.Conditions)], cond)
	return c
}

// WithSort returns a copy of the criteria with the sort order appended.
func (c FilterCriteria) WithSort(sort SortOrder) FilterCriteria {
	c.Sort = append(c.Sort[:len(c.Sort):len(c.Sort)], sort)
	return c
}

// WithLimit returns a copy of the criteria with the limit set.
func (c FilterCriteria) WithLimit(limit int64) FilterCriteria {
	c.Limit = &limit
	return c
}

// WithOffset returns a copy of the criteria with the offset set.
func (c FilterCriteria) WithOffset(offset int64) FilterCriteria {
	c.Offset = &offset
	return c
}
