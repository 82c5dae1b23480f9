package query

// Pagination is a 1-based page request.
//
// No validation is performed: page >= 1 and perPage >= 1 are the caller's
// responsibility. A page below 1 yields a negative offset and the backend
// will surface whatever the storage engine does with it.
type Pagination struct {
	Page    int64
	PerPage int64
}

// NewPagination creates a pagination request.
func NewPagination(page, perPage int64) Pagination {
	return Pagination{Page: page, PerPage: perPage}
}

// DefaultPagination returns the first page with 20 items per page.
func DefaultPagination() Pagination {
	return Pagination{Page: 1, PerPage: 20}
}

// Offset returns the row offset for this page: (page-1) * perPage.
func (p Pagination) Offset() int64 {
	return (p.Page - 1) * p.PerPage
}

// Limit returns the row limit for this page: perPage.
func (p Pagination) Limit() int64 {
	return p.PerPage
}

// Page is one page of results plus navigation metadata.
type Page[T any] struct {
	Items      []T
	Page       int64
	PerPage    int64
	TotalItems int64
	TotalPages int64
}

// NewPage assembles a result page. TotalPages is computed by integer
// ceiling division: (totalItems + perPage - 1) / perPage.
func NewPage[T any](items []T, page, perPage, totalItems int64) *Page[T] {
	return &Page[T]{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: (totalItems + perPage - 1) / perPage,
	}
}

// HasNext reports whether a page after this one exists.
func (p *Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrevious reports whether a page before this one exists.
func (p *Page[T]) HasPrevious() bool {
	return p.Page > 1
}

// NextPage returns the next page number, or false when on the last page.
func (p *Page[T]) NextPage() (int64, bool) {
	if !p.HasNext() {
		return 0, false
	}
	return p.Page + 1, true
}

// PreviousPage returns the previous page number, or false when on the
// first page.
func (p *Page[T]) PreviousPage() (int64, bool) {
	if !p.HasPrevious() {
		return 0, false
	}
	return p.Page - 1, true
}
