package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_OffsetLimit(t *testing.T) {
	testCases := []struct {
		name       string
		page       int64
		perPage    int64
		wantOffset int64
		wantLimit  int64
	}{
		{"first page", 1, 20, 0, 20},
		{"second page", 2, 20, 20, 20},
		{"third page small", 3, 7, 14, 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.perPage)
			assert.Equal(t, tc.wantOffset, p.Offset())
			assert.Equal(t, tc.wantLimit, p.Limit())
		})
	}
}

func TestDefaultPagination(t *testing.T) {
	p := DefaultPagination()
	assert.Equal(t, int64(1), p.Page)
	assert.Equal(t, int64(20), p.PerPage)
}

func TestPage_TotalPages(t *testing.T) {
	testCases := []struct {
		name       string
		totalItems int64
		perPage    int64
		want       int64
	}{
		{"partial last page", 21, 10, 3},
		{"exact fit", 20, 10, 2},
		{"empty", 0, 10, 0},
		{"single item", 1, 10, 1},
		{"per page of one", 5, 1, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page := NewPage([]string{}, 1, tc.perPage, tc.totalItems)
			assert.Equal(t, tc.want, page.TotalPages)
		})
	}
}

func TestPage_Navigation(t *testing.T) {
	// Only page of one: neither direction.
	only := NewPage([]int{1}, 1, 10, 1)
	assert.False(t, only.HasNext())
	assert.False(t, only.HasPrevious())
	_, ok := only.NextPage()
	assert.False(t, ok)
	_, ok = only.PreviousPage()
	assert.False(t, ok)

	// First of three: next but not previous.
	first := NewPage([]int{1, 2}, 1, 10, 21)
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrevious())
	next, ok := first.NextPage()
	assert.True(t, ok)
	assert.Equal(t, int64(2), next)

	// Middle page: both directions.
	middle := NewPage([]int{1, 2}, 2, 10, 21)
	assert.True(t, middle.HasNext())
	assert.True(t, middle.HasPrevious())
	prev, ok := middle.PreviousPage()
	assert.True(t, ok)
	assert.Equal(t, int64(1), prev)

	// Last page: previous only.
	last := NewPage([]int{1}, 3, 10, 21)
	assert.False(t, last.HasNext())
	assert.True(t, last.HasPrevious())
}
