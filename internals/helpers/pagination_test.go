package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPagingOutOfRangePage(t *testing.T) {
	p := Paging{Page: 9, PerPage: 3, Offset: 24, Limit: 3}

	// 7 rows over 3 per page is 3 pages; page 9 lands on the last one
	got := ClampPaging(p, 7)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 6, got.Offset)

	// in-range pages pass through untouched
	p = Paging{Page: 2, PerPage: 3, Offset: 3, Limit: 3}
	assert.Equal(t, p, ClampPaging(p, 7))
}

func TestClampPagingEmptyTable(t *testing.T) {
	p := Paging{Page: 5, PerPage: 10, Offset: 40, Limit: 10}
	got := ClampPaging(p, 0)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 0, got.Offset)
}

func TestBuildPaginationFromPage(t *testing.T) {
	pg := BuildPaginationFromPage(7, 2, 3)
	assert.Equal(t, int64(7), pg.Total)
	assert.Equal(t, 2, pg.Page)
	assert.Equal(t, 3, pg.PerPage)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	first := BuildPaginationFromPage(7, 1, 3)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	last := BuildPaginationFromPage(7, 3, 3)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)
}
