package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyFilter_NormalizeDefaults(t *testing.T) {
	f := PropertyFilter{}
	f.Normalize()

	assert.Equal(t, DefaultPage, f.Page)
	assert.Equal(t, DefaultPageSize, f.PageSize)
	assert.Equal(t, "", f.SortBy)
}

func TestPropertyFilter_NormalizeKeepsValidValues(t *testing.T) {
	f := PropertyFilter{Page: 3, PageSize: 25, SortBy: "price", SortDescending: true}
	f.Normalize()

	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 25, f.PageSize)
	assert.Equal(t, "price", f.SortBy)
	assert.True(t, f.SortDescending)
}

func TestPropertyFilter_NormalizeDropsUnknownSortKey(t *testing.T) {
	f := PropertyFilter{SortBy: "no_such_field"}
	f.Normalize()

	assert.Equal(t, "", f.SortBy)
}

func TestPropertyFilter_NormalizeNegativePagination(t *testing.T) {
	f := PropertyFilter{Page: -1, PageSize: 0}
	f.Normalize()

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.PageSize)
}

func TestPropertyFilter_Skip(t *testing.T) {
	f := PropertyFilter{Page: 3, PageSize: 10}
	assert.Equal(t, int64(20), f.Skip())

	f = PropertyFilter{Page: 1, PageSize: 50}
	assert.Equal(t, int64(0), f.Skip())
}
