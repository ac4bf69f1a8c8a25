package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	DefaultPage     = 1
	DefaultPageSize = 10

	// DefaultSortField orders listings newest first when no explicit sort
	// key is requested.
	DefaultSortField = "createdAt"
)

// PropertyFilter captures the optional predicates of a property search plus
// its pagination cursor. Nil/empty fields contribute no filter clause:
// callers passing blank strings get the same result as callers omitting the
// field entirely.
type PropertyFilter struct {
	Name           string
	Address        string
	MinPrice       *primitive.Decimal128
	MaxPrice       *primitive.Decimal128
	Enabled        *bool
	IDOwner        string
	CodeInternal   string
	Year           *int
	SortBy         string
	SortDescending bool
	Page           int
	PageSize       int
}

var sortableFields = map[string]struct{}{
	"name":         {},
	"address":      {},
	"price":        {},
	"year":         {},
	"codeInternal": {},
	"createdAt":    {},
	"updatedAt":    {},
}

// Normalize applies pagination defaults and discards unknown sort keys so
// they fall back to the default sort instead of failing the query.
func (f *PropertyFilter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if _, ok := sortableFields[f.SortBy]; !ok {
		f.SortBy = ""
	}
}

// Skip returns the number of documents to skip for the requested page.
func (f *PropertyFilter) Skip() int64 {
	return int64(f.Page-1) * int64(f.PageSize)
}
