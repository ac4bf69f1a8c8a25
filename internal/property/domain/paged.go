package domain

// PagedResult is one page of items plus paging metadata derived from the
// total filtered count.
type PagedResult[T any] struct {
	Items       []T   `json:"items"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
}

// NewPagedResult computes paging metadata for a page of items. A page number
// beyond the last page is legitimate and simply carries no items; it is never
// validated against TotalPages.
func NewPagedResult[T any](items []T, totalCount int64, page, pageSize int) *PagedResult[T] {
	if items == nil {
		items = make([]T, 0)
	}

	totalPages := 0
	if totalCount > 0 {
		totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}

	return &PagedResult[T]{
		Items:       items,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}
