// league/service/paginate.go
package service

// Pagination defaults. Pages are 1-indexed.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is one page of a listing plus the paging metadata the API returns.
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Paginate slices items down to the requested page. Out-of-range page and
// limit values fall back to the defaults; a page beyond the end yields an
// empty (not nil) item slice.
func Paginate[T any](items []T, page, limit int) Page[T] {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items: out,
		Page:  page,
		Limit: limit,
		Total: len(items),
	}
}
