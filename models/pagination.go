package models

// Meta describes one page of a paginated list result.
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Pagination is the generic list envelope of the content API.
//
// Example: Pagination[Post]
type Pagination[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// EmptyPage is the safe zero result degrading reads fall back to. Page is
// reported as 1 and limit as the requested (or default) page size.
func EmptyPage[T any](limit int) Pagination[T] {
	return Pagination[T]{
		Data: []T{},
		Meta: Meta{Total: 0, Page: 1, Limit: limit, TotalPages: 0},
	}
}
