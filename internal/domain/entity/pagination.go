package entity

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest is a normalized 1-based page window.
type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest clamps page to >= 1 and pageSize to 1..MaxPageSize, defaulting to DefaultPageSize.
func NewPageRequest(page, pageSize int) PageRequest {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return PageRequest{Page: page, PageSize: pageSize}
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p PageRequest) Limit() int {
	return p.PageSize
}

// Page is one window of a listing plus the total row count.
type Page[T any] struct {
	Items    []T
	Total    int64
	Page     int
	PageSize int
}

// NewPage builds a page for the request window.
func NewPage[T any](items []T, total int64, req PageRequest) *Page[T] {
	if items == nil {
		items = []T{}
	}

	return &Page[T]{Items: items, Total: total, Page: req.Page, PageSize: req.PageSize}
}

func (p *Page[T]) TotalPages() int {
	if p.PageSize <= 0 || p.Total == 0 {
		return 0
	}

	return int((p.Total + int64(p.PageSize) - 1) / int64(p.PageSize))
}
