package types

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageParams holds normalized pagination input for list queries.
type PageParams struct {
	Page     int
	PageSize int
}

// Normalize clamps the parameters to page >= 1 and page_size in [1, MaxPageSize].
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p PageParams) Limit() uint64 {
	return uint64(p.PageSize)
}

func (p PageParams) Offset() uint64 {
	return uint64((p.Page - 1) * p.PageSize)
}

// Pagination is the metadata block returned next to every list payload.
type Pagination struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalItems uint64 `json:"total_items"`
	TotalPages int    `json:"total_pages"`
}

func NewPagination(params PageParams, totalItems uint64) Pagination {
	totalPages := int((totalItems + uint64(params.PageSize) - 1) / uint64(params.PageSize))
	return Pagination{
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
