package dto

// Pagination is the envelope shared by every paginated response. Field
// names are camelCase because the frontend contract fixes them.
type Pagination struct {
	Page        int   `json:"page"`
	TotalPages  int   `json:"totalPages"`
	Total       int64 `json:"total"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination derives the pagination envelope from a 1-based page number,
// the fixed page size and the total matching count.
func NewPagination(page, pageSize int, total int64) Pagination {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return Pagination{
		Page:        page,
		TotalPages:  totalPages,
		Total:       total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
