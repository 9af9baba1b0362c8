package dto

// Pagination is the envelope attached to every list response.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	Next       bool  `json:"next"`
	Prev       bool  `json:"prev"`
}

func NewPagination(page, limit int, total int64) Pagination {
	if limit < 1 {
		limit = 1
	}
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Next:       page < totalPages,
		Prev:       page > 1,
	}
}

// ListResponse wraps one page of records with its pagination envelope.
type ListResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func NewListResponse[T any](data []T, page, limit int, total int64) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{
		Data:       data,
		Pagination: NewPagination(page, limit, total),
	}
}
