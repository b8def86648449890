package pagination

// OffsetResult represents a page of items together with the page arithmetic
type OffsetResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewOffsetResult creates a new offset-based result
// totalPages is ceil(total/limit); a nil items slice is returned as empty
func NewOffsetResult[T any](items []T, total int64, page int, limit int) *OffsetResult[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return &OffsetResult[T]{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
