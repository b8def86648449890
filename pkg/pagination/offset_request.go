package pagination

import "math"

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page  int `json:"page" query:"page" validate:"omitempty,min=1"`
	Limit int `json:"limit" query:"limit" validate:"omitempty,min=1"`
}

// Normalize clamps page and limit into their valid ranges
func (r *OffsetRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	r.Limit = ClampLimit(r.Limit)
}

// Offset is the number of items skipped before this page. Pages too far out
// to address saturate at math.MaxInt instead of wrapping negative.
func (r OffsetRequest) Offset() int {
	if r.Page <= 1 || r.Limit <= 0 {
		return 0
	}
	if r.Page-1 > math.MaxInt/r.Limit {
		return math.MaxInt
	}
	return (r.Page - 1) * r.Limit
}

func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
