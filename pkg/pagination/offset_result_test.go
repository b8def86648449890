package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOffsetResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page, limit    int
		wantTotalPages int
		wantNext       bool
		wantPrev       bool
	}{
		{name: "empty", total: 0, page: 1, limit: 10, wantTotalPages: 0},
		{name: "single partial page", total: 3, page: 1, limit: 10, wantTotalPages: 1},
		{name: "exact multiple", total: 20, page: 1, limit: 10, wantTotalPages: 2, wantNext: true},
		{name: "middle page", total: 25, page: 2, limit: 10, wantTotalPages: 3, wantNext: true, wantPrev: true},
		{name: "last page", total: 25, page: 3, limit: 10, wantTotalPages: 3, wantPrev: true},
		{name: "beyond last page", total: 25, page: 5, limit: 10, wantTotalPages: 3, wantPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewOffsetResult([]int{}, tt.total, tt.page, tt.limit)

			assert.Equal(t, tt.wantTotalPages, r.TotalPages)
			assert.Equal(t, tt.wantNext, r.HasNext)
			assert.Equal(t, tt.wantPrev, r.HasPrev)
		})
	}
}

func TestNewOffsetResult_PaginationInvariants(t *testing.T) {
	for total := int64(0); total <= 50; total++ {
		for limit := 1; limit <= 12; limit++ {
			pages := int((total + int64(limit) - 1) / int64(limit))
			for page := 1; page <= pages+1; page++ {
				r := NewOffsetResult[int](nil, total, page, limit)

				assert.Equal(t, pages, r.TotalPages)
				assert.Equal(t, page < pages, r.HasNext)
				assert.Equal(t, page > 1, r.HasPrev)
			}
		}
	}
}

func TestNewOffsetResult_NilItemsBecomeEmpty(t *testing.T) {
	r := NewOffsetResult[string](nil, 0, 1, 10)

	assert.NotNil(t, r.Items)
	assert.Empty(t, r.Items)
}

func TestOffsetRequest_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		in         OffsetRequest
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", in: OffsetRequest{}, wantPage: 1, wantLimit: DefaultLimit, wantOffset: 0},
		{name: "clamps limit", in: OffsetRequest{Page: 2, Limit: 1000}, wantPage: 2, wantLimit: MaxLimit, wantOffset: MaxLimit},
		{name: "third page", in: OffsetRequest{Page: 3, Limit: 10}, wantPage: 3, wantLimit: 10, wantOffset: 20},
		{name: "negative page", in: OffsetRequest{Page: -4, Limit: 5}, wantPage: 1, wantLimit: 5, wantOffset: 0},
		{name: "page past addressable range", in: OffsetRequest{Page: math.MaxInt, Limit: 100}, wantPage: math.MaxInt, wantLimit: 100, wantOffset: math.MaxInt},
		{name: "largest page that still fits", in: OffsetRequest{Page: math.MaxInt/100 + 1, Limit: 100}, wantPage: math.MaxInt/100 + 1, wantLimit: 100, wantOffset: (math.MaxInt / 100) * 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.in
			r.Normalize()

			assert.Equal(t, tt.wantPage, r.Page)
			assert.Equal(t, tt.wantLimit, r.Limit)
			assert.Equal(t, tt.wantOffset, r.Offset())
		})
	}
}
