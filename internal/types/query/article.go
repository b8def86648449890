package query

import (
	"strings"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/DjordjeVuckovic/news-press/pkg/pagination"
)

// ArticleQuery is a catalog listing request.
type ArticleQuery struct {
	Filter     ArticleFilter
	SortField  SortField
	SortOrder  SortOrder
	Pagination pagination.OffsetRequest
}

// Normalize applies defaults: drafts are hidden unless Published is set,
// tags are normalized and the sort falls back to createdAt desc.
func (q *ArticleQuery) Normalize() error {
	field, err := q.SortField.Parse()
	if err != nil {
		return err
	}
	order, err := q.SortOrder.Parse()
	if err != nil {
		return err
	}
	q.SortField, q.SortOrder = field, order

	if q.Filter.Published == nil {
		q.Filter.Published = Bool(true)
	}
	q.Filter.Search = strings.TrimSpace(q.Filter.Search)
	q.Filter.Author = strings.TrimSpace(q.Filter.Author)
	if len(q.Filter.Tags) > 0 {
		q.Filter.Tags = domain.NormalizeFilterTags(q.Filter.Tags)
	}

	q.Pagination.Normalize()
	return nil
}

func (q *ArticleQuery) Sort() Sort {
	return SortBy(q.SortField, q.SortOrder)
}
