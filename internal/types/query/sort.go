package query

import "fmt"

type SortField string

const (
	SortCreatedAt   SortField = "createdAt"
	SortUpdatedAt   SortField = "updatedAt"
	SortViews       SortField = "views"
	SortLikes       SortField = "likes"
	SortPublishedAt SortField = "publishedAt"
)

var DefaultSortField = SortCreatedAt

var SupportedSortFields = map[SortField]bool{
	SortCreatedAt:   true,
	SortUpdatedAt:   true,
	SortViews:       true,
	SortLikes:       true,
	SortPublishedAt: true,
}

func (f SortField) Parse() (SortField, error) {
	if f == "" {
		return DefaultSortField, nil
	}
	if _, ok := SupportedSortFields[f]; !ok {
		return "", fmt.Errorf("unsupported sort field: %s", f)
	}
	return f, nil
}

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

var DefaultSortOrder = Desc

func (o SortOrder) Parse() (SortOrder, error) {
	switch o {
	case "":
		return DefaultSortOrder, nil
	case Asc, Desc:
		return o, nil
	default:
		return "", fmt.Errorf("unsupported sort order: %s", o)
	}
}

type SortKey struct {
	Field SortField
	Order SortOrder
}

// Sort is an ordered tie-break chain; earlier keys take precedence.
type Sort []SortKey

func SortBy(field SortField, order SortOrder) Sort {
	return Sort{{Field: field, Order: order}}
}

var (
	DefaultSort = SortBy(SortCreatedAt, Desc)

	TrendingSort = Sort{
		{Field: SortViews, Order: Desc},
		{Field: SortLikes, Order: Desc},
		{Field: SortCreatedAt, Order: Desc},
	}
)
