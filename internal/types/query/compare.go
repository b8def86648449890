package query

import (
	"bytes"
	"time"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
)

// Compare orders two articles by the sort chain, falling back to id so that
// equal keys still produce a stable, deterministic order.
func (s Sort) Compare(a, b *domain.Article) int {
	for _, k := range s {
		c := compareField(k.Field, a, b)
		if k.Order == Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}

func compareField(f SortField, a, b *domain.Article) int {
	switch f {
	case SortViews:
		return compareInt(a.ViewCount, b.ViewCount)
	case SortLikes:
		return compareInt(a.LikeCount, b.LikeCount)
	case SortUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case SortPublishedAt:
		return comparePublished(a.PublishedAt, b.PublishedAt)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// unpublished articles sort before any publish time, like NULLS FIRST in ascending order
func comparePublished(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}
