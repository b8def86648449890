package storage

import (
	"context"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/google/uuid"
)

// Indexer mirrors published articles into a search index. It is a sink:
// nothing in the service reads from it.
type Indexer interface {
	Index(ctx context.Context, article domain.Article) error
	IndexBulk(ctx context.Context, articles []domain.Article) error
	Remove(ctx context.Context, id uuid.UUID) error
}
