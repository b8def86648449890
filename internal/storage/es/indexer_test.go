package es

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
	pkgtesting "github.com/DjordjeVuckovic/news-press/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexer_IndexAndRemove(t *testing.T) {
	if testing.Short() {
		t.Skip("elasticsearch integration test")
	}
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	indexer, err := NewIndexer(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "articles_test",
	})
	require.NoError(t, err)
	assert.True(t, indexer.Healthy(ctx))

	// idempotent
	require.NoError(t, indexer.EnsureIndex(ctx))

	a := domain.Article{
		ID:        uuid.New(),
		Slug:      "indexed",
		Title:     "Indexed",
		Content:   "body",
		Author:    domain.Identity{ID: uuid.New(), DisplayName: "Ann"},
		Tags:      []string{"go"},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, indexer.Index(ctx, a))

	exists, err := indexer.client.Exists(indexer.indexName, a.ID.String()).Do(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, indexer.Remove(ctx, a.ID))
	require.NoError(t, indexer.Remove(ctx, a.ID))

	exists, err = indexer.client.Exists(indexer.indexName, a.ID.String()).Do(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	b := a
	b.ID = uuid.New()
	b.Slug = "bulk"
	require.NoError(t, indexer.IndexBulk(ctx, []domain.Article{a, b}))
}
