// Command reindex rebuilds the search index from the record store by bulk
// indexing every published article.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/news-press/internal/storage"
	"github.com/DjordjeVuckovic/news-press/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-press/internal/types/query"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := factory.NewBackend(ctx, &cfg.StorageConfig)
	if err != nil {
		slog.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	indexer, err := factory.NewIndexer(ctx, &cfg.StorageConfig)
	if err != nil {
		slog.Error("failed to create indexer", "error", err)
		os.Exit(1)
	}

	total, err := reindex(ctx, backend.Store, indexer, cfg.BatchSize)
	if err != nil {
		slog.Error("reindex failed", "indexed", total, "error", err)
		os.Exit(1)
	}
	slog.Info("reindex finished", "indexed", total)
}

// reindex walks published articles oldest first so that articles published
// while it runs land on later pages rather than shifting earlier ones.
func reindex(ctx context.Context, store storage.ArticleStore, indexer storage.Indexer, batchSize int) (int, error) {
	filter := query.ArticleFilter{Published: query.Bool(true)}
	sort := query.SortBy(query.SortCreatedAt, query.Asc)

	indexed := 0
	for offset := 0; ; offset += batchSize {
		articles, _, err := store.ListArticles(ctx, filter, sort, offset, batchSize)
		if err != nil {
			return indexed, err
		}
		if len(articles) == 0 {
			return indexed, nil
		}
		if err := indexer.IndexBulk(ctx, articles); err != nil {
			return indexed, err
		}
		indexed += len(articles)
		slog.Info("batch indexed", "offset", offset, "size", len(articles))
	}
}
