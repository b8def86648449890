package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/news-press/internal/storage"
	"github.com/DjordjeVuckovic/news-press/internal/storage/es"
	"github.com/DjordjeVuckovic/news-press/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/news-press/internal/storage/pg"
	"github.com/DjordjeVuckovic/news-press/pkg/server"
)

// Backend is an opened record store together with its health check.
type Backend struct {
	Store  storage.Store
	Health server.HealthChecker
	close  func()
}

func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// NewBackend opens the record store selected by cfg.Type
func NewBackend(ctx context.Context, cfg *StorageConfig) (*Backend, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return &Backend{
			Store:  pg.NewStore(pool),
			Health: pg.NewHealthChecker(pool),
			close:  pool.Close,
		}, nil

	case storage.InMem:
		return &Backend{
			Store:  in_mem.NewInMemStorer(),
			Health: server.NewOkHealthChecker(),
		}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

// NewIndexer returns nil when no search index is configured.
func NewIndexer(ctx context.Context, cfg *StorageConfig) (storage.Indexer, error) {
	if cfg.Es == nil {
		return nil, nil
	}
	indexer, err := es.NewIndexer(ctx, *cfg.Es)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch indexer: %w", err)
	}
	return indexer, nil
}
