package pg

import (
	"context"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/jackc/pgx/v5"
)

func scanTagStat(row pgx.CollectableRow) (domain.TagStat, error) {
	var ts domain.TagStat
	err := row.Scan(&ts.Tag, &ts.Count, &ts.Views, &ts.Likes)
	return ts, err
}

func (s *Store) IncrementTagCounts(ctx context.Context, tags []string) error {
	if len(tags) == 0 {
		return nil
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO tag_stats (tag, count)
		SELECT DISTINCT t, 1 FROM unnest($1::text[]) AS t
		ON CONFLICT (tag) DO UPDATE SET count = tag_stats.count + 1`,
		tags,
	)
	return mapError("increment tag counts", err)
}

func (s *Store) AddTagEngagement(ctx context.Context, tags []string, views, likes int64) error {
	if len(tags) == 0 {
		return nil
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO tag_stats (tag, views, likes)
		SELECT DISTINCT t, $2::bigint, $3::bigint FROM unnest($1::text[]) AS t
		ON CONFLICT (tag) DO UPDATE SET
			views = tag_stats.views + EXCLUDED.views,
			likes = tag_stats.likes + EXCLUDED.likes`,
		tags, views, likes,
	)
	return mapError("add tag engagement", err)
}

func (s *Store) PopularTags(ctx context.Context, limit int) ([]domain.TagStat, error) {
	rows, err := s.db.Query(ctx, `
		SELECT tag, count, views, likes FROM tag_stats
		ORDER BY count DESC, views DESC, tag ASC
		LIMIT $1`,
		limitArg(limit),
	)
	if err != nil {
		return nil, mapError("query tag stats", err)
	}
	stats, err := pgx.CollectRows(rows, scanTagStat)
	if err != nil {
		return nil, mapError("scan tag stats", err)
	}
	return stats, nil
}
