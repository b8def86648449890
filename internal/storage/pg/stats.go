package pg

import (
	"context"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const byAuthor = "($1::uuid IS NULL OR author_id = $1::uuid)"

func (s *Store) ArticleCounts(ctx context.Context, authorID *uuid.UUID) (domain.ArticleCounts, error) {
	var c domain.ArticleCounts
	err := s.db.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE published),
		       count(*) FILTER (WHERE NOT published)
		FROM articles WHERE `+byAuthor,
		authorID,
	).Scan(&c.Total, &c.Published, &c.Drafts)
	if err != nil {
		return c, mapError("count articles", err)
	}
	return c, nil
}

func (s *Store) EngagementTotals(ctx context.Context, authorID *uuid.UUID) (domain.EngagementTotals, error) {
	var t domain.EngagementTotals
	err := s.db.QueryRow(ctx, `
		SELECT COALESCE(sum(view_count), 0)::bigint,
		       COALESCE(sum(like_count), 0)::bigint,
		       COALESCE(sum(comment_count), 0)::bigint
		FROM articles WHERE `+byAuthor,
		authorID,
	).Scan(&t.Views, &t.Likes, &t.Comments)
	if err != nil {
		return t, mapError("sum engagement", err)
	}
	return t, nil
}

func (s *Store) AverageReadTime(ctx context.Context, authorID *uuid.UUID) (float64, error) {
	var avg float64
	err := s.db.QueryRow(ctx, `
		SELECT COALESCE(round(avg(read_time)::numeric, 2), 0)::float8
		FROM articles WHERE `+byAuthor,
		authorID,
	).Scan(&avg)
	if err != nil {
		return 0, mapError("average read time", err)
	}
	return avg, nil
}

func (s *Store) TopTags(ctx context.Context, authorID *uuid.UUID, limit int) ([]domain.TagStat, error) {
	if authorID == nil {
		return s.PopularTags(ctx, limit)
	}

	rows, err := s.db.Query(ctx, `
		SELECT t.tag,
		       count(*)::bigint,
		       COALESCE(sum(a.view_count), 0)::bigint,
		       COALESCE(sum(a.like_count), 0)::bigint
		FROM article_tags t
		JOIN articles a ON a.id = t.article_id
		WHERE a.author_id = $1
		GROUP BY t.tag
		ORDER BY 2 DESC, 3 DESC, t.tag ASC
		LIMIT $2`,
		*authorID, limitArg(limit),
	)
	if err != nil {
		return nil, mapError("query author tags", err)
	}
	stats, err := pgx.CollectRows(rows, scanTagStat)
	if err != nil {
		return nil, mapError("scan author tags", err)
	}
	return stats, nil
}
