package pg

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/DjordjeVuckovic/news-press/internal/types/query"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const articleColumns = `
	a.id, a.slug, a.title, a.excerpt, a.content, a.content_html,
	a.published, a.featured, a.trending,
	a.view_count, a.like_count, a.comment_count, a.read_time,
	a.author_id, a.author_name, a.author_handle,
	a.created_at, a.updated_at, a.published_at,
	COALESCE((SELECT array_agg(t.tag ORDER BY t.position) FROM article_tags t WHERE t.article_id = a.id), '{}')`

func scanArticle(row pgx.CollectableRow) (domain.Article, error) {
	var a domain.Article
	err := row.Scan(
		&a.ID,
		&a.Slug,
		&a.Title,
		&a.Excerpt,
		&a.Content,
		&a.ContentHTML,
		&a.Published,
		&a.Featured,
		&a.Trending,
		&a.ViewCount,
		&a.LikeCount,
		&a.CommentCount,
		&a.ReadTime,
		&a.Author.ID,
		&a.Author.DisplayName,
		&a.Author.Handle,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.PublishedAt,
		&a.Tags,
	)
	return a, err
}

func (s *Store) CreateArticle(ctx context.Context, article *domain.Article) error {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO articles (
				id, slug, title, excerpt, content, content_html,
				published, featured, trending, read_time,
				author_id, author_name, author_handle,
				created_at, updated_at, published_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
			article.ID,
			article.Slug,
			article.Title,
			article.Excerpt,
			article.Content,
			article.ContentHTML,
			article.Published,
			article.Featured,
			article.Trending,
			article.ReadTime,
			article.Author.ID,
			article.Author.DisplayName,
			article.Author.Handle,
			article.CreatedAt,
			article.UpdatedAt,
			article.PublishedAt,
		)
		if err != nil {
			return err
		}
		return insertTags(ctx, tx, article.ID, article.Tags)
	})
	return mapError("insert article", err)
}

func insertTags(ctx context.Context, tx pgx.Tx, articleID uuid.UUID, tags []string) error {
	if len(tags) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO article_tags (article_id, tag, position)
		SELECT $1, t.tag, t.ord
		FROM unnest($2::text[]) WITH ORDINALITY AS t(tag, ord)`,
		articleID, tags,
	)
	return err
}

func (s *Store) GetArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	return s.getArticle(ctx, "a.id = $1", id)
}

func (s *Store) GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return s.getArticle(ctx, "a.slug = $1", slug)
}

func (s *Store) getArticle(ctx context.Context, cond string, arg any) (*domain.Article, error) {
	rows, err := s.db.Query(ctx, "SELECT "+articleColumns+" FROM articles a WHERE "+cond, arg)
	if err != nil {
		return nil, mapError("query article", err)
	}
	a, err := pgx.CollectExactlyOneRow(rows, scanArticle)
	if err != nil {
		return nil, mapError("scan article", err)
	}
	return &a, nil
}

func (s *Store) UpdateArticle(ctx context.Context, article *domain.Article, replaceTags bool) error {
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE articles SET
				slug = $2, title = $3, excerpt = $4, content = $5, content_html = $6,
				published = $7, featured = $8, trending = $9, read_time = $10,
				updated_at = $11, published_at = $12
			WHERE id = $1`,
			article.ID,
			article.Slug,
			article.Title,
			article.Excerpt,
			article.Content,
			article.ContentHTML,
			article.Published,
			article.Featured,
			article.Trending,
			article.ReadTime,
			article.UpdatedAt,
			article.PublishedAt,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		if !replaceTags {
			return nil
		}

		if _, err := tx.Exec(ctx, "DELETE FROM article_tags WHERE article_id = $1", article.ID); err != nil {
			return err
		}
		return insertTags(ctx, tx, article.ID, article.Tags)
	})
	return mapError("update article", err)
}

func (s *Store) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return mapError("delete article", err)
	}
	if tag.RowsAffected() == 0 {
		return mapError("delete article", pgx.ErrNoRows)
	}
	return nil
}

func (s *Store) SlugsWithBase(ctx context.Context, base string, exclude uuid.UUID) ([]string, error) {
	rows, err := s.db.Query(ctx, `
		SELECT slug FROM articles
		WHERE (slug = $1 OR slug LIKE $2) AND id <> $3`,
		base, likeEscaper.Replace(base)+"-%", exclude,
	)
	if err != nil {
		return nil, mapError("query slugs", err)
	}
	candidates, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapError("scan slugs", err)
	}

	slugs := make([]string, 0, len(candidates))
	for _, slug := range candidates {
		if slug == base || hasNumericSuffix(slug, base) {
			slugs = append(slugs, slug)
		}
	}
	sort.Strings(slugs)
	return slugs, nil
}

func hasNumericSuffix(slug, base string) bool {
	rest, ok := strings.CutPrefix(slug, base+"-")
	if !ok || rest == "" {
		return false
	}
	_, err := strconv.Atoi(rest)
	return err == nil
}

func (s *Store) ListArticles(ctx context.Context, filter query.ArticleFilter, order query.Sort, offset, limit int) ([]domain.Article, int64, error) {
	b := buildFilter(filter)
	where := b.whereClause()

	var total int64
	if err := s.db.QueryRow(ctx, "SELECT count(*) FROM articles a"+where, b.args...).Scan(&total); err != nil {
		return nil, 0, mapError("count articles", err)
	}

	sql := "SELECT " + articleColumns + " FROM articles a" + where + buildOrderBy(order)
	sql += " OFFSET " + b.arg(offset)
	if limit > 0 {
		sql += " LIMIT " + b.arg(limit)
	}

	rows, err := s.db.Query(ctx, sql, b.args...)
	if err != nil {
		return nil, 0, mapError("query articles", err)
	}
	articles, err := pgx.CollectRows(rows, scanArticle)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan articles: %w", err)
	}
	return articles, total, nil
}
