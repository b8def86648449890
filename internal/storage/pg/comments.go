package pg

import (
	"context"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const commentColumns = `
	c.id, c.article_id, c.parent_id,
	c.author_id, c.author_name, c.author_handle,
	c.content, c.created_at, c.updated_at`

func scanComment(row pgx.CollectableRow) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(
		&c.ID,
		&c.ArticleID,
		&c.ParentID,
		&c.Author.ID,
		&c.Author.DisplayName,
		&c.Author.Handle,
		&c.Content,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (s *Store) CreateComment(ctx context.Context, comment *domain.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO comments (id, article_id, parent_id, author_id, author_name, author_handle, content, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			comment.ID,
			comment.ArticleID,
			comment.ParentID,
			comment.Author.ID,
			comment.Author.DisplayName,
			comment.Author.Handle,
			comment.Content,
			comment.CreatedAt,
			comment.UpdatedAt,
		)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, "UPDATE articles SET comment_count = comment_count + 1 WHERE id = $1", comment.ArticleID)
		return err
	})
	return mapError("insert comment", err)
}

func (s *Store) GetComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	rows, err := s.db.Query(ctx, "SELECT "+commentColumns+" FROM comments c WHERE c.id = $1", id)
	if err != nil {
		return nil, mapError("query comment", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanComment)
	if err != nil {
		return nil, mapError("scan comment", err)
	}
	return &c, nil
}

func (s *Store) ListTopLevelComments(ctx context.Context, articleID uuid.UUID, offset, limit int) ([]domain.Comment, int64, error) {
	var total int64
	err := s.db.QueryRow(ctx,
		"SELECT count(*) FROM comments WHERE article_id = $1 AND parent_id IS NULL", articleID,
	).Scan(&total)
	if err != nil {
		return nil, 0, mapError("count comments", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+commentColumns+` FROM comments c
		WHERE c.article_id = $1 AND c.parent_id IS NULL
		ORDER BY c.created_at DESC, c.id ASC
		OFFSET $2 LIMIT $3`,
		articleID, offset, limitArg(limit),
	)
	if err != nil {
		return nil, 0, mapError("query comments", err)
	}
	comments, err := pgx.CollectRows(rows, scanComment)
	if err != nil {
		return nil, 0, mapError("scan comments", err)
	}
	return comments, total, nil
}

func (s *Store) ListReplies(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+commentColumns+` FROM comments c
		WHERE c.parent_id = ANY($1::uuid[])
		ORDER BY c.created_at ASC, c.id ASC`,
		uuidStrings(parentIDs),
	)
	if err != nil {
		return nil, mapError("query replies", err)
	}
	replies, err := pgx.CollectRows(rows, scanComment)
	if err != nil {
		return nil, mapError("scan replies", err)
	}
	return replies, nil
}
