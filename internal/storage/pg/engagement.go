package pg

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	likesTable     = "likes"
	bookmarksTable = "bookmarks"
)

func (s *Store) HasLike(ctx context.Context, articleID, userID uuid.UUID) (bool, error) {
	return s.exists(ctx, likesTable, articleID, userID)
}

func (s *Store) AddLike(ctx context.Context, articleID, userID uuid.UUID) (bool, error) {
	return s.add(ctx, likesTable, articleID, userID,
		"UPDATE articles SET like_count = like_count + 1 WHERE id = $1")
}

func (s *Store) RemoveLike(ctx context.Context, articleID, userID uuid.UUID) (bool, error) {
	return s.remove(ctx, likesTable, articleID, userID,
		"UPDATE articles SET like_count = GREATEST(like_count - 1, 0) WHERE id = $1")
}

func (s *Store) LikeCount(ctx context.Context, articleID uuid.UUID) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, "SELECT like_count FROM articles WHERE id = $1", articleID).Scan(&n)
	if err != nil {
		return 0, mapError("read like count", err)
	}
	return n, nil
}

func (s *Store) HasBookmark(ctx context.Context, articleID, userID uuid.UUID) (bool, error) {
	return s.exists(ctx, bookmarksTable, articleID, userID)
}

func (s *Store) AddBookmark(ctx context.Context, articleID, userID uuid.UUID) (bool, error) {
	return s.add(ctx, bookmarksTable, articleID, userID, "")
}

func (s *Store) RemoveBookmark(ctx context.Context, articleID, userID uuid.UUID) (bool, error) {
	return s.remove(ctx, bookmarksTable, articleID, userID, "")
}

func (s *Store) LikedAmong(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	return s.among(ctx, likesTable, userID, articleIDs)
}

func (s *Store) BookmarkedAmong(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	return s.among(ctx, bookmarksTable, userID, articleIDs)
}

func (s *Store) exists(ctx context.Context, table string, articleID, userID uuid.UUID) (bool, error) {
	var ok bool
	sql := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE article_id = $1 AND user_id = $2)", table)
	if err := s.db.QueryRow(ctx, sql, articleID, userID).Scan(&ok); err != nil {
		return false, mapError("check "+table, err)
	}
	return ok, nil
}

// add inserts the membership row and, when counterSQL is set, bumps the
// article counter in the same transaction.
func (s *Store) add(ctx context.Context, table string, articleID, userID uuid.UUID, counterSQL string) (bool, error) {
	var added bool
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		sql := fmt.Sprintf("INSERT INTO %s (article_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING", table)
		tag, err := tx.Exec(ctx, sql, articleID, userID)
		if err != nil {
			return err
		}
		added = tag.RowsAffected() == 1
		if !added || counterSQL == "" {
			return nil
		}
		_, err = tx.Exec(ctx, counterSQL, articleID)
		return err
	})
	if err != nil {
		return false, mapError("insert into "+table, err)
	}
	return added, nil
}

func (s *Store) remove(ctx context.Context, table string, articleID, userID uuid.UUID, counterSQL string) (bool, error) {
	var removed bool
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		sql := fmt.Sprintf("DELETE FROM %s WHERE article_id = $1 AND user_id = $2", table)
		tag, err := tx.Exec(ctx, sql, articleID, userID)
		if err != nil {
			return err
		}
		removed = tag.RowsAffected() == 1
		if !removed || counterSQL == "" {
			return nil
		}
		_, err = tx.Exec(ctx, counterSQL, articleID)
		return err
	})
	if err != nil {
		return false, mapError("delete from "+table, err)
	}
	return removed, nil
}

func (s *Store) among(ctx context.Context, table string, userID uuid.UUID, articleIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	res := make(map[uuid.UUID]bool)
	if len(articleIDs) == 0 {
		return res, nil
	}

	sql := fmt.Sprintf("SELECT article_id FROM %s WHERE user_id = $1 AND article_id = ANY($2::uuid[])", table)
	rows, err := s.db.Query(ctx, sql, userID, uuidStrings(articleIDs))
	if err != nil {
		return nil, mapError("query "+table, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, mapError("scan "+table, err)
	}
	for _, id := range ids {
		res[id] = true
	}
	return res, nil
}

func (s *Store) RecordView(ctx context.Context, view domain.View) error {
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			"INSERT INTO views (article_id, user_id, viewed_at) VALUES ($1, $2, COALESCE($3, now()))",
			view.ArticleID, view.UserID, nullTime(view),
		)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, "UPDATE articles SET view_count = view_count + 1 WHERE id = $1", view.ArticleID)
		return err
	})
	return mapError("record view", err)
}

func nullTime(view domain.View) any {
	if view.ViewedAt.IsZero() {
		return nil
	}
	return view.ViewedAt
}
