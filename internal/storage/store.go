package storage

import (
	"context"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/DjordjeVuckovic/news-press/internal/types/query"
	"github.com/google/uuid"
)

// ArticleStore persists articles and their tag associations.
// Lookups return ErrNotFound when nothing matches and writes return
// ErrConflict when the slug is already taken.
type ArticleStore interface {
	CreateArticle(ctx context.Context, article *domain.Article) error
	GetArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error)
	// UpdateArticle writes every non-counter column. Tag associations are
	// replaced only when replaceTags is set.
	UpdateArticle(ctx context.Context, article *domain.Article, replaceTags bool) error
	// DeleteArticle removes the article; tags, likes, bookmarks and comments go with it.
	DeleteArticle(ctx context.Context, id uuid.UUID) error
	// SlugsWithBase returns the slugs equal to base or of the form base-N,
	// ignoring the article identified by exclude.
	SlugsWithBase(ctx context.Context, base string, exclude uuid.UUID) ([]string, error)
	// ListArticles returns one page and the total match count.
	// A limit of zero or less returns every match.
	ListArticles(ctx context.Context, filter query.ArticleFilter, sort query.Sort, offset, limit int) ([]domain.Article, int64, error)
}

// EngagementStore holds likes, bookmarks and the view log. Counter changes are
// atomic with the row they belong to.
type EngagementStore interface {
	HasLike(ctx context.Context, articleID, userID uuid.UUID) (bool, error)
	// AddLike inserts the like and increments like_count; false means it already existed.
	AddLike(ctx context.Context, articleID, userID uuid.UUID) (bool, error)
	// RemoveLike deletes the like and decrements like_count; false means there was none.
	RemoveLike(ctx context.Context, articleID, userID uuid.UUID) (bool, error)
	LikeCount(ctx context.Context, articleID uuid.UUID) (int64, error)

	HasBookmark(ctx context.Context, articleID, userID uuid.UUID) (bool, error)
	AddBookmark(ctx context.Context, articleID, userID uuid.UUID) (bool, error)
	RemoveBookmark(ctx context.Context, articleID, userID uuid.UUID) (bool, error)

	// LikedAmong and BookmarkedAmong return the subset of articleIDs the user engaged with.
	LikedAmong(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	BookmarkedAmong(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID) (map[uuid.UUID]bool, error)

	// RecordView appends to the view log and increments view_count.
	RecordView(ctx context.Context, view domain.View) error
}

type CommentStore interface {
	// CreateComment inserts the comment and increments the article's comment_count.
	CreateComment(ctx context.Context, comment *domain.Comment) error
	GetComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	// ListTopLevelComments returns top-level comments newest first and their total.
	ListTopLevelComments(ctx context.Context, articleID uuid.UUID, offset, limit int) ([]domain.Comment, int64, error)
	// ListReplies returns the replies of the given parents oldest first.
	ListReplies(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Comment, error)
}

type TagStore interface {
	// IncrementTagCounts bumps count for each tag, creating missing rows.
	IncrementTagCounts(ctx context.Context, tags []string) error
	// AddTagEngagement adds views and likes to each tag, creating missing rows.
	AddTagEngagement(ctx context.Context, tags []string, views, likes int64) error
	PopularTags(ctx context.Context, limit int) ([]domain.TagStat, error)
}

// StatsStore answers aggregate queries. A nil authorID means the whole corpus.
type StatsStore interface {
	ArticleCounts(ctx context.Context, authorID *uuid.UUID) (domain.ArticleCounts, error)
	EngagementTotals(ctx context.Context, authorID *uuid.UUID) (domain.EngagementTotals, error)
	AverageReadTime(ctx context.Context, authorID *uuid.UUID) (float64, error)
	// TopTags reads the tag_stats table for the corpus and aggregates the
	// author's own articles otherwise.
	TopTags(ctx context.Context, authorID *uuid.UUID, limit int) ([]domain.TagStat, error)
}

type Store interface {
	ArticleStore
	EngagementStore
	CommentStore
	TagStore
	StatsStore
}
