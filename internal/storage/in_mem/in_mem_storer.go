package in_mem

import (
	"bytes"
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/DjordjeVuckovic/news-press/internal/storage"
	"github.com/DjordjeVuckovic/news-press/internal/types/query"
	"github.com/google/uuid"
)

type engagementKey struct {
	articleID uuid.UUID
	userID    uuid.UUID
}

// InMemStorer is a storage.Store kept in process memory. A single lock
// serializes writes, which makes every counter update atomic.
type InMemStorer struct {
	storageLock sync.RWMutex

	articles  map[uuid.UUID]*domain.Article
	slugs     map[string]uuid.UUID
	likes     map[engagementKey]time.Time
	bookmarks map[engagementKey]time.Time
	views     []domain.View
	comments  map[uuid.UUID]*domain.Comment
	tagStats  map[string]*domain.TagStat
}

var _ storage.Store = (*InMemStorer)(nil)

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		articles:  make(map[uuid.UUID]*domain.Article),
		slugs:     make(map[string]uuid.UUID),
		likes:     make(map[engagementKey]time.Time),
		bookmarks: make(map[engagementKey]time.Time),
		comments:  make(map[uuid.UUID]*domain.Comment),
		tagStats:  make(map[string]*domain.TagStat),
	}
}

func (s *InMemStorer) CreateArticle(_ context.Context, article *domain.Article) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if _, ok := s.slugs[article.Slug]; ok {
		return storage.ErrConflict
	}
	if _, ok := s.articles[article.ID]; ok {
		return storage.ErrConflict
	}

	stored := article.Clone()
	s.articles[stored.ID] = &stored
	s.slugs[stored.Slug] = stored.ID
	return nil
}

func (s *InMemStorer) GetArticle(_ context.Context, id uuid.UUID) (*domain.Article, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	c := a.Clone()
	return &c, nil
}

func (s *InMemStorer) GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	s.storageLock.RLock()
	id, ok := s.slugs[slug]
	s.storageLock.RUnlock()
	if !ok {
		return nil, storage.ErrNotFound
	}
	return s.GetArticle(ctx, id)
}

func (s *InMemStorer) UpdateArticle(_ context.Context, article *domain.Article, replaceTags bool) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	current, ok := s.articles[article.ID]
	if !ok {
		return storage.ErrNotFound
	}
	if owner, taken := s.slugs[article.Slug]; taken && owner != article.ID {
		return storage.ErrConflict
	}

	updated := article.Clone()
	updated.ViewCount = current.ViewCount
	updated.LikeCount = current.LikeCount
	updated.CommentCount = current.CommentCount
	if !replaceTags {
		updated.Tags = current.Tags
	}

	if current.Slug != updated.Slug {
		delete(s.slugs, current.Slug)
		s.slugs[updated.Slug] = updated.ID
	}
	s.articles[updated.ID] = &updated
	return nil
}

func (s *InMemStorer) DeleteArticle(_ context.Context, id uuid.UUID) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return storage.ErrNotFound
	}

	delete(s.slugs, a.Slug)
	delete(s.articles, id)
	for k := range s.likes {
		if k.articleID == id {
			delete(s.likes, k)
		}
	}
	for k := range s.bookmarks {
		if k.articleID == id {
			delete(s.bookmarks, k)
		}
	}
	for cid, c := range s.comments {
		if c.ArticleID == id {
			delete(s.comments, cid)
		}
	}
	return nil
}

func (s *InMemStorer) SlugsWithBase(_ context.Context, base string, exclude uuid.UUID) ([]string, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	var slugs []string
	for slug, id := range s.slugs {
		if id == exclude {
			continue
		}
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

func (s *InMemStorer) ListArticles(_ context.Context, filter query.ArticleFilter, order query.Sort, offset, limit int) ([]domain.Article, int64, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	var matched []*domain.Article
	for _, a := range s.articles {
		if filter.Matches(a) {
			matched = append(matched, a)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return order.Compare(matched[i], matched[j]) < 0
	})

	total := int64(len(matched))
	if offset < 0 || offset >= len(matched) {
		return []domain.Article{}, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	page := make([]domain.Article, 0, len(matched))
	for _, a := range matched {
		page = append(page, a.Clone())
	}
	return page, total, nil
}

func (s *InMemStorer) HasLike(_ context.Context, articleID, userID uuid.UUID) (bool, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	_, ok := s.likes[engagementKey{articleID, userID}]
	return ok, nil
}

func (s *InMemStorer) AddLike(_ context.Context, articleID, userID uuid.UUID) (bool, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	a, ok := s.articles[articleID]
	if !ok {
		return false, storage.ErrNotFound
	}
	key := engagementKey{articleID, userID}
	if _, exists := s.likes[key]; exists {
		return false, nil
	}
	s.likes[key] = time.Now()
	a.LikeCount++
	return true, nil
}

func (s *InMemStorer) RemoveLike(_ context.Context, articleID, userID uuid.UUID) (bool, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	key := engagementKey{articleID, userID}
	if _, exists := s.likes[key]; !exists {
		return false, nil
	}
	delete(s.likes, key)
	if a, ok := s.articles[articleID]; ok && a.LikeCount > 0 {
		a.LikeCount--
	}
	return true, nil
}

func (s *InMemStorer) LikeCount(_ context.Context, articleID uuid.UUID) (int64, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	a, ok := s.articles[articleID]
	if !ok {
		return 0, storage.ErrNotFound
	}
	return a.LikeCount, nil
}

func (s *InMemStorer) HasBookmark(_ context.Context, articleID, userID uuid.UUID) (bool, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	_, ok := s.bookmarks[engagementKey{articleID, userID}]
	return ok, nil
}

func (s *InMemStorer) AddBookmark(_ context.Context, articleID, userID uuid.UUID) (bool, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, ok := s.articles[articleID]; !ok {
		return false, storage.ErrNotFound
	}
	key := engagementKey{articleID, userID}
	if _, exists := s.bookmarks[key]; exists {
		return false, nil
	}
	s.bookmarks[key] = time.Now()
	return true, nil
}

func (s *InMemStorer) RemoveBookmark(_ context.Context, articleID, userID uuid.UUID) (bool, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	key := engagementKey{articleID, userID}
	if _, exists := s.bookmarks[key]; !exists {
		return false, nil
	}
	delete(s.bookmarks, key)
	return true, nil
}

func (s *InMemStorer) LikedAmong(_ context.Context, userID uuid.UUID, articleIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	return s.among(s.likes, userID, articleIDs), nil
}

func (s *InMemStorer) BookmarkedAmong(_ context.Context, userID uuid.UUID, articleIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	return s.among(s.bookmarks, userID, articleIDs), nil
}

func (s *InMemStorer) among(set map[engagementKey]time.Time, userID uuid.UUID, articleIDs []uuid.UUID) map[uuid.UUID]bool {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	res := make(map[uuid.UUID]bool)
	for _, id := range articleIDs {
		if _, ok := set[engagementKey{id, userID}]; ok {
			res[id] = true
		}
	}
	return res
}

func (s *InMemStorer) RecordView(_ context.Context, view domain.View) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if view.ViewedAt.IsZero() {
		view.ViewedAt = time.Now()
	}
	s.views = append(s.views, view)
	if a, ok := s.articles[view.ArticleID]; ok {
		a.ViewCount++
	}
	return nil
}

// Views returns a copy of the view log.
func (s *InMemStorer) Views() []domain.View {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	return append([]domain.View(nil), s.views...)
}

func (s *InMemStorer) CreateComment(_ context.Context, comment *domain.Comment) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	a, ok := s.articles[comment.ArticleID]
	if !ok {
		return storage.ErrNotFound
	}
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}

	c := *comment
	s.comments[c.ID] = &c
	a.CommentCount++
	return nil
}

func (s *InMemStorer) GetComment(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	c, ok := s.comments[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *InMemStorer) ListTopLevelComments(_ context.Context, articleID uuid.UUID, offset, limit int) ([]domain.Comment, int64, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	var top []domain.Comment
	for _, c := range s.comments {
		if c.ArticleID == articleID && c.IsTopLevel() {
			top = append(top, *c)
		}
	}
	sort.Slice(top, func(i, j int) bool {
		if !top[i].CreatedAt.Equal(top[j].CreatedAt) {
			return top[i].CreatedAt.After(top[j].CreatedAt)
		}
		return bytes.Compare(top[i].ID[:], top[j].ID[:]) < 0
	})

	total := int64(len(top))
	if offset < 0 || offset >= len(top) {
		return []domain.Comment{}, total, nil
	}
	top = top[offset:]
	if limit > 0 && limit < len(top) {
		top = top[:limit]
	}
	return top, total, nil
}

func (s *InMemStorer) ListReplies(_ context.Context, parentIDs []uuid.UUID) ([]domain.Comment, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	parents := make(map[uuid.UUID]struct{}, len(parentIDs))
	for _, id := range parentIDs {
		parents[id] = struct{}{}
	}

	var replies []domain.Comment
	for _, c := range s.comments {
		if c.ParentID == nil {
			continue
		}
		if _, ok := parents[*c.ParentID]; ok {
			replies = append(replies, *c)
		}
	}
	sort.Slice(replies, func(i, j int) bool {
		if !replies[i].CreatedAt.Equal(replies[j].CreatedAt) {
			return replies[i].CreatedAt.Before(replies[j].CreatedAt)
		}
		return bytes.Compare(replies[i].ID[:], replies[j].ID[:]) < 0
	})
	return replies, nil
}

func (s *InMemStorer) IncrementTagCounts(_ context.Context, tags []string) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, tag := range tags {
		s.tagStat(tag).Count++
	}
	return nil
}

func (s *InMemStorer) AddTagEngagement(_ context.Context, tags []string, views, likes int64) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, tag := range tags {
		ts := s.tagStat(tag)
		ts.Views += views
		ts.Likes += likes
	}
	return nil
}

// tagStat must be called with the write lock held.
func (s *InMemStorer) tagStat(tag string) *domain.TagStat {
	ts, ok := s.tagStats[tag]
	if !ok {
		ts = &domain.TagStat{Tag: tag}
		s.tagStats[tag] = ts
	}
	return ts
}

func (s *InMemStorer) PopularTags(_ context.Context, limit int) ([]domain.TagStat, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	stats := make([]domain.TagStat, 0, len(s.tagStats))
	for _, ts := range s.tagStats {
		stats = append(stats, *ts)
	}
	return topTags(stats, limit), nil
}

func (s *InMemStorer) ArticleCounts(_ context.Context, authorID *uuid.UUID) (domain.ArticleCounts, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	var counts domain.ArticleCounts
	for _, a := range s.articlesOf(authorID) {
		counts.Total++
		if a.Published {
			counts.Published++
		} else {
			counts.Drafts++
		}
	}
	return counts, nil
}

func (s *InMemStorer) EngagementTotals(_ context.Context, authorID *uuid.UUID) (domain.EngagementTotals, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	var totals domain.EngagementTotals
	for _, a := range s.articlesOf(authorID) {
		totals.Views += a.ViewCount
		totals.Likes += a.LikeCount
		totals.Comments += a.CommentCount
	}
	return totals, nil
}

func (s *InMemStorer) AverageReadTime(_ context.Context, authorID *uuid.UUID) (float64, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	articles := s.articlesOf(authorID)
	if len(articles) == 0 {
		return 0, nil
	}
	var sum int
	for _, a := range articles {
		sum += a.ReadTime
	}
	return math.Round(float64(sum)/float64(len(articles))*100) / 100, nil
}

func (s *InMemStorer) TopTags(ctx context.Context, authorID *uuid.UUID, limit int) ([]domain.TagStat, error) {
	if authorID == nil {
		return s.PopularTags(ctx, limit)
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	byTag := make(map[string]*domain.TagStat)
	for _, a := range s.articlesOf(authorID) {
		for _, tag := range a.Tags {
			ts, ok := byTag[tag]
			if !ok {
				ts = &domain.TagStat{Tag: tag}
				byTag[tag] = ts
			}
			ts.Count++
			ts.Views += a.ViewCount
			ts.Likes += a.LikeCount
		}
	}

	stats := make([]domain.TagStat, 0, len(byTag))
	for _, ts := range byTag {
		stats = append(stats, *ts)
	}
	return topTags(stats, limit), nil
}

// articlesOf must be called with the read lock held.
func (s *InMemStorer) articlesOf(authorID *uuid.UUID) []*domain.Article {
	var res []*domain.Article
	for _, a := range s.articles {
		if authorID == nil || a.Author.ID == *authorID {
			res = append(res, a)
		}
	}
	return res
}

func topTags(stats []domain.TagStat, limit int) []domain.TagStat {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		if stats[i].Views != stats[j].Views {
			return stats[i].Views > stats[j].Views
		}
		return stats[i].Tag < stats[j].Tag
	})
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}
