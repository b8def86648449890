package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/news-press/internal/apperr"
	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/DjordjeVuckovic/news-press/internal/events"
	"github.com/DjordjeVuckovic/news-press/internal/slug"
	"github.com/DjordjeVuckovic/news-press/internal/storage"
	"github.com/DjordjeVuckovic/news-press/internal/text"
	"github.com/DjordjeVuckovic/news-press/internal/types/query"
	"github.com/DjordjeVuckovic/news-press/pkg/pagination"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// concurrent writers may take the same slug between allocation and insert
const maxSlugAttempts = 3

type ArticleInput struct {
	Title     string
	Content   string
	Excerpt   string
	Tags      []string
	Published bool
	Featured  bool
	Trending  bool
}

// ArticlePatch is a partial update. Nil fields are left untouched; a non-nil
// empty Tags slice clears the tags.
type ArticlePatch struct {
	Title     *string
	Content   *string
	Excerpt   *string
	Tags      []string
	Published *bool
	Featured  *bool
	Trending  *bool
}

func (s *Service) Create(ctx context.Context, in ArticleInput, author domain.Identity) (*domain.ArticleView, error) {
	if author.IsZero() {
		return nil, apperr.NewValidation("author is required")
	}
	title := text.Sanitize(in.Title)
	if title == "" {
		return nil, apperr.NewValidation("title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, apperr.NewValidation("content is required")
	}

	html, err := s.pipeline.Render(in.Content)
	if err != nil {
		return nil, apperr.NewInternal("failed to create article", err)
	}

	now := s.now()
	article := domain.Article{
		ID:          uuid.New(),
		Title:       title,
		Excerpt:     s.excerpt(in.Excerpt, in.Content),
		Content:     in.Content,
		ContentHTML: html,
		Featured:    in.Featured,
		Trending:    in.Trending,
		ReadTime:    s.pipeline.ReadTime(in.Content),
		Author:      author,
		Tags:        s.tagLimits.Normalize(in.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Published {
		article.Publish(now)
	}

	err = s.withSlug(ctx, &article, func() error {
		return s.store.CreateArticle(ctx, &article)
	})
	if err != nil {
		return nil, apperr.Wrap("failed to create article", err)
	}

	s.bumpTagCounts(article.Tags)
	s.syncIndex(article)
	s.emitter.Emit(events.Event{
		Type:       events.ArticleCreated,
		ID:         article.ID,
		OccurredAt: now,
		AuthorID:   uuidPtr(author.ID),
		Slug:       article.Slug,
		Title:      article.Title,
	})

	return &domain.ArticleView{Article: article}, nil
}

// withSlug allocates a slug from the article title and runs write, retrying
// with a fresh allocation when the slug was taken in the meantime.
func (s *Service) withSlug(ctx context.Context, article *domain.Article, write func() error) error {
	var err error
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		existing, lookupErr := s.store.SlugsWithBase(ctx, slug.Base(article.Title), article.ID)
		if lookupErr != nil {
			return fmt.Errorf("failed to look up slugs: %w", lookupErr)
		}
		article.Slug = slug.Allocate(article.Title, existing)

		err = write()
		if !errors.Is(err, storage.ErrConflict) {
			return err
		}
	}
	return err
}

func (s *Service) excerpt(explicit, content string) string {
	if e := text.Sanitize(explicit); e != "" {
		return e
	}
	return s.pipeline.Excerpt(content)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, patch ArticlePatch, caller domain.Identity) (*domain.ArticleView, error) {
	if caller.IsZero() {
		return nil, apperr.NewValidation("caller is required")
	}
	article, err := s.getArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if !article.IsOwnedBy(caller.ID) {
		return nil, apperr.NewForbidden("only the author can update this article")
	}

	now := s.now()
	var changes []string
	reslug := false

	if patch.Title != nil {
		title := text.Sanitize(*patch.Title)
		if title == "" {
			return nil, apperr.NewValidation("title must not be empty")
		}
		if title != article.Title {
			article.Title = title
			reslug = true
		}
		changes = append(changes, "title")
	}
	if patch.Content != nil {
		if strings.TrimSpace(*patch.Content) == "" {
			return nil, apperr.NewValidation("content must not be empty")
		}
		html, err := s.pipeline.Render(*patch.Content)
		if err != nil {
			return nil, apperr.NewInternal("failed to update article", err)
		}
		article.Content = *patch.Content
		article.ContentHTML = html
		article.ReadTime = s.pipeline.ReadTime(*patch.Content)
		if patch.Excerpt == nil {
			article.Excerpt = s.pipeline.Excerpt(*patch.Content)
		}
		changes = append(changes, "content")
	}
	if patch.Excerpt != nil {
		article.Excerpt = s.excerpt(*patch.Excerpt, article.Content)
		changes = append(changes, "excerpt")
	}
	if patch.Published != nil {
		if *patch.Published {
			article.Publish(now)
		} else {
			article.Published = false
		}
		changes = append(changes, "published")
	}
	if patch.Featured != nil {
		article.Featured = *patch.Featured
		changes = append(changes, "featured")
	}
	if patch.Trending != nil {
		article.Trending = *patch.Trending
		changes = append(changes, "trending")
	}
	replaceTags := patch.Tags != nil
	if replaceTags {
		article.Tags = s.tagLimits.Normalize(patch.Tags)
		changes = append(changes, "tags")
	}
	article.UpdatedAt = now

	write := func() error {
		return s.store.UpdateArticle(ctx, article, replaceTags)
	}
	if reslug {
		err = s.withSlug(ctx, article, write)
	} else {
		err = write()
	}
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NewNotFound("article not found")
	}
	if err != nil {
		return nil, apperr.Wrap("failed to update article", err)
	}

	if replaceTags {
		s.bumpTagCounts(article.Tags)
	}
	s.syncIndex(*article)
	s.emitter.Emit(events.Event{
		Type:       events.ArticleUpdated,
		ID:         article.ID,
		OccurredAt: now,
		AuthorID:   uuidPtr(article.Author.ID),
		Slug:       article.Slug,
		Title:      article.Title,
		Changes:    changes,
	})

	views, err := s.shape(ctx, []domain.Article{*article}, &caller.ID)
	if err != nil {
		return nil, apperr.Wrap("failed to update article", err)
	}
	return &views[0], nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, caller domain.Identity) error {
	if caller.IsZero() {
		return apperr.NewValidation("caller is required")
	}
	article, err := s.getArticle(ctx, id)
	if err != nil {
		return err
	}
	if !article.IsOwnedBy(caller.ID) {
		return apperr.NewForbidden("only the author can delete this article")
	}

	err = s.store.DeleteArticle(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NewNotFound("article not found")
	}
	if err != nil {
		return apperr.NewInternal("failed to delete article", err)
	}

	if s.indexer != nil {
		s.detacher.Go("unindex_article", func(ctx context.Context) error {
			return s.indexer.Remove(ctx, id)
		})
	}
	return nil
}

// GetByIDOrSlug resolves an id first and falls back to the slug, so a slug
// that happens to parse as a uuid is still found. A view is recorded on success.
func (s *Service) GetByIDOrSlug(ctx context.Context, idOrSlug string, viewerID *uuid.UUID) (*domain.ArticleView, error) {
	article, err := s.lookup(ctx, idOrSlug)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NewNotFound("article not found")
	}
	if err != nil {
		return nil, apperr.NewInternal("failed to get article", err)
	}

	s.recordView(*article, viewerID)

	views, err := s.shape(ctx, []domain.Article{*article}, viewerID)
	if err != nil {
		return nil, apperr.Wrap("failed to get article", err)
	}
	return &views[0], nil
}

func (s *Service) lookup(ctx context.Context, idOrSlug string) (*domain.Article, error) {
	idOrSlug = strings.TrimSpace(idOrSlug)
	if idOrSlug == "" {
		return nil, storage.ErrNotFound
	}
	if id, err := uuid.Parse(idOrSlug); err == nil {
		a, err := s.store.GetArticle(ctx, id)
		if !errors.Is(err, storage.ErrNotFound) {
			return a, err
		}
	}
	return s.store.GetArticleBySlug(ctx, idOrSlug)
}

func (s *Service) List(ctx context.Context, q query.ArticleQuery, viewerID *uuid.UUID) (*pagination.OffsetResult[domain.ArticleView], error) {
	if err := q.Normalize(); err != nil {
		return nil, apperr.NewValidationWrap("invalid article query", err)
	}

	articles, total, err := s.store.ListArticles(ctx, q.Filter, q.Sort(), q.Pagination.Offset(), q.Pagination.Limit)
	if err != nil {
		return nil, apperr.NewInternal("failed to list articles", err)
	}

	views, err := s.shape(ctx, articles, viewerID)
	if err != nil {
		return nil, apperr.Wrap("failed to list articles", err)
	}
	return pagination.NewOffsetResult(views, total, q.Pagination.Page, q.Pagination.Limit), nil
}

func (s *Service) Trending(ctx context.Context, limit int) ([]domain.Article, error) {
	filter := query.ArticleFilter{Published: query.Bool(true), Trending: query.Bool(true)}
	articles, _, err := s.store.ListArticles(ctx, filter, query.TrendingSort, 0, pagination.ClampLimit(limit))
	if err != nil {
		return nil, apperr.NewInternal("failed to list trending articles", err)
	}
	return articles, nil
}

func (s *Service) Featured(ctx context.Context, limit int) ([]domain.Article, error) {
	filter := query.ArticleFilter{Published: query.Bool(true), Featured: query.Bool(true)}
	articles, _, err := s.store.ListArticles(ctx, filter, query.DefaultSort, 0, pagination.ClampLimit(limit))
	if err != nil {
		return nil, apperr.NewInternal("failed to list featured articles", err)
	}
	return articles, nil
}

// ByAuthor returns every article of the author, newest first. A nil published
// flag returns drafts and published articles alike.
func (s *Service) ByAuthor(ctx context.Context, authorID *uuid.UUID, published *bool) ([]domain.Article, error) {
	if authorID == nil || *authorID == uuid.Nil {
		return nil, apperr.NewValidation("author id is required")
	}
	filter := query.ArticleFilter{AuthorID: authorID, Published: published}
	articles, _, err := s.store.ListArticles(ctx, filter, query.DefaultSort, 0, 0)
	if err != nil {
		return nil, apperr.NewInternal("failed to list author articles", err)
	}
	return articles, nil
}

// shape attaches the viewer's like and bookmark flags with one batched
// lookup per flag.
func (s *Service) shape(ctx context.Context, articles []domain.Article, viewerID *uuid.UUID) ([]domain.ArticleView, error) {
	views := make([]domain.ArticleView, len(articles))
	for i, a := range articles {
		views[i] = domain.ArticleView{Article: a}
	}
	if viewerID == nil || *viewerID == uuid.Nil || len(articles) == 0 {
		return views, nil
	}

	ids := make([]uuid.UUID, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
	}

	var liked, bookmarked map[uuid.UUID]bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		liked, err = s.store.LikedAmong(gctx, *viewerID, ids)
		return err
	})
	g.Go(func() error {
		var err error
		bookmarked, err = s.store.BookmarkedAmong(gctx, *viewerID, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load viewer flags: %w", err)
	}

	for i := range views {
		views[i].IsLiked = liked[views[i].ID]
		views[i].IsBookmarked = bookmarked[views[i].ID]
	}
	return views, nil
}

func (s *Service) bumpTagCounts(tags []string) {
	if len(tags) == 0 {
		return
	}
	s.detacher.Go("tag_counts", func(ctx context.Context) error {
		return s.store.IncrementTagCounts(ctx, tags)
	})
}

// syncIndex keeps the search index in step with the publish state.
func (s *Service) syncIndex(article domain.Article) {
	if s.indexer == nil {
		return
	}
	if article.Published {
		s.detacher.Go("index_article", func(ctx context.Context) error {
			return s.indexer.Index(ctx, article)
		})
		return
	}
	s.detacher.Go("unindex_article", func(ctx context.Context) error {
		return s.indexer.Remove(ctx, article.ID)
	})
}
