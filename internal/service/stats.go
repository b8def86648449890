package service

import (
	"context"

	"github.com/DjordjeVuckovic/news-press/internal/apperr"
	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/DjordjeVuckovic/news-press/internal/types/query"
	"github.com/DjordjeVuckovic/news-press/pkg/pagination"
	"github.com/DjordjeVuckovic/news-press/pkg/utils"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	statsTopTags        = 10
	statsRecentArticles = 5
)

func (s *Service) PopularTags(ctx context.Context, limit int) ([]domain.TagStat, error) {
	tags, err := s.store.PopularTags(ctx, pagination.ClampLimit(limit))
	if err != nil {
		return nil, apperr.NewInternal("failed to load popular tags", err)
	}
	return tags, nil
}

func (s *Service) ArticleStats(ctx context.Context) (*domain.ArticleStats, error) {
	return s.stats(ctx, nil)
}

// UserArticleStats has the shape of ArticleStats; its tags are aggregated
// from the author's own articles instead of the global tag table.
func (s *Service) UserArticleStats(ctx context.Context, authorID *uuid.UUID) (*domain.ArticleStats, error) {
	if authorID == nil || *authorID == uuid.Nil {
		return nil, apperr.NewValidation("author id is required")
	}
	return s.stats(ctx, authorID)
}

func (s *Service) stats(ctx context.Context, authorID *uuid.UUID) (*domain.ArticleStats, error) {
	var (
		counts  domain.ArticleCounts
		totals  domain.EngagementTotals
		avg     float64
		topTags []domain.TagStat
		recent  []domain.Article
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = s.store.ArticleCounts(gctx, authorID)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.store.EngagementTotals(gctx, authorID)
		return err
	})
	g.Go(func() error {
		var err error
		avg, err = s.store.AverageReadTime(gctx, authorID)
		return err
	})
	g.Go(func() error {
		var err error
		topTags, err = s.store.TopTags(gctx, authorID, statsTopTags)
		return err
	})
	g.Go(func() error {
		filter := query.ArticleFilter{AuthorID: authorID, Published: query.Bool(true)}
		var err error
		recent, _, err = s.store.ListArticles(gctx, filter, query.SortBy(query.SortPublishedAt, query.Desc), 0, statsRecentArticles)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.NewInternal("failed to compute article stats", err)
	}

	if topTags == nil {
		topTags = []domain.TagStat{}
	}
	if recent == nil {
		recent = []domain.Article{}
	}
	return &domain.ArticleStats{
		TotalArticles:     counts.Total,
		PublishedArticles: counts.Published,
		DraftArticles:     counts.Drafts,
		TotalViews:        totals.Views,
		TotalLikes:        totals.Likes,
		TotalComments:     totals.Comments,
		AvgReadTime:       int(utils.RoundDecimal(avg, 0)),
		TopTags:           topTags,
		RecentArticles:    recent,
	}, nil
}
