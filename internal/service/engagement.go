package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/news-press/internal/apperr"
	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/DjordjeVuckovic/news-press/internal/events"
	"github.com/DjordjeVuckovic/news-press/internal/storage"
	"github.com/google/uuid"
)

type LikeResult struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

type BookmarkResult struct {
	Bookmarked bool `json:"bookmarked"`
}

// ToggleLike flips the user's like. Likes is read back from the store after
// the mutation so concurrent toggles by other users are reflected.
func (s *Service) ToggleLike(ctx context.Context, articleID, userID uuid.UUID) (*LikeResult, error) {
	if userID == uuid.Nil {
		return nil, apperr.NewValidation("user is required")
	}
	article, err := s.getArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	has, err := s.store.HasLike(ctx, articleID, userID)
	if err != nil {
		return nil, apperr.NewInternal("failed to toggle like", err)
	}

	var changed bool
	if has {
		changed, err = s.store.RemoveLike(ctx, articleID, userID)
	} else {
		changed, err = s.store.AddLike(ctx, articleID, userID)
	}
	if err != nil {
		return nil, engagementErr("failed to toggle like", err)
	}

	likes, err := s.store.LikeCount(ctx, articleID)
	if err != nil {
		return nil, engagementErr("failed to toggle like", err)
	}

	if changed {
		if has {
			s.countEngagement("unlike")
			s.emitLike(events.ArticleUnliked, article, userID, likes)
		} else {
			s.countEngagement("like")
			s.bumpTagLikes(article.Tags)
			s.emitLike(events.ArticleLiked, article, userID, likes)
		}
	}
	return &LikeResult{Liked: !has, Likes: likes}, nil
}

// engagementErr maps a row that vanished between the existence check and the
// mutation to not found.
func engagementErr(msg string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NewNotFound("article not found")
	}
	return apperr.Wrap(msg, err)
}

func (s *Service) emitLike(t events.Type, article *domain.Article, userID uuid.UUID, likes int64) {
	s.emitter.Emit(events.Event{
		Type:       t,
		ID:         article.ID,
		OccurredAt: s.now(),
		AuthorID:   uuidPtr(article.Author.ID),
		UserID:     uuidPtr(userID),
		Slug:       article.Slug,
		Likes:      &likes,
	})
}

// tag likes only grow; an unlike leaves them untouched
func (s *Service) bumpTagLikes(tags []string) {
	if len(tags) == 0 {
		return
	}
	s.detacher.Go("tag_likes", func(ctx context.Context) error {
		return s.store.AddTagEngagement(ctx, tags, 0, 1)
	})
}

func (s *Service) ToggleBookmark(ctx context.Context, articleID, userID uuid.UUID) (*BookmarkResult, error) {
	if userID == uuid.Nil {
		return nil, apperr.NewValidation("user is required")
	}
	if _, err := s.getArticle(ctx, articleID); err != nil {
		return nil, err
	}

	has, err := s.store.HasBookmark(ctx, articleID, userID)
	if err != nil {
		return nil, apperr.NewInternal("failed to toggle bookmark", err)
	}

	if has {
		if _, err := s.store.RemoveBookmark(ctx, articleID, userID); err != nil {
			return nil, engagementErr("failed to toggle bookmark", err)
		}
		s.countEngagement("unbookmark")
		return &BookmarkResult{Bookmarked: false}, nil
	}

	if _, err := s.store.AddBookmark(ctx, articleID, userID); err != nil {
		return nil, engagementErr("failed to toggle bookmark", err)
	}
	s.countEngagement("bookmark")
	return &BookmarkResult{Bookmarked: true}, nil
}

// recordView appends a view in the background and credits it to the
// article's tags. Failures are logged only.
func (s *Service) recordView(article domain.Article, userID *uuid.UUID) {
	view := domain.View{ArticleID: article.ID, UserID: userID, ViewedAt: s.now()}
	tags := article.Tags
	s.detacher.Go("record_view", func(ctx context.Context) error {
		if err := s.store.RecordView(ctx, view); err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		if err := s.store.AddTagEngagement(ctx, tags, 1, 0); err != nil {
			return fmt.Errorf("failed to credit tag views: %w", err)
		}
		return nil
	})
	s.countEngagement("view")
}
