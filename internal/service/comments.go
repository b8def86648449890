package service

import (
	"context"
	"errors"
	"strings"

	"github.com/DjordjeVuckovic/news-press/internal/apperr"
	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/DjordjeVuckovic/news-press/internal/storage"
	"github.com/DjordjeVuckovic/news-press/internal/text"
	"github.com/DjordjeVuckovic/news-press/pkg/pagination"
	"github.com/google/uuid"
)

type CommentInput struct {
	Content  string
	ParentID *uuid.UUID
}

// AddComment stores a top-level comment or a reply. Replies must point at a
// top-level comment of the same article; threads are two levels deep.
func (s *Service) AddComment(ctx context.Context, articleID uuid.UUID, in CommentInput, author domain.Identity) (*domain.Comment, error) {
	if author.IsZero() || strings.TrimSpace(author.DisplayName) == "" {
		return nil, apperr.NewValidation("author id and display name are required")
	}
	content := text.Sanitize(in.Content)
	if content == "" {
		return nil, apperr.NewValidation("comment content is required")
	}
	if _, err := s.getArticle(ctx, articleID); err != nil {
		return nil, err
	}
	if in.ParentID != nil {
		if err := s.checkParent(ctx, articleID, *in.ParentID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	comment := &domain.Comment{
		ID:        uuid.New(),
		ArticleID: articleID,
		Author:    author,
		Content:   content,
		ParentID:  in.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.store.CreateComment(ctx, comment)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NewNotFound("article not found")
	}
	if err != nil {
		return nil, apperr.NewInternal("failed to add comment", err)
	}
	s.countEngagement("comment")
	return comment, nil
}

func (s *Service) checkParent(ctx context.Context, articleID, parentID uuid.UUID) error {
	parent, err := s.store.GetComment(ctx, parentID)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NewValidation("parent comment does not exist")
	}
	if err != nil {
		return apperr.NewInternal("failed to add comment", err)
	}
	if parent.ArticleID != articleID {
		return apperr.NewValidation("parent comment belongs to another article")
	}
	if !parent.IsTopLevel() {
		return apperr.NewValidation("replies cannot be nested")
	}
	return nil
}

// ListComments pages over top-level comments, newest first. Each thread
// carries all of its replies, oldest first, and Total counts threads only.
func (s *Service) ListComments(ctx context.Context, articleID uuid.UUID, page, limit int) (*pagination.OffsetResult[domain.CommentThread], error) {
	req := pagination.OffsetRequest{Page: page, Limit: limit}
	req.Normalize()

	top, total, err := s.store.ListTopLevelComments(ctx, articleID, req.Offset(), req.Limit)
	if err != nil {
		return nil, apperr.NewInternal("failed to list comments", err)
	}

	ids := make([]uuid.UUID, len(top))
	for i, c := range top {
		ids[i] = c.ID
	}
	replies, err := s.store.ListReplies(ctx, ids)
	if err != nil {
		return nil, apperr.NewInternal("failed to list comments", err)
	}

	byParent := make(map[uuid.UUID][]domain.Comment, len(top))
	for _, r := range replies {
		byParent[*r.ParentID] = append(byParent[*r.ParentID], r)
	}

	threads := make([]domain.CommentThread, len(top))
	for i, c := range top {
		rs := byParent[c.ID]
		if rs == nil {
			rs = []domain.Comment{}
		}
		threads[i] = domain.CommentThread{Comment: c, Replies: rs}
	}
	return pagination.NewOffsetResult(threads, total, req.Page, req.Limit), nil
}
