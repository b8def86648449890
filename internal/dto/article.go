package dto

import (
	"github.com/DjordjeVuckovic/news-press/internal/service"
)

type CreateArticleRequest struct {
	Title     string   `json:"title" validate:"required,max=300"`
	Content   string   `json:"content" validate:"required"`
	Excerpt   string   `json:"excerpt,omitempty" validate:"omitempty,max=1000"`
	Tags      []string `json:"tags,omitempty" validate:"omitempty,max=50"`
	Published bool     `json:"published"`
	Featured  bool     `json:"featured"`
	Trending  bool     `json:"trending"`
}

func (r CreateArticleRequest) ToInput() service.ArticleInput {
	return service.ArticleInput{
		Title:     r.Title,
		Content:   r.Content,
		Excerpt:   r.Excerpt,
		Tags:      r.Tags,
		Published: r.Published,
		Featured:  r.Featured,
		Trending:  r.Trending,
	}
}

// UpdateArticleRequest carries only the fields to change. An explicit empty
// tags array clears the tags; an absent or null one leaves them alone.
type UpdateArticleRequest struct {
	Title     *string  `json:"title,omitempty" validate:"omitempty,max=300"`
	Content   *string  `json:"content,omitempty"`
	Excerpt   *string  `json:"excerpt,omitempty" validate:"omitempty,max=1000"`
	Tags      []string `json:"tags,omitempty" validate:"omitempty,max=50"`
	Published *bool    `json:"published,omitempty"`
	Featured  *bool    `json:"featured,omitempty"`
	Trending  *bool    `json:"trending,omitempty"`
}

func (r UpdateArticleRequest) ToPatch() service.ArticlePatch {
	return service.ArticlePatch{
		Title:     r.Title,
		Content:   r.Content,
		Excerpt:   r.Excerpt,
		Tags:      r.Tags,
		Published: r.Published,
		Featured:  r.Featured,
		Trending:  r.Trending,
	}
}

type CreateCommentRequest struct {
	Content  string  `json:"content" validate:"required,max=5000"`
	ParentID *string `json:"parentId,omitempty" validate:"omitempty,uuid"`
}
