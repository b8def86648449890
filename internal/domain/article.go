package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the already-authenticated caller handed to the service by upstream.
type Identity struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Handle      string    `json:"handle"`
}

func (i Identity) IsZero() bool {
	return i.ID == uuid.Nil
}

type Article struct {
	ID           uuid.UUID  `json:"id"`
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Excerpt      string     `json:"excerpt"`
	Content      string     `json:"content"`
	ContentHTML  string     `json:"contentHtml"`
	Published    bool       `json:"published"`
	Featured     bool       `json:"featured"`
	Trending     bool       `json:"trending"`
	ViewCount    int64      `json:"viewCount"`
	LikeCount    int64      `json:"likeCount"`
	CommentCount int64      `json:"commentCount"`
	ReadTime     int        `json:"readTime"`
	Author       Identity   `json:"author"`
	Tags         []string   `json:"tags"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
}

// Publish marks the article as published. PublishedAt is stamped only on the
// first transition and is kept across later unpublish/publish cycles.
func (a *Article) Publish(now time.Time) {
	a.Published = true
	if a.PublishedAt == nil {
		t := now
		a.PublishedAt = &t
	}
}

func (a *Article) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && a.Author.ID == userID
}

// Clone returns a deep copy so that stores can hand out articles without
// sharing the tag slice or the publish timestamp.
func (a Article) Clone() Article {
	c := a
	if a.Tags != nil {
		c.Tags = append([]string(nil), a.Tags...)
	}
	if a.PublishedAt != nil {
		t := *a.PublishedAt
		c.PublishedAt = &t
	}
	return c
}

// ArticleView is an article shaped for a specific viewer.
type ArticleView struct {
	Article
	IsLiked      bool `json:"isLiked"`
	IsBookmarked bool `json:"isBookmarked"`
}

type View struct {
	ArticleID uuid.UUID  `json:"articleId"`
	UserID    *uuid.UUID `json:"userId,omitempty"`
	ViewedAt  time.Time  `json:"viewedAt"`
}
