package events

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	ArticleCreated Type = "article.created"
	ArticleUpdated Type = "article.updated"
	ArticleLiked   Type = "article.liked"
	ArticleUnliked Type = "article.unliked"
)

const DefaultTopic = "news-press.articles"

// Event is the payload published on the bus. ID is the article id.
type Event struct {
	Type       Type       `json:"type"`
	ID         uuid.UUID  `json:"id"`
	OccurredAt time.Time  `json:"occurredAt"`
	AuthorID   *uuid.UUID `json:"authorId,omitempty"`
	UserID     *uuid.UUID `json:"userId,omitempty"`
	Slug       string     `json:"slug,omitempty"`
	Title      string     `json:"title,omitempty"`
	Changes    []string   `json:"changes,omitempty"`
	Likes      *int64     `json:"likes,omitempty"`
}

func (e Event) Key() string {
	return e.ID.String()
}
