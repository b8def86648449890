package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID  `json:"id"`
	ArticleID uuid.UUID  `json:"articleId"`
	Author    Identity   `json:"author"`
	Content   string     `json:"content"`
	ParentID  *uuid.UUID `json:"parentId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}

// CommentThread is a top-level comment together with all of its replies.
// Only one level of nesting exists, so replies never carry replies themselves.
type CommentThread struct {
	Comment
	Replies []Comment `json:"replies"`
}
