package query

import (
	"strings"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/google/uuid"
)

// ArticleFilter is the typed predicate set of the catalog. Every non-empty
// field narrows the result; the fields are combined with AND.
type ArticleFilter struct {
	// Search matches title OR excerpt OR content, case-insensitively.
	Search string
	// Tags matches articles carrying at least one of the tags.
	Tags []string
	// Author matches a substring of the author handle, case-insensitively.
	Author    string
	AuthorID  *uuid.UUID
	Featured  *bool
	Trending  *bool
	Published *bool
}

func (f ArticleFilter) Matches(a *domain.Article) bool {
	return f.matchesSearch(a) &&
		f.matchesTags(a) &&
		f.matchesAuthor(a) &&
		matchesFlag(f.Featured, a.Featured) &&
		matchesFlag(f.Trending, a.Trending) &&
		matchesFlag(f.Published, a.Published)
}

func (f ArticleFilter) matchesSearch(a *domain.Article) bool {
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(a.Title), needle) ||
		strings.Contains(strings.ToLower(a.Excerpt), needle) ||
		strings.Contains(strings.ToLower(a.Content), needle)
}

func (f ArticleFilter) matchesTags(a *domain.Article) bool {
	if len(f.Tags) == 0 {
		return true
	}
	for _, want := range f.Tags {
		for _, have := range a.Tags {
			if want == have {
				return true
			}
		}
	}
	return false
}

func (f ArticleFilter) matchesAuthor(a *domain.Article) bool {
	if f.AuthorID != nil && a.Author.ID != *f.AuthorID {
		return false
	}
	if f.Author == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Author.Handle), strings.ToLower(f.Author))
}

func matchesFlag(want *bool, have bool) bool {
	return want == nil || *want == have
}

func Bool(b bool) *bool {
	return &b
}
