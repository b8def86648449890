package query

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArticle() *domain.Article {
	return &domain.Article{
		ID:        uuid.New(),
		Title:     "Understanding Go Channels",
		Excerpt:   "A tour of buffered and unbuffered channels",
		Content:   "Channels are the pipes that connect goroutines.",
		Published: true,
		Featured:  false,
		Trending:  true,
		Author:    domain.Identity{ID: uuid.New(), DisplayName: "Ana", Handle: "ana_writes"},
		Tags:      []string{"go", "concurrency"},
	}
}

func TestArticleFilter_Matches(t *testing.T) {
	a := sampleArticle()

	tests := []struct {
		name   string
		filter ArticleFilter
		want   bool
	}{
		{name: "empty filter matches", filter: ArticleFilter{}, want: true},
		{name: "search in title ignores case", filter: ArticleFilter{Search: "go CHANNELS"}, want: true},
		{name: "search in excerpt", filter: ArticleFilter{Search: "unbuffered"}, want: true},
		{name: "search in content", filter: ArticleFilter{Search: "goroutines"}, want: true},
		{name: "search miss", filter: ArticleFilter{Search: "rust"}, want: false},
		{name: "any tag matches", filter: ArticleFilter{Tags: []string{"rust", "go"}}, want: true},
		{name: "no tag matches", filter: ArticleFilter{Tags: []string{"rust"}}, want: false},
		{name: "author handle substring", filter: ArticleFilter{Author: "ANA"}, want: true},
		{name: "author handle miss", filter: ArticleFilter{Author: "bob"}, want: false},
		{name: "author id", filter: ArticleFilter{AuthorID: &a.Author.ID}, want: true},
		{name: "other author id", filter: ArticleFilter{AuthorID: ptr(uuid.New())}, want: false},
		{name: "featured mismatch", filter: ArticleFilter{Featured: Bool(true)}, want: false},
		{name: "trending match", filter: ArticleFilter{Trending: Bool(true)}, want: true},
		{name: "published match", filter: ArticleFilter{Published: Bool(true)}, want: true},
		{name: "predicates are combined with AND", filter: ArticleFilter{Search: "channels", Tags: []string{"rust"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(a))
		})
	}
}

func TestArticleQuery_Normalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q := ArticleQuery{}
		require.NoError(t, q.Normalize())

		assert.Equal(t, SortCreatedAt, q.SortField)
		assert.Equal(t, Desc, q.SortOrder)
		if assert.NotNil(t, q.Filter.Published) {
			assert.True(t, *q.Filter.Published)
		}
		assert.Equal(t, 1, q.Pagination.Page)
	})

	t.Run("explicit drafts are kept", func(t *testing.T) {
		q := ArticleQuery{Filter: ArticleFilter{Published: Bool(false)}}
		require.NoError(t, q.Normalize())

		assert.False(t, *q.Filter.Published)
	})

	t.Run("tags are normalized", func(t *testing.T) {
		q := ArticleQuery{Filter: ArticleFilter{Tags: []string{" Go ", "go", ""}}}
		require.NoError(t, q.Normalize())

		assert.Equal(t, []string{"go"}, q.Filter.Tags)
	})

	t.Run("filter tags are not capped", func(t *testing.T) {
		var tags []string
		for i := 0; i < 12; i++ {
			tags = append(tags, fmt.Sprintf("Tag-%d", i))
		}
		q := ArticleQuery{Filter: ArticleFilter{Tags: tags}}
		require.NoError(t, q.Normalize())

		require.Len(t, q.Filter.Tags, 12)
		assert.Equal(t, "tag-11", q.Filter.Tags[11])
	})

	t.Run("unknown sort field", func(t *testing.T) {
		q := ArticleQuery{SortField: "title"}
		assert.Error(t, q.Normalize())
	})

	t.Run("unknown sort order", func(t *testing.T) {
		q := ArticleQuery{SortOrder: "sideways"}
		assert.Error(t, q.Normalize())
	})
}

func TestSort_Compare(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mk := func(views, likes int64, created time.Duration) *domain.Article {
		return &domain.Article{ID: uuid.New(), ViewCount: views, LikeCount: likes, CreatedAt: base.Add(created)}
	}

	a := mk(10, 1, 0)
	b := mk(10, 5, 0)
	c := mk(10, 5, time.Hour)
	d := mk(50, 0, 0)

	articles := []*domain.Article{a, b, c, d}
	sort.SliceStable(articles, func(i, j int) bool {
		return TrendingSort.Compare(articles[i], articles[j]) < 0
	})

	assert.Equal(t, []*domain.Article{d, c, b, a}, articles)
}

func TestSort_PublishedAtNilOrdering(t *testing.T) {
	now := time.Now()
	published := &domain.Article{ID: uuid.New(), PublishedAt: &now}
	draft := &domain.Article{ID: uuid.New()}

	assert.Less(t, SortBy(SortPublishedAt, Asc).Compare(draft, published), 0)
	assert.Greater(t, SortBy(SortPublishedAt, Desc).Compare(draft, published), 0)
}

func ptr[T any](v T) *T {
	return &v
}
