package service

import (
	"context"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/DjordjeVuckovic/news-press/internal/events"
	"github.com/DjordjeVuckovic/news-press/internal/types/query"
	"github.com/DjordjeVuckovic/news-press/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestService_Create(t *testing.T) {
	f := newFixture(t)
	author := newIdentity("ann")

	a := f.create(t, ArticleInput{
		Title:     "  Hello <World>! ",
		Content:   "# Intro\n\nSome **bold** text with a [link](http://example.com).<script>alert(1)</script>",
		Tags:      []string{"Go", "go", " Web ", ""},
		Published: true,
	}, author)

	assert.Equal(t, "Hello World!", a.Title)
	assert.Equal(t, "hello-world", a.Slug)
	assert.Equal(t, []string{"go", "web"}, a.Tags)
	assert.Equal(t, "Intro Some bold text with a link.alert(1)", a.Excerpt)
	assert.NotContains(t, a.ContentHTML, "<script>")
	assert.Contains(t, a.ContentHTML, "<strong>bold</strong>")
	assert.Equal(t, 1, a.ReadTime)
	require.NotNil(t, a.PublishedAt)
	assert.Equal(t, author, a.Author)
	assert.False(t, a.IsLiked)

	f.settle(t)
	assert.Equal(t, []events.Type{events.ArticleCreated}, f.pub.types())
	evt := f.pub.ofType(events.ArticleCreated)[0]
	assert.Equal(t, a.ID, evt.ID)
	assert.Equal(t, author.ID, *evt.AuthorID)

	tags, err := f.svc.PopularTags(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.TagStat{{Tag: "go", Count: 1}, {Tag: "web", Count: 1}}, tags)
}

func TestService_Create_ExplicitExcerptAndDraft(t *testing.T) {
	f := newFixture(t)

	a := f.create(t, ArticleInput{
		Title:   "Draft",
		Content: strings.Repeat("word ", 450),
		Excerpt: " <b>Custom</b> ",
	}, newIdentity("ann"))

	assert.Equal(t, "bCustom/b", a.Excerpt)
	assert.False(t, a.Published)
	assert.Nil(t, a.PublishedAt)
	assert.Equal(t, 3, a.ReadTime)
}

func TestService_Create_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		in     ArticleInput
		author domain.Identity
	}{
		{"missing author", published("Title"), domain.Identity{}},
		{"blank title", ArticleInput{Title: "<>", Content: "body"}, newIdentity("ann")},
		{"blank content", ArticleInput{Title: "Title", Content: "  "}, newIdentity("ann")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), tt.in, tt.author)
			assertValidation(t, err)
		})
	}
}

func TestService_Create_SlugCollisions(t *testing.T) {
	f := newFixture(t)
	author := newIdentity("ann")

	first := f.create(t, published("Hello World!"), author)
	second := f.create(t, published("Hello World!"), author)
	third := f.create(t, published("hello world"), author)

	assert.Equal(t, "hello-world", first.Slug)
	assert.Equal(t, "hello-world-1", second.Slug)
	assert.Equal(t, "hello-world-2", third.Slug)
}

func TestService_Create_ConcurrentSameTitle(t *testing.T) {
	f := newFixture(t)
	author := newIdentity("ann")

	const n = 3
	var wg sync.WaitGroup
	slugs := make([]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := f.svc.Create(context.Background(), published("Race"), author)
			errs[i] = err
			if err == nil {
				slugs[i] = a.Slug
			}
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			continue
		}
		assert.False(t, seen[slugs[i]], "slug %s allocated twice", slugs[i])
		seen[slugs[i]] = true
	}
}

func TestService_Update(t *testing.T) {
	f := newFixture(t)
	author := newIdentity("ann")
	ctx := context.Background()

	taken := f.create(t, published("Fresh Title"), author)
	a := f.create(t, published("Original", "go"), author)

	updated, err := f.svc.Update(ctx, a.ID, ArticlePatch{
		Title:   strPtr("Fresh Title"),
		Content: strPtr("A brand new body"),
		Tags:    []string{"DB", "db"},
	}, author)
	require.NoError(t, err)

	assert.Equal(t, "Fresh Title", updated.Title)
	assert.Equal(t, "fresh-title-1", updated.Slug)
	assert.NotEqual(t, taken.Slug, updated.Slug)
	assert.Equal(t, "A brand new body", updated.Excerpt)
	assert.Equal(t, []string{"db"}, updated.Tags)
	assert.Equal(t, a.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(a.UpdatedAt))

	f.settle(t)
	updates := f.pub.ofType(events.ArticleUpdated)
	require.Len(t, updates, 1)
	assert.Equal(t, []string{"title", "content", "tags"}, updates[0].Changes)

	// an unchanged title keeps the slug
	again, err := f.svc.Update(ctx, a.ID, ArticlePatch{Title: strPtr("Fresh Title")}, author)
	require.NoError(t, err)
	assert.Equal(t, "fresh-title-1", again.Slug)
}

func TestService_Update_RenameKeepsOwnSlugAvailable(t *testing.T) {
	f := newFixture(t)
	author := newIdentity("ann")

	a := f.create(t, published("Go Tips"), author)
	updated, err := f.svc.Update(context.Background(), a.ID, ArticlePatch{Title: strPtr("Go tips!")}, author)
	require.NoError(t, err)

	assert.Equal(t, "go-tips", updated.Slug)
}

func TestService_Update_ExcerptAndTags(t *testing.T) {
	f := newFixture(t)
	author := newIdentity("ann")
	ctx := context.Background()
	a := f.create(t, published("Tagged", "go", "db"), author)

	updated, err := f.svc.Update(ctx, a.ID, ArticlePatch{
		Content: strPtr("New content"),
		Excerpt: strPtr("Hand written"),
		Tags:    []string{},
	}, author)
	require.NoError(t, err)
	assert.Equal(t, "Hand written", updated.Excerpt)
	assert.Empty(t, updated.Tags)

	untouched, err := f.svc.Update(ctx, a.ID, ArticlePatch{Featured: boolPtr(true)}, author)
	require.NoError(t, err)
	assert.True(t, untouched.Featured)
	assert.Empty(t, untouched.Tags)
	assert.Equal(t, "Hand written", untouched.Excerpt)
}

func TestService_Update_PublishedAtIsStampedOnce(t *testing.T) {
	f := newFixture(t)
	author := newIdentity("ann")
	ctx := context.Background()
	a := f.create(t, ArticleInput{Title: "Draft", Content: "body"}, author)
	require.Nil(t, a.PublishedAt)

	first, err := f.svc.Update(ctx, a.ID, ArticlePatch{Published: boolPtr(true)}, author)
	require.NoError(t, err)
	require.NotNil(t, first.PublishedAt)
	stamp := *first.PublishedAt

	off, err := f.svc.Update(ctx, a.ID, ArticlePatch{Published: boolPtr(false)}, author)
	require.NoError(t, err)
	assert.False(t, off.Published)
	require.NotNil(t, off.PublishedAt)

	again, err := f.svc.Update(ctx, a.ID, ArticlePatch{Published: boolPtr(true)}, author)
	require.NoError(t, err)
	assert.True(t, again.Published)
	assert.Equal(t, stamp, *again.PublishedAt)
}

func TestService_Update_Authorization(t *testing.T) {
	f := newFixture(t)
	author := newIdentity("ann")
	a := f.create(t, published("Mine"), author)

	_, err := f.svc.Update(context.Background(), a.ID, ArticlePatch{Title: strPtr("Yours")}, newIdentity("bob"))
	assertForbidden(t, err)

	_, err = f.svc.Update(context.Background(), uuid.New(), ArticlePatch{}, author)
	assertNotFound(t, err)

	_, err = f.svc.Update(context.Background(), a.ID, ArticlePatch{Title: strPtr("  ")}, author)
	assertValidation(t, err)
}

func TestService_Delete(t *testing.T) {
	f := newFixture(t)
	author := newIdentity("ann")
	ctx := context.Background()
	a := f.create(t, published("Doomed"), author)

	assertForbidden(t, f.svc.Delete(ctx, a.ID, newIdentity("bob")))
	require.NoError(t, f.svc.Delete(ctx, a.ID, author))
	assertNotFound(t, f.svc.Delete(ctx, a.ID, author))

	_, err := f.svc.GetByIDOrSlug(ctx, "doomed", nil)
	assertNotFound(t, err)
}

func TestService_GetByIDOrSlug(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.create(t, published("Readable", "go"), newIdentity("ann"))
	viewer := uuid.New()

	byID, err := f.svc.GetByIDOrSlug(ctx, a.ID.String(), nil)
	require.NoError(t, err)
	assert.Equal(t, a.ID, byID.ID)

	bySlug, err := f.svc.GetByIDOrSlug(ctx, "readable", &viewer)
	require.NoError(t, err)
	assert.Equal(t, a.ID, bySlug.ID)

	_, err = f.svc.GetByIDOrSlug(ctx, uuid.NewString(), nil)
	assertNotFound(t, err)
	_, err = f.svc.GetByIDOrSlug(ctx, "missing", nil)
	assertNotFound(t, err)

	f.settle(t)
	views := f.store.Views()
	require.Len(t, views, 2)
	anonymous := 0
	for _, v := range views {
		if v.UserID == nil {
			anonymous++
		}
	}
	assert.Equal(t, 1, anonymous)

	stored, err := f.store.GetArticle(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.ViewCount)

	tags, err := f.svc.PopularTags(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), tags[0].Views)
}

func TestService_GetByIDOrSlug_SlugShapedLikeUUID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	title := uuid.NewString()
	a := f.create(t, published(title), newIdentity("ann"))
	require.Equal(t, title, a.Slug)

	got, err := f.svc.GetByIDOrSlug(ctx, title, nil)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestService_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ann := newIdentity("ann")
	bob := newIdentity("bobby")

	a1 := f.create(t, published("Go generics", "go"), ann)
	a2 := f.create(t, published("Rust traits", "rust"), bob)
	a3 := f.create(t, published("Go channels", "go", "concurrency"), bob)
	f.create(t, ArticleInput{Title: "Go draft", Content: "draft", Tags: []string{"go"}}, ann)

	viewer := uuid.New()
	_, err := f.svc.ToggleLike(ctx, a3.ID, viewer)
	require.NoError(t, err)
	_, err = f.svc.ToggleBookmark(ctx, a1.ID, viewer)
	require.NoError(t, err)

	ids := func(items []domain.ArticleView) []uuid.UUID {
		res := make([]uuid.UUID, len(items))
		for i, a := range items {
			res[i] = a.ID
		}
		return res
	}

	tests := []struct {
		name string
		q    query.ArticleQuery
		want []uuid.UUID
	}{
		{"defaults hide drafts", query.ArticleQuery{}, []uuid.UUID{a3.ID, a2.ID, a1.ID}},
		{"tag filter", query.ArticleQuery{Filter: query.ArticleFilter{Tags: []string{"GO"}}}, []uuid.UUID{a3.ID, a1.ID}},
		{"search", query.ArticleQuery{Filter: query.ArticleFilter{Search: "TRAITS"}}, []uuid.UUID{a2.ID}},
		{"author handle", query.ArticleQuery{Filter: query.ArticleFilter{Author: "bob"}}, []uuid.UUID{a3.ID, a2.ID}},
		{"ascending", query.ArticleQuery{SortOrder: query.Asc}, []uuid.UUID{a1.ID, a2.ID, a3.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.svc.List(ctx, tt.q, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(res.Items))
			assert.Equal(t, int64(len(tt.want)), res.Total)
		})
	}

	page, err := f.svc.List(ctx, query.ArticleQuery{Pagination: pagination.OffsetRequest{Page: 2, Limit: 2}}, &viewer)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a1.ID}, ids(page.Items))
	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)
	assert.True(t, page.Items[0].IsBookmarked)
	assert.False(t, page.Items[0].IsLiked)

	byLikes, err := f.svc.List(ctx, query.ArticleQuery{SortField: query.SortLikes}, &viewer)
	require.NoError(t, err)
	assert.Equal(t, a3.ID, byLikes.Items[0].ID)
	assert.True(t, byLikes.Items[0].IsLiked)
	assert.Equal(t, int64(1), byLikes.Items[0].LikeCount)

	_, err = f.svc.List(ctx, query.ArticleQuery{SortField: "title"}, nil)
	assertValidation(t, err)
}

func TestService_TrendingFeaturedByAuthor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ann := newIdentity("ann")

	hot := f.create(t, ArticleInput{Title: "Hot", Content: "x", Published: true, Trending: true}, ann)
	warm := f.create(t, ArticleInput{Title: "Warm", Content: "x", Published: true, Trending: true, Featured: true}, ann)
	f.create(t, ArticleInput{Title: "Hidden", Content: "x", Trending: true, Featured: true}, ann)
	other := f.create(t, published("Other"), newIdentity("bob"))

	_, err := f.svc.GetByIDOrSlug(ctx, hot.Slug, nil)
	require.NoError(t, err)
	f.settle(t)

	trending, err := f.svc.Trending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, trending, 2)
	assert.Equal(t, hot.ID, trending[0].ID)
	assert.Equal(t, warm.ID, trending[1].ID)

	featured, err := f.svc.Featured(ctx, 10)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, warm.ID, featured[0].ID)

	all, err := f.svc.ByAuthor(ctx, &ann.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onlyPublished, err := f.svc.ByAuthor(ctx, &ann.ID, boolPtr(true))
	require.NoError(t, err)
	assert.Len(t, onlyPublished, 2)
	for _, a := range onlyPublished {
		assert.NotEqual(t, other.ID, a.ID)
	}

	_, err = f.svc.ByAuthor(ctx, nil, nil)
	assertValidation(t, err)
}

type fakeIndexer struct {
	mu      sync.Mutex
	indexed map[uuid.UUID]domain.Article
}

func newFakeIndexer() *fakeIndexer {
	return &fakeIndexer{indexed: map[uuid.UUID]domain.Article{}}
}

func (i *fakeIndexer) Index(_ context.Context, a domain.Article) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.indexed[a.ID] = a
	return nil
}

func (i *fakeIndexer) IndexBulk(ctx context.Context, articles []domain.Article) error {
	for _, a := range articles {
		_ = i.Index(ctx, a)
	}
	return nil
}

func (i *fakeIndexer) Remove(_ context.Context, id uuid.UUID) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.indexed, id)
	return nil
}

func (i *fakeIndexer) has(id uuid.UUID) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	_, ok := i.indexed[id]
	return ok
}

func TestService_IndexFollowsPublishState(t *testing.T) {
	idx := newFakeIndexer()
	f := newFixture(t, WithIndexer(idx))
	ctx := context.Background()
	author := newIdentity("ann")

	live := f.create(t, published("Live"), author)
	draft := f.create(t, ArticleInput{Title: "Draft", Content: "x"}, author)
	f.settle(t)
	assert.True(t, idx.has(live.ID))
	assert.False(t, idx.has(draft.ID))

	_, err := f.svc.Update(ctx, live.ID, ArticlePatch{Published: boolPtr(false)}, author)
	require.NoError(t, err)
	_, err = f.svc.Update(ctx, draft.ID, ArticlePatch{Published: boolPtr(true)}, author)
	require.NoError(t, err)
	f.settle(t)
	assert.False(t, idx.has(live.ID))
	assert.True(t, idx.has(draft.ID))

	require.NoError(t, f.svc.Delete(ctx, draft.ID, author))
	f.settle(t)
	assert.False(t, idx.has(draft.ID))
}

func TestService_PagesBeyondAddressableRangeAreEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ann := newIdentity("ann")

	a := f.create(t, published("Only one"), ann)
	_, err := f.svc.AddComment(ctx, a.ID, CommentInput{Content: "hi"}, ann)
	require.NoError(t, err)

	far := pagination.OffsetRequest{Page: math.MaxInt, Limit: 100}

	list, err := f.svc.List(ctx, query.ArticleQuery{Pagination: far}, nil)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.Equal(t, int64(1), list.Total)
	assert.False(t, list.HasNext)

	comments, err := f.svc.ListComments(ctx, a.ID, math.MaxInt, 100)
	require.NoError(t, err)
	assert.Empty(t, comments.Items)
	assert.Equal(t, int64(1), comments.Total)
}
