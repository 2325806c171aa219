package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daheemath/mathtutor-backend/internal/cms"
)

type fakeFetcher struct {
	posts   map[cms.Category][]cms.Post
	details map[string]*cms.PostDetail
	err     error
}

func (f *fakeFetcher) ListByCategory(_ context.Context, category cms.Category) ([]cms.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.posts[category], nil
}

func (f *fakeFetcher) GetBySlug(_ context.Context, slug string) (*cms.PostDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.details[slug], nil
}

func postAt(id, slug string, publishedAt time.Time, pinned bool) cms.Post {
	return cms.Post{
		ID:          id,
		Title:       "Post " + id,
		Slug:        cms.Slug{Current: slug},
		IsPinned:    pinned,
		PublishedAt: publishedAt,
	}
}

func newPostFixture(fetcher *fakeFetcher) *PostService {
	return NewPostService(fetcher, nil, time.Minute, zerolog.Nop())
}

func TestListByCategoryPinnedFirstThenNewest(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{posts: map[cms.Category][]cms.Post{
		cms.CategoryArticle: {
			postAt("a", "a", base, false),
			postAt("b", "b", base.Add(48*time.Hour), false),
			postAt("c", "c", base.Add(-48*time.Hour), true),
			postAt("d", "d", base.Add(24*time.Hour), true),
		},
	}}
	svc := newPostFixture(fetcher)

	posts, err := svc.ListByCategory(context.Background(), cms.CategoryArticle)
	require.NoError(t, err)
	require.Len(t, posts, 4)

	ids := []string{posts[0].ID, posts[1].ID, posts[2].ID, posts[3].ID}
	assert.Equal(t, []string{"d", "c", "b", "a"}, ids)
}

func TestListByCategoryEmpty(t *testing.T) {
	svc := newPostFixture(&fakeFetcher{posts: map[cms.Category][]cms.Post{}})

	posts, err := svc.ListByCategory(context.Background(), cms.CategoryStrategy)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestRecentTrimsToLimit(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{posts: map[cms.Category][]cms.Post{
		cms.CategoryStrategy: {
			postAt("a", "a", base, false),
			postAt("b", "b", base.Add(time.Hour), false),
			postAt("c", "c", base.Add(2*time.Hour), false),
		},
	}}
	svc := newPostFixture(fetcher)

	posts, err := svc.Recent(context.Background(), cms.CategoryStrategy, 2)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "c", posts[0].ID)
	assert.Equal(t, "b", posts[1].ID)
}

func TestAllSlugsListingOrder(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{posts: map[cms.Category][]cms.Post{
		cms.CategoryArticle: {
			postAt("a", "first", base, false),
			postAt("b", "second", base.Add(time.Hour), false),
		},
	}}
	svc := newPostFixture(fetcher)

	slugs, err := svc.AllSlugs(context.Background(), cms.CategoryArticle)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, slugs)
}

func TestDetailResolvesNeighbors(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	older := postAt("a", "older", base.Add(-24*time.Hour), false)
	current := postAt("b", "current", base, false)
	newer := postAt("c", "newer", base.Add(24*time.Hour), false)
	newest := postAt("d", "newest", base.Add(72*time.Hour), true)

	fetcher := &fakeFetcher{
		posts: map[cms.Category][]cms.Post{
			cms.CategoryArticle: {older, current, newer, newest},
		},
		details: map[string]*cms.PostDetail{
			"current": {Post: current, Category: cms.CategoryArticle},
		},
	}
	svc := newPostFixture(fetcher)

	detail, err := svc.Detail(context.Background(), "current")
	require.NoError(t, err)

	// Previous is the newest strictly earlier post, next the oldest
	// strictly later one. Pinning plays no part here.
	require.NotNil(t, detail.PreviousPost)
	assert.Equal(t, "older", detail.PreviousPost.Slug.Current)
	require.NotNil(t, detail.NextPost)
	assert.Equal(t, "newer", detail.NextPost.Slug.Current)
}

func TestDetailNeighborsAbsentAtEnds(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	only := postAt("a", "only", base, false)

	fetcher := &fakeFetcher{
		posts: map[cms.Category][]cms.Post{
			cms.CategoryStrategy: {only},
		},
		details: map[string]*cms.PostDetail{
			"only": {Post: only, Category: cms.CategoryStrategy},
		},
	}
	svc := newPostFixture(fetcher)

	detail, err := svc.Detail(context.Background(), "only")
	require.NoError(t, err)
	assert.Nil(t, detail.PreviousPost)
	assert.Nil(t, detail.NextPost)
}

func TestDetailUnknownSlug(t *testing.T) {
	svc := newPostFixture(&fakeFetcher{})

	_, err := svc.Detail(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListByCategoryFetchError(t *testing.T) {
	svc := newPostFixture(&fakeFetcher{err: errors.New("cms down")})

	_, err := svc.ListByCategory(context.Background(), cms.CategoryArticle)
	assert.Error(t, err)
}
