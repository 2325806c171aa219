package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/daheemath/mathtutor-backend/internal/cms"
	"github.com/daheemath/mathtutor-backend/internal/config"
)

// ErrPostNotFound is returned when no post carries the requested slug.
var ErrPostNotFound = errors.New("post not found")

// postFetcher is the slice of the CMS client the post service needs.
type postFetcher interface {
	ListByCategory(ctx context.Context, category cms.Category) ([]cms.Post, error)
	GetBySlug(ctx context.Context, slug string) (*cms.PostDetail, error)
}

// PostService serves CMS-authored articles and strategy posts. Listings
// are cached in Redis within the configured staleness budget; every cache
// miss goes straight to the CMS.
type PostService struct {
	fetcher postFetcher
	rdb     *redis.Client
	ttl     time.Duration
	log     zerolog.Logger
}

// NewPostService creates a new PostService. rdb may be nil, which
// disables caching (unit tests use this).
func NewPostService(fetcher postFetcher, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *PostService {
	return &PostService{
		fetcher: fetcher,
		rdb:     rdb,
		ttl:     ttl,
		log:     log.With().Str("component", "post_service").Logger(),
	}
}

// sortPosts orders a listing: pinned posts first, then newest first.
// The sort is stable so ties keep the store's order.
func sortPosts(posts []cms.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].IsPinned != posts[j].IsPinned {
			return posts[i].IsPinned
		}
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
}

// resolveNeighbors finds the previous/next posts around current within
// one category: previous is the newest post published strictly earlier,
// next the oldest published strictly later. Either may be nil at the ends.
func resolveNeighbors(posts []cms.Post, current *cms.PostDetail) (previous, next *cms.PostRef) {
	var prevPost, nextPost *cms.Post
	for i := range posts {
		p := &posts[i]
		if p.ID == current.ID {
			continue
		}
		if p.PublishedAt.Before(current.PublishedAt) {
			if prevPost == nil || p.PublishedAt.After(prevPost.PublishedAt) {
				prevPost = p
			}
		}
		if p.PublishedAt.After(current.PublishedAt) {
			if nextPost == nil || p.PublishedAt.Before(nextPost.PublishedAt) {
				nextPost = p
			}
		}
	}

	if prevPost != nil {
		previous = &cms.PostRef{Title: prevPost.Title, Slug: prevPost.Slug}
	}
	if nextPost != nil {
		next = &cms.PostRef{Title: nextPost.Title, Slug: nextPost.Slug}
	}
	return previous, next
}

// ListByCategory returns a category's posts in listing order.
func (s *PostService) ListByCategory(ctx context.Context, category cms.Category) ([]cms.Post, error) {
	cacheKey := config.CacheKey.PostListKey(string(category))

	var posts []cms.Post
	if s.cacheGet(ctx, cacheKey, &posts) {
		return posts, nil
	}

	posts, err := s.refreshCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Recent returns the first limit posts of a category in listing order.
func (s *PostService) Recent(ctx context.Context, category cms.Category, limit int) ([]cms.Post, error) {
	posts, err := s.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// AllSlugs returns every slug of a category in listing order.
func (s *PostService) AllSlugs(ctx context.Context, category cms.Category) ([]string, error) {
	posts, err := s.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(posts))
	for _, p := range posts {
		slugs = append(slugs, p.Slug.Current)
	}
	return slugs, nil
}

// Detail returns one post with its body and previous/next links resolved
// against the same category. A missing neighbor is normal; a missing slug
// is ErrPostNotFound.
func (s *PostService) Detail(ctx context.Context, slug string) (*cms.PostDetail, error) {
	cacheKey := config.CacheKey.PostDetailKey(slug)

	var cached cms.PostDetail
	if s.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	detail, err := s.fetcher.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrPostNotFound
	}

	siblings, err := s.ListByCategory(ctx, detail.Category)
	if err != nil {
		return nil, err
	}
	detail.PreviousPost, detail.NextPost = resolveNeighbors(siblings, detail)

	s.cacheSet(ctx, cacheKey, detail)
	return detail, nil
}

// RefreshCategory re-fetches a category listing from the CMS and rewrites
// the cache. The background refresher calls this on a timer.
func (s *PostService) RefreshCategory(ctx context.Context, category cms.Category) error {
	_, err := s.refreshCategory(ctx, category)
	return err
}

func (s *PostService) refreshCategory(ctx context.Context, category cms.Category) ([]cms.Post, error) {
	posts, err := s.fetcher.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	sortPosts(posts)
	if posts == nil {
		posts = []cms.Post{}
	}

	s.cacheSet(ctx, config.CacheKey.PostListKey(string(category)), posts)
	return posts, nil
}

// cacheGet loads a cached JSON value. Cache failures read as misses.
func (s *PostService) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.rdb == nil {
		return false
	}

	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Str("key", key).Msg("Posts cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Posts cache entry corrupt")
		return false
	}
	return true
}

// cacheSet stores a JSON value with the staleness TTL, best effort.
func (s *PostService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Posts cache marshal failed")
		return
	}
	if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Posts cache write failed")
	}
}
