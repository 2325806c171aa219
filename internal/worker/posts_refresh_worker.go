package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/daheemath/mathtutor-backend/internal/cms"
	"github.com/daheemath/mathtutor-backend/internal/service"
)

// PostsRefreshWorker re-fetches CMS post listings on a timer so the Redis
// cache stays warm and reader requests rarely hit the CMS directly.
type PostsRefreshWorker struct {
	postService *service.PostService
	interval    time.Duration
	log         zerolog.Logger
}

// NewPostsRefreshWorker creates a new PostsRefreshWorker.
func NewPostsRefreshWorker(postService *service.PostService, interval time.Duration, log zerolog.Logger) *PostsRefreshWorker {
	return &PostsRefreshWorker{
		postService: postService,
		interval:    interval,
		log:         log.With().Str("component", "posts_refresh_worker").Logger(),
	}
}

// Start begins the refresh loop. Call in a goroutine.
func (w *PostsRefreshWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("Worker started")

	// Warm the cache immediately on boot.
	w.refreshAll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.refreshAll(ctx)
		}
	}
}

func (w *PostsRefreshWorker) refreshAll(ctx context.Context) {
	for _, category := range []cms.Category{cms.CategoryArticle, cms.CategoryStrategy} {
		if err := w.postService.RefreshCategory(ctx, category); err != nil {
			if ctx.Err() != nil {
				return
			}
			w.log.Error().Err(err).Str("category", string(category)).Msg("Refresh failed")
		}
	}
}
