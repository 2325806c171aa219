package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/daheemath/mathtutor-backend/internal/cms"
	"github.com/daheemath/mathtutor-backend/internal/config"
	"github.com/daheemath/mathtutor-backend/internal/database"
	"github.com/daheemath/mathtutor-backend/internal/handler"
	"github.com/daheemath/mathtutor-backend/internal/logger"
	"github.com/daheemath/mathtutor-backend/internal/repository"
	"github.com/daheemath/mathtutor-backend/internal/router"
	"github.com/daheemath/mathtutor-backend/internal/service"
	"github.com/daheemath/mathtutor-backend/internal/validator"
	"github.com/daheemath/mathtutor-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting DaheeMath Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	profileRepo := repository.NewProfileRepository(pool)
	lectureRepo := repository.NewLectureRepository(pool)
	permissionRepo := repository.NewPermissionRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	cmsClient := cms.NewClient(cfg, log)

	authService := service.NewAuthService(cfg, rdb)
	profileService := service.NewProfileService(profileRepo)
	accessService := service.NewAccessService(profileRepo, permissionRepo)
	lectureService := service.NewLectureService(lectureRepo, accessService)
	permissionService := service.NewPermissionService(permissionRepo, lectureRepo)
	scheduleService := service.NewScheduleService(scheduleRepo)
	postService := service.NewPostService(cmsClient, rdb, cfg.PostsCacheTTL, log)
	dashboardService := service.NewDashboardService(dashboardRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService, profileService),
		Lecture:    handler.NewLectureHandler(lectureService),
		Permission: handler.NewPermissionHandler(permissionService),
		Schedule:   handler.NewScheduleHandler(scheduleService),
		Post:       handler.NewPostHandler(postService),
		Student:    handler.NewStudentHandler(profileService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	// The refresher also prewarms the post listings before traffic hits
	// the CMS-backed routes.
	workerCtx, workerCancel := context.WithCancel(context.Background())

	postsWorker := worker.NewPostsRefreshWorker(postService, cfg.PostsCacheTTL, log)
	go postsWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
