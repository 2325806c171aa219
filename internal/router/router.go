package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/daheemath/mathtutor-backend/internal/config"
	"github.com/daheemath/mathtutor-backend/internal/handler"
	"github.com/daheemath/mathtutor-backend/internal/middleware"
	"github.com/daheemath/mathtutor-backend/internal/response"
	"github.com/daheemath/mathtutor-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Lecture    *handler.LectureHandler
	Permission *handler.PermissionHandler
	Schedule   *handler.ScheduleHandler
	Post       *handler.PostHandler
	Student    *handler.StudentHandler
	Dashboard  *handler.DashboardHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 0. Public Group (No Auth) ─────────────────────────────────────
	// The calendar and CMS posts are readable without an account. Listings
	// change rarely, so downstream caches may hold them briefly.
	publicAPI := router.Group("/api/v1")
	publicAPI.Use(middleware.CacheControl(60))
	{
		publicAPI.GET("/schedules", handlers.Schedule.ListSchedules)
		publicAPI.GET("/schedules/types", handlers.Schedule.ScheduleTypes)

		publicAPI.GET("/posts/:category", handlers.Post.ListPosts)
		publicAPI.GET("/posts/:category/slugs", handlers.Post.ListPostSlugs)
		publicAPI.GET("/posts/:category/:slug", handlers.Post.GetPost)
	}

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/signup", handlers.Auth.SignUp)
		auth.POST("/login", handlers.Auth.Login)

		// Authenticated profile routes
		auth.POST("/logout", middleware.RequireAuth(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireAuth(authService), handlers.Auth.Me)
	}

	// ─── 2. Student Group (JWT + Live Session) ─────────────────────────
	studentAPI := router.Group("/api/v1/student")
	studentAPI.Use(
		middleware.RequireAuth(authService),
		middleware.CheckSession(authService),
	)
	{
		studentAPI.GET("/lectures", handlers.Lecture.Catalog)
		studentAPI.GET("/lectures/:id", handlers.Lecture.CatalogDetail)
	}

	// ─── 3. Admin Group (JWT + Role) ───────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(
		middleware.RequireAdmin(authService),
		middleware.CheckSession(authService),
	)
	{
		// Dashboard
		adminAPI.GET("/dashboard", handlers.Dashboard.GetDashboard)

		// Lecture management
		adminAPI.GET("/lectures", handlers.Lecture.ListLectures)
		adminAPI.POST("/lectures", handlers.Lecture.CreateLecture)
		adminAPI.GET("/lectures/:id", handlers.Lecture.GetLecture)
		adminAPI.PUT("/lectures/:id", handlers.Lecture.UpdateLecture)
		adminAPI.PATCH("/lectures/:id/active", handlers.Lecture.SetLectureActive)
		adminAPI.DELETE("/lectures/:id", handlers.Lecture.DeleteLecture)

		// Student roster
		adminAPI.GET("/students", handlers.Student.ListStudents)
		adminAPI.GET("/students/:id", handlers.Student.GetStudent)
		adminAPI.PATCH("/students/:id", handlers.Student.UpdateStudent)
		adminAPI.DELETE("/students/:id", handlers.Student.DeleteStudent)

		// Per-student lecture permissions
		adminAPI.GET("/students/:id/permissions", handlers.Permission.ListPermissions)
		adminAPI.POST("/students/:id/permissions", handlers.Permission.GrantPermission)
		adminAPI.DELETE("/students/:id/permissions", handlers.Permission.RevokeAll)
		adminAPI.POST("/students/:id/permissions/grant-all", handlers.Permission.GrantAll)
		adminAPI.DELETE("/students/:id/permissions/:lecture_id", handlers.Permission.RevokePermission)

		// Schedule management
		adminAPI.POST("/schedules", handlers.Schedule.CreateSchedule)
		adminAPI.PUT("/schedules/:id", handlers.Schedule.UpdateSchedule)
		adminAPI.DELETE("/schedules/:id", handlers.Schedule.DeleteSchedule)
	}

	return router
}
