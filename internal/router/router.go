package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/o064/SWE-Back-End/internal/config"
	"github.com/o064/SWE-Back-End/internal/handler"
	"github.com/o064/SWE-Back-End/internal/middleware"
	"github.com/o064/SWE-Back-End/internal/model"
	"github.com/o064/SWE-Back-End/internal/repository"
	"github.com/o064/SWE-Back-End/internal/response"
	"github.com/o064/SWE-Back-End/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Course     *handler.CourseHandler
	Lecture    *handler.LectureHandler
	Assignment *handler.AssignmentHandler
	Quiz       *handler.QuizHandler
	Discussion *handler.DiscussionHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	users *repository.UserRepository,
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

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	requireAuth := middleware.RequireAuth(authService, users)
	requireStaff := middleware.RequireRoles(model.RoleInstructor, model.RoleAdmin)
	requireAdmin := middleware.RequireRoles(model.RoleAdmin)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/signup", handlers.Auth.Signup)
		auth.POST("/login", handlers.Auth.Login)
	}

	// ─── 2. Users Group ────────────────────────────────────────────────
	usersAPI := router.Group("/api/v1/users")
	usersAPI.Use(requireAuth)
	{
		usersAPI.GET("/me", handlers.User.Me)
		usersAPI.GET("", requireAdmin, handlers.User.List)
		usersAPI.GET("/:id", requireAdmin, handlers.User.Get)
		usersAPI.PATCH("/:id", requireAdmin, handlers.User.Update)
		usersAPI.DELETE("/:id", requireAdmin, handlers.User.Delete)
	}

	// ─── 3. Courses Group ──────────────────────────────────────────────
	courses := router.Group("/api/v1/courses")
	courses.Use(requireAuth)
	{
		courses.GET("", handlers.Course.List)
		courses.POST("", requireStaff, handlers.Course.Create)
		courses.GET("/my-courses", handlers.Course.MyCourses)
		courses.GET("/:id", handlers.Course.Get)
		courses.PUT("/:id", requireStaff, handlers.Course.Update)
		courses.DELETE("/:id", requireStaff, handlers.Course.Delete)
		courses.POST("/:id/enroll", handlers.Course.Enroll)
	}

	// ─── 4. Lectures Group ─────────────────────────────────────────────
	lectures := router.Group("/api/v1/lectures")
	lectures.Use(requireAuth)
	{
		lectures.POST("", requireStaff, handlers.Lecture.Create)
		lectures.GET("/course/:courseId", handlers.Lecture.ListByCourse)
		lectures.PUT("/:id", requireStaff, handlers.Lecture.Update)
		lectures.DELETE("/:id", requireStaff, handlers.Lecture.Delete)
	}

	// ─── 5. Assignments Group ──────────────────────────────────────────
	assignments := router.Group("/api/v1/assignments")
	assignments.Use(requireAuth)
	{
		assignments.POST("", requireStaff, handlers.Assignment.Create)
		assignments.GET("/course/:courseId", handlers.Assignment.ListByCourse)
		assignments.POST("/submit", handlers.Assignment.Submit)
		assignments.PUT("/grade/:id", requireStaff, handlers.Assignment.Grade)
	}

	// ─── 6. Quizzes Group ──────────────────────────────────────────────
	quizzes := router.Group("/api/v1/quizzes")
	quizzes.Use(requireAuth)
	{
		quizzes.POST("", requireStaff, handlers.Quiz.Create)
		quizzes.GET("/course/:courseId", handlers.Quiz.ListByCourse)
		quizzes.GET("/:id", handlers.Quiz.Get)
		quizzes.PUT("/:id", requireStaff, handlers.Quiz.Update)
		quizzes.DELETE("/:id", requireStaff, handlers.Quiz.Delete)
		quizzes.PATCH("/:id/publish", requireStaff, handlers.Quiz.Publish)
		quizzes.POST("/:id/submit", handlers.Quiz.Submit)
		quizzes.GET("/:id/submissions", requireStaff, handlers.Quiz.ListSubmissions)
		quizzes.GET("/:id/results", handlers.Quiz.MyResults)
	}

	// ─── 7. Discussions Group ──────────────────────────────────────────
	discussions := router.Group("/api/v1/discussions")
	discussions.Use(requireAuth)
	{
		discussions.POST("", handlers.Discussion.Create)
		discussions.GET("/course/:courseId", handlers.Discussion.ListByCourse)
		discussions.POST("/:id/reply", handlers.Discussion.Reply)
	}

	return router
}
