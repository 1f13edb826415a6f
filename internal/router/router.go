package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/imogenclam/visualmath/internal/config"
	"github.com/imogenclam/visualmath/internal/dashboard"
	"github.com/imogenclam/visualmath/internal/handler"
	"github.com/imogenclam/visualmath/internal/middleware"
	"github.com/imogenclam/visualmath/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Module    *handler.ModuleHandler
	Lecture   *handler.LectureHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(manager *dashboard.Manager, handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Every dashboard route is session-gated: no token, no entry.
	dash := router.Group("/api/v1/dashboard")
	dash.Use(middleware.RequireSession(manager, cfg.LoginURL))
	{
		dash.GET("/state", handlers.Dashboard.GetState)
		dash.POST("/sections/:id", handlers.Dashboard.SwitchSection)
		dash.POST("/logout", handlers.Dashboard.Logout)

		dash.GET("/modules/schema", handlers.Module.GetSchema)
		dash.POST("/modules", handlers.Module.Submit)
		dash.GET("/courses", handlers.Module.GetCourses)

		dash.GET("/lectures", handlers.Lecture.Search)
	}

	return router
}
