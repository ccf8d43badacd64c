package api

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookvault/bookvault/internal/config"
	"github.com/bookvault/bookvault/internal/handler"
	"github.com/bookvault/bookvault/internal/middleware"
	"github.com/bookvault/bookvault/web"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	bookHandler *handler.BookHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter middleware.RateLimiter,
	cfg *config.Config,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(middleware.CORS(cfg.CORSOrigin))

	r.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes (Public, rate limited)
	authGroup := r.Group("/api/v1")
	authGroup.Use(middleware.RateLimit(rateLimiter, logger))
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
	}
	r.POST("/api/v1/logout", authHandler.Logout)

	// Book catalog is readable without a session
	r.GET("/api/v1/books", bookHandler.ListBooks)

	// Protected book routes
	api := r.Group("/api/v1")
	api.Use(authMiddleware.RequireAuth())
	{
		api.POST("/book", bookHandler.AddBook)
		api.GET("/book/:id", bookHandler.GetBook)
		api.PUT("/book/:id", bookHandler.UpdateBook)
		api.DELETE("/book/:id", bookHandler.DeleteBook)
	}

	// Embedded browser client
	staticFS, err := fs.Sub(web.Static, "static")
	if err == nil {
		r.StaticFS("/static", http.FS(staticFS))
		r.GET("/", func(c *gin.Context) {
			// http.FileServer would redirect /index.html back to /, so the
			// page is served directly from the embedded FS.
			index, readErr := fs.ReadFile(staticFS, "index.html")
			if readErr != nil {
				c.Status(http.StatusNotFound)
				return
			}
			c.Data(http.StatusOK, "text/html; charset=utf-8", index)
		})
	} else {
		logger.Error("❌ [Router] Failed to mount embedded client", "error", err)
	}

	return r
}
