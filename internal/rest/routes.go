package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes builds the echo engine with all routes and middleware.
func (h *PostHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware)

	e.GET("/health", h.handleHealth)

	posts := e.Group("/posts")
	posts.GET("/", h.Posts)
	// static segment, registered alongside the :slug routes on purpose:
	// echo matches it before the param route
	posts.GET("/weather/", h.Weather)
	posts.POST("/create/", h.CreatePost)
	posts.GET("/:slug/", h.PostBySlug)
	posts.GET("/:slug/comments/", h.Comments)
	posts.PUT("/:id/", h.UpdatePost)
	posts.PATCH("/:id/", h.UpdatePost)
	posts.DELETE("/:id/", h.DeletePost)

	e.GET("/info/weather/", h.Weather)
	e.GET("/tags/", h.Tags)
	e.GET("/categories/", h.Categories)

	return e
}

func (h *PostHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PostHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		// the error is returned untouched; echo's HTTPErrorHandler runs
		// exactly once, after this middleware
		err := next(c)

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)

		return err
	}
}
