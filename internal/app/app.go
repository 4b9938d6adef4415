package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/otabekov/blog-portal/config"
	"github.com/otabekov/blog-portal/internal/blog"
	"github.com/otabekov/blog-portal/internal/db"
	"github.com/otabekov/blog-portal/internal/rest"
	"github.com/otabekov/blog-portal/internal/weather"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	if cfg.App.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(logger))
	}

	var timeout time.Duration
	if cfg.Weather.Timeout != "" {
		parsed, err := time.ParseDuration(cfg.Weather.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse weather timeout: %w", err)
		}
		timeout = parsed
	}

	database := db.New(dbConnect)
	handler := rest.NewPostHandler(
		blog.NewManager(database),
		weather.NewClient(cfg.Weather.BaseURL, timeout, logger),
		logger,
	)

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   handler.RegisterRoutes(),
		Config: cfg,
	}, nil
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
