package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/devfolio/core/internal/config"
	"github.com/devfolio/core/internal/database"
	"github.com/devfolio/core/internal/middleware"
	"github.com/devfolio/core/internal/pkg/jwt"
	"github.com/devfolio/core/internal/pkg/media"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *database.Mongo
	logger *zap.Logger
}

// New initializes the application: config → lazy DB handle → media host →
// routes. The database is not dialed here; the first request pays the dial
// and subsequent requests reuse the cached connection.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	jwt.SetSecret(cfg.JWTSecret)

	db := database.New(cfg.MongoURI, cfg.MongoDB, logger)

	uploader, err := media.NewS3Uploader(media.S3Config{
		Bucket:          cfg.Media.Bucket,
		Region:          cfg.Media.Region,
		AccessKeyID:     cfg.Media.AccessKeyID,
		SecretAccessKey: cfg.Media.SecretAccessKey,
		Endpoint:        cfg.Media.Endpoint,
		PublicBaseURL:   cfg.Media.PublicBaseURL,
		PathStyle:       cfg.Media.PathStyleAccess,
	})
	if err != nil {
		return nil, fmt.Errorf("media: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	app := &App{cfg: cfg, router: router, db: db, logger: logger}
	app.registerRoutes(uploader)

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases the cached database connection.
func (a *App) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.db.Disconnect(ctx); err != nil {
		a.logger.Warn("mongo disconnect", zap.Error(err))
	}
}
