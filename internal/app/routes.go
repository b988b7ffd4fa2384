package app

import (
	"net/http"
	"time"

	"github.com/devfolio/core/internal/middleware"
	"github.com/devfolio/core/internal/models"
	"github.com/devfolio/core/internal/modules/auth"
	"github.com/devfolio/core/internal/modules/badge"
	"github.com/devfolio/core/internal/modules/certificate"
	"github.com/devfolio/core/internal/modules/internship"
	"github.com/devfolio/core/internal/modules/project"
	"github.com/devfolio/core/internal/pkg/media"
	"github.com/devfolio/core/internal/pkg/repo"
	"github.com/devfolio/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func (a *App) registerRoutes(uploader media.Uploader) {
	r := a.router
	dbp := a.db.Get
	authMW := middleware.Auth()
	folder := a.cfg.MediaFolder

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "not found")
	})

	// Pre-migration local files are still served from disk.
	r.Static("/uploads", a.cfg.StaticDir)

	r.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{
			"status":         "ok",
			"mongoConnected": a.db.Connected(),
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")

	// Per-entity collections over the one generic CRUD accessor; the sort
	// key is the only per-entity list behavior.
	byCreated := bson.D{{Key: "createdAt", Value: -1}}
	admins := repo.New[models.Admin](dbp, models.CollectionAdmins, byCreated)
	projects := repo.New[models.Project](dbp, models.CollectionProjects, byCreated)
	certificates := repo.New[models.Certificate](dbp, models.CollectionCertificates, byCreated)
	badges := repo.New[models.Badge](dbp, models.CollectionBadges, bson.D{{Key: "issueDate", Value: -1}})
	internships := repo.New[models.Internship](dbp, models.CollectionInternships, bson.D{{Key: "startDate", Value: -1}})

	auth.NewHandler(auth.NewService(admins)).RegisterRoutes(api)
	project.NewHandler(project.NewService(projects, uploader, folder)).RegisterRoutes(api, authMW)
	certificate.NewHandler(certificate.NewService(certificates, uploader, folder)).RegisterRoutes(api, authMW)
	badge.NewHandler(badge.NewService(badges, uploader, folder)).RegisterRoutes(api, authMW)
	internship.NewHandler(internship.NewService(internships, uploader, folder)).RegisterRoutes(api, authMW)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": "portfolio-core", "status": "ok"})
	})
}
