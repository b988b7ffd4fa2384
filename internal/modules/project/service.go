package project

import (
	"context"
	"net/url"
	"time"

	"github.com/devfolio/core/internal/models"
	"github.com/devfolio/core/internal/pkg/apperr"
	"github.com/devfolio/core/internal/pkg/formdata"
	"github.com/devfolio/core/internal/pkg/media"
	"github.com/devfolio/core/internal/pkg/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	store    Store
	uploader media.Uploader
	folder   string
}

// NewService wires the project collection to the media host. folder is the
// media root ("portfolio" by default); project images land under
// <folder>/projects.
func NewService(store Store, uploader media.Uploader, folder string) *Service {
	return &Service{store: store, uploader: uploader, folder: folder + "/projects"}
}

func (s *Service) List(ctx context.Context) ([]models.Project, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("project")
	}
	p, err := s.store.Get(ctx, oid)
	if err == repo.ErrNotFound {
		return nil, apperr.NotFound("project")
	}
	return p, err
}

// Create validates, uploads any attached images, then persists. Uploads run
// before the insert so the stored URLs are always fully resolved remote
// URLs, never local paths.
func (s *Service) Create(ctx context.Context, fields url.Values, images []formdata.File) (*models.Project, error) {
	if fields.Get("title") == "" {
		return nil, apperr.Validation("missing required fields: title")
	}
	if len(images) > models.MaxProjectImages {
		return nil, apperr.Validation("at most %d images allowed", models.MaxProjectImages)
	}

	urls, err := s.uploadAll(ctx, images)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := models.Project{
		Title:        fields.Get("title"),
		Summary:      fields.Get("summary"),
		TechStack:    formdata.ParseList(fields.Get("techStack")),
		Technologies: formdata.ParseList(fields.Get("technologies")),
		Links:        formdata.ParseList(fields.Get("links")),
		RepoLink:     fields.Get("repoLink"),
		LiveLink:     fields.Get("liveLink"),
		GithubURL:    fields.Get("githubUrl"),
		LiveURL:      fields.Get("liveUrl"),
		Images:       urls,
		UpdatedAt:    now,
	}
	if t, ok := formdata.ParseDate(fields.Get("startDate")); ok {
		p.StartDate = &t
	}
	if t, ok := formdata.ParseDate(fields.Get("endDate")); ok {
		p.EndDate = &t
	}
	p.Touch(now)

	id, err := s.store.Insert(ctx, &p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}

// Update writes only the fields present in the form. A supplied list field
// replaces the stored list wholesale; no files means the existing images
// are kept.
func (s *Service) Update(ctx context.Context, id string, fields url.Values, images []formdata.File) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("project")
	}
	if len(images) > models.MaxProjectImages {
		return nil, apperr.Validation("at most %d images allowed", models.MaxProjectImages)
	}

	set := bson.M{}
	for _, key := range scalarFields {
		if formdata.Has(fields, key) {
			set[key] = fields.Get(key)
		}
	}
	for _, key := range listFields {
		if formdata.Has(fields, key) {
			set[key] = models.StringList(formdata.ParseList(fields.Get(key)))
		}
	}
	for _, key := range []string{"startDate", "endDate"} {
		if t, ok := formdata.ParseDate(fields.Get(key)); ok {
			set[key] = t
		}
	}

	if len(images) > 0 {
		urls, err := s.uploadAll(ctx, images)
		if err != nil {
			return nil, err
		}
		set["images"] = urls
	}
	set["updatedAt"] = time.Now().UTC()

	p, err := s.store.Update(ctx, oid, set)
	if err == repo.ErrNotFound {
		return nil, apperr.NotFound("project")
	}
	return p, err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("project")
	}
	if err := s.store.Delete(ctx, oid); err != nil {
		if err == repo.ErrNotFound {
			return apperr.NotFound("project")
		}
		return err
	}
	return nil
}

func (s *Service) uploadAll(ctx context.Context, images []formdata.File) (models.StringList, error) {
	urls := make(models.StringList, 0, len(images))
	for _, img := range images {
		u, err := s.uploader.Upload(ctx, img.Data, media.Options{
			Folder: s.folder,
			Format: img.Ext(),
		})
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, nil
}
