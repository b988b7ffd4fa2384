package badge

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/devfolio/core/internal/models"
	"github.com/devfolio/core/internal/pkg/apperr"
	"github.com/devfolio/core/internal/pkg/formdata"
	"github.com/devfolio/core/internal/pkg/media"
	"github.com/devfolio/core/internal/pkg/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the slice of the badge collection the service needs.
type Store interface {
	List(ctx context.Context) ([]models.Badge, error)
	Insert(ctx context.Context, doc *models.Badge) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Badge, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Service struct {
	store    Store
	uploader media.Uploader
	folder   string
}

func NewService(store Store, uploader media.Uploader, folder string) *Service {
	return &Service{store: store, uploader: uploader, folder: folder + "/badges"}
}

func (s *Service) List(ctx context.Context) ([]models.Badge, error) {
	return s.store.List(ctx)
}

// Create validates required fields and the image MIME type before any
// upload call is made. Badges accept image files only.
func (s *Service) Create(ctx context.Context, fields url.Values, image *formdata.File) (*models.Badge, error) {
	missing := missingFields(fields, image)
	if len(missing) > 0 {
		return nil, apperr.Validation("missing required fields: %s", strings.Join(missing, ", "))
	}
	issueDate, ok := formdata.ParseDate(fields.Get("issueDate"))
	if !ok {
		return nil, apperr.Validation("invalid issueDate")
	}
	if !image.IsImage() {
		return nil, apperr.Validation("only image files are allowed")
	}

	u, err := s.uploader.Upload(ctx, image.Data, media.Options{
		Folder: s.folder,
		Format: image.Ext(),
	})
	if err != nil {
		return nil, err
	}

	b := models.Badge{
		Name:          fields.Get("name"),
		Issuer:        fields.Get("issuer"),
		IssueDate:     issueDate,
		ImageURL:      u,
		CredentialURL: fields.Get("credentialUrl"),
	}
	b.Touch(time.Now().UTC())
	id, err := s.store.Insert(ctx, &b)
	if err != nil {
		return nil, err
	}
	b.ID = id
	return &b, nil
}

// Update writes only the supplied fields; a missing file keeps the existing
// image URL.
func (s *Service) Update(ctx context.Context, id string, fields url.Values, image *formdata.File) (*models.Badge, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("badge")
	}

	set := bson.M{}
	for _, key := range []string{"name", "issuer", "credentialUrl"} {
		if formdata.Has(fields, key) {
			set[key] = fields.Get(key)
		}
	}
	if formdata.Has(fields, "issueDate") {
		issueDate, ok := formdata.ParseDate(fields.Get("issueDate"))
		if !ok {
			return nil, apperr.Validation("invalid issueDate")
		}
		set["issueDate"] = issueDate
	}

	if image != nil {
		if !image.IsImage() {
			return nil, apperr.Validation("only image files are allowed")
		}
		u, err := s.uploader.Upload(ctx, image.Data, media.Options{
			Folder: s.folder,
			Format: image.Ext(),
		})
		if err != nil {
			return nil, err
		}
		set["imageUrl"] = u
	}

	b, err := s.store.Update(ctx, oid, set)
	if err == repo.ErrNotFound {
		return nil, apperr.NotFound("badge")
	}
	return b, err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("badge")
	}
	if err := s.store.Delete(ctx, oid); err != nil {
		if err == repo.ErrNotFound {
			return apperr.NotFound("badge")
		}
		return err
	}
	return nil
}

func missingFields(fields url.Values, image *formdata.File) []string {
	var missing []string
	for _, key := range []string{"name", "issuer", "issueDate"} {
		if fields.Get(key) == "" {
			missing = append(missing, key)
		}
	}
	if image == nil {
		missing = append(missing, "image")
	}
	return missing
}
