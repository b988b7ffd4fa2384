package certificate

import (
	"context"
	"time"

	"github.com/devfolio/core/internal/models"
	"github.com/devfolio/core/internal/pkg/apperr"
	"github.com/devfolio/core/internal/pkg/formdata"
	"github.com/devfolio/core/internal/pkg/media"
	"github.com/devfolio/core/internal/pkg/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the slice of the certificate collection the service needs.
type Store interface {
	List(ctx context.Context) ([]models.Certificate, error)
	Insert(ctx context.Context, doc *models.Certificate) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Certificate, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Service struct {
	store    Store
	uploader media.Uploader
	folder   string
}

func NewService(store Store, uploader media.Uploader, folder string) *Service {
	return &Service{store: store, uploader: uploader, folder: folder + "/certificates"}
}

func (s *Service) List(ctx context.Context) ([]models.Certificate, error) {
	return s.store.List(ctx)
}

// Create requires exactly one image file; a certificate is nothing but its
// uploaded scan.
func (s *Service) Create(ctx context.Context, image *formdata.File) (*models.Certificate, error) {
	if image == nil {
		return nil, apperr.Validation("certificate image is required")
	}
	u, err := s.uploader.Upload(ctx, image.Data, media.Options{
		Folder: s.folder,
		Format: image.Ext(),
	})
	if err != nil {
		return nil, err
	}

	cert := models.Certificate{Image: u}
	cert.Touch(time.Now().UTC())
	id, err := s.store.Insert(ctx, &cert)
	if err != nil {
		return nil, err
	}
	cert.ID = id
	return &cert, nil
}

// Update replaces the image when a new file is supplied; without one the
// record is returned unchanged.
func (s *Service) Update(ctx context.Context, id string, image *formdata.File) (*models.Certificate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("certificate")
	}

	set := bson.M{}
	if image != nil {
		u, err := s.uploader.Upload(ctx, image.Data, media.Options{
			Folder: s.folder,
			Format: image.Ext(),
		})
		if err != nil {
			return nil, err
		}
		set["image"] = u
	}

	cert, err := s.store.Update(ctx, oid, set)
	if err == repo.ErrNotFound {
		return nil, apperr.NotFound("certificate")
	}
	return cert, err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("certificate")
	}
	if err := s.store.Delete(ctx, oid); err != nil {
		if err == repo.ErrNotFound {
			return apperr.NotFound("certificate")
		}
		return err
	}
	return nil
}
