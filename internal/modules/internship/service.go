package internship

import (
	"context"
	"fmt"
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

// Store is the slice of the internship collection the service needs.
type Store interface {
	List(ctx context.Context) ([]models.Internship, error)
	Insert(ctx context.Context, doc *models.Internship) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Internship, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Service struct {
	store    Store
	uploader media.Uploader
	folder   string
}

func NewService(store Store, uploader media.Uploader, folder string) *Service {
	return &Service{store: store, uploader: uploader, folder: folder + "/internships"}
}

var scalarFields = []string{
	"company", "position", "location", "duration", "description",
	"supervisor", "recommendation", "projectUrl", "impact",
}

var listFields = []string{"responsibilities", "achievements", "skills", "technologies"}

func (s *Service) List(ctx context.Context) ([]models.Internship, error) {
	return s.store.List(ctx)
}

// Create validates required fields and the certificate MIME type before any
// upload is attempted. Certificates may be images or PDFs.
func (s *Service) Create(ctx context.Context, fields url.Values, cert *formdata.File) (*models.Internship, error) {
	var missing []string
	for _, key := range []string{"company", "position", "startDate", "endDate"} {
		if fields.Get(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, apperr.Validation("missing required fields: %s", strings.Join(missing, ", "))
	}
	startDate, ok := formdata.ParseDate(fields.Get("startDate"))
	if !ok {
		return nil, apperr.Validation("invalid startDate")
	}
	endDate, ok := formdata.ParseDate(fields.Get("endDate"))
	if !ok {
		return nil, apperr.Validation("invalid endDate")
	}
	category, err := parseCategory(fields)
	if err != nil {
		return nil, err
	}

	certURL, err := s.uploadCertificate(ctx, cert)
	if err != nil {
		return nil, err
	}

	location := fields.Get("location")
	if location == "" {
		location = models.DefaultLocation
	}
	paid := true
	if formdata.Has(fields, "paid") {
		paid = formdata.ParseBool(fields.Get("paid"))
	}

	in := models.Internship{
		Company:          fields.Get("company"),
		Position:         fields.Get("position"),
		Location:         location,
		StartDate:        startDate,
		EndDate:          endDate,
		Duration:         fields.Get("duration"),
		Description:      fields.Get("description"),
		Responsibilities: formdata.ParseList(fields.Get("responsibilities")),
		Achievements:     formdata.ParseList(fields.Get("achievements")),
		Skills:           formdata.ParseList(fields.Get("skills")),
		Technologies:     formdata.ParseList(fields.Get("technologies")),
		Category:         category,
		Supervisor:       fields.Get("supervisor"),
		Recommendation:   fields.Get("recommendation"),
		ProjectURL:       fields.Get("projectUrl"),
		CertificateURL:   certURL,
		Paid:             paid,
		Remote:           formdata.ParseBool(fields.Get("remote")),
		Impact:           fields.Get("impact"),
	}
	in.Touch(time.Now().UTC())

	id, err := s.store.Insert(ctx, &in)
	if err != nil {
		return nil, err
	}
	in.ID = id
	return &in, nil
}

// Update writes only the supplied fields; without a new file the existing
// certificate URL is kept.
func (s *Service) Update(ctx context.Context, id string, fields url.Values, cert *formdata.File) (*models.Internship, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("internship")
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
		if formdata.Has(fields, key) {
			t, ok := formdata.ParseDate(fields.Get(key))
			if !ok {
				return nil, apperr.Validation("invalid %s", key)
			}
			set[key] = t
		}
	}
	if formdata.Has(fields, "category") {
		category, err := parseCategory(fields)
		if err != nil {
			return nil, err
		}
		set["category"] = category
	}
	if formdata.Has(fields, "paid") {
		set["paid"] = formdata.ParseBool(fields.Get("paid"))
	}
	if formdata.Has(fields, "remote") {
		set["remote"] = formdata.ParseBool(fields.Get("remote"))
	}

	if cert != nil {
		certURL, err := s.uploadCertificate(ctx, cert)
		if err != nil {
			return nil, err
		}
		set["certificateUrl"] = certURL
	}

	in, err := s.store.Update(ctx, oid, set)
	if err == repo.ErrNotFound {
		return nil, apperr.NotFound("internship")
	}
	return in, err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("internship")
	}
	if err := s.store.Delete(ctx, oid); err != nil {
		if err == repo.ErrNotFound {
			return apperr.NotFound("internship")
		}
		return err
	}
	return nil
}

// uploadCertificate sends the file to the media host. PDFs are stored under
// the raw resource type because the host's image pipeline corrupts
// non-image binaries; the public id is derived from the original filename
// plus a timestamp so re-uploads of the same file never collide.
func (s *Service) uploadCertificate(ctx context.Context, cert *formdata.File) (string, error) {
	if cert == nil {
		return "", nil
	}
	if !cert.IsImage() && !cert.IsPDF() {
		return "", apperr.Validation("only images and PDF files are allowed")
	}

	resource := media.ResourceImage
	format := cert.Ext()
	if cert.IsPDF() {
		resource = media.ResourceRaw
		format = "pdf"
	}
	base := cert.BaseName()
	if base == "" {
		base = "certificate"
	}
	publicID := fmt.Sprintf("%s-%d", base, time.Now().UnixMilli())

	return s.uploader.Upload(ctx, cert.Data, media.Options{
		Folder:       s.folder,
		PublicID:     publicID,
		ResourceType: resource,
		Format:       format,
	})
}

func parseCategory(fields url.Values) (models.InternshipCategory, error) {
	raw := strings.TrimSpace(fields.Get("category"))
	if raw == "" {
		return models.CategorySoftware, nil
	}
	category := models.InternshipCategory(raw)
	if !models.ValidCategory(category) {
		return "", apperr.Validation("invalid category %q", raw)
	}
	return category, nil
}
