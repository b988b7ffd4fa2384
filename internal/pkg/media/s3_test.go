package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploader(t *testing.T, cfg S3Config) *S3Uploader {
	t.Helper()
	if cfg.Bucket == "" {
		cfg.Bucket = "media"
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	cfg.AccessKeyID = "key"
	cfg.SecretAccessKey = "secret"
	u, err := NewS3Uploader(cfg)
	require.NoError(t, err)
	return u
}

func TestNewS3Uploader_RequiresCredentials(t *testing.T) {
	_, err := NewS3Uploader(S3Config{Bucket: "media", Region: "us-east-1"})
	assert.Error(t, err)

	_, err = NewS3Uploader(S3Config{Region: "us-east-1", AccessKeyID: "k", SecretAccessKey: "s"})
	assert.Error(t, err)
}

func TestObjectKey_ImageDefaults(t *testing.T) {
	u := newTestUploader(t, S3Config{})
	key := u.objectKey(Options{Folder: "portfolio/projects", PublicID: "hero"})
	assert.Equal(t, "image/portfolio/projects/hero", key)
}

func TestObjectKey_RawWithFormat(t *testing.T) {
	u := newTestUploader(t, S3Config{})
	key := u.objectKey(Options{
		Folder:       "portfolio/internships",
		PublicID:     "offer-1717200000000",
		ResourceType: ResourceRaw,
		Format:       "pdf",
	})
	assert.Equal(t, "raw/portfolio/internships/offer-1717200000000.pdf", key)
}

func TestObjectKey_FormatNotDoubled(t *testing.T) {
	u := newTestUploader(t, S3Config{})
	key := u.objectKey(Options{PublicID: "doc.pdf", ResourceType: ResourceRaw, Format: "pdf"})
	assert.Equal(t, "raw/doc.pdf", key)
}

func TestObjectKey_GeneratesIDWhenMissing(t *testing.T) {
	u := newTestUploader(t, S3Config{})
	key := u.objectKey(Options{Folder: "portfolio/badges"})
	assert.True(t, strings.HasPrefix(key, "image/portfolio/badges/"))
	assert.NotEqual(t, "image/portfolio/badges/", key)

	other := u.objectKey(Options{Folder: "portfolio/badges"})
	assert.NotEqual(t, key, other)
}

func TestObjectKey_NormalizesFolder(t *testing.T) {
	u := newTestUploader(t, S3Config{})
	key := u.objectKey(Options{Folder: "/portfolio//projects/", PublicID: "x"})
	assert.Equal(t, "image/portfolio/projects/x", key)
}

func TestPublicURL_DefaultAWSEndpoint(t *testing.T) {
	u := newTestUploader(t, S3Config{Bucket: "media", Region: "eu-west-1"})
	got := u.PublicURL("image/portfolio/projects/hero")
	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com/image/portfolio/projects/hero", got)
}

func TestPublicURL_CustomEndpoint(t *testing.T) {
	u := newTestUploader(t, S3Config{Endpoint: "https://minio.internal:9000/"})
	got := u.PublicURL("raw/doc.pdf")
	assert.Equal(t, "https://minio.internal:9000/media/raw/doc.pdf", got)
}

func TestPublicURL_PublicBaseURLWins(t *testing.T) {
	u := newTestUploader(t, S3Config{
		Endpoint:      "https://minio.internal:9000",
		PublicBaseURL: "https://cdn.example.com/",
	})
	got := u.PublicURL("image/hero.png")
	assert.Equal(t, "https://cdn.example.com/image/hero.png", got)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "application/pdf", contentTypeFor(Options{ResourceType: ResourceRaw, Format: "pdf"}))
	assert.Equal(t, "image/png", contentTypeFor(Options{Format: "png"}))
	assert.Equal(t, "application/octet-stream", contentTypeFor(Options{ResourceType: ResourceRaw}))
	assert.Equal(t, "image/jpeg", contentTypeFor(Options{}))
}
