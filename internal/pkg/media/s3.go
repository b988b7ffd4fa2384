package media

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Config holds the media-host credentials and addressing options.
type S3Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the AWS endpoint for S3-compatible hosts.
	Endpoint string
	// PublicBaseURL is the CDN or custom domain objects are served from.
	// Empty falls back to the bucket endpoint.
	PublicBaseURL string
	PathStyle     bool
}

// S3Uploader implements Uploader on S3-compatible object storage. Object
// keys follow <resourceType>/<folder>/<publicId>[.<format>] so raw and image
// objects never collide, and PutObject gives the required overwrite
// semantics for colliding public ids.
type S3Uploader struct {
	client *s3.Client
	cfg    S3Config
}

// NewS3Uploader validates the config and builds the client.
func NewS3Uploader(cfg S3Config) (*S3Uploader, error) {
	if cfg.Bucket == "" || cfg.Region == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, fmt.Errorf("incomplete media config: bucket/region/access_key_id/secret_access_key are required")
	}

	opts := s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
		UsePathStyle: cfg.PathStyle,
	}
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		opts.BaseEndpoint = aws.String(strings.TrimSuffix(endpoint, "/"))
		// Most S3-compatible hosts only route path-style requests.
		opts.UsePathStyle = true
	}

	return &S3Uploader{client: s3.New(opts), cfg: cfg}, nil
}

// Upload stores data under the derived object key and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, data []byte, opts Options) (string, error) {
	key := u.objectKey(opts)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentTypeFor(opts)),
	})
	if err != nil {
		return "", fmt.Errorf("media upload: %w", err)
	}
	return u.PublicURL(key), nil
}

// objectKey derives the storage key from the upload options.
func (u *S3Uploader) objectKey(opts Options) string {
	resource := opts.ResourceType
	if resource == "" {
		resource = ResourceImage
	}
	id := strings.TrimSpace(opts.PublicID)
	if id == "" {
		id = uuid.NewString()
	}
	if opts.Format != "" && !strings.HasSuffix(id, "."+opts.Format) {
		id += "." + opts.Format
	}
	segments := []string{resource}
	if folder := normalizeFolder(opts.Folder); folder != "" {
		segments = append(segments, folder)
	}
	segments = append(segments, id)
	return strings.Join(segments, "/")
}

// PublicURL resolves the serving URL for a stored object key.
func (u *S3Uploader) PublicURL(key string) string {
	if u.cfg.PublicBaseURL != "" {
		return strings.TrimSuffix(u.cfg.PublicBaseURL, "/") + "/" + key
	}
	if u.cfg.Endpoint != "" {
		endpoint := strings.TrimSuffix(u.cfg.Endpoint, "/")
		if !strings.HasPrefix(endpoint, "http") {
			endpoint = "https://" + endpoint
		}
		return fmt.Sprintf("%s/%s/%s", endpoint, u.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, key)
}

func normalizeFolder(folder string) string {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	for strings.Contains(folder, "//") {
		folder = strings.ReplaceAll(folder, "//", "/")
	}
	return folder
}

func contentTypeFor(opts Options) string {
	if opts.Format != "" {
		if ct := mime.TypeByExtension("." + opts.Format); ct != "" {
			return ct
		}
	}
	if opts.ResourceType == ResourceRaw {
		return "application/octet-stream"
	}
	return "image/jpeg"
}
