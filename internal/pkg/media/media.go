// Package media wraps the remote media host. Uploaded bytes become publicly
// served URLs; the host is treated as an opaque service and failures
// propagate to the caller without retries or local fallback storage.
package media

import "context"

// Resource types understood by the media host. Images go through the host's
// image pipeline; raw bypasses it, which is required for PDFs because the
// image pipeline corrupts non-image binaries.
const (
	ResourceImage = "image"
	ResourceRaw   = "raw"
)

// Options controls where and how an uploaded object is stored.
type Options struct {
	// Folder is the logical folder under the configured root, e.g.
	// "portfolio/projects".
	Folder string
	// PublicID names the stored object. Empty means the adapter picks a
	// collision-free id. A colliding id overwrites the existing object.
	PublicID string
	// ResourceType is ResourceImage or ResourceRaw; empty means image.
	ResourceType string
	// Format is the file extension recorded on the object, without the dot.
	Format string
}

// Uploader stores a byte buffer on the media host and returns its permanent
// public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, opts Options) (string, error)
}
