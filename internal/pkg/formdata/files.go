package formdata

import (
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
)

const maxFormMemory = 32 << 20

// Parse reads the request body as a multipart form, falling back to a plain
// urlencoded form when no multipart boundary is present. Returns the text
// fields and the file headers by field name.
func Parse(r *http.Request) (url.Values, map[string][]*multipart.FileHeader) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		_ = r.ParseForm()
		return r.PostForm, nil
	}
	return url.Values(r.MultipartForm.Value), r.MultipartForm.File
}

// File is one uploaded multipart file, fully buffered. Uploads are small
// (images and PDFs) and the media host wants a complete byte buffer.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Ext returns the lowercased filename extension without the dot.
func (f File) Ext() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(f.Name)), ".")
}

// BaseName returns the filename without directory or extension.
func (f File) BaseName() string {
	base := filepath.Base(f.Name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsPDF reports whether the file was submitted as a PDF.
func (f File) IsPDF() bool {
	return f.ContentType == "application/pdf"
}

// IsImage reports whether the MIME type is one of the accepted image
// formats.
func (f File) IsImage() bool {
	switch f.ContentType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp", "image/avif":
		return true
	}
	return false
}

// SingleFile buffers the first file submitted under the given field, or nil
// when the form carries none.
func SingleFile(files map[string][]*multipart.FileHeader, field string) (*File, error) {
	headers := files[field]
	if len(headers) == 0 {
		return nil, nil
	}
	f, err := open(headers[0])
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// OpenAll buffers the given multipart file headers.
func OpenAll(headers []*multipart.FileHeader) ([]File, error) {
	files := make([]File, 0, len(headers))
	for _, fh := range headers {
		f, err := open(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func open(fh *multipart.FileHeader) (File, error) {
	src, err := fh.Open()
	if err != nil {
		return File{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return File{}, err
	}
	return File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
