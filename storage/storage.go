package storage

import (
	"context"
	"io"

	"github.com/Xebarter/Manziz/apperr"
)

// MaxUploadSize caps menu images at 5MB.
const MaxUploadSize = 5 * 1024 * 1024

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Uploader stores menu images and returns a public URL for each.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, size int64, r io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// ValidateImage enforces the upload constraints before anything is written:
// JPEG/PNG/WebP only, 5MB max. Returns the file extension to store under.
func ValidateImage(contentType string, size int64) (string, error) {
	v := apperr.NewValidation()
	ext, ok := allowedTypes[contentType]
	if !ok {
		v.Add("file", "upload a valid image file (JPEG, PNG, or WebP)")
	}
	if size > MaxUploadSize {
		v.Add("file", "image size must be less than 5MB")
	}
	if err := v.OrNil(); err != nil {
		return "", err
	}
	return ext, nil
}
