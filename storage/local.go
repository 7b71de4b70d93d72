package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local writes uploads under a directory that the HTTP server exposes as
// static files (gin r.Static on /uploads).
type Local struct {
	Dir       string
	PublicURL string // e.g. "/uploads"
}

func NewLocal(dir, publicURL string) *Local {
	return &Local{Dir: dir, PublicURL: strings.TrimSuffix(publicURL, "/")}
}

func (l *Local) Upload(ctx context.Context, name, contentType string, size int64, r io.Reader) (string, error) {
	ext, err := ValidateImage(contentType, size)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return "", err
	}
	filename := name + ext
	path := filepath.Join(l.Dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(r, MaxUploadSize+1)); err != nil {
		os.Remove(path)
		return "", err
	}
	return fmt.Sprintf("%s/%s", l.PublicURL, filename), nil
}

func (l *Local) Delete(ctx context.Context, url string) error {
	base := filepath.Base(url)
	if base == "." || base == "/" {
		return fmt.Errorf("invalid image url: %s", url)
	}
	return os.Remove(filepath.Join(l.Dir, base))
}
