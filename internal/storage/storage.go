// Package storage persists uploaded license images on the local filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"fleetrent-backend/internal/domain"
)

// Service writes an uploaded image and returns the path to store on the
// driver record.
type Service interface {
	Upload(ctx context.Context, r io.Reader, fileName, contentType string) (string, error)
}

// LocalStorage keeps uploads under a single directory. Only PNG and BMP
// license images are accepted.
type LocalStorage struct {
	uploadsDir string
	log        *slog.Logger
}

func NewLocalStorage(uploadsDir string, log *slog.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, domain.ErrUploadDirUnavailable
	}
	return &LocalStorage{uploadsDir: uploadsDir, log: log}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, r io.Reader, fileName, contentType string) (string, error) {
	ext, err := imageExtension(contentType)
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	fullPath := filepath.Join(s.uploadsDir, name)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", classifyIOError(err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(fullPath)
		return "", classifyIOError(err)
	}

	s.log.Debug("license image stored", "path", fullPath)
	return filepath.ToSlash(filepath.Join(filepath.Base(s.uploadsDir), name)), nil
}

// imageExtension admits uploads by declared content type only; the client's
// file name carries no weight.
func imageExtension(contentType string) (string, error) {
	switch contentType {
	case "image/png":
		return ".png", nil
	case "image/bmp", "image/x-bmp", "image/x-ms-bmp":
		return ".bmp", nil
	}
	return "", domain.ErrUnsupportedImageType
}

func classifyIOError(err error) error {
	switch {
	case os.IsPermission(err):
		return domain.ErrUploadPermission
	case os.IsNotExist(err):
		return domain.ErrUploadDirNotFound
	default:
		return fmt.Errorf("%w: %v", domain.ErrUploadIOFailure, err)
	}
}
