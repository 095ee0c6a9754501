package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smart-agroconnect/api/internal/domain/apperror"
	"github.com/smart-agroconnect/api/internal/domain/contract"
	"github.com/smart-agroconnect/api/internal/infrastructure/metrics"
)

const (
	// MaxFileSize is the per-file upload limit (5 MiB).
	MaxFileSize = 5 * 1024 * 1024

	profilesDir  = "profiles"
	documentsDir = "documents"

	fieldProfileImage = "profileImage"
)

// LocalStore persists uploads on the local filesystem. Profile images go to
// the profiles area, every other document type to the documents area.
type LocalStore struct {
	root string
}

var _ contract.IFileStore = (*LocalStore)(nil)

// NewLocalStore creates a store rooted at root (e.g. "uploads").
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// EnsureDirs creates the storage areas. Idempotent; called once at bootstrap.
func (s *LocalStore) EnsureDirs() error {
	for _, dir := range []string{profilesDir, documentsDir} {
		if err := os.MkdirAll(filepath.Join(s.root, dir), 0o755); err != nil {
			return fmt.Errorf("failed to create upload directory %s: %w", dir, err)
		}
	}
	return nil
}

// Save validates and writes the upload, returning the forward-slash relative
// path that gets stored on the owning record.
func (s *LocalStore) Save(field string, file *multipart.FileHeader) (string, error) {
	if file.Size > MaxFileSize {
		return "", apperror.New(apperror.ErrPayloadTooLarge, "File too large. Max size is 5MB.")
	}
	if err := validateMediaType(field, file.Header.Get("Content-Type")); err != nil {
		return "", err
	}

	area := documentsDir
	if field == fieldProfileImage {
		area = profilesDir
	}

	// {field}-{timestamp}-{random}{ext}: unique even for concurrent uploads
	// of the same field.
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixNano(), uuid.New().String()[:8], ext)
	fullPath := filepath.Join(s.root, area, name)

	src, err := file.Open()
	if err != nil {
		return "", apperror.Wrap(apperror.ErrInternal, fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", apperror.Wrap(apperror.ErrInternal, fmt.Errorf("failed to create destination file: %w", err))
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apperror.Wrap(apperror.ErrInternal, fmt.Errorf("failed to save file: %w", err))
	}

	metrics.UploadsStored.Inc()
	return filepath.ToSlash(fullPath), nil
}

// Delete removes a previously stored file. A missing file is not an error.
func (s *LocalStore) Delete(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(filepath.FromSlash(path)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// validateMediaType enforces the per-field MIME policy: profile images must
// be images, all other documents may be images or PDFs.
func validateMediaType(field, contentType string) error {
	if field == fieldProfileImage {
		if !strings.HasPrefix(contentType, "image/") {
			return apperror.New(apperror.ErrUnsupportedMedia, "Profile image must be an image file")
		}
		return nil
	}
	if !strings.HasPrefix(contentType, "image/") && contentType != "application/pdf" {
		return apperror.New(apperror.ErrUnsupportedMedia, "Documents must be image or PDF files")
	}
	return nil
}
