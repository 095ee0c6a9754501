package contract

import (
	"mime/multipart"
)

// IFileStore persists uploaded documents and images with collision-free
// names and hands back the stable paths stored on user/product records.
type IFileStore interface {
	// EnsureDirs creates the storage areas. Idempotent, called once at
	// bootstrap.
	EnsureDirs() error
	// Save validates the upload for the given form field and writes it to
	// the field-appropriate area, returning the forward-slash relative path.
	Save(field string, file *multipart.FileHeader) (string, error)
	// Delete removes a previously stored file. A missing file is not an
	// error.
	Delete(path string) error
}
