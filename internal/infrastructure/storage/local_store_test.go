package storage_test

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-agroconnect/api/internal/domain/apperror"
	"github.com/smart-agroconnect/api/internal/infrastructure/storage"
)

func fileHeader(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	require.Len(t, form.File[field], 1)
	return form.File[field][0]
}

func newStore(t *testing.T) *storage.LocalStore {
	t.Helper()
	store := storage.NewLocalStore(t.TempDir())
	require.NoError(t, store.EnsureDirs())
	return store
}

func TestSave_ProfileImage(t *testing.T) {
	store := newStore(t)

	file := fileHeader(t, "profileImage", "me.png", "image/png", []byte("png-bytes"))
	path, err := store.Save("profileImage", file)

	assert.NoError(t, err)
	assert.Contains(t, path, "/profiles/")
	assert.True(t, strings.HasSuffix(path, ".png"))

	content, err := os.ReadFile(filepath.FromSlash(path))
	assert.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), content)
}

func TestSave_DocumentGoesToDocumentsArea(t *testing.T) {
	store := newStore(t)

	file := fileHeader(t, "panCard", "pan.pdf", "application/pdf", []byte("pdf-bytes"))
	path, err := store.Save("panCard", file)

	assert.NoError(t, err)
	assert.Contains(t, path, "/documents/")
}

func TestSave_UniqueNames(t *testing.T) {
	store := newStore(t)

	file := fileHeader(t, "panCard", "pan.pdf", "application/pdf", []byte("pdf-bytes"))
	first, err := store.Save("panCard", file)
	assert.NoError(t, err)
	second, err := store.Save("panCard", file)
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSave_TooLarge(t *testing.T) {
	store := newStore(t)

	file := fileHeader(t, "panCard", "pan.pdf", "application/pdf", make([]byte, storage.MaxFileSize+1))
	_, err := store.Save("panCard", file)

	assert.True(t, errors.Is(err, apperror.ErrPayloadTooLarge))
	assert.Equal(t, "File too large. Max size is 5MB.", err.Error())
}

func TestSave_ProfileImageMustBeImage(t *testing.T) {
	store := newStore(t)

	file := fileHeader(t, "profileImage", "doc.pdf", "application/pdf", []byte("pdf-bytes"))
	_, err := store.Save("profileImage", file)

	assert.True(t, errors.Is(err, apperror.ErrUnsupportedMedia))
	assert.Equal(t, "Profile image must be an image file", err.Error())
}

func TestSave_DocumentMustBeImageOrPDF(t *testing.T) {
	store := newStore(t)

	file := fileHeader(t, "cancelledCheque", "cheque.txt", "text/plain", []byte("nope"))
	_, err := store.Save("cancelledCheque", file)

	assert.True(t, errors.Is(err, apperror.ErrUnsupportedMedia))
	assert.Equal(t, "Documents must be image or PDF files", err.Error())
}

func TestDelete(t *testing.T) {
	store := newStore(t)

	file := fileHeader(t, "panCard", "pan.pdf", "application/pdf", []byte("pdf-bytes"))
	path, err := store.Save("panCard", file)
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(path))
	_, err = os.Stat(filepath.FromSlash(path))
	assert.True(t, os.IsNotExist(err))

	// repeating the delete is fine, and so is an empty path
	assert.NoError(t, store.Delete(path))
	assert.NoError(t, store.Delete(""))
}
