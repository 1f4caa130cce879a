package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airecruiter/resume-screener/internal/models"
)

type fakeStorage struct {
	saveErr error
	saved   []string
	deleted []string
}

func (f *fakeStorage) SaveFile(file *multipart.FileHeader, fileType string) (string, string, error) {
	if f.saveErr != nil {
		return "", "", f.saveErr
	}
	filename := "stored-" + file.Filename
	f.saved = append(f.saved, filename)
	return filename, "/uploads/" + fileType + "/" + filename, nil
}

func (f *fakeStorage) DeleteFile(filename string) error {
	f.deleted = append(f.deleted, filename)
	return nil
}

func (f *fakeStorage) GetFilePath(filename string) string {
	return filename
}

func (f *fakeStorage) EnsureUploadDir() error {
	return nil
}

func newUploadTestEnv(storage *fakeStorage, maxFileSize int64) (*fiber.App, *fakeDocRepo) {
	app := fiber.New()
	docRepo := newFakeDocRepo()
	h := NewUploadHandler(docRepo, storage, maxFileSize)
	app.Post("/api/v1/upload", h.HandleUpload)
	return app, docRepo
}

func multipartUpload(t *testing.T, fileType string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("file_type", fileType))
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadStoresDocuments(t *testing.T) {
	storage := &fakeStorage{}
	app, docRepo := newUploadTestEnv(storage, 1<<20)

	body, contentType := multipartUpload(t, models.FileTypeResume, map[string][]byte{
		"alice.pdf": []byte("%PDF-1.4 fake"),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result struct {
		Documents []models.UploadResponse `json:"documents"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Documents, 1)
	assert.Equal(t, "alice.pdf", result.Documents[0].OriginalName)
	assert.Equal(t, models.FileTypeResume, result.Documents[0].FileType)

	assert.Len(t, docRepo.docs, 1)
	assert.Equal(t, []string{"stored-alice.pdf"}, storage.saved)
}

func TestUploadRejectsUnknownFileType(t *testing.T) {
	app, docRepo := newUploadTestEnv(&fakeStorage{}, 1<<20)

	body, contentType := multipartUpload(t, "cover_letter", map[string][]byte{
		"alice.pdf": []byte("data"),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, docRepo.docs)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	app, _ := newUploadTestEnv(&fakeStorage{}, 8)

	body, contentType := multipartUpload(t, models.FileTypeJD, map[string][]byte{
		"jd.pdf": []byte("this payload is larger than eight bytes"),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadStorageFailure(t *testing.T) {
	app, docRepo := newUploadTestEnv(&fakeStorage{saveErr: errors.New("disk full")}, 1<<20)

	body, contentType := multipartUpload(t, models.FileTypeJD, map[string][]byte{
		"jd.pdf": []byte("data"),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, docRepo.docs)
}

func TestUploadRequiresFiles(t *testing.T) {
	app, _ := newUploadTestEnv(&fakeStorage{}, 1<<20)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("file_type", models.FileTypeJD))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
