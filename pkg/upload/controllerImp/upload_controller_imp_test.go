package controllerImp

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/entities"
	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/upload/service"
)

type stubService struct {
	gotPurpose, gotCrop, gotFilename string
}

func (s *stubService) Accept(_ context.Context, purpose string, fh *multipart.FileHeader, crop string) (*service.Accepted, error) {
	s.gotPurpose, s.gotCrop, s.gotFilename = purpose, crop, fh.Filename
	return &service.Accepted{Record: entities.UploadRecord{ID: "id-1", Filename: fh.Filename, Size: fh.Size, ContentType: "image/jpeg"}}, nil
}

func (s *stubService) Get(_ context.Context, id string) (*entities.UploadRecord, error) {
	return &entities.UploadRecord{ID: id}, nil
}

func (s *stubService) SetResult(context.Context, string, string) error { return nil }

func multipartRequest(t *testing.T, withFile bool) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("cropType", "rice"))
	if withFile {
		fw, err := w.CreateFormFile("image", "paddy.jpg")
		require.NoError(t, err)
		_, err = fw.Write([]byte{0xff, 0xd8, 0xff})
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestImage(t *testing.T) {
	s := &stubService{}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(multipartRequest(t, true), rec)

	require.NoError(t, New(s).Image(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, entities.UploadGeneral, s.gotPurpose)
	assert.Equal(t, "rice", s.gotCrop)
	assert.Equal(t, "paddy.jpg", s.gotFilename)

	var resp struct {
		Success bool                  `json:"success"`
		Message string                `json:"message"`
		File    entities.UploadRecord `json:"file"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Image uploaded successfully", resp.Message)
	assert.Equal(t, "id-1", resp.File.ID)
	assert.Equal(t, int64(3), resp.File.Size)
}

func TestImageMissingFile(t *testing.T) {
	c := echo.New().NewContext(multipartRequest(t, false), httptest.NewRecorder())
	err := New(&stubService{}).Image(c)
	assert.True(t, agronomy.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "No image uploaded")
}
