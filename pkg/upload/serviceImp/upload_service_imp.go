package serviceImp

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cropadvisor/entities"
	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/upload/repository"
	"cropadvisor/pkg/upload/service"
)

type Recorder interface {
	RecordUpload(purpose string)
}

type uploadSvc struct {
	r        repository.UploadRepository
	maxBytes int64
	rec      Recorder
	now      func() time.Time
}

func New(r repository.UploadRepository, maxBytes int64, rec Recorder) service.UploadService {
	return &uploadSvc{r: r, maxBytes: maxBytes, rec: rec, now: time.Now}
}

func (s *uploadSvc) Accept(ctx context.Context, purpose string, fh *multipart.FileHeader, cropType string) (*service.Accepted, error) {
	if fh == nil {
		return nil, agronomy.InvalidInput("No image uploaded")
	}
	if fh.Size > s.maxBytes {
		return nil, s.tooLarge()
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, s.tooLarge()
	}

	ct := contentType(fh.Header.Get(echo.HeaderContentType), data)
	if !strings.HasPrefix(ct, "image/") {
		return nil, agronomy.InvalidInput("Only image files are allowed")
	}

	sum := sha256.Sum256(data)
	rec := entities.UploadRecord{
		ID:          uuid.NewString(),
		Purpose:     purpose,
		Filename:    filepath.Base(fh.Filename),
		ContentType: ct,
		Size:        int64(len(data)),
		SHA256:      hex.EncodeToString(sum[:]),
		CropType:    strings.ToLower(strings.TrimSpace(cropType)),
		CreatedAt:   s.now(),
	}
	if err := s.r.Create(ctx, &rec); err != nil {
		return nil, fmt.Errorf("record upload: %w", err)
	}
	s.rec.RecordUpload(purpose)
	return &service.Accepted{Record: rec, Data: data}, nil
}

func (s *uploadSvc) tooLarge() error {
	return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
		fmt.Sprintf("image exceeds %d byte limit", s.maxBytes)).SetInternal(service.ErrTooLarge)
}

// contentType trusts the declared part type and sniffs only when the
// client sent none or a generic one.
func contentType(declared string, data []byte) string {
	if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != "application/octet-stream" {
		return mt
	}
	mt, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mt
}

func (s *uploadSvc) Get(ctx context.Context, id string) (*entities.UploadRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, agronomy.InvalidInput("invalid upload id %q", id)
	}
	return s.r.FindByID(ctx, id)
}

func (s *uploadSvc) SetResult(ctx context.Context, id, result string) error {
	return s.r.SetResult(ctx, id, result)
}
