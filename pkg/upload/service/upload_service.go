package service

import (
	"context"
	"errors"
	"mime/multipart"

	"cropadvisor/entities"
)

var ErrTooLarge = errors.New("upload exceeds size limit")

// Accepted is a stored upload record plus the bytes that were read.
type Accepted struct {
	Record entities.UploadRecord
	Data   []byte
}

type UploadService interface {
	Accept(ctx context.Context, purpose string, fh *multipart.FileHeader, cropType string) (*Accepted, error)
	Get(ctx context.Context, id string) (*entities.UploadRecord, error)
	SetResult(ctx context.Context, id, result string) error
}
