package repository

import (
	"context"

	"cropadvisor/entities"
)

type UploadRepository interface {
	Create(ctx context.Context, r *entities.UploadRecord) error
	FindByID(ctx context.Context, id string) (*entities.UploadRecord, error)
	SetResult(ctx context.Context, id, result string) error
	CountByPurpose(ctx context.Context) (map[string]int64, error)
}
