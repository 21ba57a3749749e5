package repository

import (
	"context"

	"cropadvisor/entities"
)

type FarmerRepository interface {
	Create(ctx context.Context, f *entities.Farmer) error
	FindByID(ctx context.Context, id uint) (*entities.Farmer, error)
	FindByPhone(ctx context.Context, phone string) (*entities.Farmer, error)
	Count(ctx context.Context) (int64, error)
}
