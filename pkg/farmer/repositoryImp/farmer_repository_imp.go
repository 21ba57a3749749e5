package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"cropadvisor/entities"
	"cropadvisor/pkg/farmer/repository"
)

type farmerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmerRepository { return &farmerRepo{db} }

func (r *farmerRepo) Create(ctx context.Context, f *entities.Farmer) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *farmerRepo) FindByID(ctx context.Context, id uint) (*entities.Farmer, error) {
	var f entities.Farmer
	if err := r.db.WithContext(ctx).Where("farmer_id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmerRepo) FindByPhone(ctx context.Context, phone string) (*entities.Farmer, error) {
	var f entities.Farmer
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.Farmer{}).Count(&n).Error
	return n, err
}
