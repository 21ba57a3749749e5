package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"cropadvisor/entities"
	"cropadvisor/pkg/upload/repository"
)

type uploadRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UploadRepository { return &uploadRepo{db} }

func (r *uploadRepo) Create(ctx context.Context, u *entities.UploadRecord) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *uploadRepo) FindByID(ctx context.Context, id string) (*entities.UploadRecord, error) {
	var u entities.UploadRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *uploadRepo) SetResult(ctx context.Context, id, result string) error {
	res := r.db.WithContext(ctx).Model(&entities.UploadRecord{}).Where("id = ?", id).Update("result", result)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *uploadRepo) CountByPurpose(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Purpose string
		N       int64
	}
	err := r.db.WithContext(ctx).Model(&entities.UploadRecord{}).
		Select("purpose, count(*) as n").Group("purpose").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Purpose] = row.N
	}
	return out, nil
}
