package repository

import (
	"context"

	"social_feed/internal/domain/profile/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository 用户资料仓库
type ProfileRepository interface {
	Create(ctx context.Context, row *model.ProfileRow) error
	GetByUserID(ctx context.Context, userID string) (*model.ProfileRow, error)
	ListByUserIDs(ctx context.Context, userIDs []string) ([]model.ProfileRow, error)
	Update(ctx context.Context, userID string, columns map[string]interface{}) (*model.ProfileRow, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository 创建仓库实例
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, row *model.ProfileRow) error {
	return r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(row).Error
}

// GetByUserID 不存在时返回 gorm.ErrRecordNotFound
func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*model.ProfileRow, error) {
	var row model.ProfileRow
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *profileRepository) ListByUserIDs(ctx context.Context, userIDs []string) ([]model.ProfileRow, error) {
	var rows []model.ProfileRow
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update 只更新给定列并返回更新后的行
func (r *profileRepository) Update(ctx context.Context, userID string, columns map[string]interface{}) (*model.ProfileRow, error) {
	var row model.ProfileRow
	res := r.db.WithContext(ctx).Model(&row).
		Clauses(clause.Returning{}).
		Where("user_id = ?", userID).
		Updates(columns)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
