package repository

import (
	"context"

	"social_feed/internal/domain/feed/model"
	"social_feed/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeedRepository interface {
	List(ctx context.Context, p utils.Pagination) ([]model.FeedRow, error)
	ListByUser(ctx context.Context, userID string, p utils.Pagination) ([]model.FeedRow, error)
	GetByID(ctx context.Context, id int64) (*model.FeedRow, error)
	GetOwnerID(ctx context.Context, id int64) (string, error)
	Create(ctx context.Context, row *model.FeedRow) error
	UpdateCaption(ctx context.Context, id int64, caption string) (*model.FeedRow, error)
	Delete(ctx context.Context, id int64) error
}

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

// List 按创建时间倒序，附带作者资料
func (r *feedRepository) List(ctx context.Context, p utils.Pagination) ([]model.FeedRow, error) {
	var rows []model.FeedRow
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Order("created_at desc").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *feedRepository) ListByUser(ctx context.Context, userID string, p utils.Pagination) ([]model.FeedRow, error) {
	var rows []model.FeedRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *feedRepository) GetByID(ctx context.Context, id int64) (*model.FeedRow, error) {
	var row model.FeedRow
	if err := r.db.WithContext(ctx).Preload("Profile").Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// GetOwnerID 只查询 user_id，用于修改/删除前的归属检查
func (r *feedRepository) GetOwnerID(ctx context.Context, id int64) (string, error) {
	var row model.FeedRow
	if err := r.db.WithContext(ctx).Select("user_id").Where("id = ?", id).Take(&row).Error; err != nil {
		return "", err
	}
	return row.UserID, nil
}

func (r *feedRepository) Create(ctx context.Context, row *model.FeedRow) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.Returning{}).Create(row).Error
}

func (r *feedRepository) UpdateCaption(ctx context.Context, id int64, caption string) (*model.FeedRow, error) {
	var row model.FeedRow
	res := r.db.WithContext(ctx).Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("caption", caption)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// Delete 评论、点赞、收藏、分享由外键级联删除
func (r *feedRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FeedRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
