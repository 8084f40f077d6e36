package repository

import (
	"context"

	"social_feed/internal/domain/feed/model"
	"social_feed/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShareRepository interface {
	Create(ctx context.Context, row *model.FeedShareRow) error
	ListByUser(ctx context.Context, userID string, p utils.Pagination) ([]model.FeedShareRow, error)
}

type shareRepository struct {
	db *gorm.DB
}

func NewShareRepository(db *gorm.DB) ShareRepository {
	return &shareRepository{db: db}
}

// Create 分享记录没有唯一约束，每次都会插入新行
func (r *shareRepository) Create(ctx context.Context, row *model.FeedShareRow) error {
	return r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(row).Error
}

func (r *shareRepository) ListByUser(ctx context.Context, userID string, p utils.Pagination) ([]model.FeedShareRow, error) {
	var rows []model.FeedShareRow
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
