package repository

import (
	"context"

	"social_feed/internal/domain/feed/model"
	"social_feed/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookmarkRepository interface {
	Create(ctx context.Context, row *model.FeedBookmarkRow) error
	Delete(ctx context.Context, feedID int64, userID string) error
	Exists(ctx context.Context, feedID int64, userID string) (bool, error)
	BookmarkedFeedIDs(ctx context.Context, userID string, feedIDs []int64) ([]int64, error)
	ListByUser(ctx context.Context, userID string, p utils.Pagination) ([]model.FeedBookmarkRow, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// Create 重复收藏时返回唯一约束错误
func (r *bookmarkRepository) Create(ctx context.Context, row *model.FeedBookmarkRow) error {
	return r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(row).Error
}

func (r *bookmarkRepository) Delete(ctx context.Context, feedID int64, userID string) error {
	return r.db.WithContext(ctx).
		Where("feed_id = ? AND user_id = ?", feedID, userID).
		Delete(&model.FeedBookmarkRow{}).Error
}

func (r *bookmarkRepository) Exists(ctx context.Context, feedID int64, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FeedBookmarkRow{}).
		Where("feed_id = ? AND user_id = ?", feedID, userID).
		Count(&count).Error
	return count > 0, err
}

// BookmarkedFeedIDs 返回 feedIDs 中该用户已收藏的子集
func (r *bookmarkRepository) BookmarkedFeedIDs(ctx context.Context, userID string, feedIDs []int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.FeedBookmarkRow{}).
		Where("user_id = ? AND feed_id IN ?", userID, feedIDs).
		Pluck("feed_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *bookmarkRepository) ListByUser(ctx context.Context, userID string, p utils.Pagination) ([]model.FeedBookmarkRow, error) {
	var rows []model.FeedBookmarkRow
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
