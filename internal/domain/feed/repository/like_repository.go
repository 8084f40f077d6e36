package repository

import (
	"context"

	"social_feed/internal/domain/feed/model"
	"social_feed/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	Create(ctx context.Context, row *model.FeedLikeRow) error
	Delete(ctx context.Context, feedID int64, userID string) error
	Exists(ctx context.Context, feedID int64, userID string) (bool, error)
	LikedFeedIDs(ctx context.Context, userID string, feedIDs []int64) ([]int64, error)
	ListByUser(ctx context.Context, userID string, p utils.Pagination) ([]model.FeedLikeRow, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create 重复点赞时返回唯一约束错误
func (r *likeRepository) Create(ctx context.Context, row *model.FeedLikeRow) error {
	return r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(row).Error
}

func (r *likeRepository) Delete(ctx context.Context, feedID int64, userID string) error {
	return r.db.WithContext(ctx).
		Where("feed_id = ? AND user_id = ?", feedID, userID).
		Delete(&model.FeedLikeRow{}).Error
}

func (r *likeRepository) Exists(ctx context.Context, feedID int64, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FeedLikeRow{}).
		Where("feed_id = ? AND user_id = ?", feedID, userID).
		Count(&count).Error
	return count > 0, err
}

// LikedFeedIDs 返回 feedIDs 中该用户已点赞的子集
func (r *likeRepository) LikedFeedIDs(ctx context.Context, userID string, feedIDs []int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.FeedLikeRow{}).
		Where("user_id = ? AND feed_id IN ?", userID, feedIDs).
		Pluck("feed_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *likeRepository) ListByUser(ctx context.Context, userID string, p utils.Pagination) ([]model.FeedLikeRow, error) {
	var rows []model.FeedLikeRow
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
