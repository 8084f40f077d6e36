package repository

import (
	"context"

	"social_feed/internal/domain/follow/model"
	profileModel "social_feed/internal/domain/profile/model"
	"social_feed/pkg/utils"

	"gorm.io/gorm"
)

// FollowRepository 关注关系的读操作；写操作通过存储过程完成
type FollowRepository interface {
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	FollowingIDs(ctx context.Context, followerID string, userIDs []string) ([]string, error)
	ListFollowers(ctx context.Context, userID string, p utils.Pagination) ([]model.FollowRow, error)
	ListFollowings(ctx context.Context, userID string, p utils.Pagination) ([]model.FollowRow, error)
	Counts(ctx context.Context, userID string) (*model.FollowCounts, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FollowRow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// FollowingIDs 返回 userIDs 中 followerID 已关注的子集
func (r *followRepository) FollowingIDs(ctx context.Context, followerID string, userIDs []string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.FollowRow{}).
		Where("follower_id = ? AND following_id IN ?", followerID, userIDs).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ListFollowers 关注 userID 的人，附带关注者资料
func (r *followRepository) ListFollowers(ctx context.Context, userID string, p utils.Pagination) ([]model.FollowRow, error) {
	var rows []model.FollowRow
	err := r.db.WithContext(ctx).
		Preload("FollowerProfile").
		Where("following_id = ?", userID).
		Order("created_at desc").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListFollowings userID 关注的人，附带被关注者资料
func (r *followRepository) ListFollowings(ctx context.Context, userID string, p utils.Pagination) ([]model.FollowRow, error) {
	var rows []model.FollowRow
	err := r.db.WithContext(ctx).
		Preload("FollowingProfile").
		Where("follower_id = ?", userID).
		Order("created_at desc").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Counts 读取资料表上的计数，资料不存在时返回 gorm.ErrRecordNotFound
func (r *followRepository) Counts(ctx context.Context, userID string) (*model.FollowCounts, error) {
	var row profileModel.ProfileRow
	err := r.db.WithContext(ctx).
		Select("follower_count", "following_count").
		Where("user_id = ?", userID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &model.FollowCounts{
		FollowerCount:  row.FollowerCount,
		FollowingCount: row.FollowingCount,
	}, nil
}
