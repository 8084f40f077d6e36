package service

import (
	"context"
	"errors"

	"social_feed/internal/domain/feed/model"
	"social_feed/internal/domain/feed/repository"
	"social_feed/internal/pkg/authctx"
	"social_feed/pkg/logger"
	"social_feed/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FeedService 动态
type FeedService interface {
	GetFeeds(ctx context.Context, p utils.Pagination) ([]model.FeedWithProfile, error)
	GetFeed(ctx context.Context, feedID int64) (*model.FeedWithProfile, error)
	CreateFeed(ctx context.Context, params model.CreateFeedParams) (*model.Feed, error)
	UpdateFeed(ctx context.Context, feedID int64, params model.UpdateFeedParams) (*model.Feed, error)
	DeleteFeed(ctx context.Context, feedID int64) error
	GetMyFeeds(ctx context.Context, p utils.Pagination) ([]model.Feed, error)

	GetFeedsWithStatus(ctx context.Context, p utils.Pagination) ([]model.FeedWithStatus, error)
	GetFeedWithStatus(ctx context.Context, feedID int64) (*model.FeedWithStatus, error)
}

type feedService struct {
	repo   repository.FeedRepository
	guard  authctx.Guard
	status *StatusAggregator
}

func NewFeedService(repo repository.FeedRepository, guard authctx.Guard, status *StatusAggregator) FeedService {
	return &feedService{repo: repo, guard: guard, status: status}
}

// GetFeeds 按创建时间倒序，附带作者资料
func (s *feedService) GetFeeds(ctx context.Context, p utils.Pagination) ([]model.FeedWithProfile, error) {
	rows, err := s.repo.List(ctx, p.Normalize())
	if err != nil {
		return nil, err
	}
	return model.MapFeedsWithProfile(rows), nil
}

// GetFeed 不存在时返回 nil, nil
func (s *feedService) GetFeed(ctx context.Context, feedID int64) (*model.FeedWithProfile, error) {
	row, err := s.repo.GetByID(ctx, feedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	f := model.MapFeedWithProfile(*row)
	return &f, nil
}

// CreateFeed post_count 由触发器维护
func (s *feedService) CreateFeed(ctx context.Context, params model.CreateFeedParams) (*model.Feed, error) {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}

	images := params.Images
	if images == nil {
		images = []string{}
	}
	row := &model.FeedRow{
		UserID:  acc.ID,
		Images:  images,
		Caption: params.Caption,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	logger.Log.Debug("feed created", zap.Int64("feed_id", row.ID), zap.String("user_id", acc.ID))

	f := model.MapFeed(*row)
	return &f, nil
}

// UpdateFeed 先检查归属再修改；该检查只用于快速失败，最终以数据库的访问策略为准
func (s *feedService) UpdateFeed(ctx context.Context, feedID int64, params model.UpdateFeedParams) (*model.Feed, error) {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}

	owner, err := s.repo.GetOwnerID(ctx, feedID)
	if err != nil {
		return nil, err
	}
	if owner != acc.ID {
		logger.Log.Warn("feed update rejected", zap.Int64("feed_id", feedID), zap.String("user_id", acc.ID))
		return nil, ErrUpdateFeedForbidden
	}

	var caption string
	if params.Caption != nil {
		caption = *params.Caption
	}
	row, err := s.repo.UpdateCaption(ctx, feedID, caption)
	if err != nil {
		return nil, err
	}
	f := model.MapFeed(*row)
	return &f, nil
}

// DeleteFeed 关联的评论、点赞等由数据库级联删除
func (s *feedService) DeleteFeed(ctx context.Context, feedID int64) error {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return err
	}

	owner, err := s.repo.GetOwnerID(ctx, feedID)
	if err != nil {
		return err
	}
	if owner != acc.ID {
		logger.Log.Warn("feed delete rejected", zap.Int64("feed_id", feedID), zap.String("user_id", acc.ID))
		return ErrDeleteFeedForbidden
	}

	if err := s.repo.Delete(ctx, feedID); err != nil {
		return err
	}
	logger.Log.Debug("feed deleted", zap.Int64("feed_id", feedID), zap.String("user_id", acc.ID))
	return nil
}

func (s *feedService) GetMyFeeds(ctx context.Context, p utils.Pagination) ([]model.Feed, error) {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByUser(ctx, acc.ID, p.Normalize())
	if err != nil {
		return nil, err
	}
	return model.MapFeeds(rows), nil
}

func (s *feedService) GetFeedsWithStatus(ctx context.Context, p utils.Pagination) ([]model.FeedWithStatus, error) {
	feeds, err := s.GetFeeds(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.status.Attach(ctx, feeds)
}

// GetFeedWithStatus 不存在时返回 nil, nil
func (s *feedService) GetFeedWithStatus(ctx context.Context, feedID int64) (*model.FeedWithStatus, error) {
	feed, err := s.GetFeed(ctx, feedID)
	if err != nil || feed == nil {
		return nil, err
	}

	out, err := s.status.Attach(ctx, []model.FeedWithProfile{*feed})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}
