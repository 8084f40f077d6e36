package service

import (
	"context"

	"social_feed/internal/domain/feed/model"
	"social_feed/internal/domain/feed/repository"
	"social_feed/internal/pkg/authctx"
	"social_feed/pkg/utils"
)

// ShareService 分享，同一用户可以多次分享同一动态
type ShareService interface {
	ShareFeed(ctx context.Context, feedID int64) (*model.FeedShare, error)
	GetSharedFeeds(ctx context.Context, p utils.Pagination) ([]model.FeedShare, error)
}

type shareService struct {
	repo  repository.ShareRepository
	guard authctx.Guard
}

func NewShareService(repo repository.ShareRepository, guard authctx.Guard) ShareService {
	return &shareService{repo: repo, guard: guard}
}

func (s *shareService) ShareFeed(ctx context.Context, feedID int64) (*model.FeedShare, error) {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}

	row := &model.FeedShareRow{FeedID: feedID, UserID: acc.ID}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	share := model.MapFeedShare(*row)
	return &share, nil
}

func (s *shareService) GetSharedFeeds(ctx context.Context, p utils.Pagination) ([]model.FeedShare, error) {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByUser(ctx, acc.ID, p.Normalize())
	if err != nil {
		return nil, err
	}
	return model.MapFeedShares(rows), nil
}
