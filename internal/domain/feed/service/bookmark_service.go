package service

import (
	"context"

	"social_feed/internal/domain/feed/model"
	"social_feed/internal/domain/feed/repository"
	"social_feed/internal/pkg/authctx"
	"social_feed/pkg/database"
	"social_feed/pkg/utils"
)

// BookmarkService 收藏
type BookmarkService interface {
	BookmarkFeed(ctx context.Context, feedID int64) (*model.FeedBookmark, error)
	UnbookmarkFeed(ctx context.Context, feedID int64) error
	IsBookmarked(ctx context.Context, feedID int64) (bool, error)
	AreBookmarked(ctx context.Context, feedIDs []int64) (map[int64]bool, error)
	GetBookmarkedFeeds(ctx context.Context, p utils.Pagination) ([]model.FeedBookmark, error)
}

type bookmarkService struct {
	repo  repository.BookmarkRepository
	guard authctx.Guard
}

func NewBookmarkService(repo repository.BookmarkRepository, guard authctx.Guard) BookmarkService {
	return &bookmarkService{repo: repo, guard: guard}
}

func (s *bookmarkService) BookmarkFeed(ctx context.Context, feedID int64) (*model.FeedBookmark, error) {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}

	row := &model.FeedBookmarkRow{FeedID: feedID, UserID: acc.ID}
	if err := s.repo.Create(ctx, row); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrAlreadyBookmarked
		}
		return nil, err
	}
	b := model.MapFeedBookmark(*row)
	return &b, nil
}

func (s *bookmarkService) UnbookmarkFeed(ctx context.Context, feedID int64) error {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, feedID, acc.ID)
}

func (s *bookmarkService) IsBookmarked(ctx context.Context, feedID int64) (bool, error) {
	acc, err := s.guard.ResolveCurrentAccount(ctx)
	if err != nil || acc == nil {
		return false, err
	}
	return s.repo.Exists(ctx, feedID, acc.ID)
}

func (s *bookmarkService) AreBookmarked(ctx context.Context, feedIDs []int64) (map[int64]bool, error) {
	acc, err := s.guard.ResolveCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}
	if acc == nil || len(feedIDs) == 0 {
		return map[int64]bool{}, nil
	}

	hits, err := s.repo.BookmarkedFeedIDs(ctx, acc.ID, feedIDs)
	if err != nil {
		return nil, err
	}
	return membership(feedIDs, hits), nil
}

func (s *bookmarkService) GetBookmarkedFeeds(ctx context.Context, p utils.Pagination) ([]model.FeedBookmark, error) {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByUser(ctx, acc.ID, p.Normalize())
	if err != nil {
		return nil, err
	}
	return model.MapFeedBookmarks(rows), nil
}
