package service

import (
	"context"

	"social_feed/internal/domain/feed/model"
	"social_feed/internal/domain/feed/repository"
	"social_feed/internal/pkg/authctx"
	"social_feed/pkg/database"
	"social_feed/pkg/utils"
)

// LikeService 点赞
type LikeService interface {
	LikeFeed(ctx context.Context, feedID int64) (*model.FeedLike, error)
	UnlikeFeed(ctx context.Context, feedID int64) error
	IsLiked(ctx context.Context, feedID int64) (bool, error)
	AreLiked(ctx context.Context, feedIDs []int64) (map[int64]bool, error)
	GetLikedFeeds(ctx context.Context, p utils.Pagination) ([]model.FeedLike, error)
}

type likeService struct {
	repo  repository.LikeRepository
	guard authctx.Guard
}

func NewLikeService(repo repository.LikeRepository, guard authctx.Guard) LikeService {
	return &likeService{repo: repo, guard: guard}
}

// LikeFeed 重复点赞返回 ErrAlreadyLiked；likes_count 由触发器维护
func (s *likeService) LikeFeed(ctx context.Context, feedID int64) (*model.FeedLike, error) {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}

	row := &model.FeedLikeRow{FeedID: feedID, UserID: acc.ID}
	if err := s.repo.Create(ctx, row); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}
	like := model.MapFeedLike(*row)
	return &like, nil
}

func (s *likeService) UnlikeFeed(ctx context.Context, feedID int64) error {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, feedID, acc.ID)
}

// IsLiked 匿名用户返回 false
func (s *likeService) IsLiked(ctx context.Context, feedID int64) (bool, error) {
	acc, err := s.guard.ResolveCurrentAccount(ctx)
	if err != nil || acc == nil {
		return false, err
	}
	return s.repo.Exists(ctx, feedID, acc.ID)
}

// AreLiked 返回的 map 恰好包含 feedIDs 中的每个 id；匿名用户或空输入返回空 map 且不查询
func (s *likeService) AreLiked(ctx context.Context, feedIDs []int64) (map[int64]bool, error) {
	acc, err := s.guard.ResolveCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}
	if acc == nil || len(feedIDs) == 0 {
		return map[int64]bool{}, nil
	}

	liked, err := s.repo.LikedFeedIDs(ctx, acc.ID, feedIDs)
	if err != nil {
		return nil, err
	}
	return membership(feedIDs, liked), nil
}

func (s *likeService) GetLikedFeeds(ctx context.Context, p utils.Pagination) ([]model.FeedLike, error) {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByUser(ctx, acc.ID, p.Normalize())
	if err != nil {
		return nil, err
	}
	return model.MapFeedLikes(rows), nil
}

// membership 所有 id 默认为 false，命中的置为 true
func membership(ids, hits []int64) map[int64]bool {
	out := make(map[int64]bool, len(ids))
	for _, id := range ids {
		out[id] = false
	}
	for _, id := range hits {
		if _, ok := out[id]; ok {
			out[id] = true
		}
	}
	return out
}
