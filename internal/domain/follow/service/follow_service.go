package service

import (
	"context"
	"errors"
	"strings"

	"social_feed/internal/domain/follow/model"
	"social_feed/internal/domain/follow/repository"
	"social_feed/internal/pkg/authctx"
	"social_feed/pkg/database"
	"social_feed/pkg/logger"
	"social_feed/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FollowService 关注关系
type FollowService interface {
	Follow(ctx context.Context, targetID string) error
	Unfollow(ctx context.Context, targetID string) error
	IsFollowing(ctx context.Context, targetID string) (bool, error)
	AreFollowing(ctx context.Context, userIDs []string) (map[string]bool, error)
	GetFollowers(ctx context.Context, p utils.Pagination) ([]model.FollowWithProfile, error)
	GetFollowings(ctx context.Context, p utils.Pagination) ([]model.FollowWithProfile, error)
	GetFollowCounts(ctx context.Context, userID string) (*model.FollowCounts, error)
}

type followService struct {
	repo  repository.FollowRepository
	procs database.ProcedureCaller
	guard authctx.Guard
}

func NewFollowService(repo repository.FollowRepository, procs database.ProcedureCaller, guard authctx.Guard) FollowService {
	return &followService{repo: repo, procs: procs, guard: guard}
}

// Follow 关注关系与双方计数在存储过程中一次完成
func (s *followService) Follow(ctx context.Context, targetID string) error {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return err
	}
	if err := s.procs.Call(ctx, database.ProcFollowUser, acc.ID, targetID); err != nil {
		return translateProcError(err)
	}
	logger.Log.Debug("user followed", zap.String("follower_id", acc.ID), zap.String("following_id", targetID))
	return nil
}

func (s *followService) Unfollow(ctx context.Context, targetID string) error {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return err
	}
	if err := s.procs.Call(ctx, database.ProcUnfollowUser, acc.ID, targetID); err != nil {
		return translateProcError(err)
	}
	logger.Log.Debug("user unfollowed", zap.String("follower_id", acc.ID), zap.String("following_id", targetID))
	return nil
}

// translateProcError 存储过程用 RAISE EXCEPTION 报告业务错误
func translateProcError(err error) error {
	msg := database.ErrorMessage(err)
	switch {
	case strings.Contains(msg, "Already following"):
		return ErrAlreadyFollowing
	case strings.Contains(msg, "Cannot follow yourself"):
		return ErrCannotFollowSelf
	case strings.Contains(msg, "Not following"):
		return ErrNotFollowing
	}
	return err
}

// IsFollowing 匿名用户返回 false
func (s *followService) IsFollowing(ctx context.Context, targetID string) (bool, error) {
	acc, err := s.guard.ResolveCurrentAccount(ctx)
	if err != nil || acc == nil {
		return false, err
	}
	return s.repo.Exists(ctx, acc.ID, targetID)
}

// AreFollowing 匿名用户或空输入返回空 map 且不查询
func (s *followService) AreFollowing(ctx context.Context, userIDs []string) (map[string]bool, error) {
	acc, err := s.guard.ResolveCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}
	if acc == nil || len(userIDs) == 0 {
		return map[string]bool{}, nil
	}

	hits, err := s.repo.FollowingIDs(ctx, acc.ID, userIDs)
	if err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		out[id] = false
	}
	for _, id := range hits {
		if _, ok := out[id]; ok {
			out[id] = true
		}
	}
	return out, nil
}

func (s *followService) GetFollowers(ctx context.Context, p utils.Pagination) ([]model.FollowWithProfile, error) {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListFollowers(ctx, acc.ID, p.Normalize())
	if err != nil {
		return nil, err
	}
	return model.MapFollowsWithProfile(rows), nil
}

func (s *followService) GetFollowings(ctx context.Context, p utils.Pagination) ([]model.FollowWithProfile, error) {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListFollowings(ctx, acc.ID, p.Normalize())
	if err != nil {
		return nil, err
	}
	return model.MapFollowsWithProfile(rows), nil
}

// GetFollowCounts userID 为空时查询当前用户。
// 资料不存在时返回 nil, nil 而不是报错，由调用方决定是否视为 404（handler 返回 "Profile not found"）。
func (s *followService) GetFollowCounts(ctx context.Context, userID string) (*model.FollowCounts, error) {
	if userID == "" {
		acc, err := s.guard.RequireCurrentAccount(ctx)
		if err != nil {
			return nil, err
		}
		userID = acc.ID
	}

	counts, err := s.repo.Counts(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return counts, err
}
