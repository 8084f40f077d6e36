package service

import (
	"context"
	"errors"

	"social_feed/internal/domain/profile/model"
	"social_feed/internal/domain/profile/repository"
	"social_feed/internal/pkg/authctx"
	"social_feed/pkg/apperr"
	"social_feed/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrNoFieldsToUpdate = apperr.New(apperr.ErrInvalidInput, "No fields to update")

// ProfileService 用户资料服务
type ProfileService interface {
	GetUserProfile(ctx context.Context, userID string) (*model.Profile, error)
	GetUserProfiles(ctx context.Context, userIDs []string) ([]model.Profile, error)
	GetCurrentUserProfile(ctx context.Context) (*model.Profile, error)
	UpdateUserProfile(ctx context.Context, params model.UpdateProfileParams) (*model.Profile, error)
	CreateProfile(ctx context.Context, row *model.ProfileRow) (*model.Profile, error)
}

type profileService struct {
	repo  repository.ProfileRepository
	guard authctx.Guard
}

func NewProfileService(repo repository.ProfileRepository, guard authctx.Guard) ProfileService {
	return &profileService{repo: repo, guard: guard}
}

// GetUserProfile 资料不存在时返回 nil, nil
func (s *profileService) GetUserProfile(ctx context.Context, userID string) (*model.Profile, error) {
	row, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	p := model.MapProfile(*row)
	return &p, nil
}

func (s *profileService) GetUserProfiles(ctx context.Context, userIDs []string) ([]model.Profile, error) {
	if len(userIDs) == 0 {
		return []model.Profile{}, nil
	}
	rows, err := s.repo.ListByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	return model.MapProfiles(rows), nil
}

// GetCurrentUserProfile 未登录时返回 nil, nil
func (s *profileService) GetCurrentUserProfile(ctx context.Context) (*model.Profile, error) {
	acc, err := s.guard.ResolveCurrentAccount(ctx)
	if err != nil || acc == nil {
		return nil, err
	}
	return s.GetUserProfile(ctx, acc.ID)
}

// UpdateUserProfile 部分更新当前用户资料；显式 null 会把字段置空
func (s *profileService) UpdateUserProfile(ctx context.Context, params model.UpdateProfileParams) (*model.Profile, error) {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}

	cols := params.Columns()
	if len(cols) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	row, err := s.repo.Update(ctx, acc.ID, cols)
	if err != nil {
		return nil, err
	}
	logger.Log.Debug("profile updated", zap.String("user_id", acc.ID), zap.Int("fields", len(cols)))

	p := model.MapProfile(*row)
	return &p, nil
}

// CreateProfile 注册时创建资料
func (s *profileService) CreateProfile(ctx context.Context, row *model.ProfileRow) (*model.Profile, error) {
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	p := model.MapProfile(*row)
	return &p, nil
}
