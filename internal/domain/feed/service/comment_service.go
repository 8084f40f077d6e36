package service

import (
	"context"
	"errors"

	"social_feed/internal/domain/feed/model"
	"social_feed/internal/domain/feed/repository"
	"social_feed/internal/pkg/authctx"
	"social_feed/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CommentService 评论；comments_count 由触发器维护
type CommentService interface {
	CreateComment(ctx context.Context, params model.CreateCommentParams) (*model.FeedComment, error)
	UpdateComment(ctx context.Context, commentID int64, content string) (*model.FeedComment, error)
	DeleteComment(ctx context.Context, commentID int64) error
	GetComments(ctx context.Context, feedID int64) ([]model.FeedCommentWithProfile, error)
	GetComment(ctx context.Context, commentID int64) (*model.FeedCommentWithProfile, error)
}

type commentService struct {
	repo  repository.CommentRepository
	guard authctx.Guard
}

func NewCommentService(repo repository.CommentRepository, guard authctx.Guard) CommentService {
	return &commentService{repo: repo, guard: guard}
}

func (s *commentService) CreateComment(ctx context.Context, params model.CreateCommentParams) (*model.FeedComment, error) {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}

	row := &model.FeedCommentRow{
		FeedID:          params.FeedID,
		UserID:          acc.ID,
		ParentCommentID: params.ParentCommentID,
		Content:         params.Content,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	c := model.MapFeedComment(*row)
	return &c, nil
}

// UpdateComment 只有作者本人可以修改
func (s *commentService) UpdateComment(ctx context.Context, commentID int64, content string) (*model.FeedComment, error) {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}

	owner, err := s.repo.GetOwnerID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if owner != acc.ID {
		logger.Log.Warn("comment update rejected", zap.Int64("comment_id", commentID), zap.String("user_id", acc.ID))
		return nil, ErrUpdateCommentForbidden
	}

	row, err := s.repo.UpdateContent(ctx, commentID, content)
	if err != nil {
		return nil, err
	}
	c := model.MapFeedComment(*row)
	return &c, nil
}

// DeleteComment 只有作者本人可以删除
func (s *commentService) DeleteComment(ctx context.Context, commentID int64) error {
	acc, err := s.guard.RequireCurrentAccount(ctx)
	if err != nil {
		return err
	}

	owner, err := s.repo.GetOwnerID(ctx, commentID)
	if err != nil {
		return err
	}
	if owner != acc.ID {
		logger.Log.Warn("comment delete rejected", zap.Int64("comment_id", commentID), zap.String("user_id", acc.ID))
		return ErrDeleteCommentForbidden
	}

	return s.repo.Delete(ctx, commentID)
}

// GetComments 返回两级评论树，一级评论与回复均按创建时间正序
func (s *commentService) GetComments(ctx context.Context, feedID int64) ([]model.FeedCommentWithProfile, error) {
	rows, err := s.repo.ListByFeed(ctx, feedID)
	if err != nil {
		return nil, err
	}

	comments := make([]model.FeedCommentWithProfile, 0, len(rows))
	for _, r := range rows {
		comments = append(comments, model.MapFeedCommentWithProfile(r))
	}
	return model.BuildCommentTree(comments), nil
}

func (s *commentService) GetComment(ctx context.Context, commentID int64) (*model.FeedCommentWithProfile, error) {
	row, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	c := model.MapFeedCommentWithProfile(*row)
	return &c, nil
}
