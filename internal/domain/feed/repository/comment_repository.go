package repository

import (
	"context"

	"social_feed/internal/domain/feed/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	Create(ctx context.Context, row *model.FeedCommentRow) error
	GetByID(ctx context.Context, id int64) (*model.FeedCommentRow, error)
	GetOwnerID(ctx context.Context, id int64) (string, error)
	ListByFeed(ctx context.Context, feedID int64) ([]model.FeedCommentRow, error)
	UpdateContent(ctx context.Context, id int64, content string) (*model.FeedCommentRow, error)
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, row *model.FeedCommentRow) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.Returning{}).Create(row).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*model.FeedCommentRow, error) {
	var row model.FeedCommentRow
	if err := r.db.WithContext(ctx).Preload("Profile").Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *commentRepository) GetOwnerID(ctx context.Context, id int64) (string, error) {
	var row model.FeedCommentRow
	if err := r.db.WithContext(ctx).Select("user_id").Where("id = ?", id).Take(&row).Error; err != nil {
		return "", err
	}
	return row.UserID, nil
}

// ListByFeed 按创建时间正序，附带作者资料
func (r *commentRepository) ListByFeed(ctx context.Context, feedID int64) ([]model.FeedCommentRow, error) {
	var rows []model.FeedCommentRow
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("feed_id = ?", feedID).
		Order("created_at asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, id int64, content string) (*model.FeedCommentRow, error) {
	var row model.FeedCommentRow
	res := r.db.WithContext(ctx).Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("content", content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// Delete 回复由外键级联删除
func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FeedCommentRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
