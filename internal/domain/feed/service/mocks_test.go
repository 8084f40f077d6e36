package service

import (
	"context"

	"social_feed/internal/domain/feed/model"
	"social_feed/pkg/utils"

	"github.com/stretchr/testify/mock"
)

// MockFeedRepository is a mock of FeedRepository
type MockFeedRepository struct {
	mock.Mock
}

func (m *MockFeedRepository) List(ctx context.Context, p utils.Pagination) ([]model.FeedRow, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FeedRow), args.Error(1)
}

func (m *MockFeedRepository) ListByUser(ctx context.Context, userID string, p utils.Pagination) ([]model.FeedRow, error) {
	args := m.Called(ctx, userID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FeedRow), args.Error(1)
}

func (m *MockFeedRepository) GetByID(ctx context.Context, id int64) (*model.FeedRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FeedRow), args.Error(1)
}

func (m *MockFeedRepository) GetOwnerID(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockFeedRepository) Create(ctx context.Context, row *model.FeedRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockFeedRepository) UpdateCaption(ctx context.Context, id int64, caption string) (*model.FeedRow, error) {
	args := m.Called(ctx, id, caption)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FeedRow), args.Error(1)
}

func (m *MockFeedRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLikeRepository is a mock of LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(ctx context.Context, row *model.FeedLikeRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, feedID int64, userID string) error {
	args := m.Called(ctx, feedID, userID)
	return args.Error(0)
}

func (m *MockLikeRepository) Exists(ctx context.Context, feedID int64, userID string) (bool, error) {
	args := m.Called(ctx, feedID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) LikedFeedIDs(ctx context.Context, userID string, feedIDs []int64) ([]int64, error) {
	args := m.Called(ctx, userID, feedIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockLikeRepository) ListByUser(ctx context.Context, userID string, p utils.Pagination) ([]model.FeedLikeRow, error) {
	args := m.Called(ctx, userID, p)
	return args.Get(0).([]model.FeedLikeRow), args.Error(1)
}

// MockBookmarkRepository is a mock of BookmarkRepository
type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) Create(ctx context.Context, row *model.FeedBookmarkRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockBookmarkRepository) Delete(ctx context.Context, feedID int64, userID string) error {
	args := m.Called(ctx, feedID, userID)
	return args.Error(0)
}

func (m *MockBookmarkRepository) Exists(ctx context.Context, feedID int64, userID string) (bool, error) {
	args := m.Called(ctx, feedID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkRepository) BookmarkedFeedIDs(ctx context.Context, userID string, feedIDs []int64) ([]int64, error) {
	args := m.Called(ctx, userID, feedIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockBookmarkRepository) ListByUser(ctx context.Context, userID string, p utils.Pagination) ([]model.FeedBookmarkRow, error) {
	args := m.Called(ctx, userID, p)
	return args.Get(0).([]model.FeedBookmarkRow), args.Error(1)
}

// MockShareRepository is a mock of ShareRepository
type MockShareRepository struct {
	mock.Mock
}

func (m *MockShareRepository) Create(ctx context.Context, row *model.FeedShareRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockShareRepository) ListByUser(ctx context.Context, userID string, p utils.Pagination) ([]model.FeedShareRow, error) {
	args := m.Called(ctx, userID, p)
	return args.Get(0).([]model.FeedShareRow), args.Error(1)
}

// MockCommentRepository is a mock of CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, row *model.FeedCommentRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*model.FeedCommentRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FeedCommentRow), args.Error(1)
}

func (m *MockCommentRepository) GetOwnerID(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockCommentRepository) ListByFeed(ctx context.Context, feedID int64) ([]model.FeedCommentRow, error) {
	args := m.Called(ctx, feedID)
	return args.Get(0).([]model.FeedCommentRow), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id int64, content string) (*model.FeedCommentRow, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FeedCommentRow), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
