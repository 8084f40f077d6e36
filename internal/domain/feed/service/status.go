package service

import (
	"context"
	"time"

	"social_feed/internal/domain/feed/model"

	"golang.org/x/sync/errgroup"
)

// LikeChecker 批量点赞状态
type LikeChecker interface {
	AreLiked(ctx context.Context, feedIDs []int64) (map[int64]bool, error)
}

// BookmarkChecker 批量收藏状态
type BookmarkChecker interface {
	AreBookmarked(ctx context.Context, feedIDs []int64) (map[int64]bool, error)
}

// BatchRecorder 记录批量查询，可以为 nil
type BatchRecorder interface {
	RecordStatusBatch(kind string, ids int, duration time.Duration)
}

// StatusAggregator 为一页动态附加当前观看者的 isLiked / isBookmarked
//
// 基础查询不关联观看者相关的表；两次批量查询并发执行，结果顺序与输入一致。
type StatusAggregator struct {
	likes     LikeChecker
	bookmarks BookmarkChecker
	recorder  BatchRecorder
}

func NewStatusAggregator(likes LikeChecker, bookmarks BookmarkChecker, recorder BatchRecorder) *StatusAggregator {
	return &StatusAggregator{likes: likes, bookmarks: bookmarks, recorder: recorder}
}

// Attach 空页面直接返回，不发起查询；map 中缺失的 id 视为 false
func (a *StatusAggregator) Attach(ctx context.Context, feeds []model.FeedWithProfile) ([]model.FeedWithStatus, error) {
	if len(feeds) == 0 {
		return []model.FeedWithStatus{}, nil
	}
	ids := model.FeedIDs(feeds)

	var liked, bookmarked map[int64]bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		m, err := a.likes.AreLiked(gctx, ids)
		a.record("liked", len(ids), start)
		liked = m
		return err
	})
	g.Go(func() error {
		start := time.Now()
		m, err := a.bookmarks.AreBookmarked(gctx, ids)
		a.record("bookmarked", len(ids), start)
		bookmarked = m
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]model.FeedWithStatus, 0, len(feeds))
	for _, f := range feeds {
		out = append(out, model.FeedWithStatus{
			FeedWithProfile: f,
			IsLiked:         model.FlagOf(liked[f.ID]),
			IsBookmarked:    model.FlagOf(bookmarked[f.ID]),
		})
	}
	return out, nil
}

func (a *StatusAggregator) record(kind string, ids int, start time.Time) {
	if a.recorder != nil {
		a.recorder.RecordStatusBatch(kind, ids, time.Since(start))
	}
}
