package model

import "time"

// FeedLikeRow feed_likes 表，(feed_id, user_id) 唯一
type FeedLikeRow struct {
	FeedID    int64     `gorm:"column:feed_id;primaryKey"`
	UserID    string    `gorm:"column:user_id;primaryKey;type:uuid"`
	CreatedAt time.Time `gorm:"column:created_at;->"`
}

func (FeedLikeRow) TableName() string {
	return "feed_likes"
}

// FeedBookmarkRow feed_bookmarks 表，(feed_id, user_id) 唯一
type FeedBookmarkRow struct {
	FeedID    int64     `gorm:"column:feed_id;primaryKey"`
	UserID    string    `gorm:"column:user_id;primaryKey;type:uuid"`
	CreatedAt time.Time `gorm:"column:created_at;->"`
}

func (FeedBookmarkRow) TableName() string {
	return "feed_bookmarks"
}

// FeedShareRow feed_shares 表，允许重复
type FeedShareRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	FeedID    int64     `gorm:"column:feed_id"`
	UserID    string    `gorm:"column:user_id;type:uuid"`
	CreatedAt time.Time `gorm:"column:created_at;->"`
}

func (FeedShareRow) TableName() string {
	return "feed_shares"
}

type FeedLike struct {
	FeedID    int64     `json:"feedId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type FeedBookmark struct {
	FeedID    int64     `json:"feedId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type FeedShare struct {
	ID        int64     `json:"id"`
	FeedID    int64     `json:"feedId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func MapFeedLike(row FeedLikeRow) FeedLike {
	return FeedLike{FeedID: row.FeedID, UserID: row.UserID, CreatedAt: row.CreatedAt}
}

func MapFeedBookmark(row FeedBookmarkRow) FeedBookmark {
	return FeedBookmark{FeedID: row.FeedID, UserID: row.UserID, CreatedAt: row.CreatedAt}
}

func MapFeedShare(row FeedShareRow) FeedShare {
	return FeedShare{ID: row.ID, FeedID: row.FeedID, UserID: row.UserID, CreatedAt: row.CreatedAt}
}

func MapFeedLikes(rows []FeedLikeRow) []FeedLike {
	out := make([]FeedLike, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapFeedLike(r))
	}
	return out
}

func MapFeedBookmarks(rows []FeedBookmarkRow) []FeedBookmark {
	out := make([]FeedBookmark, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapFeedBookmark(r))
	}
	return out
}

func MapFeedShares(rows []FeedShareRow) []FeedShare {
	out := make([]FeedShare, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapFeedShare(r))
	}
	return out
}
