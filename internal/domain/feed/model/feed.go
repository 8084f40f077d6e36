package model

import (
	"time"

	profileModel "social_feed/internal/domain/profile/model"

	"github.com/lib/pq"
)

// Flag 按观看者计算的布尔状态，未请求时序列化时省略
type Flag uint8

const (
	FlagNotRequested Flag = iota
	FlagFalse
	FlagTrue
)

// FlagOf bool -> Flag
func FlagOf(b bool) Flag {
	if b {
		return FlagTrue
	}
	return FlagFalse
}

func (f Flag) Requested() bool {
	return f != FlagNotRequested
}

func (f Flag) Bool() bool {
	return f == FlagTrue
}

func (f Flag) MarshalJSON() ([]byte, error) {
	switch f {
	case FlagTrue:
		return []byte("true"), nil
	case FlagFalse:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// FeedRow feeds 表 (snake_case)
//
// likes_count / comments_count / shared_count 只由触发器维护。
type FeedRow struct {
	ID            int64          `gorm:"column:id;primaryKey"`
	UserID        string         `gorm:"column:user_id;type:uuid"`
	Images        pq.StringArray `gorm:"column:images;type:text[]"`
	Caption       string         `gorm:"column:caption"`
	LikesCount    int64          `gorm:"column:likes_count;->"`
	CommentsCount int64          `gorm:"column:comments_count;->"`
	SharedCount   int64          `gorm:"column:shared_count;->"`
	CreatedAt     time.Time      `gorm:"column:created_at;->"`

	// 关联
	Profile *profileModel.ProfileRow `gorm:"foreignKey:UserID;references:UserID"`
}

func (FeedRow) TableName() string {
	return "feeds"
}

// Feed 动态 (camelCase)
type Feed struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"userId"`
	Images        []string  `json:"images"`
	Caption       string    `json:"caption"`
	LikesCount    int64     `json:"likesCount"`
	CommentsCount int64     `json:"commentsCount"`
	SharedCount   int64     `json:"sharedCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FeedWithProfile 附带作者资料
type FeedWithProfile struct {
	Feed
	UserProfiles profileModel.ProfileSummary `json:"userProfiles"`
}

// FeedWithStatus 附带当前观看者的点赞/收藏状态
type FeedWithStatus struct {
	FeedWithProfile
	IsLiked      Flag `json:"isLiked,omitempty"`
	IsBookmarked Flag `json:"isBookmarked,omitempty"`
}

// CreateFeedParams 发布参数
type CreateFeedParams struct {
	Images  []string `json:"images" binding:"dive,required"`
	Caption string   `json:"caption"`
}

// UpdateFeedParams 只允许修改文案
type UpdateFeedParams struct {
	Caption *string `json:"caption" binding:"required"`
}

// MapFeed 行 -> 模型
func MapFeed(row FeedRow) Feed {
	images := []string(row.Images)
	if images == nil {
		images = []string{}
	}
	return Feed{
		ID:            row.ID,
		UserID:        row.UserID,
		Images:        images,
		Caption:       row.Caption,
		LikesCount:    row.LikesCount,
		CommentsCount: row.CommentsCount,
		SharedCount:   row.SharedCount,
		CreatedAt:     row.CreatedAt,
	}
}

func MapFeeds(rows []FeedRow) []Feed {
	out := make([]Feed, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapFeed(r))
	}
	return out
}

// MapFeedWithProfile 作者资料缺失时 userProfiles 各字段为 null
func MapFeedWithProfile(row FeedRow) FeedWithProfile {
	return FeedWithProfile{
		Feed:         MapFeed(row),
		UserProfiles: profileModel.MapProfileSummary(row.Profile),
	}
}

func MapFeedsWithProfile(rows []FeedRow) []FeedWithProfile {
	out := make([]FeedWithProfile, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapFeedWithProfile(r))
	}
	return out
}

// FeedIDs 按原顺序提取 id
func FeedIDs(feeds []FeedWithProfile) []int64 {
	ids := make([]int64, 0, len(feeds))
	for _, f := range feeds {
		ids = append(ids, f.ID)
	}
	return ids
}
