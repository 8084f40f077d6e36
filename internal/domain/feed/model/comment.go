package model

import (
	"time"

	profileModel "social_feed/internal/domain/profile/model"
)

// FeedCommentRow feed_comments 表
type FeedCommentRow struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	FeedID          int64     `gorm:"column:feed_id"`
	UserID          string    `gorm:"column:user_id;type:uuid"`
	ParentCommentID *int64    `gorm:"column:parent_comment_id"`
	Content         string    `gorm:"column:content"`
	CreatedAt       time.Time `gorm:"column:created_at;->"`

	// 关联
	Profile *profileModel.ProfileRow `gorm:"foreignKey:UserID;references:UserID"`
}

func (FeedCommentRow) TableName() string {
	return "feed_comments"
}

// FeedComment 评论，ParentCommentID 为空表示一级评论
type FeedComment struct {
	ID              int64     `json:"id"`
	FeedID          int64     `json:"feedId"`
	UserID          string    `json:"userId"`
	ParentCommentID *int64    `json:"parentCommentId"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FeedCommentWithProfile 附带作者资料和回复
type FeedCommentWithProfile struct {
	FeedComment
	UserProfiles profileModel.ProfileSummary `json:"userProfiles"`
	Replies      []FeedCommentWithProfile    `json:"replies,omitempty"`
}

// CreateCommentParams 发表评论参数
type CreateCommentParams struct {
	FeedID          int64  `json:"-"`
	Content         string `json:"content" binding:"required"`
	ParentCommentID *int64 `json:"parentCommentId"`
}

func MapFeedComment(row FeedCommentRow) FeedComment {
	return FeedComment{
		ID:              row.ID,
		FeedID:          row.FeedID,
		UserID:          row.UserID,
		ParentCommentID: row.ParentCommentID,
		Content:         row.Content,
		CreatedAt:       row.CreatedAt,
	}
}

func MapFeedCommentWithProfile(row FeedCommentRow) FeedCommentWithProfile {
	return FeedCommentWithProfile{
		FeedComment:  MapFeedComment(row),
		UserProfiles: profileModel.MapProfileSummary(row.Profile),
	}
}

// BuildCommentTree 组装两级评论树
//
// 输入按创建时间排序，输出保持该顺序。父评论不在结果集中的回复会被丢弃。
func BuildCommentTree(comments []FeedCommentWithProfile) []FeedCommentWithProfile {
	top := make([]FeedCommentWithProfile, 0, len(comments))
	index := make(map[int64]int)
	for _, c := range comments {
		if c.ParentCommentID == nil {
			index[c.ID] = len(top)
			top = append(top, c)
		}
	}

	for _, c := range comments {
		if c.ParentCommentID == nil {
			continue
		}
		if i, ok := index[*c.ParentCommentID]; ok {
			top[i].Replies = append(top[i].Replies, c)
		}
	}
	return top
}
