package model

import (
	"time"

	profileModel "social_feed/internal/domain/profile/model"
)

// FollowRow follows 表，(follower_id, following_id) 唯一且两者不相等
type FollowRow struct {
	FollowerID  string    `gorm:"column:follower_id;primaryKey;type:uuid"`
	FollowingID string    `gorm:"column:following_id;primaryKey;type:uuid"`
	CreatedAt   time.Time `gorm:"column:created_at;->"`

	// 关联
	FollowerProfile  *profileModel.ProfileRow `gorm:"foreignKey:FollowerID;references:UserID"`
	FollowingProfile *profileModel.ProfileRow `gorm:"foreignKey:FollowingID;references:UserID"`
}

func (FollowRow) TableName() string {
	return "follows"
}

type Follow struct {
	FollowerID  string    `json:"followerId"`
	FollowingID string    `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FollowProfile 关注列表中的用户信息，资料缺失时 userId 为空字符串
type FollowProfile = profileModel.ProfileSummary

type FollowWithProfile struct {
	Follow
	FollowerProfile  FollowProfile `json:"followerProfile"`
	FollowingProfile FollowProfile `json:"followingProfile"`
}

// FollowCounts 由触发器维护的关注计数
type FollowCounts struct {
	FollowerCount  int64 `json:"followerCount"`
	FollowingCount int64 `json:"followingCount"`
}

func MapFollow(row FollowRow) Follow {
	return Follow{
		FollowerID:  row.FollowerID,
		FollowingID: row.FollowingID,
		CreatedAt:   row.CreatedAt,
	}
}

func MapFollowProfile(row *profileModel.ProfileRow) FollowProfile {
	return profileModel.MapProfileSummary(row)
}

func MapFollowWithProfile(row FollowRow) FollowWithProfile {
	return FollowWithProfile{
		Follow:           MapFollow(row),
		FollowerProfile:  MapFollowProfile(row.FollowerProfile),
		FollowingProfile: MapFollowProfile(row.FollowingProfile),
	}
}

func MapFollowsWithProfile(rows []FollowRow) []FollowWithProfile {
	out := make([]FollowWithProfile, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapFollowWithProfile(r))
	}
	return out
}
