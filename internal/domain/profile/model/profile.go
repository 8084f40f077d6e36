package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// ProfileRow user_profiles 表 (snake_case)
//
// follower_count / following_count / post_count 只由数据库触发器维护，应用层从不直接写入。
type ProfileRow struct {
	UserID          string    `gorm:"column:user_id;primaryKey;type:uuid"`
	Nickname        *string   `gorm:"column:nickname"`
	Description     *string   `gorm:"column:description"`
	ProfileImageURL *string   `gorm:"column:profile_image_url"`
	FollowerCount   int64     `gorm:"column:follower_count;->"`
	FollowingCount  int64     `gorm:"column:following_count;->"`
	PostCount       int64     `gorm:"column:post_count;->"`
	CreatedAt       time.Time `gorm:"column:created_at;->"`
}

func (ProfileRow) TableName() string {
	return "user_profiles"
}

// Profile 应用内使用的用户资料 (camelCase)
type Profile struct {
	UserID          string    `json:"userId"`
	Nickname        *string   `json:"nickname"`
	Description     *string   `json:"description"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	FollowerCount   int64     `json:"followerCount"`
	FollowingCount  int64     `json:"followingCount"`
	PostCount       int64     `json:"postCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ProfileSummary 关联查询时附带的作者信息
type ProfileSummary struct {
	UserID          string  `json:"userId"`
	Nickname        *string `json:"nickname"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// MapProfile 行 -> 模型
func MapProfile(row ProfileRow) Profile {
	return Profile{
		UserID:          row.UserID,
		Nickname:        row.Nickname,
		Description:     row.Description,
		ProfileImageURL: row.ProfileImageURL,
		FollowerCount:   row.FollowerCount,
		FollowingCount:  row.FollowingCount,
		PostCount:       row.PostCount,
		CreatedAt:       row.CreatedAt,
	}
}

// MapProfiles 批量映射
func MapProfiles(rows []ProfileRow) []Profile {
	out := make([]Profile, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapProfile(r))
	}
	return out
}

// MapProfileSummary 外连接可能没有对应资料，此时各字段为空值
func MapProfileSummary(row *ProfileRow) ProfileSummary {
	if row == nil {
		return ProfileSummary{}
	}
	return ProfileSummary{
		UserID:          row.UserID,
		Nickname:        row.Nickname,
		ProfileImageURL: row.ProfileImageURL,
	}
}

// OptionalString 区分“未提供”和“显式置空”
type OptionalString struct {
	Set   bool
	Value *string
}

// Some 构造一个有值的 OptionalString
func Some(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

// Null 构造一个显式置空的 OptionalString
func Null() OptionalString {
	return OptionalString{Set: true}
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// UpdateProfileParams 资料修改参数，只有 Set 的字段会被更新
type UpdateProfileParams struct {
	Nickname        OptionalString `json:"nickname"`
	Description     OptionalString `json:"description"`
	ProfileImageURL OptionalString `json:"profileImageUrl"`
}

// Columns 转成数据库列名；没有任何字段时返回空 map
func (p UpdateProfileParams) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Nickname.Set {
		cols["nickname"] = p.Nickname.Value
	}
	if p.Description.Set {
		cols["description"] = p.Description.Value
	}
	if p.ProfileImageURL.Set {
		cols["profile_image_url"] = p.ProfileImageURL.Value
	}
	return cols
}
