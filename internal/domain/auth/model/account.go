package model

import (
	"time"

	baseModel "social_feed/pkg/model"
)

// AccountRow accounts 表，登录凭据；资料在 user_profiles
type AccountRow struct {
	baseModel.BaseModel
	Email        string `gorm:"column:email;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash"`
}

func (AccountRow) TableName() string {
	return "accounts"
}

type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func MapAccount(row AccountRow) Account {
	return Account{ID: row.ID, Email: row.Email, CreatedAt: row.CreatedAt}
}

type SignUpParams struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignInParams struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResult 注册/登录成功后返回的账号和访问令牌
type AuthResult struct {
	Account     Account   `json:"account"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
