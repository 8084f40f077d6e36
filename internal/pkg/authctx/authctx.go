// Package authctx 解析“当前账号”。
//
// 只负责个性化的读取（点赞状态、关注状态）用 ResolveCurrentAccount，匿名时返回 nil；
// 需要归属信息的写操作用 RequireCurrentAccount，匿名时返回 apperr.ErrUnauthenticated。
package authctx

import (
	"context"
	"time"

	"social_feed/pkg/apperr"
)

// Account 认证系统签发的身份，这一层只关心 ID
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// Session 当前请求携带的登录态
type Session struct {
	Account   Account   `json:"account"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type sessionKey struct{}

// WithSession 将登录态写入 context
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom 读取登录态
func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// Guard 当前账号解析
type Guard interface {
	ResolveCurrentAccount(ctx context.Context) (*Account, error)
	RequireCurrentAccount(ctx context.Context) (*Account, error)
}

// ContextGuard 从请求 context 中解析账号（由认证中间件写入）
type ContextGuard struct{}

func NewGuard() *ContextGuard {
	return &ContextGuard{}
}

// ResolveCurrentAccount 未登录时返回 nil, nil
func (g *ContextGuard) ResolveCurrentAccount(ctx context.Context) (*Account, error) {
	s, ok := SessionFrom(ctx)
	if !ok {
		return nil, nil
	}
	if !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt) {
		return nil, nil
	}
	acc := s.Account
	return &acc, nil
}

// RequireCurrentAccount 未登录时返回 ErrUnauthenticated
func (g *ContextGuard) RequireCurrentAccount(ctx context.Context) (*Account, error) {
	acc, err := g.ResolveCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, apperr.ErrUnauthenticated
	}
	return acc, nil
}

// ForAccount 测试和脚本中构造已登录 context
func ForAccount(ctx context.Context, accountID string) context.Context {
	return WithSession(ctx, &Session{Account: Account{ID: accountID}})
}
