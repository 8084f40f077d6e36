package middleware

import (
	"net/http"
	"strings"
	"time"

	"social_feed/internal/pkg/authctx"
	"social_feed/pkg/cache"
	"social_feed/pkg/logger"
	"social_feed/pkg/response"
	"social_feed/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ctxUserID = "userID"
	ctxToken  = "token"
)

// Authenticator JWT认证，校验签名、过期以及是否已注销
type Authenticator struct {
	tokens    *utils.TokenManager
	blacklist cache.TokenBlacklist
}

func NewAuthenticator(tokens *utils.TokenManager, blacklist cache.TokenBlacklist) *Authenticator {
	return &Authenticator{tokens: tokens, blacklist: blacklist}
}

// Optional 有合法 token 时写入登录态，否则按匿名继续
func (a *Authenticator) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := bearerToken(c); ok {
			if s, _ := a.session(c, raw); s != nil {
				attach(c, s, raw)
			}
		}
		c.Next()
	}
}

// Required 没有合法 token 时返回 401
func (a *Authenticator) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, response.ErrUnauthenticated, "Authorization header is required")
			c.Abort()
			return
		}

		s, msg := a.session(c, raw)
		if s == nil {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, msg)
			c.Abort()
			return
		}

		attach(c, s, raw)
		c.Next()
	}
}

func (a *Authenticator) session(c *gin.Context, raw string) (*authctx.Session, string) {
	claims, err := a.tokens.ParseToken(raw)
	if err != nil {
		return nil, "Invalid or expired token"
	}

	revoked, err := a.blacklist.IsRevoked(c.Request.Context(), claims.ID)
	if err != nil {
		logger.Log.Warn("token blacklist lookup failed", zap.Error(err))
		return nil, "Invalid or expired token"
	}
	if revoked {
		return nil, "Token has been revoked"
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return &authctx.Session{
		Account:   authctx.Account{ID: claims.UserID, Email: claims.Email},
		TokenID:   claims.ID,
		ExpiresAt: expiresAt,
	}, ""
}

func attach(c *gin.Context, s *authctx.Session, raw string) {
	c.Set(ctxUserID, s.Account.ID)
	c.Set(ctxToken, raw)
	c.Request = c.Request.WithContext(authctx.WithSession(c.Request.Context(), s))
}

// 检查格式 "Bearer <token>"
func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
