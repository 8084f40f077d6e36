package auth

import (
	"social_feed/internal/domain/auth/handler"
	"social_feed/internal/domain/auth/repository"
	"social_feed/internal/domain/auth/service"
	"social_feed/internal/pkg/middleware"
	"social_feed/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// AuthModule 账号模块
type AuthModule struct{}

func init() {
	registry.Register(&AuthModule{})
}

func (m *AuthModule) Name() string {
	return "auth"
}

func (m *AuthModule) Priority() int {
	// 其他模块依赖账号，优先初始化
	return 1
}

func (m *AuthModule) Init(ctx *registry.ModuleContext) error {
	accountRepo := repository.NewAccountRepository(ctx.DB)
	authService := service.NewAuthService(accountRepo, ctx.Tokens, ctx.Blacklist, ctx.Guard)
	authHandler := handler.NewAuthHandler(authService)

	setupRoutes(ctx.Router, ctx.Auth, authHandler)
	return nil
}

func setupRoutes(r *gin.Engine, auth *middleware.Authenticator, h *handler.AuthHandler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", h.SignUp)
		authGroup.POST("/signin", h.SignIn)
		authGroup.POST("/signout", auth.Required(), h.SignOut)
		authGroup.GET("/session", auth.Optional(), h.GetSession)
		authGroup.GET("/user", auth.Optional(), h.GetCurrentAccount)
	}
}
