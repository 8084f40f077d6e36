package profile

import (
	"social_feed/internal/domain/profile/handler"
	"social_feed/internal/domain/profile/repository"
	"social_feed/internal/domain/profile/service"
	"social_feed/internal/pkg/middleware"
	"social_feed/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// ProfileModule 用户资料模块
type ProfileModule struct{}

func init() {
	registry.Register(&ProfileModule{})
}

func (m *ProfileModule) Name() string {
	return "profile"
}

func (m *ProfileModule) Priority() int {
	return 10
}

func (m *ProfileModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	pRepo := repository.NewProfileRepository(ctx.DB)
	pService := service.NewProfileService(pRepo, ctx.Guard)
	pHandler := handler.NewProfileHandler(pService)

	// 2. 路由注册
	setupRoutes(ctx.Router, ctx.Auth, pHandler)

	return nil
}

func setupRoutes(r *gin.Engine, auth *middleware.Authenticator, h *handler.ProfileHandler) {
	users := r.Group("/users")
	{
		users.GET("/:id/profile", h.GetUserProfile)
		users.POST("/profiles", h.GetUserProfiles)
	}

	me := r.Group("/me")
	me.Use(auth.Required())
	{
		me.GET("/profile", h.GetCurrentUserProfile)
		me.PATCH("/profile", h.UpdateCurrentUserProfile)
	}
}
