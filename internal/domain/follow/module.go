package follow

import (
	"social_feed/internal/domain/follow/handler"
	"social_feed/internal/domain/follow/repository"
	"social_feed/internal/domain/follow/service"
	"social_feed/internal/pkg/middleware"
	"social_feed/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// FollowModule 关注关系模块
type FollowModule struct{}

func init() {
	registry.Register(&FollowModule{})
}

func (m *FollowModule) Name() string {
	return "follow"
}

func (m *FollowModule) Priority() int {
	return 10
}

func (m *FollowModule) Init(ctx *registry.ModuleContext) error {
	followService := service.NewFollowService(repository.NewFollowRepository(ctx.DB), ctx.Procedures, ctx.Guard)
	h := handler.NewFollowHandler(followService)

	setupRoutes(ctx.Router, ctx.Auth, h)
	return nil
}

func setupRoutes(r *gin.Engine, auth *middleware.Authenticator, h *handler.FollowHandler) {
	pub := r.Group("")
	pub.Use(auth.Optional())
	{
		pub.GET("/users/:id/following", h.IsFollowing)
		pub.POST("/users/following", h.AreFollowing)
		pub.GET("/users/:id/follow-counts", h.GetFollowCounts)
	}

	priv := r.Group("")
	priv.Use(auth.Required())
	{
		priv.POST("/users/:id/follow", h.Follow)
		priv.DELETE("/users/:id/follow", h.Unfollow)
		priv.GET("/me/followers", h.GetFollowers)
		priv.GET("/me/followings", h.GetFollowings)
		priv.GET("/me/follow-counts", h.GetFollowCounts)
	}
}
