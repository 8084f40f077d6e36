package feed

import (
	"social_feed/internal/domain/feed/handler"
	"social_feed/internal/domain/feed/repository"
	"social_feed/internal/domain/feed/service"
	"social_feed/internal/pkg/middleware"
	"social_feed/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// FeedModule 动态模块（动态、点赞、收藏、分享、评论）
type FeedModule struct{}

func init() {
	registry.Register(&FeedModule{})
}

func (m *FeedModule) Name() string {
	return "feed"
}

func (m *FeedModule) Priority() int {
	return 20
}

func (m *FeedModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	likeService := service.NewLikeService(repository.NewLikeRepository(ctx.DB), ctx.Guard)
	bookmarkService := service.NewBookmarkService(repository.NewBookmarkRepository(ctx.DB), ctx.Guard)
	shareService := service.NewShareService(repository.NewShareRepository(ctx.DB), ctx.Guard)
	commentService := service.NewCommentService(repository.NewCommentRepository(ctx.DB), ctx.Guard)

	var recorder service.BatchRecorder
	if ctx.Metrics != nil {
		recorder = ctx.Metrics
	}
	status := service.NewStatusAggregator(likeService, bookmarkService, recorder)
	feedService := service.NewFeedService(repository.NewFeedRepository(ctx.DB), ctx.Guard, status)

	h := handler.NewFeedHandler(feedService, likeService, bookmarkService, shareService, commentService)

	// 2. 路由注册
	setupRoutes(ctx.Router, ctx.Auth, h)

	return nil
}

func setupRoutes(r *gin.Engine, auth *middleware.Authenticator, h *handler.FeedHandler) {
	// Public reads, personalised when a token is present
	pub := r.Group("")
	pub.Use(auth.Optional())
	{
		pub.GET("/feeds", h.GetFeeds)
		pub.GET("/feeds/status", h.GetFeedsWithStatus)
		pub.GET("/feeds/:id", h.GetFeed)
		pub.GET("/feeds/:id/status", h.GetFeedWithStatus)
		pub.GET("/feeds/:id/liked", h.IsLiked)
		pub.GET("/feeds/:id/bookmarked", h.IsBookmarked)
		pub.POST("/feeds/liked", h.AreLiked)
		pub.POST("/feeds/bookmarked", h.AreBookmarked)
		pub.GET("/feeds/:id/comments", h.GetComments)
		pub.GET("/comments/:id", h.GetComment)
	}

	// User interactions (Requires Login)
	priv := r.Group("")
	priv.Use(auth.Required())
	{
		priv.GET("/feeds/mine", h.GetMyFeeds)
		priv.POST("/feeds", h.CreateFeed)
		priv.PUT("/feeds/:id", h.UpdateFeed)
		priv.DELETE("/feeds/:id", h.DeleteFeed)

		priv.POST("/feeds/:id/like", h.LikeFeed)
		priv.DELETE("/feeds/:id/like", h.UnlikeFeed)
		priv.POST("/feeds/:id/bookmark", h.BookmarkFeed)
		priv.DELETE("/feeds/:id/bookmark", h.UnbookmarkFeed)
		priv.POST("/feeds/:id/share", h.ShareFeed)
		priv.POST("/feeds/:id/comments", h.CreateComment)

		priv.PUT("/comments/:id", h.UpdateComment)
		priv.DELETE("/comments/:id", h.DeleteComment)

		priv.GET("/me/likes", h.GetLikedFeeds)
		priv.GET("/me/bookmarks", h.GetBookmarkedFeeds)
		priv.GET("/me/shares", h.GetSharedFeeds)
	}
}
