package handler

import (
	"net/http"

	"social_feed/pkg/response"

	"github.com/gin-gonic/gin"
)

// LikeFeed 点赞
// @Summary 点赞
// @Tags Feed
// @Security BearerAuth
// @Param id path int true "动态ID"
// @Success 200 {object} model.FeedLike
// @Router /feeds/{id}/like [post]
func (h *FeedHandler) LikeFeed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	like, err := h.likes.LikeFeed(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, like)
}

// UnlikeFeed 取消点赞
// @Summary 取消点赞
// @Tags Feed
// @Security BearerAuth
// @Param id path int true "动态ID"
// @Router /feeds/{id}/like [delete]
func (h *FeedHandler) UnlikeFeed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.likes.UnlikeFeed(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "success")
}

// IsLiked 是否已点赞
// @Summary 是否已点赞
// @Tags Feed
// @Param id path int true "动态ID"
// @Router /feeds/{id}/liked [get]
func (h *FeedHandler) IsLiked(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	liked, err := h.likes.IsLiked(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"isLiked": liked})
}

// AreLiked 批量查询点赞状态
// @Summary 批量点赞状态
// @Tags Feed
// @Accept json
// @Param input body BatchInput true "动态ID列表"
// @Success 200 {object} map[int64]bool
// @Router /feeds/liked [post]
func (h *FeedHandler) AreLiked(c *gin.Context) {
	var input BatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	m, err := h.likes.AreLiked(c.Request.Context(), input.FeedIDs)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, m)
}

// GetLikedFeeds 我点赞的动态
// @Summary 我点赞的动态
// @Tags Feed
// @Security BearerAuth
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.PageResult
// @Router /me/likes [get]
func (h *FeedHandler) GetLikedFeeds(c *gin.Context) {
	p, ok := bindPage(c)
	if !ok {
		return
	}

	likes, err := h.likes.GetLikedFeeds(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, pageResult(likes, p))
}

// BookmarkFeed 收藏
// @Summary 收藏
// @Tags Feed
// @Security BearerAuth
// @Param id path int true "动态ID"
// @Success 200 {object} model.FeedBookmark
// @Router /feeds/{id}/bookmark [post]
func (h *FeedHandler) BookmarkFeed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.bookmarks.BookmarkFeed(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, b)
}

// UnbookmarkFeed 取消收藏
// @Summary 取消收藏
// @Tags Feed
// @Security BearerAuth
// @Param id path int true "动态ID"
// @Router /feeds/{id}/bookmark [delete]
func (h *FeedHandler) UnbookmarkFeed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.bookmarks.UnbookmarkFeed(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "success")
}

// IsBookmarked 是否已收藏
// @Summary 是否已收藏
// @Tags Feed
// @Param id path int true "动态ID"
// @Router /feeds/{id}/bookmarked [get]
func (h *FeedHandler) IsBookmarked(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.bookmarks.IsBookmarked(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"isBookmarked": b})
}

// AreBookmarked 批量收藏状态
// @Summary 批量收藏状态
// @Tags Feed
// @Accept json
// @Param input body BatchInput true "动态ID列表"
// @Success 200 {object} map[int64]bool
// @Router /feeds/bookmarked [post]
func (h *FeedHandler) AreBookmarked(c *gin.Context) {
	var input BatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	m, err := h.bookmarks.AreBookmarked(c.Request.Context(), input.FeedIDs)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, m)
}

// GetBookmarkedFeeds 我收藏的动态
// @Summary 我收藏的动态
// @Tags Feed
// @Security BearerAuth
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.PageResult
// @Router /me/bookmarks [get]
func (h *FeedHandler) GetBookmarkedFeeds(c *gin.Context) {
	p, ok := bindPage(c)
	if !ok {
		return
	}

	bookmarks, err := h.bookmarks.GetBookmarkedFeeds(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, pageResult(bookmarks, p))
}

// ShareFeed 分享，可重复
// @Summary 分享
// @Tags Feed
// @Security BearerAuth
// @Param id path int true "动态ID"
// @Success 200 {object} model.FeedShare
// @Router /feeds/{id}/share [post]
func (h *FeedHandler) ShareFeed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	share, err := h.shares.ShareFeed(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, share)
}

// GetSharedFeeds 我分享的动态
// @Summary 我分享的动态
// @Tags Feed
// @Security BearerAuth
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.PageResult
// @Router /me/shares [get]
func (h *FeedHandler) GetSharedFeeds(c *gin.Context) {
	p, ok := bindPage(c)
	if !ok {
		return
	}

	shares, err := h.shares.GetSharedFeeds(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, pageResult(shares, p))
}
