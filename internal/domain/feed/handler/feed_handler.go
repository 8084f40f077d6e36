package handler

import (
	"net/http"
	"strconv"

	"social_feed/internal/domain/feed/model"
	"social_feed/internal/domain/feed/service"
	"social_feed/pkg/response"
	"social_feed/pkg/utils"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feeds     service.FeedService
	likes     service.LikeService
	bookmarks service.BookmarkService
	shares    service.ShareService
	comments  service.CommentService
}

func NewFeedHandler(
	feeds service.FeedService,
	likes service.LikeService,
	bookmarks service.BookmarkService,
	shares service.ShareService,
	comments service.CommentService,
) *FeedHandler {
	return &FeedHandler{feeds: feeds, likes: likes, bookmarks: bookmarks, shares: shares, comments: comments}
}

// BatchInput 批量状态查询输入
type BatchInput struct {
	FeedIDs []int64 `json:"feedIds"`
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "invalid "+name)
		return 0, false
	}
	return id, true
}

func bindPage(c *gin.Context) (utils.Pagination, bool) {
	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return p, false
	}
	return p.Normalize(), true
}

func pageResult(list interface{}, p utils.Pagination) utils.PageResult {
	return utils.PageResult{List: list, Limit: p.Limit, Offset: p.Offset}
}

// GetFeeds 获取动态流
// @Summary 获取动态流
// @Tags Feed
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.PageResult
// @Router /feeds [get]
func (h *FeedHandler) GetFeeds(c *gin.Context) {
	p, ok := bindPage(c)
	if !ok {
		return
	}

	feeds, err := h.feeds.GetFeeds(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, pageResult(feeds, p))
}

// GetFeedsWithStatus 获取动态流并附带当前用户的点赞/收藏状态
// @Summary 获取动态流(含状态)
// @Tags Feed
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.PageResult
// @Router /feeds/status [get]
func (h *FeedHandler) GetFeedsWithStatus(c *gin.Context) {
	p, ok := bindPage(c)
	if !ok {
		return
	}

	feeds, err := h.feeds.GetFeedsWithStatus(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, pageResult(feeds, p))
}

// GetMyFeeds 我的动态
// @Summary 我的动态
// @Tags Feed
// @Security BearerAuth
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.PageResult
// @Router /feeds/mine [get]
func (h *FeedHandler) GetMyFeeds(c *gin.Context) {
	p, ok := bindPage(c)
	if !ok {
		return
	}

	feeds, err := h.feeds.GetMyFeeds(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, pageResult(feeds, p))
}

// GetFeed 获取单条动态
// @Summary 获取动态详情
// @Tags Feed
// @Param id path int true "动态ID"
// @Success 200 {object} model.FeedWithProfile
// @Router /feeds/{id} [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	feed, err := h.feeds.GetFeed(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if feed == nil {
		response.Error(c, http.StatusNotFound, response.ErrNotFound, "Feed not found")
		return
	}
	response.Success(c, feed)
}

// GetFeedWithStatus 获取动态详情(含状态)
// @Summary 获取动态详情(含状态)
// @Tags Feed
// @Param id path int true "动态ID"
// @Success 200 {object} model.FeedWithStatus
// @Router /feeds/{id}/status [get]
func (h *FeedHandler) GetFeedWithStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	feed, err := h.feeds.GetFeedWithStatus(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if feed == nil {
		response.Error(c, http.StatusNotFound, response.ErrNotFound, "Feed not found")
		return
	}
	response.Success(c, feed)
}

// CreateFeed 发布动态
// @Summary 发布动态
// @Tags Feed
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body model.CreateFeedParams true "动态内容"
// @Success 200 {object} model.Feed
// @Router /feeds [post]
func (h *FeedHandler) CreateFeed(c *gin.Context) {
	var input model.CreateFeedParams
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	feed, err := h.feeds.CreateFeed(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, feed)
}

// UpdateFeed 修改动态文案
// @Summary 修改动态
// @Tags Feed
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "动态ID"
// @Param input body model.UpdateFeedParams true "修改内容"
// @Success 200 {object} model.Feed
// @Router /feeds/{id} [put]
func (h *FeedHandler) UpdateFeed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input model.UpdateFeedParams
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	feed, err := h.feeds.UpdateFeed(c.Request.Context(), id, input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, feed)
}

// DeleteFeed 删除动态
// @Summary 删除动态
// @Tags Feed
// @Security BearerAuth
// @Param id path int true "动态ID"
// @Router /feeds/{id} [delete]
func (h *FeedHandler) DeleteFeed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.feeds.DeleteFeed(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "success")
}
