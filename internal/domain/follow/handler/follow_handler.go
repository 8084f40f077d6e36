package handler

import (
	"net/http"

	"social_feed/internal/domain/follow/service"
	"social_feed/pkg/response"
	"social_feed/pkg/utils"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	follows service.FollowService
}

func NewFollowHandler(follows service.FollowService) *FollowHandler {
	return &FollowHandler{follows: follows}
}

// BatchInput 批量关注状态查询输入
type BatchInput struct {
	UserIDs []string `json:"userIds"`
}

func bindPage(c *gin.Context) (utils.Pagination, bool) {
	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return p, false
	}
	return p.Normalize(), true
}

// Follow 关注用户
// @Summary 关注用户
// @Tags Follow
// @Security BearerAuth
// @Param id path string true "用户ID"
// @Success 200 {string} string "success"
// @Router /users/{id}/follow [post]
func (h *FollowHandler) Follow(c *gin.Context) {
	if err := h.follows.Follow(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "success")
}

// Unfollow 取消关注
// @Summary 取消关注
// @Tags Follow
// @Security BearerAuth
// @Param id path string true "用户ID"
// @Router /users/{id}/follow [delete]
func (h *FollowHandler) Unfollow(c *gin.Context) {
	if err := h.follows.Unfollow(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "success")
}

// IsFollowing 是否已关注
// @Summary 是否已关注
// @Tags Follow
// @Param id path string true "用户ID"
// @Router /users/{id}/following [get]
func (h *FollowHandler) IsFollowing(c *gin.Context) {
	ok, err := h.follows.IsFollowing(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"isFollowing": ok})
}

// AreFollowing 批量关注状态
// @Summary 批量关注状态
// @Tags Follow
// @Accept json
// @Param input body BatchInput true "用户ID列表"
// @Success 200 {object} map[string]bool
// @Router /users/following [post]
func (h *FollowHandler) AreFollowing(c *gin.Context) {
	var input BatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	m, err := h.follows.AreFollowing(c.Request.Context(), input.UserIDs)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, m)
}

// GetFollowers 我的粉丝
// @Summary 我的粉丝
// @Tags Follow
// @Security BearerAuth
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.PageResult
// @Router /me/followers [get]
func (h *FollowHandler) GetFollowers(c *gin.Context) {
	p, ok := bindPage(c)
	if !ok {
		return
	}

	list, err := h.follows.GetFollowers(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, utils.PageResult{List: list, Limit: p.Limit, Offset: p.Offset})
}

// GetFollowings 我的关注
// @Summary 我的关注
// @Tags Follow
// @Security BearerAuth
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.PageResult
// @Router /me/followings [get]
func (h *FollowHandler) GetFollowings(c *gin.Context) {
	p, ok := bindPage(c)
	if !ok {
		return
	}

	list, err := h.follows.GetFollowings(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, utils.PageResult{List: list, Limit: p.Limit, Offset: p.Offset})
}

// GetFollowCounts 关注计数，/me/follow-counts 时不带 id
// @Summary 关注/粉丝数
// @Tags Follow
// @Param id path string true "用户ID"
// @Success 200 {object} model.FollowCounts
// @Router /users/{id}/follow-counts [get]
// @Router /me/follow-counts [get]
func (h *FollowHandler) GetFollowCounts(c *gin.Context) {
	counts, err := h.follows.GetFollowCounts(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	if counts == nil {
		response.Error(c, http.StatusNotFound, response.ErrNotFound, "Profile not found")
		return
	}
	response.Success(c, counts)
}
