package handler

import (
	"net/http"

	"social_feed/internal/domain/profile/model"
	"social_feed/internal/domain/profile/service"
	"social_feed/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(s service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: s}
}

// BatchInput 批量查询输入
type BatchInput struct {
	UserIDs []string `json:"userIds"`
}

// GetUserProfile 获取用户资料
// @Summary 获取用户资料
// @Tags Profile
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} model.Profile
// @Router /users/{id}/profile [get]
func (h *ProfileHandler) GetUserProfile(c *gin.Context) {
	p, err := h.service.GetUserProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	if p == nil {
		response.Error(c, http.StatusNotFound, response.ErrNotFound, "Profile not found")
		return
	}
	response.Success(c, p)
}

// GetUserProfiles 批量获取用户资料
// @Summary 批量获取用户资料
// @Tags Profile
// @Accept json
// @Produce json
// @Param input body BatchInput true "用户ID列表"
// @Success 200 {array} model.Profile
// @Router /users/profiles [post]
func (h *ProfileHandler) GetUserProfiles(c *gin.Context) {
	var input BatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	profiles, err := h.service.GetUserProfiles(c.Request.Context(), input.UserIDs)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, profiles)
}

// GetCurrentUserProfile 当前用户资料
// @Summary 当前用户资料
// @Tags Profile
// @Security BearerAuth
// @Success 200 {object} model.Profile
// @Router /me/profile [get]
func (h *ProfileHandler) GetCurrentUserProfile(c *gin.Context) {
	p, err := h.service.GetCurrentUserProfile(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	if p == nil {
		response.Error(c, http.StatusNotFound, response.ErrNotFound, "Profile not found")
		return
	}
	response.Success(c, p)
}

// UpdateCurrentUserProfile 修改当前用户资料
// @Summary 修改资料
// @Description 只更新请求体中出现的字段，传 null 会清空该字段
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body model.UpdateProfileParams true "修改内容"
// @Success 200 {object} model.Profile
// @Router /me/profile [patch]
func (h *ProfileHandler) UpdateCurrentUserProfile(c *gin.Context) {
	var params model.UpdateProfileParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	p, err := h.service.UpdateUserProfile(c.Request.Context(), params)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, p)
}
