package handler

import (
	"net/http"

	"social_feed/internal/domain/auth/model"
	"social_feed/internal/domain/auth/service"
	"social_feed/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler 账号处理器
type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignUp 注册
// @Summary 注册
// @Tags Auth
// @Accept json
// @Param input body model.SignUpParams true "邮箱和密码"
// @Success 200 {object} model.AuthResult
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var input model.SignUpParams
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	res, err := h.service.SignUp(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, res)
}

// SignIn 登录
// @Summary 登录
// @Tags Auth
// @Accept json
// @Param input body model.SignInParams true "邮箱和密码"
// @Success 200 {object} model.AuthResult
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var input model.SignInParams
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	res, err := h.service.SignIn(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, res)
}

// SignOut 退出登录
// @Summary 退出登录
// @Tags Auth
// @Security BearerAuth
// @Success 200 {string} string "success"
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.service.SignOut(c.Request.Context()); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "success")
}

// GetSession 未登录时 data 为 null
// @Summary 当前会话
// @Tags Auth
// @Produce json
// @Router /auth/session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	session, err := h.service.GetSession(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, session)
}

// GetCurrentAccount 当前账号
// @Summary 当前账号
// @Tags Auth
// @Success 200 {object} model.Account
// @Router /auth/user [get]
func (h *AuthHandler) GetCurrentAccount(c *gin.Context) {
	acc, err := h.service.GetCurrentAccount(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, acc)
}
