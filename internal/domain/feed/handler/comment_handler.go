package handler

import (
	"net/http"

	"social_feed/internal/domain/feed/model"
	"social_feed/pkg/response"

	"github.com/gin-gonic/gin"
)

// UpdateCommentInput 修改评论输入
type UpdateCommentInput struct {
	Content string `json:"content" binding:"required"`
}

// GetComments 获取评论树
// @Summary 获取评论
// @Description 一级评论及其回复，按时间正序
// @Tags Comment
// @Param id path int true "动态ID"
// @Success 200 {array} model.FeedCommentWithProfile
// @Router /feeds/{id}/comments [get]
func (h *FeedHandler) GetComments(c *gin.Context) {
	feedID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := h.comments.GetComments(c.Request.Context(), feedID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, comments)
}

// CreateComment 发表评论或回复
// @Summary 发表评论
// @Tags Comment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "动态ID"
// @Param input body model.CreateCommentParams true "评论内容"
// @Success 200 {object} model.FeedComment
// @Router /feeds/{id}/comments [post]
func (h *FeedHandler) CreateComment(c *gin.Context) {
	feedID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input model.CreateCommentParams
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	input.FeedID = feedID

	comment, err := h.comments.CreateComment(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, comment)
}

// GetComment 获取评论详情
// @Summary 获取评论详情
// @Tags Comment
// @Param id path int true "评论ID"
// @Success 200 {object} model.FeedCommentWithProfile
// @Router /comments/{id} [get]
func (h *FeedHandler) GetComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	comment, err := h.comments.GetComment(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if comment == nil {
		response.Error(c, http.StatusNotFound, response.ErrNotFound, "Comment not found")
		return
	}
	response.Success(c, comment)
}

// UpdateComment 修改评论
// @Summary 修改评论
// @Tags Comment
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Success 200 {object} model.FeedComment
// @Router /comments/{id} [put]
func (h *FeedHandler) UpdateComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input UpdateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	comment, err := h.comments.UpdateComment(c.Request.Context(), id, input.Content)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, comment)
}

// DeleteComment 删除评论
// @Summary 删除评论
// @Tags Comment
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Router /comments/{id} [delete]
func (h *FeedHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.comments.DeleteComment(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "success")
}
