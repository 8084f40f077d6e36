package response

import (
	"errors"
	"net/http"

	"social_feed/pkg/apperr"
	"social_feed/pkg/database"
	"social_feed/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`    // 业务码
	Message string      `json:"message"` // 提示信息
	Data    interface{} `json:"data"`    // 数据
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, httpCode int, errCode int, msg string) {
	c.JSON(httpCode, Response{
		Code:    errCode,
		Message: msg,
		Data:    nil,
	})
}

// FromError 按错误分类选择 HTTP 状态码和业务码
func FromError(c *gin.Context, err error) {
	switch apperr.Kind(err) {
	case apperr.ErrUnauthenticated:
		Error(c, http.StatusUnauthorized, ErrUnauthenticated, err.Error())
		return
	case apperr.ErrForbidden:
		Error(c, http.StatusForbidden, ErrNoPermission, err.Error())
		return
	case apperr.ErrAlreadyExists:
		Error(c, http.StatusConflict, ErrAlreadyExists, err.Error())
		return
	case apperr.ErrDomainRule:
		Error(c, http.StatusConflict, ErrDomainRule, err.Error())
		return
	case apperr.ErrInvalidInput:
		Error(c, http.StatusBadRequest, ErrInvalidParam, err.Error())
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || database.IsForeignKeyViolation(err) {
		Error(c, http.StatusNotFound, ErrNotFound, "Resource not found")
		return
	}

	logger.Log.Error("unhandled error",
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	Error(c, http.StatusInternalServerError, ErrServerInternal, "Internal server error")
}
