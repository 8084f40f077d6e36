package handler

import (
	"net/http"

	"social_feed/internal/pkg/uploader"
	"social_feed/pkg/logger"
	"social_feed/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxFiles 单条动态最多图片数
const MaxFiles = 10

type UploadHandler struct {
	uploader uploader.Uploader
}

func NewUploadHandler(u uploader.Uploader) *UploadHandler {
	return &UploadHandler{uploader: u}
}

// UploadFile 上传文件 (支持批量)
// @Summary 上传图片到 OSS (支持批量)
// @Tags Common
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files"
// @Success 200 {object} response.Response{data=[]string} "URLs"
// @Router /upload [post]
func (h *UploadHandler) UploadFile(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid form data")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "No files uploaded")
		return
	}
	if len(files) > MaxFiles {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Too many files")
		return
	}

	urls, err := uploader.UploadAll(c.Request.Context(), h.uploader, files, uploader.DefaultConcurrency)
	if err != nil {
		logger.Log.Error("upload failed", zap.Int("files", len(files)), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Upload failed")
		return
	}

	response.Success(c, urls)
}
