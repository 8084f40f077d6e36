package common

import (
	commonHandler "social_feed/internal/pkg/common"
	"social_feed/internal/pkg/registry"
	"social_feed/internal/pkg/uploader"
	"social_feed/pkg/logger"
)

// CommonModule 通用功能模块（图片上传）
type CommonModule struct{}

func init() {
	registry.Register(&CommonModule{})
}

func (m *CommonModule) Name() string {
	return "common"
}

func (m *CommonModule) Priority() int {
	return 100 // 最后初始化
}

func (m *CommonModule) Init(ctx *registry.ModuleContext) error {
	cfg := ctx.Config.OSS
	if cfg.Endpoint == "" || cfg.BucketName == "" {
		logger.Log.Warn("oss not configured, /upload disabled")
		return nil
	}

	u, err := uploader.NewAliyunOSSUploader(cfg)
	if err != nil {
		return err
	}
	h := commonHandler.NewUploadHandler(u)

	ctx.Router.POST("/upload", ctx.Auth.Required(), h.UploadFile)
	return nil
}
