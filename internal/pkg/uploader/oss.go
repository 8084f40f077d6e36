package uploader

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"social_feed/internal/pkg/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency 单次请求内同时上传的文件数
const DefaultConcurrency = 5

type Uploader interface {
	UploadFile(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type AliyunOSSUploader struct {
	bucket *oss.Bucket
	config config.OSSConfig
}

func NewAliyunOSSUploader(cfg config.OSSConfig) (*AliyunOSSUploader, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, err
	}

	bucket, err := client.Bucket(cfg.BucketName)
	if err != nil {
		return nil, err
	}

	return &AliyunOSSUploader{bucket: bucket, config: cfg}, nil
}

func (u *AliyunOSSUploader) UploadFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := ObjectKey(time.Now(), file.Filename)
	if err := u.bucket.PutObject(key, src, oss.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	// bucket 为公共读
	return fmt.Sprintf("https://%s.%s/%s", u.config.BucketName, u.config.Endpoint, key), nil
}

// ObjectKey feeds/YYYYMMDD/uuid.ext
func ObjectKey(now time.Time, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("feeds/%s/%s%s", now.Format("20060102"), uuid.NewString(), ext)
}

// UploadAll 并发上传，返回的 URL 与 files 顺序一致；任意一个失败则整体失败
func UploadAll(ctx context.Context, u Uploader, files []*multipart.FileHeader, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	urls := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, f := range files {
		g.Go(func() error {
			url, err := u.UploadFile(ctx, f)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
