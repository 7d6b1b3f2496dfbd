// Package storage 保存图书图片的字节内容
//
// 图片文件名由数据库保存，字节由ImageStore保存，两者没有事务关联。
// 所有实现都以文件名为键，键必须先通过ValidateFileName校验。
package storage

import (
	"context"
	"fmt"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
)

// ImageStore 图片存储接口
type ImageStore interface {
	// Exists 判断文件是否存在
	Exists(ctx context.Context, name string) (bool, error)

	// Read 读取全部字节
	Read(ctx context.Context, name string) ([]byte, error)

	// Write 写入（覆盖）文件
	Write(ctx context.Context, name string, data []byte) error

	// Remove 删除文件
	Remove(ctx context.Context, name string) error
}

// New 根据upload.driver创建图片存储
func New(cfg *config.Config) (ImageStore, error) {
	switch cfg.Upload.Driver {
	case "local":
		return NewLocalStore(cfg.Upload.Root)
	case "minio":
		return NewMinIOStore(cfg.Upload.MinIO, cfg.Upload.Root)
	default:
		return nil, fmt.Errorf("不支持的图片存储驱动: %s", cfg.Upload.Driver)
	}
}
