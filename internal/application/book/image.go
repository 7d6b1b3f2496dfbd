package book

import (
	"context"
	"encoding/base64"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/storage"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// ImageChannel 图书图片旁路
// 设计说明:
// 1. 数据库提交成功之后才触碰文件,两者之间没有事务
// 2. 失败窗口作为独立错误返回:
//   - ErrImageWriteFailed: 记录已提交,文件缺失
//   - ErrImageDeleteFailed: 记录已指向新文件,旧文件成为孤儿
//
// 3. 删除图书不删除图片文件
type ImageChannel struct {
	store storage.ImageStore
}

// NewImageChannel 创建图片旁路
func NewImageChannel(store storage.ImageStore) *ImageChannel {
	return &ImageChannel{store: store}
}

// Attach 读取图片并返回base64,没有图片或文件不存在时返回空字符串
func (ch *ImageChannel) Attach(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", nil
	}

	exists, err := ch.store.Exists(ctx, name)
	if err != nil {
		metrics.RecordImageOp("read", err)
		return "", apperrors.WithCause(apperrors.ErrImageReadFailed, err)
	}
	if !exists {
		return "", nil
	}

	data, err := ch.store.Read(ctx, name)
	metrics.RecordImageOp("read", err)
	if err != nil {
		return "", apperrors.WithCause(apperrors.ErrImageReadFailed, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Write 写入(覆盖)图片,data为空时不做任何事
func (ch *ImageChannel) Write(ctx context.Context, name string, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	ctx, span := tracing.StartSpan(ctx, tracerName, "image.Write")
	defer span.End()

	err := ch.store.Write(ctx, name, data)
	metrics.RecordImageOp("write", err)
	if err != nil {
		tracing.RecordError(span, err)
		log.Error().Err(err).Str("image", name).Msg("图书记录已提交,图片写入失败")
		return apperrors.WithCause(apperrors.ErrImageWriteFailed, err)
	}
	return nil
}

// Replace 更新后的图片处理
// 1. 文件名变化且旧文件存在时删除旧文件
// 2. 携带了图片内容时写入新文件
func (ch *ImageChannel) Replace(ctx context.Context, oldName string, b *book.Book, data []byte) error {
	ctx, span := tracing.StartSpan(ctx, tracerName, "image.Replace")
	defer span.End()

	if oldName != "" && b.ImageRenamed(oldName) {
		if err := ch.remove(ctx, oldName); err != nil {
			tracing.RecordError(span, err)
			return err
		}
	}

	return ch.Write(ctx, b.Image, data)
}

func (ch *ImageChannel) remove(ctx context.Context, name string) error {
	exists, err := ch.store.Exists(ctx, name)
	if err == nil && !exists {
		return nil
	}
	if err == nil {
		err = ch.store.Remove(ctx, name)
	}
	metrics.RecordImageOp("delete", err)
	if err != nil {
		log.Error().Err(err).Str("image", name).Msg("图书记录已更新,旧图片删除失败")
		return apperrors.WithCause(apperrors.ErrImageDeleteFailed, err)
	}
	return nil
}
