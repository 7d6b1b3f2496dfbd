package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/repository"
)

// Repository 图书仓储接口
// 在泛型契约之上增加图片文件名查询,用于更新前检测图片是否被重命名
type Repository interface {
	repository.Repository[Book, int]

	// GetImageFileName 返回当前持久化的图片文件名
	// 图书不存在或没有图片时返回空字符串,不视为错误
	GetImageFileName(ctx context.Context, id int) (string, error)
}

// RepositoryFactory 为每个请求打开一个新的存储会话
type RepositoryFactory func() Repository
