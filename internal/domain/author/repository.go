package author

import (
	"github.com/xiebiao/bookcatalog/internal/domain/repository"
)

// Repository 作者仓储接口
// 作者没有专有操作，完全复用泛型契约
type Repository interface {
	repository.Repository[Author, int]
}

// RepositoryFactory 为每个请求打开一个新的存储会话
// 同一会话内暂存的变更互相可见，会话之间互不影响
type RepositoryFactory func() Repository
