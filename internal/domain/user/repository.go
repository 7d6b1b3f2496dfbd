package user

import (
	"context"
)

// Repository 用户仓储接口
// 说明：
// 1. 接口定义在domain层（依赖倒置原则），具体实现在infrastructure/persistence/mysql层
// 2. 用户不走图书目录的泛型仓储契约，写入即提交
type Repository interface {
	// Create 创建用户
	// 注意：如果邮箱已存在，应返回errors.ErrEmailDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 根据ID查找用户
	// 如果不存在，返回errors.ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 根据邮箱查找用户
	// 如果不存在，返回errors.ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)
}
