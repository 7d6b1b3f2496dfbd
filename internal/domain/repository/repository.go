// Package repository 定义所有实体仓储共享的泛型契约
//
// 写操作（Create/Update/Delete）先把变更暂存到当前请求的存储会话，
// 再立即调用Save提交；返回值表示提交是否影响了至少一行。
// 仓储不做重试，也不做任何业务校验，存储故障原样（包装后）返回给调用方。
package repository

import "context"

// Repository 实体仓储泛型接口
//   - T: 领域实体类型
//   - ID: 实体主键类型
type Repository[T any, ID comparable] interface {
	// FindAll 返回全部实体，无数据时返回空切片
	FindAll(ctx context.Context) ([]*T, error)

	// FindByID 按主键查找，不存在时返回(nil, nil)
	FindByID(ctx context.Context, id ID) (*T, error)

	// IsExist 判断主键对应的实体是否存在
	IsExist(ctx context.Context, id ID) (bool, error)

	// Create 暂存插入并提交，成功后回填实体主键
	Create(ctx context.Context, entity *T) (bool, error)

	// Update 暂存整行覆盖并提交
	Update(ctx context.Context, entity *T) (bool, error)

	// Delete 暂存删除并提交
	Delete(ctx context.Context, entity *T) (bool, error)

	// Save 提交当前会话中所有暂存的变更，影响行数>0时返回true
	Save(ctx context.Context) (bool, error)
}
