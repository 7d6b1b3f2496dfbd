package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// gormRepository 泛型仓储实现
// 设计说明:
// 1. E是领域实体,M是GORM模型,两者之间由toModel/toEntity转换
// 2. 读操作直接查询;写操作暂存到Store后立即调用Save提交
// 3. 作者/图书仓储嵌入它,只补充各自的专有查询
type gormRepository[E any, M any] struct {
	store    *Store
	entity   string   // 指标标签
	preloads []string // 查询时预加载的关联

	toModel  func(*E) *M
	toEntity func(*M) *E
	// writeBack 提交成功后把数据库生成的字段(主键)回填到实体
	writeBack func(*M, *E)
}

func (r *gormRepository[E, M]) query(ctx context.Context) *gorm.DB {
	db := r.store.DB(ctx)
	for _, p := range r.preloads {
		db = db.Preload(p)
	}
	return db
}

// FindAll 查询全部记录
func (r *gormRepository[E, M]) FindAll(ctx context.Context) ([]*E, error) {
	var models []*M
	if err := r.query(ctx).Find(&models).Error; err != nil {
		return nil, apperrors.WithCause(apperrors.ErrDatabaseError, err)
	}

	entities := make([]*E, 0, len(models))
	for _, m := range models {
		entities = append(entities, r.toEntity(m))
	}
	return entities, nil
}

// FindByID 按主键查询,不存在时返回(nil, nil)
func (r *gormRepository[E, M]) FindByID(ctx context.Context, id int) (*E, error) {
	var model M
	err := r.query(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.WithCause(apperrors.ErrDatabaseError, err)
	}
	return r.toEntity(&model), nil
}

// IsExist 只做计数,不加载整行
func (r *gormRepository[E, M]) IsExist(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.store.DB(ctx).Model(new(M)).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, apperrors.WithCause(apperrors.ErrDatabaseError, err)
	}
	return count > 0, nil
}

// Create 暂存插入并提交
func (r *gormRepository[E, M]) Create(ctx context.Context, entity *E) (bool, error) {
	model := r.toModel(entity)
	r.store.Stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Omit(clause.Associations).Create(model)
		return res.RowsAffected, res.Error
	})

	ok, err := r.Save(ctx)
	if err != nil {
		return false, err
	}
	r.writeBack(model, entity)
	return ok, nil
}

// Update 暂存整行覆盖并提交
// 使用Select("*")更新所有字段(包括零值);不用Save,避免0行时退化为INSERT
func (r *gormRepository[E, M]) Update(ctx context.Context, entity *E) (bool, error) {
	model := r.toModel(entity)
	r.store.Stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Model(model).
			Select("*").
			Omit(clause.Associations, "created_at", "deleted_at").
			Updates(model)
		return res.RowsAffected, res.Error
	})
	return r.Save(ctx)
}

// Delete 暂存删除(软删除)并提交
func (r *gormRepository[E, M]) Delete(ctx context.Context, entity *E) (bool, error) {
	model := r.toModel(entity)
	r.store.Stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Delete(model)
		return res.RowsAffected, res.Error
	})
	return r.Save(ctx)
}

// Save 提交暂存的变更,影响行数>0时返回true
func (r *gormRepository[E, M]) Save(ctx context.Context) (bool, error) {
	affected, err := r.store.Commit(ctx)
	metrics.RecordCommit(r.entity, affected, err)
	if err != nil {
		return false, apperrors.WithCause(apperrors.ErrDatabaseError, err)
	}
	return affected > 0, nil
}
