package mysql

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// stagedOp 一个暂存的写操作，返回影响行数
type stagedOp func(tx *gorm.DB) (int64, error)

// Store 存储会话（工作单元）
// 教学要点:
// 1. 仓储的写操作只暂存到Store,由Commit统一提交
// 2. Commit在同一事务中执行所有暂存操作,累加影响行数
// 3. 每个请求打开一个新的Store(见RepositoryFactory),不存在全局会话
type Store struct {
	db *gorm.DB

	mu      sync.Mutex
	pending []stagedOp
}

// NewStore 打开一个新的存储会话
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB 返回带context的查询句柄（读操作直接执行，不经过暂存）
func (s *Store) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Stage 暂存一个写操作
func (s *Store) Stage(op stagedOp) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, op)
}

// Pending 当前暂存的操作数
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Commit 提交所有暂存操作并返回影响行数之和
// 无论成功与否,暂存队列都会被清空;任一操作失败则整个事务回滚
func (s *Store) Commit(ctx context.Context) (int64, error) {
	s.mu.Lock()
	ops := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(ops) == 0 {
		return 0, nil
	}

	ctx, span := tracing.StartSpan(ctx, "mysql", "store.Commit")
	defer span.End()

	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			n, err := op(tx)
			if err != nil {
				return err
			}
			affected += n
		}
		return nil
	})
	if err != nil {
		tracing.RecordError(span, err)
		return 0, err
	}

	return affected, nil
}
