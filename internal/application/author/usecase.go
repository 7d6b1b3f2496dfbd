package author

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/event"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const tracerName = "application/author"

// AuthorUseCase 作者维护用例
// 设计说明:
// 1. 每次调用通过RepositoryFactory打开一个新的存储会话
// 2. "提交影响0行"统一转换为ErrPersistence(500)
// 3. 入参已经过HTTP层的绑定校验,这里只检查主键范围
// 4. 写操作成功后发布变更事件
type AuthorUseCase struct {
	repos  author.RepositoryFactory
	events event.Publisher
}

// NewAuthorUseCase 创建作者用例
func NewAuthorUseCase(repos author.RepositoryFactory, events event.Publisher) *AuthorUseCase {
	return &AuthorUseCase{repos: repos, events: events}
}

// List 查询全部作者
func (uc *AuthorUseCase) List(ctx context.Context) ([]*author.Author, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "author.List")
	defer span.End()

	authors, err := uc.repos().FindAll(ctx)
	tracing.RecordError(span, err)
	return authors, err
}

// Get 查询单个作者,不存在时返回ErrAuthorNotFound
func (uc *AuthorUseCase) Get(ctx context.Context, id int) (*author.Author, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "author.Get")
	defer span.End()
	span.SetAttributes(attribute.Int("author.id", id))

	a, err := uc.repos().FindByID(ctx, id)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	if a == nil {
		return nil, author.ErrAuthorNotFound
	}
	return a, nil
}

// Create 创建作者,成功后a.ID被回填
func (uc *AuthorUseCase) Create(ctx context.Context, a *author.Author) error {
	ctx, span := tracing.StartSpan(ctx, tracerName, "author.Create")
	defer span.End()

	err := commit(uc.repos().Create(ctx, a))
	uc.finish(ctx, span, err, event.ActionCreated, a.ID)
	return err
}

// Update 整行覆盖更新,记录不存在时提交影响0行,返回ErrPersistence
func (uc *AuthorUseCase) Update(ctx context.Context, a *author.Author) error {
	if a.ID < 1 {
		return author.ErrInvalidID
	}

	ctx, span := tracing.StartSpan(ctx, tracerName, "author.Update")
	defer span.End()
	span.SetAttributes(attribute.Int("author.id", a.ID))

	err := commit(uc.repos().Update(ctx, a))
	uc.finish(ctx, span, err, event.ActionUpdated, a.ID)
	return err
}

// Delete 先查询再删除,不存在时返回ErrAuthorNotFound
// 作者名下的图书不受影响
func (uc *AuthorUseCase) Delete(ctx context.Context, id int) error {
	if id < 1 {
		return author.ErrInvalidID
	}

	ctx, span := tracing.StartSpan(ctx, tracerName, "author.Delete")
	defer span.End()
	span.SetAttributes(attribute.Int("author.id", id))

	repo := uc.repos()
	a, err := repo.FindByID(ctx, id)
	if err != nil {
		tracing.RecordError(span, err)
		return err
	}
	if a == nil {
		return author.ErrAuthorNotFound
	}

	err = commit(repo.Delete(ctx, a))
	uc.finish(ctx, span, err, event.ActionDeleted, id)
	return err
}

// finish 记录失败到Span，成功时发布变更事件
func (uc *AuthorUseCase) finish(ctx context.Context, span trace.Span, err error, action event.Action, id int) {
	if err != nil {
		tracing.RecordError(span, err)
		return
	}
	event.Emit(ctx, uc.events, event.New(event.EntityAuthor, action, id))
}

// commit 把仓储写操作的(bool, error)转换为单个error
func commit(ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrPersistence
	}
	return nil
}
