package book

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/event"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/storage"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const tracerName = "application/book"

// BookWithFile 图书及其图片的base64内容(无图片时File为空)
type BookWithFile struct {
	Book *book.Book
	File string
}

// BookUseCase 图书维护用例
// 设计说明:
// 1. 每次调用通过RepositoryFactory打开一个新的存储会话
// 2. 图片文件名校验在任何存储访问之前完成
// 3. 数据库提交成功之后才处理图片(见ImageChannel)
// 4. 数据库和图片都处理成功后发布变更事件
type BookUseCase struct {
	repos  book.RepositoryFactory
	images *ImageChannel
	events event.Publisher
}

// NewBookUseCase 创建图书用例
func NewBookUseCase(repos book.RepositoryFactory, images *ImageChannel, events event.Publisher) *BookUseCase {
	return &BookUseCase{repos: repos, images: images, events: events}
}

func (uc *BookUseCase) emit(ctx context.Context, action event.Action, b *book.Book) {
	e := event.New(event.EntityBook, action, b.ID)
	e.Image = b.Image
	event.Emit(ctx, uc.events, e)
}

// validateImage 校验图片文件名,并要求携带内容时必须有文件名
func validateImage(b *book.Book, file []byte) error {
	if err := storage.ValidateFileName(b.Image); err != nil {
		return err
	}
	if len(file) > 0 && !b.HasImage() {
		return book.ErrFileWithoutImage
	}
	return nil
}

// List 查询全部图书并附带图片
func (uc *BookUseCase) List(ctx context.Context) ([]*BookWithFile, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.List")
	defer span.End()

	books, err := uc.repos().FindAll(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	out := make([]*BookWithFile, 0, len(books))
	for _, b := range books {
		file, err := uc.images.Attach(ctx, b.Image)
		if err != nil {
			tracing.RecordError(span, err)
			return nil, err
		}
		out = append(out, &BookWithFile{Book: b, File: file})
	}
	span.SetAttributes(attribute.Int("book.count", len(out)))
	return out, nil
}

// Get 查询单本图书并附带图片,不存在时返回ErrBookNotFound
func (uc *BookUseCase) Get(ctx context.Context, id int) (*BookWithFile, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.Get")
	defer span.End()
	span.SetAttributes(attribute.Int("book.id", id))

	b, err := uc.repos().FindByID(ctx, id)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	if b == nil {
		return nil, book.ErrBookNotFound
	}

	file, err := uc.images.Attach(ctx, b.Image)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	return &BookWithFile{Book: b, File: file}, nil
}

// Create 插入图书,成功后写入图片
// 插入失败时不写文件;写文件失败时记录已存在(ErrImageWriteFailed)
func (uc *BookUseCase) Create(ctx context.Context, b *book.Book, file []byte) error {
	if err := validateImage(b, file); err != nil {
		return err
	}

	ctx, span := tracing.StartSpan(ctx, tracerName, "book.Create")
	defer span.End()

	ok, err := uc.repos().Create(ctx, b)
	if err == nil && !ok {
		err = apperrors.ErrPersistence
	}
	if err != nil {
		tracing.RecordError(span, err)
		return err
	}
	span.SetAttributes(attribute.Int("book.id", b.ID))

	if err := uc.images.Write(ctx, b.Image, file); err != nil {
		tracing.RecordError(span, err)
		return err
	}
	uc.emit(ctx, event.ActionCreated, b)
	return nil
}

// Update 整行覆盖更新,然后处理图片
// 1. 更新前读取旧文件名
// 2. 提交影响0行(含记录不存在)返回ErrPersistence,不触碰文件
// 3. 文件名变化时删除旧文件,携带内容时写入新文件
func (uc *BookUseCase) Update(ctx context.Context, b *book.Book, file []byte) error {
	if b.ID < 1 {
		return book.ErrInvalidID
	}
	if err := validateImage(b, file); err != nil {
		return err
	}

	ctx, span := tracing.StartSpan(ctx, tracerName, "book.Update")
	defer span.End()
	span.SetAttributes(attribute.Int("book.id", b.ID))

	repo := uc.repos()
	oldImage, err := repo.GetImageFileName(ctx, b.ID)
	if err != nil {
		tracing.RecordError(span, err)
		return err
	}

	ok, err := repo.Update(ctx, b)
	if err == nil && !ok {
		err = apperrors.ErrPersistence
	}
	if err != nil {
		tracing.RecordError(span, err)
		return err
	}

	if err := uc.images.Replace(ctx, oldImage, b, file); err != nil {
		tracing.RecordError(span, err)
		return err
	}
	uc.emit(ctx, event.ActionUpdated, b)
	return nil
}

// Delete 先查询再删除,不存在时返回ErrBookNotFound
// 图片文件保留在存储中
func (uc *BookUseCase) Delete(ctx context.Context, id int) error {
	if id < 1 {
		return book.ErrInvalidID
	}

	ctx, span := tracing.StartSpan(ctx, tracerName, "book.Delete")
	defer span.End()
	span.SetAttributes(attribute.Int("book.id", id))

	repo := uc.repos()
	b, err := repo.FindByID(ctx, id)
	if err != nil {
		tracing.RecordError(span, err)
		return err
	}
	if b == nil {
		return book.ErrBookNotFound
	}

	ok, err := repo.Delete(ctx, b)
	if err == nil && !ok {
		err = apperrors.ErrPersistence
	}
	if err != nil {
		tracing.RecordError(span, err)
		return err
	}

	if b.HasImage() {
		log.Debug().Int("book_id", id).Str("image", b.Image).Msg("图书已删除,图片文件保留")
	}
	uc.emit(ctx, event.ActionDeleted, b)
	return nil
}
