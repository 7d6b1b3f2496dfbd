package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 所有查询预加载Author(一次额外的IN查询)
// 2. 额外提供GetImageFileName,供更新前判断图片是否重命名
type bookRepository struct {
	gormRepository[book.Book, BookModel]
}

// NewBookRepository 在给定存储会话上创建图书仓储
func NewBookRepository(store *Store) book.Repository {
	return &bookRepository{
		gormRepository: gormRepository[book.Book, BookModel]{
			store:     store,
			entity:    "book",
			preloads:  []string{"Author"},
			toModel:   toBookModel,
			toEntity:  toBookEntity,
			writeBack: func(m *BookModel, b *book.Book) { b.ID = m.ID },
		},
	}
}

// NewBookRepositoryFactory 每次调用打开一个新的存储会话
func NewBookRepositoryFactory(db *gorm.DB) book.RepositoryFactory {
	return func() book.Repository {
		return NewBookRepository(NewStore(db))
	}
}

// GetImageFileName 只查询image列
func (r *bookRepository) GetImageFileName(ctx context.Context, id int) (string, error) {
	var names []string
	err := r.store.DB(ctx).
		Model(&BookModel{}).
		Where("id = ?", id).
		Limit(1).
		Pluck("image", &names).Error
	if err != nil {
		return "", apperrors.WithCause(apperrors.ErrDatabaseError, err)
	}
	if len(names) == 0 {
		return "", nil
	}
	return names[0], nil
}

// toBookModel 领域实体 → GORM模型(不带Author,写操作只使用AuthorID)
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:       b.ID,
		Title:    b.Title,
		Year:     b.Year,
		ISBN:     b.ISBN,
		Summary:  b.Summary,
		Image:    b.Image,
		AuthorID: b.AuthorID,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(m *BookModel) *book.Book {
	b := &book.Book{
		ID:       m.ID,
		Title:    m.Title,
		Year:     m.Year,
		ISBN:     m.ISBN,
		Summary:  m.Summary,
		Image:    m.Image,
		AuthorID: m.AuthorID,
	}
	if m.Author != nil {
		b.Author = &author.Author{
			ID:        m.Author.ID,
			FirstName: m.Author.FirstName,
			LastName:  m.Author.LastName,
			Bio:       m.Author.Bio,
		}
	}
	return b
}
