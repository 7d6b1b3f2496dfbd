package mysql

import (
	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
)

// authorRepository 作者仓储实现(MySQL)
type authorRepository struct {
	gormRepository[author.Author, AuthorModel]
}

// NewAuthorRepository 在给定存储会话上创建作者仓储
func NewAuthorRepository(store *Store) author.Repository {
	return &authorRepository{
		gormRepository: gormRepository[author.Author, AuthorModel]{
			store:     store,
			entity:    "author",
			preloads:  []string{"Books"},
			toModel:   toAuthorModel,
			toEntity:  toAuthorEntity,
			writeBack: func(m *AuthorModel, a *author.Author) { a.ID = m.ID },
		},
	}
}

// NewAuthorRepositoryFactory 每次调用打开一个新的存储会话
func NewAuthorRepositoryFactory(db *gorm.DB) author.RepositoryFactory {
	return func() author.Repository {
		return NewAuthorRepository(NewStore(db))
	}
}

// toAuthorModel 领域实体 → GORM模型(不带关联,写操作不级联)
func toAuthorModel(a *author.Author) *AuthorModel {
	return &AuthorModel{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       a.Bio,
	}
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(m *AuthorModel) *author.Author {
	a := &author.Author{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Bio:       m.Bio,
	}
	for _, b := range m.Books {
		a.Books = append(a.Books, &author.BookRef{ID: b.ID, Title: b.Title, Year: b.Year})
	}
	return a
}
