// Package mapper 在领域实体与HTTP传输对象之间按字段名复制
//
// 只做字段赋值，不包含任何校验；同名且类型可赋值的字段会被复制，
// 对方没有的字段被忽略（如请求中的File、实体中的Bio）。
package mapper

import (
	"github.com/tiendc/go-deepcopy"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

func copyInto[D, S any](src *S) (*D, error) {
	if src == nil {
		return nil, nil
	}
	var dst D
	if err := deepcopy.Copy(&dst, *src); err != nil {
		return nil, apperrors.Wrap(err, "字段映射失败")
	}
	return &dst, nil
}

func copyAll[D, S any](src []*S) ([]*D, error) {
	out := make([]*D, 0, len(src))
	for _, s := range src {
		d, err := copyInto[D](s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// AuthorToView 作者实体 → 响应
func AuthorToView(a *author.Author) (*dto.AuthorView, error) {
	return copyInto[dto.AuthorView](a)
}

// AuthorsToViews 作者列表 → 响应列表
func AuthorsToViews(as []*author.Author) ([]*dto.AuthorView, error) {
	return copyAll[dto.AuthorView](as)
}

// CreateAuthorToEntity 创建请求 → 作者实体
func CreateAuthorToEntity(req *dto.CreateAuthorRequest) (*author.Author, error) {
	return copyInto[author.Author](req)
}

// UpdateAuthorToEntity 更新请求 → 作者实体
func UpdateAuthorToEntity(req *dto.UpdateAuthorRequest) (*author.Author, error) {
	return copyInto[author.Author](req)
}

// BookToView 图书实体 → 响应，File需由调用方填充
func BookToView(b *book.Book) (*dto.BookView, error) {
	return copyInto[dto.BookView](b)
}

// BooksToViews 图书列表 → 响应列表
func BooksToViews(bs []*book.Book) ([]*dto.BookView, error) {
	return copyAll[dto.BookView](bs)
}

// CreateBookToEntity 创建请求 → 图书实体
func CreateBookToEntity(req *dto.CreateBookRequest) (*book.Book, error) {
	return copyInto[book.Book](req)
}

// UpdateBookToEntity 更新请求 → 图书实体
func UpdateBookToEntity(req *dto.UpdateBookRequest) (*book.Book, error) {
	return copyInto[book.Book](req)
}
