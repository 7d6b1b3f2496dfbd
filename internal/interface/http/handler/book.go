package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/internal/interface/http/mapper"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// BookService 图书用例（由appbook.BookUseCase实现）
type BookService interface {
	List(ctx context.Context) ([]*appbook.BookWithFile, error)
	Get(ctx context.Context, id int) (*appbook.BookWithFile, error)
	Create(ctx context.Context, b *book.Book, file []byte) error
	Update(ctx context.Context, b *book.Book, file []byte) error
	Delete(ctx context.Context, id int) error
}

// BookHandler 图书HTTP处理器
// 读接口需要登录，写接口需要Administrator角色（见router）
type BookHandler struct {
	books BookService
}

// NewBookHandler 创建图书处理器
func NewBookHandler(books BookService) *BookHandler {
	return &BookHandler{books: books}
}

func bookView(bf *appbook.BookWithFile) (*dto.BookView, error) {
	view, err := mapper.BookToView(bf.Book)
	if err != nil {
		return nil, err
	}
	view.File = bf.File
	return view, nil
}

// List 图书列表（附带图片base64）
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.BookView}
// @Failure      401 {object} response.Response "未登录"
// @Failure      500 {object} response.Response
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	c.Set(ctxKeyLocation, "books.list")

	books, err := h.books.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	entities := make([]*book.Book, len(books))
	for i, bf := range books {
		entities[i] = bf.Book
	}
	views, err := mapper.BooksToViews(entities)
	if err != nil {
		response.Error(c, err)
		return
	}
	for i, view := range views {
		view.File = books[i].File
	}
	response.Success(c, views)
}

// Get 图书详情（附带图片base64）
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookView}
// @Failure      400 {object} response.Response "id不合法"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      500 {object} response.Response
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	c.Set(ctxKeyLocation, "books.get")

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	bf, err := h.books.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	view, err := bookView(bf)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// Create 创建图书，携带file时写入图片文件
// @Summary      创建图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=dto.BookView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "需要管理员权限"
// @Failure      500 {object} response.Response "写入失败"
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	c.Set(ctxKeyLocation, "books.create")

	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	file, err := decodeFile(req.File)
	if err != nil {
		response.Error(c, err)
		return
	}
	b, err := mapper.CreateBookToEntity(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.books.Create(c.Request.Context(), b, file); err != nil {
		response.Error(c, err)
		return
	}

	view, err := bookView(&appbook.BookWithFile{Book: b, File: req.File})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, view)
}

// Update 更新图书（整行覆盖），文件名变化时删除旧图片
// @Summary      更新图书
// @Tags         图书
// @Accept       json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "图书信息"
// @Success      204
// @Failure      400 {object} response.Response "参数错误或id不一致"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "需要管理员权限"
// @Failure      500 {object} response.Response "写入失败"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	c.Set(ctxKeyLocation, "books.update")

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	if req.ID != id {
		response.Error(c, apperrors.ErrIDMismatch)
		return
	}
	file, err := decodeFile(req.File)
	if err != nil {
		response.Error(c, err)
		return
	}
	b, err := mapper.UpdateBookToEntity(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.books.Update(c.Request.Context(), b, file); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Delete 删除图书，图片文件保留
// @Summary      删除图书
// @Tags         图书
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      204
// @Failure      400 {object} response.Response "id不合法"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "需要管理员权限"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      500 {object} response.Response
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	c.Set(ctxKeyLocation, "books.delete")

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
