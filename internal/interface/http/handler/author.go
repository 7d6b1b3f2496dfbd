package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/internal/interface/http/mapper"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// AuthorService 作者用例（由appauthor.AuthorUseCase实现）
type AuthorService interface {
	List(ctx context.Context) ([]*author.Author, error)
	Get(ctx context.Context, id int) (*author.Author, error)
	Create(ctx context.Context, a *author.Author) error
	Update(ctx context.Context, a *author.Author) error
	Delete(ctx context.Context, id int) error
}

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	authors AuthorService
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(authors AuthorService) *AuthorHandler {
	return &AuthorHandler{authors: authors}
}

// List 作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.AuthorView}
// @Failure      500 {object} response.Response
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	c.Set(ctxKeyLocation, "authors.list")

	authors, err := h.authors.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	views, err := mapper.AuthorsToViews(authors)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, views)
}

// Get 作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=dto.AuthorView}
// @Failure      400 {object} response.Response "id不合法"
// @Failure      404 {object} response.Response "作者不存在"
// @Failure      500 {object} response.Response
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	c.Set(ctxKeyLocation, "authors.get")

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	a, err := h.authors.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	view, err := mapper.AuthorToView(a)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// Create 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      201 {object} response.Response{data=dto.AuthorView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      500 {object} response.Response
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	c.Set(ctxKeyLocation, "authors.create")

	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	a, err := mapper.CreateAuthorToEntity(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.authors.Create(c.Request.Context(), a); err != nil {
		response.Error(c, err)
		return
	}
	view, err := mapper.AuthorToView(a)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, view)
}

// Update 更新作者（整行覆盖）
// @Summary      更新作者
// @Tags         作者
// @Accept       json
// @Param        id path int true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "作者信息"
// @Success      204
// @Failure      400 {object} response.Response "参数错误或id不一致"
// @Failure      500 {object} response.Response
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) Update(c *gin.Context) {
	c.Set(ctxKeyLocation, "authors.update")

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	if req.ID != id {
		response.Error(c, apperrors.ErrIDMismatch)
		return
	}
	a, err := mapper.UpdateAuthorToEntity(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.authors.Update(c.Request.Context(), a); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Delete 删除作者
// @Summary      删除作者
// @Tags         作者
// @Param        id path int true "作者ID"
// @Success      204
// @Failure      400 {object} response.Response "id不合法"
// @Failure      404 {object} response.Response "作者不存在"
// @Failure      500 {object} response.Response
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	c.Set(ctxKeyLocation, "authors.delete")

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.authors.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
