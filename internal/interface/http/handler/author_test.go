package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

func newAuthorRouter(f *fakeAuthors) *gin.Engine {
	h := NewAuthorHandler(f)
	r := gin.New()
	r.GET("/authors", h.List)
	r.GET("/authors/:id", h.Get)
	r.POST("/authors", h.Create)
	r.PUT("/authors/:id", h.Update)
	r.DELETE("/authors/:id", h.Delete)
	return r
}

func seededAuthors() *fakeAuthors {
	return &fakeAuthors{rows: map[int]*author.Author{
		1: {ID: 1, FirstName: "Alan", LastName: "Donovan", Books: []*author.BookRef{{ID: 1, Title: "Go", Year: 2015}}},
		2: {ID: 2, FirstName: "Brian", LastName: "Kernighan"},
	}}
}

func TestAuthorHandler_List(t *testing.T) {
	f := seededAuthors()
	w := serve(newAuthorRouter(f), http.MethodGet, "/authors", "")
	require.Equal(t, http.StatusOK, w.Code)

	var views []*dto.AuthorView
	decode(t, w, &views)
	require.Len(t, views, 2)
	assert.Equal(t, "Donovan", views[0].LastName)
	assert.Len(t, views[0].Books, 1)

	f.err = apperrors.WithCause(apperrors.ErrDatabaseError, errors.New("gone"))
	w = serve(newAuthorRouter(f), http.MethodGet, "/authors", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthorHandler_Get(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		status int
	}{
		{"存在", "/authors/1", http.StatusOK},
		{"不存在", "/authors/99", http.StatusNotFound},
		{"非整数", "/authors/abc", http.StatusBadRequest},
		{"非正数", "/authors/0", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(newAuthorRouter(seededAuthors()), http.MethodGet, tc.path, "")
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestAuthorHandler_Create(t *testing.T) {
	f := seededAuthors()
	w := serve(newAuthorRouter(f), http.MethodPost, "/authors", `{"first_name":"Rob","last_name":"Pike"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var view dto.AuthorView
	decode(t, w, &view)
	assert.Equal(t, 3, view.ID)
	assert.Equal(t, "Pike", view.LastName)

	t.Run("缺少必填字段", func(t *testing.T) {
		f := seededAuthors()
		w := serve(newAuthorRouter(f), http.MethodPost, "/authors", `{"first_name":"Rob"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, f.calls)
	})

	t.Run("请求体为null", func(t *testing.T) {
		for _, body := range []string{"null", ""} {
			f := seededAuthors()
			w := serve(newAuthorRouter(f), http.MethodPost, "/authors", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Zero(t, f.calls)
		}
	})

	t.Run("提交失败", func(t *testing.T) {
		f := seededAuthors()
		f.err = apperrors.ErrPersistence
		w := serve(newAuthorRouter(f), http.MethodPost, "/authors", `{"first_name":"Rob","last_name":"Pike"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthorHandler_Update(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		body   string
		err    error
		status int
		called bool
	}{
		{"成功", "/authors/2", `{"id":2,"first_name":"Brian","last_name":"Kernighan","bio":"unix"}`, nil, http.StatusNoContent, true},
		{"id不一致", "/authors/2", `{"id":3,"first_name":"Brian","last_name":"Kernighan"}`, nil, http.StatusBadRequest, false},
		{"路径id非法", "/authors/x", `{"id":2,"first_name":"Brian","last_name":"Kernighan"}`, nil, http.StatusBadRequest, false},
		{"JSON格式错误", "/authors/2", `{"id":2,`, nil, http.StatusBadRequest, false},
		{"记录不存在", "/authors/2", `{"id":2,"first_name":"Brian","last_name":"Kernighan"}`, apperrors.ErrPersistence, http.StatusInternalServerError, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := seededAuthors()
			f.err = tc.err
			w := serve(newAuthorRouter(f), http.MethodPut, tc.path, tc.body)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.called, f.calls > 0)
			if tc.status == http.StatusNoContent {
				assert.Empty(t, w.Body.String())
				assert.Equal(t, "unix", f.updated.Bio)
			}
		})
	}
}

func TestAuthorHandler_Delete(t *testing.T) {
	r := newAuthorRouter(seededAuthors())

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/authors/2", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodDelete, "/authors/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodDelete, "/authors/-1", "").Code)
}
