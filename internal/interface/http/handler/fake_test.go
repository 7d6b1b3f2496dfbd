package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	appuser "github.com/xiebiao/bookcatalog/internal/application/user"
	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthors 记录调用并返回预设结果
type fakeAuthors struct {
	rows    map[int]*author.Author
	err     error
	calls   int
	updated *author.Author
}

func (f *fakeAuthors) List(context.Context) ([]*author.Author, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*author.Author, 0, len(f.rows))
	for id := 1; id <= len(f.rows); id++ {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *fakeAuthors) Get(_ context.Context, id int) (*author.Author, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.rows[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return a, nil
}

func (f *fakeAuthors) Create(_ context.Context, a *author.Author) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	a.ID = len(f.rows) + 1
	f.rows[a.ID] = a
	return nil
}

func (f *fakeAuthors) Update(_ context.Context, a *author.Author) error {
	f.calls++
	f.updated = a
	return f.err
}

func (f *fakeAuthors) Delete(_ context.Context, id int) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	if _, ok := f.rows[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeBooks struct {
	rows    map[int]*appbook.BookWithFile
	err     error
	calls   int
	created *book.Book
	updated *book.Book
	file    []byte
}

func (f *fakeBooks) List(context.Context) ([]*appbook.BookWithFile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*appbook.BookWithFile, 0, len(f.rows))
	for id := 1; id <= len(f.rows); id++ {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *fakeBooks) Get(_ context.Context, id int) (*appbook.BookWithFile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	bf, ok := f.rows[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return bf, nil
}

func (f *fakeBooks) Create(_ context.Context, b *book.Book, file []byte) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	b.ID = 42
	f.created, f.file = b, file
	return nil
}

func (f *fakeBooks) Update(_ context.Context, b *book.Book, file []byte) error {
	f.calls++
	f.updated, f.file = b, file
	return f.err
}

func (f *fakeBooks) Delete(_ context.Context, id int) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	if _, ok := f.rows[id]; !ok {
		return book.ErrBookNotFound
	}
	return nil
}

type fakeRegister struct {
	req appuser.RegisterRequest
	err error
}

func (f *fakeRegister) Execute(_ context.Context, req appuser.RegisterRequest) (*appuser.RegisterResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &appuser.RegisterResponse{ID: 9, Email: req.Email, Nickname: req.Nickname, Role: "Customer"}, nil
}

type fakeLogin struct {
	req appuser.LoginRequest
	err error
}

func (f *fakeLogin) Execute(_ context.Context, req appuser.LoginRequest) (*appuser.LoginResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &appuser.LoginResponse{
		User:        appuser.UserInfo{ID: 1, Email: req.Email, Nickname: "admin", Role: "Administrator"},
		AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 7200,
	}, nil
}

type fakeLogout struct {
	userID uint
	token  string
	err    error
}

func (f *fakeLogout) Execute(_ context.Context, userID uint, token string) error {
	f.userID, f.token = userID, token
	return f.err
}

// serve 发送请求，body为空字符串时不带请求体
func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) response.Response {
	t.Helper()
	body := response.Response{Data: data}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
