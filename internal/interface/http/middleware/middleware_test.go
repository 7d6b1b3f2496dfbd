package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/jwt"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeSessions 默认所有用户都有会话，loggedOut中的用户视为已登出
type fakeSessions struct {
	tokens    map[string]bool
	loggedOut map[uint]bool
	err       error
}

func (s *fakeSessions) IsInBlacklist(_ context.Context, token string) (bool, error) {
	return s.tokens[token], s.err
}

func (s *fakeSessions) GetSession(_ context.Context, userID uint) (map[string]string, error) {
	if s.loggedOut[userID] {
		return nil, apperrors.ErrUnauthorized
	}
	return map[string]string{"user_id": "1"}, nil
}

func newAuthRouter(t *testing.T, bl *fakeSessions) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	manager := jwt.NewManager("test-secret", time.Hour, time.Hour)
	auth := NewAuthMiddleware(manager, bl)

	r := gin.New()
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		response.Success(c, gin.H{"user_id": GetUserID(c), "role": GetRole(c), "email": GetEmail(c)})
	})
	r.POST("/admin", auth.RequireAuth(), auth.RequireRole("Administrator"), func(c *gin.Context) {
		response.NoContent(c)
	})
	return r, manager
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func TestRequireAuth(t *testing.T) {
	bl := &fakeSessions{tokens: map[string]bool{}, loggedOut: map[uint]bool{}}
	r, manager := newAuthRouter(t, bl)

	pair, err := manager.GenerateToken(5, "customer1@customer.com", "Customer")
	require.NoError(t, err)

	t.Run("有效Token", func(t *testing.T) {
		w := do(r, http.MethodGet, "/me", pair.AccessToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"code":0,"message":"success","data":{"user_id":5,"role":"Customer","email":"customer1@customer.com"}}`, w.Body.String())
	})

	t.Run("缺少Token", func(t *testing.T) {
		w := do(r, http.MethodGet, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperrors.ErrCodeUnauthorized, errorCode(t, w))
	})

	t.Run("格式错误", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Token "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("无效Token", func(t *testing.T) {
		w := do(r, http.MethodGet, "/me", "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperrors.ErrCodeInvalidToken, errorCode(t, w))
	})

	t.Run("已登出", func(t *testing.T) {
		bl.tokens[pair.AccessToken] = true
		defer delete(bl.tokens, pair.AccessToken)

		w := do(r, http.MethodGet, "/me", pair.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Refresh Token不能作为凭证", func(t *testing.T) {
		w := do(r, http.MethodGet, "/me", pair.RefreshToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperrors.ErrCodeInvalidToken, errorCode(t, w))
	})

	t.Run("会话已删除", func(t *testing.T) {
		bl.loggedOut[5] = true
		defer delete(bl.loggedOut, 5)

		w := do(r, http.MethodGet, "/me", pair.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperrors.ErrCodeUnauthorized, errorCode(t, w))
	})

	t.Run("黑名单不可用", func(t *testing.T) {
		bl.err = apperrors.WithCause(apperrors.ErrRedisError, errors.New("connection refused"))
		defer func() { bl.err = nil }()

		w := do(r, http.MethodGet, "/me", pair.AccessToken)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	r, manager := newAuthRouter(t, &fakeSessions{})

	admin, err := manager.GenerateToken(1, "admin@admin.com", "Administrator")
	require.NoError(t, err)
	customer, err := manager.GenerateToken(2, "customer1@customer.com", "Customer")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodPost, "/admin", admin.AccessToken).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, "/admin", customer.AccessToken).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/admin", "").Code)
}

func TestRequestLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, c.GetString("request_id"))
	})

	w := do(r, http.MethodGet, "/ping", "")
	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Contains(t, w.Body.String(), id)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := do(r, http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperrors.ErrCodeInternal, errorCode(t, w))
}

func TestMetrics(t *testing.T) {
	metrics.InitMetrics()

	r := gin.New()
	r.Use(Metrics())
	r.GET("/books/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	labels := map[string]string{"method": "GET", "path": "/books/:id", "status": "200"}
	counter := metrics.HTTPRequestsTotal.With(labels)
	before := testCounterValue(t, counter)

	do(r, http.MethodGet, "/books/1", "")
	do(r, http.MethodGet, "/books/2", "")

	assert.Equal(t, before+2, testCounterValue(t, counter))
}
