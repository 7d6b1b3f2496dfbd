package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    int
		message string
	}{
		{"校验失败", apperrors.ErrIDMismatch, http.StatusBadRequest, apperrors.ErrCodeIDMismatch, apperrors.ErrIDMismatch.Message},
		{"不存在", apperrors.ErrBookNotFound, http.StatusNotFound, apperrors.ErrCodeBookNotFound, apperrors.ErrBookNotFound.Message},
		{"提交失败", apperrors.ErrPersistence, http.StatusInternalServerError, apperrors.ErrCodePersistence, "Internal Error"},
		{"未知错误", errors.New("boom"), http.StatusInternalServerError, apperrors.ErrCodeInternal, "Internal Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestCreatedAndNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Created(c, map[string]int{"id": 7})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"code":0,"message":"created","data":{"id":7}}`, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	NoContent(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestError_LogLevel(t *testing.T) {
	orig := log.Logger
	defer func() { log.Logger = orig }()

	cases := []struct {
		name  string
		err   error
		level string
	}{
		{"校验失败", apperrors.WithMessage(apperrors.ErrInvalidParams, "id必须是正整数"), "info"},
		{"不存在", apperrors.ErrAuthorNotFound, "warn"},
		{"未登录", apperrors.ErrUnauthorized, "warn"},
		{"提交失败", apperrors.ErrPersistence, "error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log.Logger = zerolog.New(&buf)

			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			Error(c, tc.err)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tc.level, entry["level"])
		})
	}
}
