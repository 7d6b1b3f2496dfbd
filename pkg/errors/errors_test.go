package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  *AppError
		want int
	}{
		{"参数错误", ErrInvalidParams, http.StatusBadRequest},
		{"ID不一致", ErrIDMismatch, http.StatusBadRequest},
		{"文件名非法", ErrInvalidFileName, http.StatusBadRequest},
		{"未登录", ErrUnauthorized, http.StatusUnauthorized},
		{"Token过期", ErrTokenExpired, http.StatusUnauthorized},
		{"无权限", ErrForbidden, http.StatusForbidden},
		{"图书不存在", ErrBookNotFound, http.StatusNotFound},
		{"作者不存在", ErrAuthorNotFound, http.StatusNotFound},
		{"提交失败", ErrPersistence, http.StatusInternalServerError},
		{"图片写入失败", ErrImageWriteFailed, http.StatusInternalServerError},
		{"内部错误", Wrap(errors.New("boom"), "x"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.HTTPStatus())
		})
	}
}

func TestWithCauseKeepsIdentity(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("create: %w", WithCause(ErrImageWriteFailed, cause))

	assert.True(t, errors.Is(err, ErrImageWriteFailed))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrImageDeleteFailed))
}

func TestGetAppError(t *testing.T) {
	appErr := GetAppError(errors.New("raw"))
	assert.Equal(t, ErrCodeInternal, appErr.Code)

	wrapped := fmt.Errorf("ctx: %w", ErrBookNotFound)
	assert.Equal(t, ErrCodeBookNotFound, GetAppError(wrapped).Code)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrBindError))
	assert.False(t, IsValidation(ErrBookNotFound))
	assert.False(t, IsValidation(errors.New("raw")))
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrInvalidParams, "id必须是正整数")

	assert.Equal(t, ErrCodeInvalidParams, err.Code)
	assert.Equal(t, "id必须是正整数", err.Message)
	assert.True(t, errors.Is(err, ErrInvalidParams))
	assert.Equal(t, "参数错误", ErrInvalidParams.Message)
}
