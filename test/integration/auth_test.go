//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	email := GenerateTestEmail("register")
	req := map[string]string{
		"email":    email,
		"password": "Test-1234",
		"nickname": "register",
	}

	resp := PostJSON(t, BaseURL+"/auth/register", req, "")
	require.Equal(t, http.StatusCreated, resp.Status, resp.Message)

	var data struct {
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "Customer", data.Role)

	t.Run("重复邮箱", func(t *testing.T) {
		dup := PostJSON(t, BaseURL+"/auth/register", req, "")
		assert.Equal(t, http.StatusBadRequest, dup.Status)
	})

	t.Run("弱密码", func(t *testing.T) {
		weak := PostJSON(t, BaseURL+"/auth/register", map[string]string{
			"email":    GenerateTestEmail("weak"),
			"password": "abcdefghij",
			"nickname": "weak",
		}, "")
		assert.Equal(t, http.StatusBadRequest, weak.Status)
	})
}

func TestLoginLogout(t *testing.T) {
	t.Run("管理员角色", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/auth/login", map[string]string{
			"email": adminEmail, "password": adminPassword,
		}, "")
		require.Equal(t, http.StatusOK, resp.Status)

		var data LoginData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "Administrator", data.User.Role)
	})

	t.Run("密码错误", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/auth/login", map[string]string{
			"email": adminEmail, "password": "wrong-pass1",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.Status)
	})

	t.Run("Refresh Token不能访问接口", func(t *testing.T) {
		email, _ := RegisterTestUser(t, "refresh")
		resp := PostJSON(t, BaseURL+"/auth/login", map[string]string{
			"email": email, "password": "Test-1234",
		}, "")
		require.Equal(t, http.StatusOK, resp.Status)

		var data LoginData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, http.StatusUnauthorized, GetJSON(t, BaseURL+"/books", data.RefreshToken).Status)
		assert.Equal(t, http.StatusOK, GetJSON(t, BaseURL+"/books", data.AccessToken).Status)
	})

	t.Run("登出后Token失效", func(t *testing.T) {
		_, token := RegisterTestUser(t, "logout")

		out := PostJSON(t, BaseURL+"/auth/logout", nil, token)
		require.Equal(t, http.StatusNoContent, out.Status)

		resp := GetJSON(t, BaseURL+"/books", token)
		assert.Equal(t, http.StatusUnauthorized, resp.Status)
	})
}
