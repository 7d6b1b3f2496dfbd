//go:build integration

package integration

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAuthorLifecycle 作者接口无需登录
func TestAuthorLifecycle(t *testing.T) {
	lastName := fmt.Sprintf("作者%d", time.Now().UnixNano())
	id := CreateTestAuthor(t, lastName)

	t.Run("按ID查询", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/authors/%d", BaseURL, id), "")
		require.Equal(t, http.StatusOK, resp.Status)

		var a AuthorData
		require.NoError(t, json.Unmarshal(resp.Data, &a))
		assert.Equal(t, lastName, a.LastName)
		assert.Empty(t, a.Books)
	})

	t.Run("路径ID与请求体不一致", func(t *testing.T) {
		resp := Do(t, http.MethodPut, fmt.Sprintf("%s/authors/%d", BaseURL, id), map[string]interface{}{
			"id": id + 1, "first_name": "x", "last_name": "y",
		}, "")
		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})

	t.Run("更新", func(t *testing.T) {
		resp := Do(t, http.MethodPut, fmt.Sprintf("%s/authors/%d", BaseURL, id), map[string]interface{}{
			"id": id, "first_name": "改名", "last_name": lastName, "bio": "简介",
		}, "")
		require.Equal(t, http.StatusNoContent, resp.Status, resp.Message)

		got := GetJSON(t, fmt.Sprintf("%s/authors/%d", BaseURL, id), "")
		var a AuthorData
		require.NoError(t, json.Unmarshal(got.Data, &a))
		assert.Equal(t, "改名", a.FirstName)
		assert.Equal(t, "简介", a.Bio)
	})

	t.Run("删除后不可见", func(t *testing.T) {
		resp := Do(t, http.MethodDelete, fmt.Sprintf("%s/authors/%d", BaseURL, id), nil, "")
		require.Equal(t, http.StatusNoContent, resp.Status)

		got := GetJSON(t, fmt.Sprintf("%s/authors/%d", BaseURL, id), "")
		assert.Equal(t, http.StatusNotFound, got.Status)

		again := Do(t, http.MethodDelete, fmt.Sprintf("%s/authors/%d", BaseURL, id), nil, "")
		assert.Equal(t, http.StatusNotFound, again.Status)
	})

	t.Run("非法ID", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/authors/abc", "")
		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})
}

// TestBookAccess 图书接口需要登录，写操作需要管理员
func TestBookAccess(t *testing.T) {
	_, customer := RegisterTestUser(t, "reader")

	t.Run("未登录", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books", "")
		assert.Equal(t, http.StatusUnauthorized, resp.Status)
	})

	t.Run("普通用户可以查询", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books", customer)
		assert.Equal(t, http.StatusOK, resp.Status)
	})

	t.Run("普通用户不能创建", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title": "禁止", "author_id": 1,
		}, customer)
		assert.Equal(t, http.StatusForbidden, resp.Status)
	})
}

// TestBookLifecycle 图书与图片的完整流程
func TestBookLifecycle(t *testing.T) {
	admin := AdminToken(t)
	authorID := CreateTestAuthor(t, fmt.Sprintf("图书作者%d", time.Now().UnixNano()))

	title := fmt.Sprintf("集成测试图书%d", time.Now().UnixNano())
	image := fmt.Sprintf("it-%d.png", time.Now().UnixNano())
	v1 := base64.StdEncoding.EncodeToString([]byte("image-v1"))

	resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"title": title, "year": 2024, "isbn": "9780000000001",
		"image": image, "author_id": authorID, "file": v1,
	}, admin)
	require.Equal(t, http.StatusCreated, resp.Status, resp.Message)

	list := GetJSON(t, BaseURL+"/books", admin)
	require.Equal(t, http.StatusOK, list.Status)
	var books []BookData
	require.NoError(t, json.Unmarshal(list.Data, &books))

	var created *BookData
	for i := range books {
		if books[i].Title == title {
			created = &books[i]
		}
	}
	require.NotNil(t, created, "新建图书未出现在列表中")
	assert.Equal(t, v1, created.File)
	require.NotNil(t, created.Author)
	assert.Equal(t, authorID, created.Author.ID)

	bookURL := fmt.Sprintf("%s/books/%d", BaseURL, created.ID)

	t.Run("作者详情包含图书", func(t *testing.T) {
		got := GetJSON(t, fmt.Sprintf("%s/authors/%d", BaseURL, authorID), "")
		var a AuthorData
		require.NoError(t, json.Unmarshal(got.Data, &a))
		require.Len(t, a.Books, 1)
		assert.Equal(t, title, a.Books[0].Title)
	})

	t.Run("替换图片", func(t *testing.T) {
		v2 := base64.StdEncoding.EncodeToString([]byte("image-v2"))
		upd := Do(t, http.MethodPut, bookURL, map[string]interface{}{
			"id": created.ID, "title": title, "year": 2025,
			"image": "v2-" + image, "author_id": authorID, "file": v2,
		}, admin)
		require.Equal(t, http.StatusNoContent, upd.Status, upd.Message)

		got := GetJSON(t, bookURL, admin)
		var b BookData
		require.NoError(t, json.Unmarshal(got.Data, &b))
		assert.Equal(t, 2025, b.Year)
		assert.Equal(t, "v2-"+image, b.Image)
		assert.Equal(t, v2, b.File)
	})

	t.Run("非法Base64", func(t *testing.T) {
		upd := Do(t, http.MethodPut, bookURL, map[string]interface{}{
			"id": created.ID, "title": title, "author_id": authorID, "file": "%%%",
		}, admin)
		assert.Equal(t, http.StatusBadRequest, upd.Status)
	})

	t.Run("删除", func(t *testing.T) {
		del := Do(t, http.MethodDelete, bookURL, nil, admin)
		require.Equal(t, http.StatusNoContent, del.Status)
		assert.Equal(t, http.StatusNotFound, GetJSON(t, bookURL, admin).Status)
	})
}
