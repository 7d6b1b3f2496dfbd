//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试针对已启动的服务运行：
//
//	docker compose up -d mysql redis
//	go run ./cmd/api
//	go test -tags integration -v ./test/integration/...

const (
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second

	adminEmail    = "admin@admin.com"
	adminPassword = "Pasword-1"
)

// BaseURL API基础URL，可通过CATALOG_BASE_URL覆盖
var BaseURL = func() string {
	if u := os.Getenv("CATALOG_BASE_URL"); u != "" {
		return u
	}
	return "http://localhost:8080/api/v1"
}()

// Response 统一响应结构
type Response struct {
	Status  int             `json:"-"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID   uint   `json:"id"`
		Role string `json:"role"`
	} `json:"user"`
}

// AuthorData 作者响应数据
type AuthorData struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Books     []struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	} `json:"books"`
}

// BookData 图书响应数据
type BookData struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	ISBN     string `json:"isbn"`
	Image    string `json:"image"`
	AuthorID int    `json:"author_id"`
	File     string `json:"file"`
	Author   *struct {
		ID        int    `json:"id"`
		FirstName string `json:"first_name"`
	} `json:"author"`
}

// Do 发送请求并解析统一响应，204时Data为空
func Do(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	result := &Response{Status: resp.StatusCode}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, result), "解析JSON响应失败: %s", string(raw))
	}
	return result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	t.Helper()
	return Do(t, http.MethodPost, url, data, token)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string, token string) *Response {
	t.Helper()
	return Do(t, http.MethodGet, url, nil, token)
}

// GenerateTestEmail 生成唯一的测试邮箱
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// Login 登录并返回Access Token
func Login(t *testing.T, email, password string) string {
	t.Helper()
	resp := PostJSON(t, BaseURL+"/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, resp.Status, "登录失败: %s", resp.Message)

	var data LoginData
	require.NoError(t, json.Unmarshal(resp.Data, &data), "解析登录响应失败")
	return data.AccessToken
}

// AdminToken 使用启动时写入的管理员账号登录
func AdminToken(t *testing.T) string {
	return Login(t, adminEmail, adminPassword)
}

// RegisterTestUser 注册普通用户并返回Token
func RegisterTestUser(t *testing.T, nickname string) (email string, token string) {
	t.Helper()
	email = GenerateTestEmail(nickname)
	resp := PostJSON(t, BaseURL+"/auth/register", map[string]string{
		"email":    email,
		"password": "Test-1234",
		"nickname": nickname,
	}, "")
	require.Equal(t, http.StatusCreated, resp.Status, "注册失败: %s", resp.Message)

	return email, Login(t, email, "Test-1234")
}

// CreateTestAuthor 创建作者并返回其ID
func CreateTestAuthor(t *testing.T, lastName string) int {
	t.Helper()
	resp := PostJSON(t, BaseURL+"/authors", map[string]string{
		"first_name": "集成",
		"last_name":  lastName,
	}, "")
	require.Equal(t, http.StatusCreated, resp.Status, "创建作者失败: %s", resp.Message)

	authors := ListAuthors(t)
	for _, a := range authors {
		if a.LastName == lastName {
			return a.ID
		}
	}
	t.Fatalf("新建作者%s未出现在列表中", lastName)
	return 0
}

// ListAuthors 查询全部作者
func ListAuthors(t *testing.T) []AuthorData {
	t.Helper()
	resp := GetJSON(t, BaseURL+"/authors", "")
	require.Equal(t, http.StatusOK, resp.Status)

	var authors []AuthorData
	require.NoError(t, json.Unmarshal(resp.Data, &authors))
	return authors
}
