package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/jwt"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

const (
	ctxKeyUserID = "user_id"
	ctxKeyEmail  = "email"
	ctxKeyRole   = "role"
	ctxKeyToken  = "access_token"
)

// Sessions 会话与黑名单查询（由redis.SessionStore实现）
// 会话不存在时GetSession返回ErrUnauthorized
type Sessions interface {
	IsInBlacklist(ctx context.Context, token string) (bool, error)
	GetSession(ctx context.Context, userID uint) (map[string]string, error)
}

// AuthMiddleware JWT认证中间件
// 设计说明：
// 1. 从Header提取Token
// 2. 检查Token黑名单
// 3. 验证Token有效性，只接受Access Token
// 4. 要求用户会话仍然存在（登出后同一用户的所有Token失效）
// 5. 将用户信息和角色注入Context
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	sessions   Sessions
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, sessions Sessions) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		sessions:   sessions,
	}
}

// RequireAuth 要求登录
// 使用方式：
//
//	books := v1.Group("/books", authMiddleware.RequireAuth())
//	books.GET("", bookHandler.List)
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 格式：Authorization: Bearer <token>
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperrors.ErrUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidToken, "Token格式错误")
			return
		}
		tokenString := parts[1]

		// 用户已登出或Token被强制失效
		ctx := c.Request.Context()
		isBlacklisted, err := m.sessions.IsInBlacklist(ctx, tokenString)
		if err != nil {
			response.Error(c, err)
			return
		}
		if isBlacklisted {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidToken, "Token已失效，请重新登录")
			return
		}

		claims, err := m.jwtManager.ParseAccessToken(tokenString)
		if err != nil {
			response.Error(c, err) // ErrTokenExpired、ErrInvalidToken
			return
		}

		if _, err := m.sessions.GetSession(ctx, claims.UserID); err != nil {
			response.Error(c, err) // ErrUnauthorized、ErrRedisError
			return
		}

		c.Set(ctxKeyUserID, claims.UserID)
		c.Set(ctxKeyEmail, claims.Email)
		c.Set(ctxKeyRole, claims.Role)
		c.Set(ctxKeyToken, tokenString)

		c.Next()
	}
}

// RequireRole 要求指定角色，必须放在RequireAuth之后
// 已登录但角色不符返回403
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		response.Error(c, apperrors.ErrForbidden)
	}
}

// GetUserID 从Context获取当前登录用户ID，未登录返回0
func GetUserID(c *gin.Context) uint {
	if userID, exists := c.Get(ctxKeyUserID); exists {
		if uid, ok := userID.(uint); ok {
			return uid
		}
	}
	return 0
}

// GetEmail 从Context获取当前登录用户邮箱
func GetEmail(c *gin.Context) string {
	return c.GetString(ctxKeyEmail)
}

// GetRole 从Context获取当前登录用户角色
func GetRole(c *gin.Context) string {
	return c.GetString(ctxKeyRole)
}

// GetAccessToken 从Context获取本次请求携带的Access Token（登出时加入黑名单）
func GetAccessToken(c *gin.Context) string {
	return c.GetString(ctxKeyToken)
}
