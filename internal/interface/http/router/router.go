// Package router 注册全部HTTP路由和全局中间件
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookcatalog/internal/domain/user"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// Options 路由选项
type Options struct {
	Mode          string // debug | release | test
	EnableSwagger bool
}

// New 创建Gin引擎并注册路由
//
//	/ping                 健康检查
//	/metrics              Prometheus指标
//	/swagger/*any         API文档（release模式下关闭）
//	/api/v1/authors       公开
//	/api/v1/books         读需要登录，写需要Administrator
//	/api/v1/auth          注册、登录、登出
func New(
	opts Options,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	userHandler *handler.UserHandler,
	auth *middleware.AuthMiddleware,
) *gin.Engine {
	switch opts.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(opts.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.Metrics(),
	)

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if opts.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	{
		authors := v1.Group("/authors")
		{
			authors.GET("", authorHandler.List)
			authors.GET("/:id", authorHandler.Get)
			authors.POST("", authorHandler.Create)
			authors.PUT("/:id", authorHandler.Update)
			authors.DELETE("/:id", authorHandler.Delete)
		}

		books := v1.Group("/books", auth.RequireAuth())
		{
			books.GET("", bookHandler.List)
			books.GET("/:id", bookHandler.Get)

			admin := auth.RequireRole(user.RoleAdministrator)
			books.POST("", admin, bookHandler.Create)
			books.PUT("/:id", admin, bookHandler.Update)
			books.DELETE("/:id", admin, bookHandler.Delete)
		}

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", userHandler.Register)
			authGroup.POST("/login", userHandler.Login)
			authGroup.POST("/logout", auth.RequireAuth(), userHandler.Logout)
		}
	}

	return r
}
