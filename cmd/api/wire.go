//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"

	appauthor "github.com/xiebiao/bookcatalog/internal/application/author"
	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	appuser "github.com/xiebiao/bookcatalog/internal/application/user"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/storage"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/internal/interface/http/router"
)

// infrastructureSet 数据库、Redis、图片存储
var infrastructureSet = wire.NewSet(
	provideDB,
	provideRedis,
	storage.New,
	provideEventPublisher,
)

// repositorySet 仓储
// 作者和图书仓储以工厂形式注入，每次调用打开新的存储会话
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewAuthorRepositoryFactory,
	mysql.NewBookRepositoryFactory,
	redis.NewSessionStore,
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	provideUserService,
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	appauthor.NewAuthorUseCase,
	appbook.NewImageChannel,
	appbook.NewBookUseCase,
	appuser.NewRegisterUseCase,
	provideLoginUseCase,
	provideLogoutUseCase,
	appuser.NewSeedUseCase,
	wire.Bind(new(appuser.SessionStore), new(*redis.SessionStore)),
)

// interfaceSet HTTP处理器、中间件、路由
var interfaceSet = wire.NewSet(
	provideJWTManager,
	middleware.NewAuthMiddleware,
	wire.Bind(new(middleware.Sessions), new(*redis.SessionStore)),
	handler.NewAuthorHandler,
	wire.Bind(new(handler.AuthorService), new(*appauthor.AuthorUseCase)),
	handler.NewBookHandler,
	wire.Bind(new(handler.BookService), new(*appbook.BookUseCase)),
	handler.NewUserHandler,
	wire.Bind(new(handler.Registerer), new(*appuser.RegisterUseCase)),
	wire.Bind(new(handler.Authenticator), new(*appuser.LoginUseCase)),
	wire.Bind(new(handler.SessionTerminator), new(*appuser.LogoutUseCase)),
	provideRouterOptions,
	router.New,
)

// InitializeApp 组装整个应用
// 返回的cleanup关闭数据库和Redis连接
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
