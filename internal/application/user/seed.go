package user

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookcatalog/internal/domain/user"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// SeedUseCase 启动时写入默认账号
// 已存在的邮箱直接跳过，重复执行结果相同
type SeedUseCase struct {
	userService user.Service
	repo        user.Repository
}

// NewSeedUseCase 创建种子用例
func NewSeedUseCase(userService user.Service, repo user.Repository) *SeedUseCase {
	return &SeedUseCase{userService: userService, repo: repo}
}

// Execute 写入种子账号，返回新建的账号数
func (uc *SeedUseCase) Execute(ctx context.Context, users []config.SeedUser) (int, error) {
	created := 0
	for _, su := range users {
		_, err := uc.repo.FindByEmail(ctx, su.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return created, err
		}

		nickname := su.Nickname
		if nickname == "" {
			nickname = su.Email
		}
		if _, err := uc.userService.Register(ctx, su.Email, su.Password, nickname, su.Role); err != nil {
			if errors.Is(err, apperrors.ErrEmailDuplicate) {
				continue
			}
			return created, err
		}
		created++
		log.Info().Str("email", su.Email).Str("role", su.Role).Msg("已创建默认账号")
	}
	return created, nil
}
