package user

import (
	"context"
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务逻辑（如密码加密、验证）
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
type Service interface {
	// Register 创建指定角色的用户
	Register(ctx context.Context, email, password, nickname, role string) (*User, error)

	// Login 用户登录
	Login(ctx context.Context, email, password string) (*User, error)

	// ValidatePassword 验证密码
	ValidatePassword(hashedPassword, plainPassword string) error
}

type service struct {
	repo Repository
	cost int
}

// NewService 创建用户服务
// cost为bcrypt计算成本，<=0时使用默认值12
func NewService(repo Repository, cost int) Service {
	if cost <= 0 {
		cost = 12
	}
	return &service{repo: repo, cost: cost}
}

var (
	hasLetter = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit  = regexp.MustCompile(`[0-9]`)
)

// Register 用户注册
// 业务规则：
// 1. 邮箱格式校验
// 2. 密码强度校验（8-20位，包含字母和数字）
// 3. 邮箱唯一性由数据库UNIQUE索引保证
func (s *service) Register(ctx context.Context, email, password, nickname, role string) (*User, error) {
	if role == "" {
		role = RoleCustomer
	}
	if !IsValidRole(role) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidParams, "不支持的角色")
	}

	if err := validation.Validate(email, validation.Required, is.EmailFormat); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidParams, "邮箱格式不正确")
	}

	if err := validation.Validate(password,
		validation.Required,
		validation.Length(8, 20),
		validation.Match(hasLetter),
		validation.Match(hasDigit),
	); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	if err := validation.Validate(nickname, validation.Required, validation.RuneLength(2, 50)); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidParams, "昵称长度应为2-50个字符")
	}

	// bcrypt自动加盐，每次加密结果都不同
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	user := NewUser(email, string(hashedPassword), nickname, role)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	return user, nil
}

// Login 用户登录
func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.ValidatePassword(user.Password, password); err != nil {
		return nil, err
	}

	return user, nil
}

// ValidatePassword 验证明文密码与哈希值是否匹配
func (s *service) ValidatePassword(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperrors.ErrInvalidPassword
		}
		return apperrors.Wrap(err, "密码验证失败")
	}
	return nil
}
