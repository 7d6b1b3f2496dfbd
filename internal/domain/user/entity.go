package user

import (
	"time"
)

// 角色定义
// Administrator 可以维护图书目录；Customer 只能浏览
const (
	RoleAdministrator = "Administrator"
	RoleCustomer      = "Customer"
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. 密码已加密存储（bcrypt），不应该有GetPassword()等方法暴露明文
// 2. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	Nickname  string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码，role为空时默认为Customer
func NewUser(email, hashedPassword, nickname, role string) *User {
	if role == "" {
		role = RoleCustomer
	}
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		Nickname:  nickname,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdministrator 是否为管理员
func (u *User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}

// IsValidRole 角色是否受支持
func IsValidRole(role string) bool {
	return role == RoleAdministrator || role == RoleCustomer
}
