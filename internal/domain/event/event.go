// Package event 目录变更事件
//
// 事件在数据库提交（及图片处理）成功之后发布，发布失败只记录日志，
// 不影响请求结果，订阅方不能假设每次变更都会收到事件。
package event

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Action 变更类型
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// 实体名称，同时用于路由键
const (
	EntityAuthor = "author"
	EntityBook   = "book"
)

// CatalogEvent 作者或图书的变更事件
type CatalogEvent struct {
	Entity     string    `json:"entity"`
	Action     Action    `json:"action"`
	ID         int       `json:"id"`
	Image      string    `json:"image,omitempty"` // 仅图书
	OccurredAt time.Time `json:"occurred_at"`
}

// New 创建事件
func New(entity string, action Action, id int) CatalogEvent {
	return CatalogEvent{
		Entity:     entity,
		Action:     action,
		ID:         id,
		OccurredAt: time.Now().UTC(),
	}
}

// RoutingKey 如 catalog.book.created
func (e CatalogEvent) RoutingKey() string {
	return "catalog." + e.Entity + "." + string(e.Action)
}

// Publisher 事件发布（由mq.Publisher实现）
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// Nop 不发布任何事件（mq.enabled=false时使用）
type Nop struct{}

func (Nop) Publish(context.Context, string, interface{}) error { return nil }

// Emit 发布事件，失败只记录日志
func Emit(ctx context.Context, p Publisher, e CatalogEvent) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, e.RoutingKey(), e); err != nil {
		log.Warn().Err(err).
			Str("routing_key", e.RoutingKey()).
			Int("id", e.ID).
			Msg("发布目录事件失败")
	}
}
