package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（0表示成功），HTTP状态码同时反映结果类别
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，成功时返回，失败时为null
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应（200）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应（201）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "created",
		Data:    data,
	})
}

// NoContent 无内容响应（204）
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应，整个HTTP层唯一的错误分类出口
// 用法：
//
//	if err := uc.Create(ctx, b); err != nil {
//	    response.Error(c, err)
//	    return
//	}
//
// 分类规则：
// - 校验失败 → 400，Info级别记录
// - 资源不存在 → 404
// - 持久化失败/图片读写失败/未知错误 → 500，记录内部原因
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	evt := log.Warn()
	switch {
	case status >= http.StatusInternalServerError:
		evt = log.Error()
	case apperrors.IsValidation(err):
		evt = log.Info()
	}
	evt.Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("location", c.GetString("location")).
		Int("status", status).
		Msg("请求失败")

	message := appErr.Message
	if status >= http.StatusInternalServerError {
		// 服务端错误统一对外提示
		message = apperrors.ErrInternal.Message
	}

	c.AbortWithStatusJSON(status, Response{
		Code:    appErr.Code,
		Message: message,
		Data:    nil,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}
