package handler

import (
	"encoding/base64"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 记录到日志中的调用位置，由response.Error读取
const ctxKeyLocation = "location"

// pathID 解析路径中的id，必须是不小于1的整数
func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidParams, "id必须是正整数")
	}
	return id, nil
}

// bindError 请求体绑定失败（JSON格式错误、binding tag校验失败）
func bindError(err error) error {
	return apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error())
}

// decodeFile 解码base64图片内容，空字符串表示未携带图片
func decodeFile(file string) ([]byte, error) {
	if file == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(file)
	if err != nil {
		return nil, apperrors.WithCause(apperrors.ErrInvalidImage, err)
	}
	return data, nil
}
