package book

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrInvalidID 主键必须为正整数
	ErrInvalidID = apperrors.WithMessage(apperrors.ErrInvalidParams, "图书ID必须为正整数")

	// ErrFileWithoutImage 携带了图片内容却没有文件名
	ErrFileWithoutImage = apperrors.New(apperrors.ErrCodeInvalidImage, "上传图片内容时必须提供图片文件名")
)
