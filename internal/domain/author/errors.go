package author

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.ErrAuthorNotFound

	// ErrInvalidID 主键必须为正整数
	ErrInvalidID = apperrors.WithMessage(apperrors.ErrInvalidParams, "作者ID必须为正整数")
)
