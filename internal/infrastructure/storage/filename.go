package storage

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 只允许单层文件名：字母数字开头，后续为字母数字、点、下划线、连字符
var fileNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

var noDotDot = validation.NewStringRule(func(s string) bool {
	return !strings.Contains(s, "..")
}, "不能包含..")

// ValidateFileName 校验图片文件名，空字符串表示没有图片，视为合法
func ValidateFileName(name string) error {
	if name == "" {
		return nil
	}
	err := validation.Validate(name,
		validation.Length(1, 255),
		validation.Match(fileNamePattern),
		noDotDot,
	)
	if err != nil {
		return apperrors.WithCause(apperrors.ErrInvalidFileName, err)
	}
	return nil
}
