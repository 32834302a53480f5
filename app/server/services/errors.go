package services

import "errors"

// 错误分类，handler 按这些哨兵映射 HTTP 状态码
var (
	ErrValidation = errors.New("invalid input")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)
