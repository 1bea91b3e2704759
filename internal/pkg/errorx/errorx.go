package errorx

import (
	"errors"
	"fmt"
	"net/http"
)

// CodeError 携带 HTTP 状态码的业务错误
type CodeError struct {
	Code int    // HTTP 状态码
	Msg  string // 返回给调用方的错误描述
}

func (e *CodeError) Error() string {
	return e.Msg
}

// NewParamError 创建客户端参数错误（400）
func NewParamError(format string, args ...any) *CodeError {
	return &CodeError{Code: http.StatusBadRequest, Msg: fmt.Sprintf(format, args...)}
}

// NewInternalError 创建服务端错误（500）
func NewInternalError(format string, args ...any) *CodeError {
	return &CodeError{Code: http.StatusInternalServerError, Msg: fmt.Sprintf(format, args...)}
}

// IsParamError 判断 err 链上是否存在 400 类错误
func IsParamError(err error) bool {
	var ce *CodeError
	return errors.As(err, &ce) && ce.Code == http.StatusBadRequest
}

// From 将任意 error 归一化为 CodeError。
// 非 CodeError 的错误（如 httpx.Parse 的字段解析失败）一律视为客户端错误。
func From(err error) *CodeError {
	if err == nil {
		return nil
	}
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce
	}
	return &CodeError{Code: http.StatusBadRequest, Msg: err.Error()}
}
