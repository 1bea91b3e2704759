package response

import (
	"net/http"

	"sol-api/internal/pkg/errorx"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// Body 统一响应结构：成功时 {success:true,data}，失败时 {success:false,error}
type Body struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Ok 写出成功响应
func Ok(w http.ResponseWriter, r *http.Request, data any) {
	httpx.OkJsonCtx(r.Context(), w, Body{Success: true, Data: data})
}

// Fail 写出失败响应，状态码由 errorx.From 决定
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	ce := errorx.From(err)
	if ce.Code >= http.StatusInternalServerError {
		logx.WithContext(r.Context()).Errorf("[%s] server error: %v", r.URL.Path, err)
		httpx.WriteJsonCtx(r.Context(), w, ce.Code, Body{Success: false, Error: "internal server error"})
		return
	}
	httpx.WriteJsonCtx(r.Context(), w, ce.Code, Body{Success: false, Error: ce.Msg})
}

// Write 根据 err 是否为空选择 Ok 或 Fail
func Write(w http.ResponseWriter, r *http.Request, data any, err error) {
	if err != nil {
		Fail(w, r, err)
		return
	}
	Ok(w, r, data)
}
