package handler

import (
	"net/http"

	"sol-api/internal/logic/message"
	"sol-api/internal/pkg/response"
	"sol-api/internal/svc"
	"sol-api/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func SignMessageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SignMessageReq
		if err := httpx.Parse(r, &req); err != nil {
			response.Fail(w, r, err)
			return
		}

		l := message.NewSignMessageLogic(r.Context(), svcCtx)
		resp, err := l.SignMessage(&req)
		response.Write(w, r, resp, err)
	}
}

func VerifyMessageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.VerifyMessageReq
		if err := httpx.Parse(r, &req); err != nil {
			response.Fail(w, r, err)
			return
		}

		l := message.NewVerifyMessageLogic(r.Context(), svcCtx)
		resp, err := l.VerifyMessage(&req)
		response.Write(w, r, resp, err)
	}
}
