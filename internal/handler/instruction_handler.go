package handler

import (
	"net/http"

	"sol-api/internal/logic/instruction"
	"sol-api/internal/pkg/response"
	"sol-api/internal/svc"
	"sol-api/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func SendSolHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SendSolReq
		if err := httpx.Parse(r, &req); err != nil {
			response.Fail(w, r, err)
			return
		}

		l := instruction.NewSendSolLogic(r.Context(), svcCtx)
		resp, err := l.SendSol(&req)
		response.Write(w, r, resp, err)
	}
}

func SendTokenHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SendTokenReq
		if err := httpx.Parse(r, &req); err != nil {
			response.Fail(w, r, err)
			return
		}

		l := instruction.NewSendTokenLogic(r.Context(), svcCtx)
		resp, err := l.SendToken(&req)
		response.Write(w, r, resp, err)
	}
}

func CreateTokenHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateTokenReq
		if err := httpx.Parse(r, &req); err != nil {
			response.Fail(w, r, err)
			return
		}

		l := instruction.NewCreateTokenLogic(r.Context(), svcCtx)
		resp, err := l.CreateToken(&req)
		response.Write(w, r, resp, err)
	}
}

func MintTokenHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.MintTokenReq
		if err := httpx.Parse(r, &req); err != nil {
			response.Fail(w, r, err)
			return
		}

		l := instruction.NewMintTokenLogic(r.Context(), svcCtx)
		resp, err := l.MintToken(&req)
		response.Write(w, r, resp, err)
	}
}
