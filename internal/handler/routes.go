package handler

import (
	"net/http"

	"sol-api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

// RegisterHandlers 注册全部路由，所有接口均为 POST + JSON
func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(Routes(serverCtx))
}

// Routes 返回固定的路由表
func Routes(serverCtx *svc.ServiceContext) []rest.Route {
	return []rest.Route{
		{Method: http.MethodPost, Path: "/keypair", Handler: KeypairHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/send/sol", Handler: SendSolHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/send/token", Handler: SendTokenHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/sign/message", Handler: SignMessageHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/verify/message", Handler: VerifyMessageHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/token/create", Handler: CreateTokenHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/token/mint", Handler: MintTokenHandler(serverCtx)},
	}
}
