package handler

import (
	"net/http"

	"sol-api/internal/logic/keypair"
	"sol-api/internal/pkg/response"
	"sol-api/internal/svc"
)

func KeypairHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := keypair.NewKeypairLogic(r.Context(), svcCtx)
		resp, err := l.Keypair()
		response.Write(w, r, resp, err)
	}
}
