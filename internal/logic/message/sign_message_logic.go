package message

import (
	"context"

	"sol-api/internal/pkg/errorx"
	"sol-api/internal/svc"
	"sol-api/internal/tools"
	"sol-api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type SignMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSignMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SignMessageLogic {
	return &SignMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SignMessage 用 secret 对消息的 UTF-8 字节签名
func (l *SignMessageLogic) SignMessage(req *types.SignMessageReq) (*types.SignMessageResp, error) {
	if req.Message == "" {
		return nil, errorx.NewParamError("message must not be empty")
	}
	if limit := l.svcCtx.Config.SignerConf.MaxMessageBytes; len(req.Message) > limit {
		return nil, errorx.NewParamError("message too long: %d bytes, max %d", len(req.Message), limit)
	}

	acc, err := tools.DecodeSecret(req.Secret)
	if err != nil {
		// 错误信息不包含 secret 本身
		return nil, errorx.NewParamError("%v", err)
	}

	sig := acc.Sign([]byte(req.Message))
	return &types.SignMessageResp{
		Signature: tools.EncodeSignature(sig),
		PublicKey: acc.PublicKey.ToBase58(),
		Message:   req.Message,
	}, nil
}
