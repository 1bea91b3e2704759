package message

import (
	"context"

	"sol-api/internal/pkg/errorx"
	"sol-api/internal/svc"
	"sol-api/internal/tools"
	"sol-api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type VerifyMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewVerifyMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *VerifyMessageLogic {
	return &VerifyMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// VerifyMessage 校验签名。签名或公钥格式错误返回 400；格式正确但不匹配时 valid=false
func (l *VerifyMessageLogic) VerifyMessage(req *types.VerifyMessageReq) (*types.VerifyMessageResp, error) {
	pubkey, err := tools.ParsePubkeyField("pubkey", req.Pubkey)
	if err != nil {
		return nil, err
	}
	sig, err := tools.DecodeSignature(req.Signature)
	if err != nil {
		return nil, errorx.NewParamError("%v", err)
	}

	valid := tools.VerifySignature(pubkey, []byte(req.Message), sig)
	if !valid {
		l.Debugf("[VerifyMessage] signature mismatch: pubkey=%s", pubkey)
	}
	return &types.VerifyMessageResp{
		Valid:   valid,
		Message: req.Message,
		Pubkey:  pubkey.ToBase58(),
	}, nil
}
