package keypair

import (
	"context"

	"sol-api/internal/svc"
	"sol-api/internal/tools"
	"sol-api/internal/types"

	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type KeypairLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewKeypairLogic(ctx context.Context, svcCtx *svc.ServiceContext) *KeypairLogic {
	return &KeypairLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Keypair 生成一对新的随机密钥，不做任何保存
func (l *KeypairLogic) Keypair() (*types.KeypairResp, error) {
	acc := sdktypes.NewAccount()
	l.Debugf("[Keypair] generated pubkey=%s", acc.PublicKey)
	return &types.KeypairResp{
		Pubkey: acc.PublicKey.ToBase58(),
		Secret: tools.EncodeSecret(acc),
	}, nil
}
