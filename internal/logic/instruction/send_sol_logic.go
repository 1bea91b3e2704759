package instruction

import (
	"context"

	"sol-api/internal/svc"
	"sol-api/internal/tools"
	"sol-api/internal/types"

	sdksystem "github.com/blocto/solana-go-sdk/program/system"
	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type SendSolLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendSolLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendSolLogic {
	return &SendSolLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SendSol 构造原生 SOL 转账指令
//
// 账户布局：
//
// #0 - from（signer, writable）
// #1 - to（writable）
func (l *SendSolLogic) SendSol(req *types.SendSolReq) (*types.InstructionResp, error) {
	from, err := tools.ParsePubkeyField("from_address", req.FromAddress)
	if err != nil {
		return nil, err
	}
	to, err := tools.ParsePubkeyField("to_address", req.ToAddress)
	if err != nil {
		return nil, err
	}

	ix, err := tools.BuildInstruction("send/sol", func() sdktypes.Instruction {
		return sdksystem.Transfer(sdksystem.TransferParam{
			From:   from,
			To:     to,
			Amount: req.Lamports,
		})
	})
	if err != nil {
		return nil, err
	}

	l.Debugf("[SendSol] from=%s to=%s lamports=%d", from, to, req.Lamports)
	return tools.RenderInstruction(ix), nil
}
