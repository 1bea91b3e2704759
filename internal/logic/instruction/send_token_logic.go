package instruction

import (
	"context"

	"sol-api/internal/svc"
	"sol-api/internal/tools"
	"sol-api/internal/types"

	"github.com/blocto/solana-go-sdk/common"
	sdktoken "github.com/blocto/solana-go-sdk/program/token"
	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type SendTokenLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendTokenLogic {
	return &SendTokenLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SendToken 构造 SPL Token 转账指令，来源与目标账户均为钱包对应的 ATA
//
// Transfer 账户布局：        [src_ata, dest_ata, owner]
// TransferChecked 账户布局： [src_ata, mint, dest_ata, owner]
func (l *SendTokenLogic) SendToken(req *types.SendTokenReq) (*types.InstructionResp, error) {
	owner, err := tools.ParsePubkeyField("owner", req.Owner)
	if err != nil {
		return nil, err
	}
	destination, err := tools.ParsePubkeyField("destination", req.Destination)
	if err != nil {
		return nil, err
	}
	mint, err := tools.ParsePubkeyField("mint", req.Mint)
	if err != nil {
		return nil, err
	}

	tokenProgram := tools.TokenProgramFor(req.Token2022)
	srcAta, err := associatedTokenAccount("owner", owner, mint, tokenProgram)
	if err != nil {
		return nil, err
	}
	destAta, err := associatedTokenAccount("destination", destination, mint, tokenProgram)
	if err != nil {
		return nil, err
	}

	var build func() sdktypes.Instruction
	if req.Checked {
		decimals, err := parseCheckedDecimals(req.Decimals)
		if err != nil {
			return nil, err
		}
		build = func() sdktypes.Instruction {
			return sdktoken.TransferChecked(sdktoken.TransferCheckedParam{
				From:     srcAta,
				To:       destAta,
				Mint:     mint,
				Auth:     owner,
				Signers:  []common.PublicKey{},
				Amount:   req.Amount,
				Decimals: decimals,
			})
		}
	} else {
		build = func() sdktypes.Instruction {
			return sdktoken.Transfer(sdktoken.TransferParam{
				From:    srcAta,
				To:      destAta,
				Auth:    owner,
				Signers: []common.PublicKey{},
				Amount:  req.Amount,
			})
		}
	}

	ix, err := tools.BuildInstruction("send/token", build)
	if err != nil {
		return nil, err
	}
	ix.ProgramID = tokenProgram

	l.Debugf("[SendToken] mint=%s owner=%s destination=%s amount=%d checked=%v", mint, owner, destination, req.Amount, req.Checked)
	return tools.RenderInstruction(ix), nil
}
