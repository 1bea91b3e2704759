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

type MintTokenLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMintTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MintTokenLogic {
	return &MintTokenLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// MintToken 构造 MintTo / MintToChecked 指令，目标账户为 destination 钱包的 ATA
//
// 账户布局：[mint, dest_ata, authority]
func (l *MintTokenLogic) MintToken(req *types.MintTokenReq) (*types.InstructionResp, error) {
	mint, err := tools.ParsePubkeyField("mint", req.Mint)
	if err != nil {
		return nil, err
	}
	destination, err := tools.ParsePubkeyField("destination", req.Destination)
	if err != nil {
		return nil, err
	}
	authority, err := tools.ParsePubkeyField("authority", req.Authority)
	if err != nil {
		return nil, err
	}

	tokenProgram := tools.TokenProgramFor(req.Token2022)
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
			return sdktoken.MintToChecked(sdktoken.MintToCheckedParam{
				Mint:     mint,
				To:       destAta,
				Auth:     authority,
				Signers:  []common.PublicKey{},
				Amount:   req.Amount,
				Decimals: decimals,
			})
		}
	} else {
		build = func() sdktypes.Instruction {
			return sdktoken.MintTo(sdktoken.MintToParam{
				Mint:    mint,
				To:      destAta,
				Auth:    authority,
				Signers: []common.PublicKey{},
				Amount:  req.Amount,
			})
		}
	}

	ix, err := tools.BuildInstruction("token/mint", build)
	if err != nil {
		return nil, err
	}
	ix.ProgramID = tokenProgram

	l.Debugf("[MintToken] mint=%s destination=%s amount=%d checked=%v", mint, destination, req.Amount, req.Checked)
	return tools.RenderInstruction(ix), nil
}
