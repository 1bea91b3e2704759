package instruction

import (
	"context"

	"sol-api/internal/svc"
	"sol-api/internal/tools"
	"sol-api/internal/types"

	sdktoken "github.com/blocto/solana-go-sdk/program/token"
	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type CreateTokenLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateTokenLogic {
	return &CreateTokenLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CreateToken 构造 InitializeMint 指令
//
// 账户布局：
//
// #0 - mint（writable）
// #1 - Rent sysvar
func (l *CreateTokenLogic) CreateToken(req *types.CreateTokenReq) (*types.InstructionResp, error) {
	mintAuthority, err := tools.ParsePubkeyField("mint_authority", req.MintAuthority)
	if err != nil {
		return nil, err
	}
	mint, err := tools.ParsePubkeyField("mint", req.Mint)
	if err != nil {
		return nil, err
	}
	freezeAuthority, err := tools.ParseOptionalPubkeyField("freeze_authority", req.FreezeAuthority)
	if err != nil {
		return nil, err
	}
	decimals, err := parseDecimals(req.Decimals)
	if err != nil {
		return nil, err
	}

	ix, err := tools.BuildInstruction("token/create", func() sdktypes.Instruction {
		return sdktoken.InitializeMint(sdktoken.InitializeMintParam{
			Decimals:   decimals,
			Mint:       mint,
			MintAuth:   mintAuthority,
			FreezeAuth: freezeAuthority,
		})
	})
	if err != nil {
		return nil, err
	}
	ix.ProgramID = tools.TokenProgramFor(req.Token2022)

	l.Debugf("[CreateToken] mint=%s authority=%s decimals=%d", mint, mintAuthority, decimals)
	return tools.RenderInstruction(ix), nil
}
