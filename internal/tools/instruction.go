package tools

import (
	"encoding/base64"
	"runtime/debug"

	"sol-api/internal/pkg/errorx"
	"sol-api/internal/pkg/logger"
	"sol-api/internal/types"

	sdktypes "github.com/blocto/solana-go-sdk/types"
)

// BuildInstruction 调用 SDK 构造指令。SDK 在编码失败时会 panic，这里统一转换为 400 错误
func BuildInstruction(name string, build func() sdktypes.Instruction) (ix sdktypes.Instruction, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[%s] sdk panic: %v\nstack: %s", name, r, debug.Stack())
			ix = sdktypes.Instruction{}
			err = errorx.NewParamError("%s: instruction construction failed: %v", name, r)
		}
	}()
	return build(), nil
}

// RenderInstruction 将 SDK 指令转换为响应结构，账户顺序与指令定义保持一致
func RenderInstruction(ix sdktypes.Instruction) *types.InstructionResp {
	accounts := make([]types.AccountMeta, 0, len(ix.Accounts))
	for _, meta := range ix.Accounts {
		accounts = append(accounts, types.AccountMeta{
			Pubkey:     meta.PubKey.ToBase58(),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}

	data := DecodeInstructionData(ix.ProgramID, ix.Data)
	data.Raw = base64.StdEncoding.EncodeToString(ix.Data)

	return &types.InstructionResp{
		ProgramId:        ix.ProgramID.ToBase58(),
		Accounts:         accounts,
		InstructionsData: data,
	}
}
