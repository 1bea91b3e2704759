package tools

import (
	"encoding/binary"

	"sol-api/internal/consts"
	"sol-api/internal/pkg/logger"
	"sol-api/internal/types"

	"github.com/blocto/solana-go-sdk/common"
	sdksystem "github.com/blocto/solana-go-sdk/program/system"
	sdktoken "github.com/blocto/solana-go-sdk/program/token"
	"github.com/near/borsh-go"
)

// 合约源代码:
// System: https://github.com/solana-labs/solana/blob/master/sdk/program/src/system_instruction.rs
// SplToken: https://github.com/solana-program/token/blob/main/program/src/instruction.rs

const TypeUnknown = "unknown"

// System Transfer: [0:4]=instr(u32), [4:12]=lamports
type systemTransferLayout struct {
	Instruction uint32
	Lamports    uint64
}

// Transfer / MintTo: [0]=instr, [1:9]=amount
type tokenAmountLayout struct {
	Instruction uint8
	Amount      uint64
}

// TransferChecked / MintToChecked: [0]=instr, [1:9]=amount, [9]=decimals
type tokenAmountCheckedLayout struct {
	Instruction uint8
	Amount      uint64
	Decimals    uint8
}

// InitializeMint: [0]=instr, [1]=decimals, [2:34]=mint_authority, [34]=option, [35:67]=freeze_authority
type initializeMintLayout struct {
	Instruction     uint8
	Decimals        uint8
	MintAuthority   common.PublicKey
	Option          uint8
	FreezeAuthority common.PublicKey
}

// DecodeInstructionData 按程序与指令类型解码指令数据；无法识别时 Type=unknown，不影响 Raw 字段
func DecodeInstructionData(programId common.PublicKey, data []byte) types.InstructionData {
	switch {
	case programId == consts.SystemProgram:
		return decodeSystemInstruction(data)
	case IsSPLTokenProgram(programId):
		return decodeTokenInstruction(data)
	default:
		return types.InstructionData{Type: TypeUnknown}
	}
}

func decodeSystemInstruction(data []byte) types.InstructionData {
	if len(data) < 12 || binary.LittleEndian.Uint32(data[:4]) != uint32(sdksystem.InstructionTransfer) {
		return types.InstructionData{Type: TypeUnknown}
	}
	var layout systemTransferLayout
	if err := borsh.Deserialize(&layout, data[:12]); err != nil {
		logger.Warnf("[System::Transfer] 指令数据解码失败: %v", err)
		return types.InstructionData{Type: TypeUnknown}
	}
	return types.InstructionData{
		Type:     "transfer",
		Amount:   &layout.Lamports,
		UiAmount: FormatUiAmount(layout.Lamports, consts.SOLDecimals),
	}
}

func decodeTokenInstruction(data []byte) types.InstructionData {
	if len(data) == 0 {
		return types.InstructionData{Type: TypeUnknown}
	}

	switch data[0] {
	case byte(sdktoken.InstructionTransfer), byte(sdktoken.InstructionMintTo):
		if len(data) < 9 {
			break
		}
		var layout tokenAmountLayout
		if err := borsh.Deserialize(&layout, data[:9]); err != nil {
			logger.Warnf("[Token::%s] 指令数据解码失败: %v", tokenInstructionName(data[0]), err)
			break
		}
		return types.InstructionData{
			Type:   tokenInstructionName(data[0]),
			Amount: &layout.Amount,
		}

	case byte(sdktoken.InstructionTransferChecked), byte(sdktoken.InstructionMintToChecked):
		if len(data) < 10 {
			break
		}
		var layout tokenAmountCheckedLayout
		if err := borsh.Deserialize(&layout, data[:10]); err != nil {
			logger.Warnf("[Token::%s] 指令数据解码失败: %v", tokenInstructionName(data[0]), err)
			break
		}
		return types.InstructionData{
			Type:     tokenInstructionName(data[0]),
			Amount:   &layout.Amount,
			Decimals: &layout.Decimals,
			UiAmount: FormatUiAmount(layout.Amount, layout.Decimals),
		}

	case byte(sdktoken.InstructionInitializeMint):
		if len(data) < 67 {
			break
		}
		var layout initializeMintLayout
		if err := borsh.Deserialize(&layout, data[:67]); err != nil {
			logger.Warnf("[Token::InitializeMint] 指令数据解码失败: %v", err)
			break
		}
		decoded := types.InstructionData{
			Type:          "initializeMint",
			Decimals:      &layout.Decimals,
			MintAuthority: layout.MintAuthority.ToBase58(),
		}
		if layout.Option != 0 {
			decoded.FreezeAuthority = layout.FreezeAuthority.ToBase58()
		}
		return decoded
	}
	return types.InstructionData{Type: TypeUnknown}
}

func tokenInstructionName(tag byte) string {
	switch tag {
	case byte(sdktoken.InstructionTransfer):
		return "transfer"
	case byte(sdktoken.InstructionTransferChecked):
		return "transferChecked"
	case byte(sdktoken.InstructionMintTo):
		return "mintTo"
	case byte(sdktoken.InstructionMintToChecked):
		return "mintToChecked"
	case byte(sdktoken.InstructionInitializeMint):
		return "initializeMint"
	default:
		return TypeUnknown
	}
}
