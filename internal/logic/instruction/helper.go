package instruction

import (
	"math"

	"sol-api/internal/pkg/errorx"
	"sol-api/internal/tools"

	"github.com/blocto/solana-go-sdk/common"
)

// parseDecimals 校验精度字段范围 [0, 255]
func parseDecimals(v int) (uint8, error) {
	if v < 0 || v > math.MaxUint8 {
		return 0, errorx.NewParamError("invalid decimals: %d, must be in [0, %d]", v, math.MaxUint8)
	}
	return uint8(v), nil
}

// parseCheckedDecimals checked 模式下 decimals 必填
func parseCheckedDecimals(v *int) (uint8, error) {
	if v == nil {
		return 0, errorx.NewParamError("missing required field: decimals (required when checked is set)")
	}
	return parseDecimals(*v)
}

// associatedTokenAccount 推导 ATA。输入地址均已校验，推导失败属于服务端错误（500）
func associatedTokenAccount(field string, wallet, mint, tokenProgram common.PublicKey) (common.PublicKey, error) {
	ata, err := tools.FindAssociatedTokenAddress(wallet, mint, tokenProgram)
	if err != nil {
		return common.PublicKey{}, errorx.NewInternalError("cannot derive token account for %s: %v", field, err)
	}
	return ata, nil
}
