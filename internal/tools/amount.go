package tools

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// FormatUiAmount 将最小单位数量按精度换算成可读数量，例如 (1500000000, 9) -> "1.5"
func FormatUiAmount(amount uint64, decimals uint8) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -int32(decimals)).String()
}
