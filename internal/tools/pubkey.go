package tools

import (
	"fmt"
	"strings"

	"sol-api/internal/pkg/errorx"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/mr-tron/base58"
)

// TryPubkeyFromBase58 解析 base58 字符串为 PublicKey，失败时返回 error（用于不信任输入路径）
func TryPubkeyFromBase58(s string) (common.PublicKey, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("failed to decode base58 pubkey %q: %w", s, err)
	}
	if len(data) != common.PublicKeyLength {
		return common.PublicKey{}, fmt.Errorf("invalid pubkey length: got %d, want %d, input=%q", len(data), common.PublicKeyLength, s)
	}
	return common.PublicKeyFromBytes(data), nil
}

// ParsePubkeyField 解析请求中的地址字段，失败时返回指明字段名的 400 错误
func ParsePubkeyField(field, value string) (common.PublicKey, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return common.PublicKey{}, errorx.NewParamError("missing required field: %s", field)
	}
	pk, err := TryPubkeyFromBase58(value)
	if err != nil {
		return common.PublicKey{}, errorx.NewParamError("invalid %s: %v", field, err)
	}
	return pk, nil
}

// ParseOptionalPubkeyField 可选地址字段：空串返回 nil
func ParseOptionalPubkeyField(field, value string) (*common.PublicKey, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	pk, err := ParsePubkeyField(field, value)
	if err != nil {
		return nil, err
	}
	return &pk, nil
}
