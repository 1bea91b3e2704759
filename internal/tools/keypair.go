package tools

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"
	"strings"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
	"github.com/zeromicro/go-zero/core/jsonx"
)

// SignatureLength ed25519 签名长度
const SignatureLength = ed25519.SignatureSize

var (
	ErrInvalidSecret    = errors.New("invalid secret key")
	ErrInvalidSignature = errors.New("invalid signature")
)

// EncodeSecret 按 Solana 的 to_base58_string 格式编码 64 字节私钥（seed + pubkey）
func EncodeSecret(acc types.Account) string {
	return base58.Encode(acc.PrivateKey)
}

// DecodeSecret 解析私钥，支持两种格式：
//   - base58 编码的 64 字节 keypair
//   - solana-keygen 的 id.json 字节数组，例如 "[12,34,...]"
func DecodeSecret(s string) (types.Account, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return types.Account{}, fmt.Errorf("%w: empty", ErrInvalidSecret)
	}

	var raw []byte
	if strings.HasPrefix(s, "[") {
		b, err := decodeByteArray(s)
		if err != nil {
			return types.Account{}, err
		}
		raw = b
	} else {
		b, err := base58.Decode(s)
		if err != nil {
			return types.Account{}, fmt.Errorf("%w: base58 decode: %v", ErrInvalidSecret, err)
		}
		raw = b
	}

	if len(raw) != ed25519.PrivateKeySize {
		return types.Account{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSecret, len(raw), ed25519.PrivateKeySize)
	}

	// 后 32 字节必须是 seed 推导出的公钥
	derived := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], raw[ed25519.SeedSize:]) {
		return types.Account{}, fmt.Errorf("%w: public key does not match seed", ErrInvalidSecret)
	}

	acc, err := types.AccountFromBytes(raw)
	if err != nil {
		return types.Account{}, fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}
	return acc, nil
}

func decodeByteArray(s string) ([]byte, error) {
	var ints []int
	if err := jsonx.UnmarshalFromString(s, &ints); err != nil {
		return nil, fmt.Errorf("%w: byte array: %v", ErrInvalidSecret, err)
	}
	out := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: byte %d out of range: %d", ErrInvalidSecret, i, v)
		}
		out[i] = byte(v)
	}
	return out, nil
}

// EncodeSignature base58 编码签名
func EncodeSignature(sig []byte) string {
	return base58.Encode(sig)
}

// DecodeSignature 解析 base58 签名，长度必须为 64 字节
func DecodeSignature(s string) ([]byte, error) {
	sig, err := base58.Decode(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: base58 decode: %v", ErrInvalidSignature, err)
	}
	if len(sig) != SignatureLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignature, len(sig), SignatureLength)
	}
	return sig, nil
}

// VerifySignature 校验 ed25519 签名；格式正确但签名不匹配时返回 false
func VerifySignature(pubkey common.PublicKey, message, sig []byte) bool {
	return ed25519.Verify(pubkey.Bytes(), message, sig)
}
