package tools

import (
	"fmt"

	"sol-api/internal/consts"

	"github.com/blocto/solana-go-sdk/common"
)

// IsSPLTokenProgram 判断一个 ProgramId 是否为标准的 SPL Token 程序。
// 支持 Token v1（Tokenkeg...）和 Token-2022（Tokenz...）
func IsSPLTokenProgram(programId common.PublicKey) bool {
	return programId == consts.TokenProgram || programId == consts.TokenProgram2022
}

// TokenProgramFor 根据请求选择 Token 程序
func TokenProgramFor(token2022 bool) common.PublicKey {
	if token2022 {
		return consts.TokenProgram2022
	}
	return consts.TokenProgram
}

// FindAssociatedTokenAddress 推导 wallet 在指定 Token 程序下持有 mint 的 ATA 地址。
// seeds = [wallet, token_program, mint]，program = Associated Token Program
func FindAssociatedTokenAddress(wallet, mint, tokenProgram common.PublicKey) (common.PublicKey, error) {
	if !IsSPLTokenProgram(tokenProgram) {
		return common.PublicKey{}, fmt.Errorf("not an spl token program: %s", tokenProgram)
	}
	ata, _, err := common.FindProgramAddress(
		[][]byte{wallet.Bytes(), tokenProgram.Bytes(), mint.Bytes()},
		consts.AssociatedTokenProgram,
	)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("find associated token address: wallet=%s mint=%s: %w", wallet, mint, err)
	}
	return ata, nil
}
