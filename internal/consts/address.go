package consts

import "github.com/blocto/solana-go-sdk/common"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	//  Programs
	SystemProgramStr          = "11111111111111111111111111111111"
	TokenProgramStr           = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	TokenProgram2022Str       = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"
	AssociatedTokenProgramStr = "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"

	// Sysvars
	SysVarRentStr = "SysvarRent111111111111111111111111111111111"
)

// 公钥形式的地址常量，用于指令构造与比对
var (
	SystemProgram          = common.PublicKeyFromString(SystemProgramStr)
	TokenProgram           = common.PublicKeyFromString(TokenProgramStr)
	TokenProgram2022       = common.PublicKeyFromString(TokenProgram2022Str)
	AssociatedTokenProgram = common.PublicKeyFromString(AssociatedTokenProgramStr)

	SysVarRent = common.PublicKeyFromString(SysVarRentStr)
)
