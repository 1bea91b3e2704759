package consts

const (
	// SOLDecimals 原生 SOL 的精度，1 SOL = 10^9 lamports
	SOLDecimals uint8 = 9

	// DefaultMaxMessageBytes 签名消息的默认最大长度（字节）
	DefaultMaxMessageBytes = 4096
)
