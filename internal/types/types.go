package types

// 请求 / 响应结构。请求字段通过 go-zero httpx.Parse 解析，
// 缺失必填字段或类型不匹配时由 httpx 直接返回错误。

type KeypairResp struct {
	Pubkey string `json:"pubkey"` // base58 地址
	Secret string `json:"secret"` // base58 编码的 64 字节私钥
}

type SendSolReq struct {
	FromAddress string `json:"from_address"`
	ToAddress   string `json:"to_address"`
	Lamports    uint64 `json:"lamports"`
}

type SendTokenReq struct {
	Destination string `json:"destination"` // 接收方钱包地址
	Mint        string `json:"mint"`
	Owner       string `json:"owner"` // 发送方钱包地址（签名者）
	Amount      uint64 `json:"amount"`
	Checked     bool   `json:"checked,optional"`  // true 时使用 TransferChecked
	Decimals    *int   `json:"decimals,optional"` // checked 模式下必填，且必须与 mint 精度一致
	Token2022   bool   `json:"token_2022,optional"`
}

type CreateTokenReq struct {
	MintAuthority   string `json:"mint_authority"`
	Mint            string `json:"mint"`
	Decimals        int    `json:"decimals,range=[0:255]"`
	FreezeAuthority string `json:"freeze_authority,optional"`
	Token2022       bool   `json:"token_2022,optional"`
}

type MintTokenReq struct {
	Mint        string `json:"mint"`
	Destination string `json:"destination"` // 接收方钱包地址
	Authority   string `json:"authority"`   // mint authority（签名者）
	Amount      uint64 `json:"amount"`
	Checked     bool   `json:"checked,optional"`  // true 时使用 MintToChecked
	Decimals    *int   `json:"decimals,optional"` // checked 模式下必填
	Token2022   bool   `json:"token_2022,optional"`
}

type SignMessageReq struct {
	Message string `json:"message,optional"` // 空消息由 logic 层拒绝，以返回明确的错误信息
	Secret  string `json:"secret"`
}

type SignMessageResp struct {
	Signature string `json:"signature"` // base58
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
}

type VerifyMessageReq struct {
	Message   string `json:"message,optional"`
	Signature string `json:"signature"`
	Pubkey    string `json:"pubkey"`
}

type VerifyMessageResp struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}

type AccountMeta struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

// InstructionData 指令数据：原始字节（base64）以及按布局解码出的字段
type InstructionData struct {
	Raw             string  `json:"raw"`
	Type            string  `json:"type"`
	Amount          *uint64 `json:"amount,omitempty"`
	UiAmount        string  `json:"ui_amount,omitempty"`
	Decimals        *uint8  `json:"decimals,omitempty"`
	MintAuthority   string  `json:"mint_authority,omitempty"`
	FreezeAuthority string  `json:"freeze_authority,omitempty"`
}

// InstructionResp 指令描述：程序 ID、有序账户列表、指令数据
type InstructionResp struct {
	ProgramId        string          `json:"program_id"`
	Accounts         []AccountMeta   `json:"accounts"`
	InstructionsData InstructionData `json:"instructions_data"`
}
