package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sol-api/internal/config"
	"sol-api/internal/consts"
	"sol-api/internal/svc"
	"sol-api/internal/tools"

	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestServiceContext() *svc.ServiceContext {
	return svc.NewServiceContext(config.Config{})
}

// post 通过路由表找到 handler 并发起请求
func post(t *testing.T, path string, body any) (int, envelope) {
	t.Helper()

	var handler http.HandlerFunc
	for _, route := range Routes(newTestServiceContext()) {
		if route.Path == path {
			assert.Equal(t, http.MethodPost, route.Method)
			handler = route.Handler
		}
	}
	require.NotNil(t, handler, "route %s not registered", path)

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func requireOk(t *testing.T, code int, env envelope, out any) {
	t.Helper()
	require.Equal(t, http.StatusOK, code, env.Error)
	require.True(t, env.Success)
	assert.Empty(t, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func requireBadRequest(t *testing.T, code int, env envelope, contains string) {
	t.Helper()
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Empty(t, env.Data)
	assert.Contains(t, env.Error, contains)
}

type instructionBody struct {
	ProgramId string `json:"program_id"`
	Accounts  []struct {
		Pubkey     string `json:"pubkey"`
		IsSigner   bool   `json:"is_signer"`
		IsWritable bool   `json:"is_writable"`
	} `json:"accounts"`
	InstructionsData struct {
		Raw      string  `json:"raw"`
		Type     string  `json:"type"`
		Amount   *uint64 `json:"amount"`
		UiAmount string  `json:"ui_amount"`
		Decimals *uint8  `json:"decimals"`
	} `json:"instructions_data"`
}

func TestRoutes(t *testing.T) {
	var paths []string
	for _, route := range Routes(newTestServiceContext()) {
		paths = append(paths, route.Path)
	}
	assert.ElementsMatch(t, []string{
		"/keypair", "/send/sol", "/send/token", "/sign/message",
		"/verify/message", "/token/create", "/token/mint",
	}, paths)
}

func TestKeypairHandler(t *testing.T) {
	code, env := post(t, "/keypair", nil)

	var data struct {
		Pubkey string `json:"pubkey"`
		Secret string `json:"secret"`
	}
	requireOk(t, code, env, &data)

	acc, err := tools.DecodeSecret(data.Secret)
	require.NoError(t, err)
	assert.Equal(t, data.Pubkey, acc.PublicKey.ToBase58())
}

func TestSendSolHandler(t *testing.T) {
	from := sdktypes.NewAccount().PublicKey.ToBase58()
	to := sdktypes.NewAccount().PublicKey.ToBase58()

	code, env := post(t, "/send/sol", map[string]any{
		"from_address": from,
		"to_address":   to,
		"lamports":     1000,
	})
	var data instructionBody
	requireOk(t, code, env, &data)
	assert.Equal(t, consts.SystemProgramStr, data.ProgramId)
	require.Len(t, data.Accounts, 2)
	assert.Equal(t, from, data.Accounts[0].Pubkey)
	assert.Equal(t, to, data.Accounts[1].Pubkey)
	assert.Equal(t, "transfer", data.InstructionsData.Type)
	assert.Equal(t, uint64(1000), *data.InstructionsData.Amount)
	assert.NotEmpty(t, data.InstructionsData.Raw)
}

func TestSendSolHandler_BadRequest(t *testing.T) {
	to := sdktypes.NewAccount().PublicKey.ToBase58()

	code, env := post(t, "/send/sol", map[string]any{
		"from_address": "3mJr7AoUXx2Wqd",
		"to_address":   to,
		"lamports":     1000,
	})
	requireBadRequest(t, code, env, "invalid from_address")

	// 缺少字段
	code, env = post(t, "/send/sol", map[string]any{"from_address": to})
	requireBadRequest(t, code, env, "")

	// 负数金额
	code, env = post(t, "/send/sol", map[string]any{"from_address": to, "to_address": to, "lamports": -1})
	requireBadRequest(t, code, env, "")

	// 非法 JSON
	code, env = post(t, "/send/sol", `{"from_address":`)
	requireBadRequest(t, code, env, "")
}

func TestTokenHandlers(t *testing.T) {
	owner := sdktypes.NewAccount().PublicKey.ToBase58()
	destination := sdktypes.NewAccount().PublicKey.ToBase58()
	mint := sdktypes.NewAccount().PublicKey.ToBase58()

	t.Run("send token", func(t *testing.T) {
		code, env := post(t, "/send/token", map[string]any{
			"destination": destination,
			"mint":        mint,
			"owner":       owner,
			"amount":      100000,
			"checked":     true,
			"decimals":    6,
		})
		var data instructionBody
		requireOk(t, code, env, &data)
		assert.Equal(t, consts.TokenProgramStr, data.ProgramId)
		require.Len(t, data.Accounts, 4)
		assert.Equal(t, mint, data.Accounts[1].Pubkey)
		assert.Equal(t, owner, data.Accounts[3].Pubkey)
		assert.True(t, data.Accounts[3].IsSigner)
		assert.Equal(t, "transferChecked", data.InstructionsData.Type)
		assert.Equal(t, "0.1", data.InstructionsData.UiAmount)
	})

	t.Run("send token checked without decimals", func(t *testing.T) {
		code, env := post(t, "/send/token", map[string]any{
			"destination": destination,
			"mint":        mint,
			"owner":       owner,
			"amount":      1,
			"checked":     true,
		})
		requireBadRequest(t, code, env, "missing required field: decimals")
	})

	t.Run("create token", func(t *testing.T) {
		code, env := post(t, "/token/create", map[string]any{
			"mint_authority": owner,
			"mint":           mint,
			"decimals":       6,
			"token_2022":     true,
		})
		var data instructionBody
		requireOk(t, code, env, &data)
		assert.Equal(t, consts.TokenProgram2022Str, data.ProgramId)
		assert.Equal(t, "initializeMint", data.InstructionsData.Type)
		assert.Equal(t, uint8(6), *data.InstructionsData.Decimals)
	})

	t.Run("create token decimals out of range", func(t *testing.T) {
		code, env := post(t, "/token/create", map[string]any{
			"mint_authority": owner,
			"mint":           mint,
			"decimals":       300,
		})
		requireBadRequest(t, code, env, "")
	})

	t.Run("mint token", func(t *testing.T) {
		code, env := post(t, "/token/mint", map[string]any{
			"mint":        mint,
			"destination": destination,
			"authority":   owner,
			"amount":      1000000,
		})
		var data instructionBody
		requireOk(t, code, env, &data)
		require.Len(t, data.Accounts, 3)
		assert.Equal(t, mint, data.Accounts[0].Pubkey)
		assert.Equal(t, owner, data.Accounts[2].Pubkey)
		assert.Equal(t, "mintTo", data.InstructionsData.Type)
	})

	t.Run("mint token invalid destination", func(t *testing.T) {
		code, env := post(t, "/token/mint", map[string]any{
			"mint":        mint,
			"destination": "not-an-address",
			"authority":   owner,
			"amount":      1,
		})
		requireBadRequest(t, code, env, "invalid destination")
	})
}

func TestMessageHandlers(t *testing.T) {
	acc := sdktypes.NewAccount()

	code, env := post(t, "/sign/message", map[string]any{
		"message": "Hello, Solana!",
		"secret":  tools.EncodeSecret(acc),
	})
	var signed struct {
		Signature string `json:"signature"`
		PublicKey string `json:"public_key"`
		Message   string `json:"message"`
	}
	requireOk(t, code, env, &signed)
	assert.Equal(t, acc.PublicKey.ToBase58(), signed.PublicKey)

	verify := func(message, pubkey string) bool {
		code, env := post(t, "/verify/message", map[string]any{
			"message":   message,
			"signature": signed.Signature,
			"pubkey":    pubkey,
		})
		var data struct {
			Valid bool `json:"valid"`
		}
		requireOk(t, code, env, &data)
		return data.Valid
	}
	assert.True(t, verify("Hello, Solana!", acc.PublicKey.ToBase58()))
	assert.False(t, verify("Hello, Solana?", acc.PublicKey.ToBase58()))
	assert.False(t, verify("Hello, Solana!", sdktypes.NewAccount().PublicKey.ToBase58()))

	// 空消息拒绝签名
	code, env = post(t, "/sign/message", map[string]any{
		"message": "",
		"secret":  tools.EncodeSecret(acc),
	})
	requireBadRequest(t, code, env, "message must not be empty")

	// 签名格式错误
	code, env = post(t, "/verify/message", map[string]any{
		"message":   "Hello, Solana!",
		"signature": "abc",
		"pubkey":    acc.PublicKey.ToBase58(),
	})
	requireBadRequest(t, code, env, "invalid signature")
}
