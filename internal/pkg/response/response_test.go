package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sol-api/internal/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWrite(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/keypair", nil)

	t.Run("ok", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Write(rec, req, map[string]string{"pubkey": "abc"}, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "abc", body["data"].(map[string]any)["pubkey"])
		assert.NotContains(t, body, "error")
	})

	t.Run("param error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Write(rec, req, nil, errorx.NewParamError("invalid mint"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "invalid mint", body["error"])
		assert.NotContains(t, body, "data")
	})

	t.Run("plain error is client error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Fail(rec, req, errors.New("content-type is not json"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "content-type is not json", decode(t, rec)["error"])
	})

	t.Run("internal error is masked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Fail(rec, req, errorx.NewInternalError("entropy exhausted"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal server error", decode(t, rec)["error"])
	})
}
