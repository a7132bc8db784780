package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

type taggedRequest struct {
	Email string `json:"email" validate:"required,notblank"`
	Hours int    `json:"hours,omitempty" validate:"omitempty,min=1"`
}

type preparedRequest struct {
	Name       string `json:"name"`
	sanitized  bool
	normalized bool
}

func (r *preparedRequest) Sanitize()  { r.sanitized = true; r.Name = strings.TrimSpace(r.Name) }
func (r *preparedRequest) Normalize() { r.normalized = true }

func (r *preparedRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type domainRuleRequest struct {
	Code string `json:"code"`
}

func (r *domainRuleRequest) Validate() error {
	if len(r.Code) < 6 {
		return dErrors.New(dErrors.CodeInvalidRestaurantCode, "Invalid restaurant code format")
	}
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestDecodeAndPrepare(t *testing.T) {
	t.Run("decodes and validates tags", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, ok := DecodeAndPrepare[taggedRequest](w, post(`{"email":"kim@example.com"}`), discard())
		require.True(t, ok)
		assert.Equal(t, "kim@example.com", req.Email)
	})

	t.Run("malformed JSON is a bad request", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, ok := DecodeAndPrepare[taggedRequest](w, post(`{nope`), discard())
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BAD_REQUEST", decodeError(t, w).ErrorCode)
	})

	t.Run("empty body is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, ok := DecodeAndPrepare[taggedRequest](w, post(""), discard())
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("tag failure reports the field", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, ok := DecodeAndPrepare[taggedRequest](w, post(`{"email":"   "}`), discard())
		assert.False(t, ok)
		resp := decodeError(t, w)
		assert.Equal(t, "VALIDATION_ERROR", resp.ErrorCode)
		require.Len(t, resp.Details, 1)
		assert.Equal(t, "email", resp.Details[0].Field)
	})

	t.Run("runs sanitize and normalize before Validate", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, ok := DecodeAndPrepare[preparedRequest](w, post(`{"name":"  Kim "}`), discard())
		require.True(t, ok)
		assert.Equal(t, "Kim", req.Name)
		assert.True(t, req.sanitized)
		assert.True(t, req.normalized)
	})

	t.Run("plain Validate errors become validation errors", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, ok := DecodeAndPrepare[preparedRequest](w, post(`{"name":"  "}`), discard())
		assert.False(t, ok)
		resp := decodeError(t, w)
		assert.Equal(t, "VALIDATION_ERROR", resp.ErrorCode)
		assert.Equal(t, "name is required", resp.Message)
	})

	t.Run("domain Validate errors keep their code", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, ok := DecodeAndPrepare[domainRuleRequest](w, post(`{"code":"AB"}`), discard())
		assert.False(t, ok)
		assert.Equal(t, "INVALID_RESTAURANT_CODE", decodeError(t, w).ErrorCode)
	})
}

func TestDecodeOptionalAndPrepare(t *testing.T) {
	w := httptest.NewRecorder()
	req, ok := DecodeOptionalAndPrepare[taggedRequest](w, post(""), discard())
	assert.False(t, ok, "zero value still has to pass validation")
	assert.Nil(t, req)

	w = httptest.NewRecorder()
	opt, ok := DecodeOptionalAndPrepare[domainRuleRequest](w, post(`{"code":"ABCDEF"}`), discard())
	require.True(t, ok)
	assert.Equal(t, "ABCDEF", opt.Code)
}

func TestDecodeOversizedBody(t *testing.T) {
	w := httptest.NewRecorder()
	r := post(`{"email":"` + strings.Repeat("a", 64) + `@example.com"}`)
	r.Body = http.MaxBytesReader(w, r.Body, 16)

	_, ok := DecodeAndPrepare[taggedRequest](w, r, discard())
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Request body too large", decodeError(t, w).Message)
}
