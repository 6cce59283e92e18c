package testutils

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront-cart/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-cart/internal/utils/response"
	"github.com/stretchr/testify/require"
)

// CreateTestRequestWithSession builds a request carrying a cart session and a
// discarding logger, as the middleware chain would.
func CreateTestRequestWithSession(method, target string, body io.Reader, sessionID string) *http.Request {
	req := CreateTestRequestWithoutSession(method, target, body)

	return req.WithContext(middleware.WithSession(req.Context(), sessionID))
}

func CreateTestRequestWithoutSession(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(middleware.WithLogger(req.Context(), logger))
}

// DecodeAPIResponse unmarshals the envelope and re-decodes Data into data
// when data is non-nil.
func DecodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder, data any) response.APIResponse {
	t.Helper()

	var envelope struct {
		response.APIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	if data != nil {
		require.NotEmpty(t, envelope.Data, "response carries no data")
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}

	return envelope.APIResponse
}
