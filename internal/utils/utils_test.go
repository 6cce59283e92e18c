package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/storefront-cart/internal/utils"
	"github.com/aaravmahajanofficial/storefront-cart/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemRequest struct {
	Size     string `json:"size"     validate:"required,max=4"`
	Quantity int    `json:"quantity"`
}

func TestParseAndValidate(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name         string
		body         string
		expectOK     bool
		expectedCode string
	}{
		{name: "Success", body: `{"size":"M","quantity":2}`, expectOK: true},
		{name: "Failure - Empty body", body: ``, expectedCode: "BAD_REQUEST"},
		{name: "Failure - Malformed JSON", body: `{"size":`, expectedCode: "BAD_REQUEST"},
		{name: "Failure - Unknown field", body: `{"size":"M","discount":10}`, expectedCode: "BAD_REQUEST"},
		{name: "Failure - Missing size", body: `{"quantity":1}`, expectedCode: "VALIDATION_ERROR"},
		{name: "Failure - Size too long", body: `{"size":"XXXXXL"}`, expectedCode: "VALIDATION_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			var dest itemRequest

			// Act
			ok := utils.ParseAndValidate(req, rec, &dest, validate)

			// Assert
			assert.Equal(t, tc.expectOK, ok)
			if tc.expectOK {
				assert.Equal(t, "M", dest.Size)
				assert.Equal(t, 2, dest.Quantity)
				return
			}

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp response.APIResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.expectedCode, resp.Error.Code)
		})
	}
}

func TestSplitIDs(t *testing.T) {
	assert.Equal(t, []string{}, utils.SplitIDs(""))
	assert.Equal(t, []string{}, utils.SplitIDs("   "))
	assert.Equal(t, []string{}, utils.SplitIDs(" , ,"))
	assert.Equal(t, []string{"a", "b", "c"}, utils.SplitIDs("a, b,,c ,"))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Race week", utils.SanitizeText(`<b>Race</b> week<script>alert(1)</script>`))
	assert.Equal(t, "M", utils.SanitizeText("  M "))
	assert.Empty(t, utils.SanitizeText(""))
}
