package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appErrors "github.com/aaravmahajanofficial/storefront-cart/internal/errors"
	"github.com/aaravmahajanofficial/storefront-cart/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	response.Success(rec, http.StatusCreated, map[string]int{"item_count": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.Equal(t, map[string]any{"item_count": float64(3)}, resp.Data)
}

func TestError(t *testing.T) {
	t.Run("AppError keeps code, status and detail", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.Error(rec, appErrors.NotFoundError("Product not found").WithDetail("id=42"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decode(t, rec)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
		assert.Equal(t, "Product not found", resp.Error.Message)
		assert.Equal(t, []string{"id=42"}, resp.Error.Details)
	})

	t.Run("Plain error is reported as internal", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.Error(rec, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decode(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeInternal, resp.Error.Code)
		assert.NotContains(t, resp.Error.Message, "boom")
	})
}

func TestValidationError(t *testing.T) {
	type request struct {
		Size  string `validate:"required"`
		Color string `validate:"max=3"`
	}

	err := validator.New().Struct(request{Color: "turquoise"})
	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))

	rec := httptest.NewRecorder()
	response.ValidationError(rec, validationErrs)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
	assert.ElementsMatch(t, []string{
		"Field Size is required",
		"Field Color must be at most 3 characters",
	}, resp.Error.Details)
}
