package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "glovia/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestSuccess_Envelope(t *testing.T) {
	c, rec := newTestContext()

	err := Success(c, http.StatusOK, map[string]string{"id": "123"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Success", resp.Message)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestError_Envelope(t *testing.T) {
	c, rec := newTestContext()

	err := Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Data yang dikirim tidak valid", "quantity must be at least 1")
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Data yang dikirim tidak valid", resp.Message)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "quantity must be at least 1", resp.Error.Details)
}

func TestError_WithholdsDetailsOnAuthFailures(t *testing.T) {
	c, rec := newTestContext()

	err := Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Token tidak valid", "signature mismatch at offset 12")
	require.NoError(t, err)

	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Empty(t, resp.Error.Details)
}

func TestHandleAppError_MapsDomainError(t *testing.T) {
	c, rec := newTestContext()

	err := HandleAppError(c, domainerrors.ErrValidation.WithDetails("quantity must be at least 1"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "quantity must be at least 1", resp.Error.Details)
}

func TestHandleAppError_PassesThroughUnknownErrors(t *testing.T) {
	c, rec := newTestContext()

	err := HandleAppError(c, assert.AnError)
	require.Error(t, err)
	assert.Empty(t, rec.Body.String())
}
