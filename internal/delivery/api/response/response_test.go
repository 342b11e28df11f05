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

	err := Success(c, http.StatusCreated, map[string]string{"order_id": "123"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Nil(t, resp.Error)
}

func TestForbidden_Envelope(t *testing.T) {
	c, rec := newTestContext()

	err := Forbidden(c, "PERMISSION_DENIED", "Permission denied: require 'admin' role")
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PERMISSION_DENIED", resp.Error.Code)
	assert.Empty(t, resp.Error.Details)
}

func TestHandleAppError_MapsDomainError(t *testing.T) {
	c, rec := newTestContext()

	err := HandleAppError(c, domainerrors.ErrInvalidTransition.WithDetails("SHIPPED -> NEW"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_TRANSITION", resp.Error.Code)
	assert.Equal(t, "SHIPPED -> NEW", resp.Error.Details)
}
