package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	api := New()
	require.NotNil(t, api, "New() should not return nil")
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	var response Response
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err, "Failed to decode response")
	return response
}

func TestApi_Success(t *testing.T) {
	api := New()
	w := httptest.NewRecorder()
	ctx := context.Background()

	api.Success(ctx, w, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	response := decodeResponse(t, w)
	assert.Equal(t, StatusSuccess, response.Status)
	assert.NotNil(t, response.Data)
	assert.Nil(t, response.Error)
}

func TestApi_Created(t *testing.T) {
	api := New()
	w := httptest.NewRecorder()

	api.Created(context.Background(), w, map[string]any{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, StatusSuccess, response.Status)
}

func TestApi_RequestIDPropagation(t *testing.T) {
	api := New()
	w := httptest.NewRecorder()
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-123")

	api.Success(ctx, w, nil)

	response := decodeResponse(t, w)
	assert.Equal(t, "req-123", response.RequestID)
}

func TestApi_BadRequest(t *testing.T) {
	api := New()
	w := httptest.NewRecorder()

	api.BadRequest(context.Background(), w, "name is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, StatusError, response.Status)
	require.NotNil(t, response.Error)
	assert.Equal(t, "BAD_REQUEST", response.Error.Code)
	assert.Equal(t, "name is required", response.Error.Message)
}

func TestApi_Conflict(t *testing.T) {
	api := New()
	w := httptest.NewRecorder()

	api.Conflict(context.Background(), w, "contact already exists")

	assert.Equal(t, http.StatusConflict, w.Code)
	response := decodeResponse(t, w)
	require.NotNil(t, response.Error)
	assert.Equal(t, "CONFLICT", response.Error.Code)
}

func TestApi_InternalServerError(t *testing.T) {
	api := New()
	w := httptest.NewRecorder()

	api.InternalServerError(context.Background(), w, "boom")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	response := decodeResponse(t, w)
	require.NotNil(t, response.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", response.Error.Code)
}

func TestApi_ServiceUnavailable(t *testing.T) {
	api := New()
	w := httptest.NewRecorder()

	api.ServiceUnavailable(context.Background(), w, "database unreachable")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	response := decodeResponse(t, w)
	require.NotNil(t, response.Error)
	assert.Equal(t, "SERVICE_UNAVAILABLE", response.Error.Code)
}

func TestApi_ValidationError(t *testing.T) {
	api := New()
	w := httptest.NewRecorder()

	api.ValidationError(context.Background(), w, []ErrorDetail{
		{Field: "email", Message: "email is required"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	require.NotNil(t, response.Error)
	assert.Equal(t, "VALIDATION_ERROR", response.Error.Code)
	require.Len(t, response.Error.Details, 1)
	assert.Equal(t, "email", response.Error.Details[0].Field)
}
