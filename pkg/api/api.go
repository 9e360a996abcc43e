// Package api provides the standardized JSON response envelope for HTTP handlers
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response represents the standard API response format
type Response struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
}

// Error represents the standard error format
type Error struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail contains detailed error information for specific fields
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Api interface defines methods for standard API responses
type Api interface {
	Success(ctx context.Context, w http.ResponseWriter, data any)
	Created(ctx context.Context, w http.ResponseWriter, data any)
	Error(ctx context.Context, w http.ResponseWriter, statusCode int, apiErr *Error)
	BadRequest(ctx context.Context, w http.ResponseWriter, message string)
	NotFound(ctx context.Context, w http.ResponseWriter, message string)
	Conflict(ctx context.Context, w http.ResponseWriter, message string)
	InternalServerError(ctx context.Context, w http.ResponseWriter, message string)
	ServiceUnavailable(ctx context.Context, w http.ResponseWriter, message string)
	ValidationError(ctx context.Context, w http.ResponseWriter, details []ErrorDetail)
}

type api struct {
}

// New creates a new instance of the API response handler
func New() Api {
	return &api{}
}

// getRequestID safely extracts the request ID from context
func (a *api) getRequestID(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}

// buildResponse creates a basic response structure
func (a *api) buildResponse(ctx context.Context, status string, data any, apiErr *Error) Response {
	response := Response{
		RequestID: a.getRequestID(ctx),
		Status:    status,
	}

	if data != nil {
		response.Data = data
	}

	if apiErr != nil {
		response.Error = apiErr
	}

	return response
}

// writeJSON writes a JSON response with the given status code
func (a *api) writeJSON(w http.ResponseWriter, statusCode int, response Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Encoding errors are not exposed to the client
		_ = err
	}
}

// Success sends a 200 response with data
func (a *api) Success(ctx context.Context, w http.ResponseWriter, data any) {
	a.writeJSON(w, http.StatusOK, a.buildResponse(ctx, StatusSuccess, data, nil))
}

// Created sends a 201 response with data
func (a *api) Created(ctx context.Context, w http.ResponseWriter, data any) {
	a.writeJSON(w, http.StatusCreated, a.buildResponse(ctx, StatusSuccess, data, nil))
}

// Error sends an error response with the given status code
func (a *api) Error(ctx context.Context, w http.ResponseWriter, statusCode int, apiErr *Error) {
	a.writeJSON(w, statusCode, a.buildResponse(ctx, StatusError, nil, apiErr))
}

// BadRequest sends a 400 error response
func (a *api) BadRequest(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusBadRequest, &Error{
		Code:    "BAD_REQUEST",
		Message: message,
	})
}

// NotFound sends a 404 error response
func (a *api) NotFound(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusNotFound, &Error{
		Code:    "NOT_FOUND",
		Message: message,
	})
}

// Conflict sends a 409 error response
func (a *api) Conflict(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusConflict, &Error{
		Code:    "CONFLICT",
		Message: message,
	})
}

// InternalServerError sends a 500 error response
func (a *api) InternalServerError(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusInternalServerError, &Error{
		Code:    "INTERNAL_SERVER_ERROR",
		Message: message,
	})
}

// ServiceUnavailable sends a 503 error response
func (a *api) ServiceUnavailable(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusServiceUnavailable, &Error{
		Code:    "SERVICE_UNAVAILABLE",
		Message: message,
	})
}

// ValidationError sends a 400 error response with field details
func (a *api) ValidationError(ctx context.Context, w http.ResponseWriter, details []ErrorDetail) {
	a.Error(ctx, w, http.StatusBadRequest, &Error{
		Code:    "VALIDATION_ERROR",
		Message: "Validation failed",
		Details: details,
	})
}
