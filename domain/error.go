package domain

import "errors"

// Error types with HTTP status codes
type AppError struct {
	Message string
	Code    int
}

func (e *AppError) Error() string {
	return e.Message
}

// Custom error types
var (
	ErrNameRequired = &AppError{
		Message: "name is required",
		Code:    400, // StatusBadRequest
	}
	ErrEmailRequired = &AppError{
		Message: "email is required",
		Code:    400, // StatusBadRequest
	}
	ErrEmailInvalid = &AppError{
		Message: "please provide a valid email address",
		Code:    400, // StatusBadRequest
	}
	ErrContactAlreadyExists = &AppError{
		Message: "contact with this name already exists",
		Code:    409, // StatusConflict
	}
	ErrKeywordRequired = &AppError{
		Message: "search keyword is required",
		Code:    400, // StatusBadRequest
	}
)

// Standard error types for repositories
var (
	ErrNotFound = errors.New("not found")
)
