// Package errors carries the unified application error and the HTTP
// error response mapping.
package errors

import (
	"errors"
	"time"

	"github.com/takvimhub/event-calendar-service/internal/middleware"
	"github.com/takvimhub/event-calendar-service/pkg/app"
	"github.com/takvimhub/event-calendar-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// AppError is the unified application error: code, message, details,
// trace id and timestamp.
type AppError struct {
	// Code error code
	Code int `json:"code"`
	// Message error message
	Message string `json:"message"`
	// Details optional error details
	Details []string `json:"details,omitempty"`
	// TraceID request trace id
	TraceID string `json:"traceId,omitempty"`
	// Cause original error, not serialized
	Cause error `json:"-"`
	// Timestamp when the error occurred
	Timestamp time.Time `json:"timestamp"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap supports errors.Is/As down the cause chain.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates an AppError from a Code.
func NewAppError(c *code.Code, cause error) *AppError {
	return &AppError{
		Code:      c.Code(),
		Message:   c.Msg(),
		Details:   c.Details(),
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// WithTraceID sets the trace id and returns the error for chaining.
func (e *AppError) WithTraceID(traceID string) *AppError {
	e.TraceID = traceID
	return e
}

// WithDetails sets details and returns the error for chaining.
func (e *AppError) WithDetails(details ...string) *AppError {
	e.Details = details
	return e
}

// ErrorResponse maps any error to the unified response envelope. Coded
// errors pass through with their own code; everything else becomes an
// internal server error with the trace id attached for correlation.
func ErrorResponse(c *gin.Context, err error) {
	traceID := middleware.GetTraceIDFromGin(c)
	response := app.NewResponse(c)

	var codeObj *code.Code
	if errors.As(err, &codeObj) {
		if traceID != "" {
			response.ToResponse(codeObj.WithContext(traceID))
			return
		}
		response.ToResponse(codeObj)
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		appErr.TraceID = traceID
		response.ToResponse(code.ErrorServerInternal.WithDetails(appErr.Message).WithContext(traceID))
		return
	}

	response.ToResponse(code.ErrorServerInternal.WithDetails(err.Error()).WithContext(traceID))
}
