package errors

import (
	"net/http"
	"os"
	"strings"

	"codeberg.org/socialhub/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for critical errors
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//
// For the contenthub/internal packages:
//   - Return sentinel errors or wrapped errors with context using
//     fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond
//   - Do not log errors in non-handler code (avoid double logging)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "not_found", "too_many_requests")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// QuotaResponse is the response body for exhausted daily quotas.
// The remainingCount/maxDaily field names are part of the public API.
type QuotaResponse struct {
	Error          string `json:"error"`
	Message        string `json:"message"`
	RemainingCount int    `json:"remainingCount"`
	MaxDaily       int    `json:"maxDaily"`
}

// standard error codes
const (
	CodeNotFound           = "not_found"
	CodeValidationError    = "validation_error"
	CodeServerError        = "server_error"
	CodeBadRequest         = "bad_request"
	CodeTooManyRequests    = "too_many_requests"
	CodeNotGenerated       = "content_not_generated"
	CodeServiceUnavailable = "service_unavailable"
)

// returns a 404 not found error
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 bad request error for validation failures
func ValidationError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "validation failed"
	}

	response := ErrorResponse{
		Error:   CodeValidationError,
		Message: message,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 429 too many requests error with the remaining-quota payload
func QuotaExceeded(c *gin.Context, message string, maxDaily int) {
	if message == "" {
		message = "too many requests"
	}

	c.JSON(http.StatusTooManyRequests, QuotaResponse{
		Error:          CodeTooManyRequests,
		Message:        message,
		RemainingCount: 0,
		MaxDaily:       maxDaily,
	})
}

// returns a 409 conflict error for records that have no generated content yet,
// so callers can tell "wait for generation" apart from "missing resource"
func NotGenerated(c *gin.Context, message string) {
	if message == "" {
		message = "content has not been generated yet"
	}

	c.JSON(http.StatusConflict, ErrorResponse{
		Error:   CodeNotGenerated,
		Message: message,
	})
}

// returns a 503 service unavailable error for upstream generation failures
func ServiceUnavailable(c *gin.Context, message string) {
	if message == "" {
		message = "service temporarily unavailable"
	}

	c.JSON(http.StatusServiceUnavailable, ErrorResponse{
		Error:   CodeServiceUnavailable,
		Message: message,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	// return sanitized error to client
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()

	if os.Getenv("ENVIRONMENT") != "production" {
		return errMsg
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") {
		return "connection error occurred"
	}

	if strings.Contains(errMsg, "timeout") {
		return "request timed out"
	}

	if strings.Contains(errMsg, "not found") {
		return "resource not found"
	}

	return "an error occurred"
}
