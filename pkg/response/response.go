package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform JSON envelope used by every endpoint.
//
// Business rejections (activity full, already enrolled, slot taken) are
// carried with success=false and a stable Error code but an HTTP 2xx status,
// so clients can branch on outcomes without exception handling. System
// errors use 4xx/5xx statuses.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
}

// ── success responses ──

// OK writes a 200 success envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// OKWithMessage writes a 200 success envelope with a human-readable note.
func OKWithMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// OKCount writes a 200 success envelope carrying a collection size.
func OKCount(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// ── business rejections ──

// Reject reports an expected negative business outcome. The HTTP status is
// 200 on purpose: a full activity or a duplicate enrollment is a computed
// result, not a failure of the request.
func Reject(c *gin.Context, code, message string) {
	c.JSON(http.StatusOK, Response{
		Success: false,
		Error:   code,
		Message: message,
	})
}

// RejectWithStatus reports a business rejection that carries a non-200
// status (e.g. 409 for a calendar slot already taken).
func RejectWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

// ── system errors ──

// Error writes a generic error envelope.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Error:   message,
	})
}

// ErrorWithDetails writes an error envelope with diagnostic detail.
func ErrorWithDetails(c *gin.Context, status int, message, details string) {
	c.JSON(status, Response{
		Success: false,
		Error:   message,
		Details: details,
	})
}

// BadRequest writes a 400.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized writes a 401.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden writes a 403.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound writes a 404.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict writes a 409.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError writes a 500.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

// ServiceUnavailable writes a 503.
func ServiceUnavailable(c *gin.Context, message string) {
	Error(c, http.StatusServiceUnavailable, message)
}
