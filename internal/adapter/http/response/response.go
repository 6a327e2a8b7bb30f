// Package response provides standardized HTTP response builders for the
// flight tools API. It centralizes response formatting to ensure consistency
// across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Failure represents the failure envelope returned for protocol-level
// problems such as an unparseable request body. Tool-level failures use the
// richer domain envelopes instead; both shapes share the success/error
// contract so callers can branch on success alone.
type Failure struct {
	// Success is always false for this envelope
	Success bool `json:"success"`

	// Error is a human-readable error message
	Error string `json:"error"`
}

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// BadRequest writes a 400 Bad Request response with a failure envelope.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &Failure{
		Success: false,
		Error:   message,
	})
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return BadRequest(c, MsgInvalidRequestBody)
}

// InternalServerError writes a 500 Internal Server Error response with a
// failure envelope. Only the panic-recovery middleware should ever reach
// this; tool operations report their own failures inside 200 envelopes.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &Failure{
		Success: false,
		Error:   "An unexpected error occurred",
	})
}
