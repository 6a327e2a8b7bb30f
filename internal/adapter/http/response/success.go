// Package response provides standardized HTTP response builders for the flight tools API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// Health writes a health check response.
func Health(c echo.Context, timestamp string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:    "ok",
		Timestamp: timestamp,
		Message:   "Flight tools service is running",
	})
}

// ToolInfo describes a single tool operation for the capabilities endpoint.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// InfoResponse represents the capabilities/metadata response. It carries
// static data only; no business logic runs behind it.
type InfoResponse struct {
	Name      string     `json:"name"`
	Version   string     `json:"version"`
	Tools     []ToolInfo `json:"tools"`
	Timestamp string     `json:"timestamp"`
}

// Info writes the capabilities response.
func Info(c echo.Context, info *InfoResponse) error {
	return c.JSON(http.StatusOK, info)
}
