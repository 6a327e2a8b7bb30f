// Package http provides the HTTP handler layer for the flight tools API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all flight tools API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *ToolHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")
	api.GET("/info", h.Info)

	// Flights group
	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)
	flights.POST("/prices", h.GetFlightPrices)

	// Airports group
	airports := api.Group("/airports")
	airports.POST("/search", h.SearchAirports)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *ToolHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)
	api.GET("/info", h.Info)

	// Flights group
	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)
	flights.POST("/prices", h.GetFlightPrices)

	// Airports group
	airports := api.Group("/airports")
	airports.POST("/search", h.SearchAirports)
}
