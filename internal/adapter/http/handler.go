// Package http provides the HTTP handler layer for the flight tools API.
package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-tools/serpapi-flight-service/internal/adapter/http/response"
	"github.com/flight-tools/serpapi-flight-service/internal/infrastructure/timeutil"
	"github.com/flight-tools/serpapi-flight-service/internal/usecase"
)

// Service identity reported by the capabilities endpoint.
const (
	ServerName    = "serpapi-flight-service"
	ServerVersion = "1.0.0"
)

// ToolHandler handles HTTP requests for the flight tool endpoints.
// Every tool endpoint responds 200 with a result envelope; only an
// unparseable request body produces a non-200 status.
type ToolHandler struct {
	tools usecase.FlightTools
	clock timeutil.Clock
}

// NewToolHandler creates a new ToolHandler.
// A nil clock defaults to the real clock.
func NewToolHandler(tools usecase.FlightTools, clock timeutil.Clock) *ToolHandler {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &ToolHandler{
		tools: tools,
		clock: clock,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search for flights between two airports and return the top 5 cheapest options
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search parameters"
// @Success 200 {object} domain.SearchResult
// @Failure 400 {object} response.Failure "Malformed request body"
// @Router /api/v1/flights/search [post]
func (h *ToolHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	result := h.tools.SearchFlights(c.Request().Context(), req.ToQuery())
	return response.OK(c, result)
}

// SearchAirports handles POST /api/v1/airports/search
//
// @Summary Search for airports
// @Description Look up airports by IATA code or free-text description
// @Tags airports
// @Accept json
// @Produce json
// @Param request body SearchAirportsRequest true "Airport query"
// @Success 200 {object} domain.AirportResult
// @Failure 400 {object} response.Failure "Malformed request body"
// @Router /api/v1/airports/search [post]
func (h *ToolHandler) SearchAirports(c echo.Context) error {
	var req SearchAirportsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	result := h.tools.SearchAirports(c.Request().Context(), req.Query)
	return response.OK(c, result)
}

// GetFlightPrices handles POST /api/v1/flights/prices
//
// @Summary Get flight price trends
// @Description Fetch price trends for a route over a date range
// @Tags flights
// @Accept json
// @Produce json
// @Param request body FlightPricesRequest true "Price trend parameters"
// @Success 200 {object} domain.PriceTrendsResult
// @Failure 400 {object} response.Failure "Malformed request body"
// @Router /api/v1/flights/prices [post]
func (h *ToolHandler) GetFlightPrices(c echo.Context) error {
	var req FlightPricesRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	result := h.tools.GetFlightPrices(c.Request().Context(), req.ToQuery())
	return response.OK(c, result)
}

// Health handles GET /health
//
// @Summary Health check
// @Description Liveness probe with static data only
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *ToolHandler) Health(c echo.Context) error {
	return response.Health(c, h.timestamp())
}

// Info handles GET /api/v1/info
//
// @Summary Service capabilities
// @Description Server identity and the list of available tool operations
// @Tags system
// @Produce json
// @Success 200 {object} response.InfoResponse
// @Router /api/v1/info [get]
func (h *ToolHandler) Info(c echo.Context) error {
	return response.Info(c, &response.InfoResponse{
		Name:    ServerName,
		Version: ServerVersion,
		Tools: []response.ToolInfo{
			{
				Name:        "search_flights",
				Description: "Search for flights between two airports and return the top 5 cheapest options",
			},
			{
				Name:        "search_airports",
				Description: "Look up airports by IATA code or free-text description",
			},
			{
				Name:        "get_flight_prices",
				Description: "Fetch price trends for a route over a date range",
			},
		},
		Timestamp: h.timestamp(),
	})
}

// timestamp returns the current time in RFC 3339.
func (h *ToolHandler) timestamp() string {
	return h.clock.Now().Format(time.RFC3339)
}
