// Package http provides the HTTP handler layer for the flight tools API.
// It handles request parsing, response formatting, and route registration.
// Parameter validation happens in the usecase layer so that validation
// failures come back inside the same result envelopes as every other failure.
package http

import (
	"github.com/flight-tools/serpapi-flight-service/internal/domain"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Source is the IATA code of the departure airport (e.g., "JFK")
	Source string `json:"source" example:"JFK"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination" example:"LAX"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date" example:"2025-03-06"`

	// ReturnDate is the optional return date in YYYY-MM-DD format.
	// Providing it makes the search round trip.
	ReturnDate string `json:"return_date,omitempty" example:"2025-03-13"`

	// Currency is the ISO 4217 currency for pricing (default: USD)
	Currency string `json:"currency,omitempty" example:"USD"`
}

// ToQuery converts the request to a domain flight query.
func (r *SearchFlightsRequest) ToQuery() domain.FlightQuery {
	return domain.FlightQuery{
		Source:        r.Source,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Currency:      r.Currency,
	}
}

// SearchAirportsRequest represents the request body for airport lookup.
type SearchAirportsRequest struct {
	// Query is either a 3-letter IATA code or free text (e.g., "LAX" or
	// "Los Angeles airport")
	Query string `json:"query" example:"LAX"`
}

// FlightPricesRequest represents the request body for price-trend lookup.
type FlightPricesRequest struct {
	// Source is the IATA code of the departure airport
	Source string `json:"source" example:"JFK"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination" example:"LAX"`

	// StartDate is the beginning of the date range in YYYY-MM-DD format
	StartDate string `json:"start_date" example:"2025-03-06"`

	// EndDate is the end of the date range in YYYY-MM-DD format
	EndDate string `json:"end_date" example:"2025-03-20"`

	// Currency is the ISO 4217 currency for pricing (default: USD)
	Currency string `json:"currency,omitempty" example:"USD"`
}

// ToQuery converts the request to a domain price query.
func (r *FlightPricesRequest) ToQuery() domain.PriceQuery {
	return domain.PriceQuery{
		Source:      r.Source,
		Destination: r.Destination,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Currency:    r.Currency,
	}
}
