package domain

import "encoding/json"

// BookingInstructions is the fixed guidance attached to successful searches.
const BookingInstructions = "Click on any booking link to proceed with ticket purchase. Links will redirect to Google Travel or airline websites for booking."

// SearchResult is the envelope returned by the search_flights tool.
// Constructed fresh per request, never persisted, never mutated after return.
// Success, Flights, and Error are always present so callers can branch
// solely on Success.
type SearchResult struct {
	// Success indicates whether the search produced usable results
	Success bool `json:"success"`

	// Flights holds at most 5 normalized flights sorted ascending by price
	Flights []Flight `json:"flights"`

	// SearchParams echoes the query parameters
	SearchParams SearchParams `json:"search_params"`

	// TotalFlights is the number of flights returned
	TotalFlights int `json:"total_flights"`

	// SearchTimestamp is when the search completed, RFC 3339
	SearchTimestamp string `json:"search_timestamp"`

	// PriceInsights is the vendor price-insight block, passed through unmodified
	PriceInsights json.RawMessage `json:"price_insights,omitempty"`

	// BookingInstructions is fixed guidance, present on success
	BookingInstructions string `json:"booking_instructions,omitempty"`

	// Error is the failure message, empty on success
	Error string `json:"error"`
}

// SearchParams echoes the flight search parameters in responses.
type SearchParams struct {
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Currency      string `json:"currency"`
}

// EchoParams builds the echoed parameter block for a flight query.
func EchoParams(q FlightQuery) SearchParams {
	return SearchParams{
		Source:        q.Source,
		Destination:   q.Destination,
		DepartureDate: q.DepartureDate,
		ReturnDate:    q.ReturnDate,
		Currency:      q.Currency,
	}
}

// NewFailedSearchResult builds a well-formed failure envelope: success=false,
// a human-readable error, zero flights, and the echoed query parameters.
func NewFailedSearchResult(q FlightQuery, timestamp, message string) *SearchResult {
	return &SearchResult{
		Success:         false,
		Flights:         []Flight{},
		SearchParams:    EchoParams(q),
		TotalFlights:    0,
		SearchTimestamp: timestamp,
		Error:           message,
	}
}

// AirportResult is the envelope returned by the search_airports tool.
// The vendor response is passed through largely unmodified.
type AirportResult struct {
	// Success indicates whether the lookup succeeded
	Success bool `json:"success"`

	// SerpAPIResponse is the complete vendor response, unmodified
	SerpAPIResponse json.RawMessage `json:"serpapi_response"`

	// Query echoes the caller's query string
	Query string `json:"query"`

	// SearchTimestamp is when the lookup completed, RFC 3339
	SearchTimestamp string `json:"search_timestamp"`

	// Error is the failure message, empty on success
	Error string `json:"error"`
}

// NewFailedAirportResult builds a well-formed airport failure envelope.
func NewFailedAirportResult(query, timestamp, message string) *AirportResult {
	return &AirportResult{
		Success:         false,
		SerpAPIResponse: json.RawMessage(`{}`),
		Query:           query,
		SearchTimestamp: timestamp,
		Error:           message,
	}
}

// PriceTrendsResult is the envelope returned by the get_flight_prices tool.
// The vendor response is passed through largely unmodified.
type PriceTrendsResult struct {
	// Success indicates whether the lookup succeeded
	Success bool `json:"success"`

	// SerpAPIResponse is the complete vendor response, unmodified
	SerpAPIResponse json.RawMessage `json:"serpapi_response"`

	// PriceTrends is reserved for extracted trend entries; always present
	PriceTrends []json.RawMessage `json:"price_trends"`

	// SearchParams echoes the query parameters
	SearchParams PriceParams `json:"search_params"`

	// SearchTimestamp is when the lookup completed, RFC 3339
	SearchTimestamp string `json:"search_timestamp"`

	// Error is the failure message, empty on success
	Error string `json:"error"`
}

// PriceParams echoes the price-trend parameters in responses.
type PriceParams struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Currency    string `json:"currency"`
}

// EchoPriceParams builds the echoed parameter block for a price query.
func EchoPriceParams(q PriceQuery) PriceParams {
	return PriceParams{
		Source:      q.Source,
		Destination: q.Destination,
		StartDate:   q.StartDate,
		EndDate:     q.EndDate,
		Currency:    q.Currency,
	}
}

// NewFailedPriceTrendsResult builds a well-formed price-trend failure envelope.
func NewFailedPriceTrendsResult(q PriceQuery, timestamp, message string) *PriceTrendsResult {
	return &PriceTrendsResult{
		Success:         false,
		SerpAPIResponse: json.RawMessage(`{}`),
		PriceTrends:     []json.RawMessage{},
		SearchParams:    EchoPriceParams(q),
		SearchTimestamp: timestamp,
		Error:           message,
	}
}
