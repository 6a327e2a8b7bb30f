// Package serpapi provides the client for the SerpAPI search endpoint and
// the wire types for its Google Flights engine. The vendor schema is loosely
// typed; every field here is optional and reads must tolerate zero values.
package serpapi

import "encoding/json"

// Engine selectors accepted by the search endpoint.
const (
	EngineGoogleFlights = "google_flights"
	EngineGoogle        = "google"
)

// Trip type values for the google_flights engine.
const (
	TripTypeRoundTrip = "1"
	TripTypeOneWay    = "2"
)

// FlightsResponse is the google_flights engine response.
// Blocks the service passes through unmodified stay as json.RawMessage.
type FlightsResponse struct {
	// Error is set when the vendor rejected the request
	Error string `json:"error,omitempty"`

	// BestFlights is the vendor's primary flight list
	BestFlights []FlightOption `json:"best_flights"`

	// OtherFlights is the vendor's alternate flight list, used when
	// BestFlights is empty
	OtherFlights []FlightOption `json:"other_flights"`

	// PriceInsights is the vendor price-insight block, passed through
	PriceInsights json.RawMessage `json:"price_insights,omitempty"`
}

// FlightOption is one bookable itinerary in a FlightsResponse.
type FlightOption struct {
	// Flights are the individual legs of the itinerary
	Flights []FlightSegment `json:"flights"`

	// Layovers are the stops between legs
	Layovers []LayoverInfo `json:"layovers"`

	// TotalDuration is the trip duration in minutes
	TotalDuration int `json:"total_duration"`

	// Price is the itinerary price; absent for some options
	Price float64 `json:"price"`

	// Type is the trip type label, e.g. "Round trip"
	Type string `json:"type"`

	// AirlineLogo is a URL to the (mixed-airline) logo image
	AirlineLogo string `json:"airline_logo"`

	// Extensions are descriptive notes, e.g. emissions summaries
	Extensions []string `json:"extensions"`

	// CarbonEmissions is the emissions block, passed through
	CarbonEmissions json.RawMessage `json:"carbon_emissions,omitempty"`

	// DepartureToken deep-links into return-leg selection
	DepartureToken string `json:"departure_token"`

	// BookingToken deep-links into the booking flow
	BookingToken string `json:"booking_token"`
}

// FlightSegment is one leg of a FlightOption.
type FlightSegment struct {
	DepartureAirport AirportInfo `json:"departure_airport"`
	ArrivalAirport   AirportInfo `json:"arrival_airport"`

	// Duration is the leg duration in minutes
	Duration int `json:"duration"`

	// Airplane is the aircraft model
	Airplane string `json:"airplane"`

	// Airline is the operating airline name
	Airline string `json:"airline"`

	// AirlineLogo is a URL to the airline's logo image
	AirlineLogo string `json:"airline_logo"`

	// TravelClass is the cabin class, e.g. "Economy"
	TravelClass string `json:"travel_class"`

	// FlightNumber is the airline's flight number, e.g. "AA 100"
	FlightNumber string `json:"flight_number"`

	// Extensions are descriptive notes for this leg
	Extensions []string `json:"extensions"`

	// Legroom is the legroom description, e.g. "31 in"
	Legroom string `json:"legroom"`

	// Overnight indicates the leg spans a night
	Overnight bool `json:"overnight"`

	// OftenDelayed flags legs frequently delayed by more than 30 minutes
	OftenDelayed bool `json:"often_delayed_by_over_30_min"`
}

// AirportInfo identifies an airport plus a local time string.
type AirportInfo struct {
	// Name is the full airport name
	Name string `json:"name"`

	// ID is the IATA airport code
	ID string `json:"id"`

	// Time is the local time, typically "2006-01-02 15:04"
	Time string `json:"time"`
}

// LayoverInfo is a stop between legs.
type LayoverInfo struct {
	// Duration is the layover duration in minutes
	Duration int `json:"duration"`

	// Name is the full airport name
	Name string `json:"name"`

	// ID is the IATA airport code
	ID string `json:"id"`

	// Overnight indicates the layover spans a night
	Overnight bool `json:"overnight"`
}

// ErrorEnvelope extracts just the vendor error field from any response,
// used by the pass-through tools to detect explicit vendor failures.
type ErrorEnvelope struct {
	Error string `json:"error"`
}
