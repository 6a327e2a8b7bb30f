package domain

import (
	"encoding/json"
	"math"
)

// Neutral defaults used when vendor fields are absent.
const (
	UnknownAirline    = "Unknown Airline"
	UnknownValue      = "Unknown"
	PriceNotAvailable = "Price not available"
	FlightNumberNA    = "N/A"
)

// Booking methods reported in BookingInfo.
const (
	BookingMethodGoogleTravel   = "google_travel"
	BookingMethodAirlineWebsite = "airline_website"
)

// BookingNotes is the fixed guidance attached to every bookable flight.
const BookingNotes = "Click the booking link to proceed with ticket purchase"

// Flight is the canonical, vendor-agnostic representation of one bookable
// flight option, assembled by the normalizer from a raw vendor record.
type Flight struct {
	// Airline is the operating airline of the first segment
	Airline string `json:"airline"`

	// Price is the numeric price; 0 when the vendor omitted it.
	// Sorting treats the missing case as positive infinity (see SortPrice).
	Price float64 `json:"price"`

	// PriceFormatted is the display price, e.g. "$1,500", or
	// "Price not available" when the price is missing
	PriceFormatted string `json:"price_formatted"`

	// TotalDuration is the total trip duration in minutes
	TotalDuration int `json:"total_duration"`

	// DurationFormatted is the display duration, e.g. "6h 20m"
	DurationFormatted string `json:"duration_formatted"`

	// Stops is the number of layovers
	Stops int `json:"stops"`

	// DepartureToken is the vendor token for fetching return legs
	DepartureToken string `json:"departure_token"`

	// BookingToken is the vendor token for deep-linking into booking
	BookingToken string `json:"booking_token"`

	// Type is the vendor trip type label (e.g. "Round trip")
	Type string `json:"type"`

	// AirlineLogo is a URL to the airline's logo image
	AirlineLogo string `json:"airline_logo"`

	// Extensions are vendor-provided descriptive notes, passed through
	Extensions []string `json:"extensions"`

	// CarbonEmissions is the vendor emissions block, passed through unmodified
	CarbonEmissions json.RawMessage `json:"carbon_emissions,omitempty"`

	// Segments are the individual legs of the trip, in order
	Segments []FlightSegment `json:"flights"`

	// Layovers are the intermediate stops between segments, in order
	Layovers []Layover `json:"layovers"`

	// BookingLink is the best-effort outbound booking URL (never empty)
	BookingLink string `json:"booking_link"`

	// BookingInfo describes how the flight can be booked
	BookingInfo BookingInfo `json:"booking_info"`
}

// SortPrice returns the price used for ordering. A missing price (0) sorts
// as positive infinity so unpriced flights never appear before priced ones
// after truncation.
func (f *Flight) SortPrice() float64 {
	if f.Price == 0 {
		return math.Inf(1)
	}
	return f.Price
}

// FlightSegment is one leg of a normalized flight.
type FlightSegment struct {
	// Airline is the operating airline of this leg
	Airline string `json:"airline"`

	// FlightNumber is the airline's flight number, "N/A" when absent
	FlightNumber string `json:"flight_number"`

	// Departure describes the departure airport and time
	Departure AirportTime `json:"departure_airport"`

	// Arrival describes the arrival airport and time
	Arrival AirportTime `json:"arrival_airport"`

	// Duration is the formatted leg duration, e.g. "2h 15m"
	Duration string `json:"duration"`

	// Aircraft is the airplane model, "Unknown" when absent
	Aircraft string `json:"aircraft"`

	// TravelClass is the cabin class, e.g. "Economy"
	TravelClass string `json:"travel_class"`

	// AirlineLogo is a URL to the airline's logo image
	AirlineLogo string `json:"airline_logo"`

	// Extensions are vendor-provided descriptive notes for this leg
	Extensions []string `json:"extensions"`

	// Legroom is the vendor legroom description, e.g. "31 in"
	Legroom string `json:"legroom"`

	// Overnight indicates the leg spans a night
	Overnight bool `json:"overnight"`

	// OftenDelayed indicates the vendor flags this leg as frequently late
	OftenDelayed bool `json:"often_delayed"`
}

// AirportTime is an airport reference plus a formatted local time.
type AirportTime struct {
	// Name is the full airport name, "Unknown" when absent
	Name string `json:"name"`

	// Code is the IATA airport code
	Code string `json:"id"`

	// Time is the formatted departure/arrival time
	Time string `json:"time"`
}

// Layover is an intermediate stop between flight segments.
type Layover struct {
	// Duration is the formatted layover duration
	Duration string `json:"duration"`

	// Name is the full airport name
	Name string `json:"name"`

	// Code is the IATA airport code
	Code string `json:"id"`

	// Overnight indicates the layover spans a night
	Overnight bool `json:"overnight"`
}

// BookingInfo describes how a normalized flight can be booked.
type BookingInfo struct {
	// CanBook is always true for returned flights
	CanBook bool `json:"can_book"`

	// BookingMethod is "google_travel" when a vendor token backs the link,
	// "airline_website" otherwise
	BookingMethod string `json:"booking_method"`

	// PriceCurrency is the currency of the displayed price
	PriceCurrency string `json:"price_currency"`

	// BookingNotes is fixed guidance for the caller
	BookingNotes string `json:"booking_notes"`
}
