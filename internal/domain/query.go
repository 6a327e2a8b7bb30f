package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultCurrency is used when a query does not specify a currency.
const DefaultCurrency = "USD"

// airportCodeRegex matches valid IATA airport codes (3 letters, any case;
// codes are upper-cased before hitting the wire).
var airportCodeRegex = regexp.MustCompile(`^[A-Za-z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FlightQuery defines the parameters for a flight search.
// It is supplied per call and never mutated after validation.
type FlightQuery struct {
	// Source is the IATA code of the departure airport (e.g., "JFK")
	Source string `json:"source"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date"`

	// ReturnDate is the optional return date in YYYY-MM-DD format.
	// When present the search is round-trip shaped.
	ReturnDate string `json:"return_date,omitempty"`

	// Currency is the ISO 4217 currency for pricing (default: USD)
	Currency string `json:"currency"`
}

// SetDefaults applies default values to empty optional fields.
func (q *FlightQuery) SetDefaults() {
	if q.Currency == "" {
		q.Currency = DefaultCurrency
	}
}

// RoundTrip reports whether the query includes a return leg.
func (q *FlightQuery) RoundTrip() bool {
	return q.ReturnDate != ""
}

// Validate checks the flight query.
// Returns a wrapped ErrInvalidQuery error if validation fails.
func (q *FlightQuery) Validate() error {
	if q.Source == "" || q.Destination == "" || q.DepartureDate == "" {
		return fmt.Errorf("%w: missing required parameters: source, destination, and departure_date are required", ErrInvalidQuery)
	}

	if !airportCodeRegex.MatchString(q.Source) {
		return fmt.Errorf("%w: source must be a 3-letter IATA code, got %q", ErrInvalidQuery, q.Source)
	}
	if !airportCodeRegex.MatchString(q.Destination) {
		return fmt.Errorf("%w: destination must be a 3-letter IATA code, got %q", ErrInvalidQuery, q.Destination)
	}

	if err := validateDate("departure_date", q.DepartureDate); err != nil {
		return err
	}
	if q.ReturnDate != "" {
		if err := validateDate("return_date", q.ReturnDate); err != nil {
			return err
		}
	}

	return nil
}

// PriceQuery defines the parameters for a flight price-trend lookup.
type PriceQuery struct {
	// Source is the IATA code of the departure airport
	Source string `json:"source"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// StartDate is the beginning of the date range in YYYY-MM-DD format
	StartDate string `json:"start_date"`

	// EndDate is the end of the date range in YYYY-MM-DD format
	EndDate string `json:"end_date"`

	// Currency is the ISO 4217 currency for pricing (default: USD)
	Currency string `json:"currency"`
}

// SetDefaults applies default values to empty optional fields.
func (q *PriceQuery) SetDefaults() {
	if q.Currency == "" {
		q.Currency = DefaultCurrency
	}
}

// Validate checks the price query.
// Returns a wrapped ErrInvalidQuery error if validation fails.
func (q *PriceQuery) Validate() error {
	if q.Source == "" || q.Destination == "" || q.StartDate == "" || q.EndDate == "" {
		return fmt.Errorf("%w: missing required parameters: source, destination, start_date, and end_date are required", ErrInvalidQuery)
	}

	if !airportCodeRegex.MatchString(q.Source) {
		return fmt.Errorf("%w: source must be a 3-letter IATA code, got %q", ErrInvalidQuery, q.Source)
	}
	if !airportCodeRegex.MatchString(q.Destination) {
		return fmt.Errorf("%w: destination must be a 3-letter IATA code, got %q", ErrInvalidQuery, q.Destination)
	}

	if err := validateDate("start_date", q.StartDate); err != nil {
		return err
	}
	return validateDate("end_date", q.EndDate)
}

// validateDate checks a date field for YYYY-MM-DD shape and calendar validity.
func validateDate(field, value string) error {
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidQuery, field, value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidQuery, field, value)
	}
	return nil
}

// IsIATACode reports whether the query string looks like a bare IATA code
// (exactly 3 alphabetic characters).
func IsIATACode(query string) bool {
	if len(query) != 3 {
		return false
	}
	for _, r := range query {
		if !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}

// NormalizeAirportCode upper-cases an IATA code for the wire.
func NormalizeAirportCode(code string) string {
	return strings.ToUpper(code)
}
