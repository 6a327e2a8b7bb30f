// Package domain contains the core entities and rules for the flight tools
// service: search queries, the normalized flight model, result envelopes,
// and the error taxonomy. These types are vendor-agnostic; the SerpAPI wire
// schema lives in the serpapi package.
package domain

import "errors"

// Sentinel errors for the failure taxonomy. Tool operations convert these
// into uniform success=false envelopes at their boundary; none of them ever
// escapes to a caller as an unhandled fault.
var (
	// ErrInvalidQuery indicates a required parameter is missing or malformed.
	// Surfaced before any network call is made.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrMissingAPIKey indicates the SerpAPI key is not configured.
	// Surfaced before any network call is made.
	ErrMissingAPIKey = errors.New("SerpAPI key not configured. Please set SERPAPI_KEY environment variable")

	// ErrUpstream indicates the vendor API returned an explicit error payload.
	ErrUpstream = errors.New("SerpAPI error")

	// ErrTransport indicates a network or timeout failure reaching the vendor.
	ErrTransport = errors.New("API request failed")

	// ErrNoFlights indicates the vendor call succeeded but yielded no usable
	// flights for the route and dates.
	ErrNoFlights = errors.New("No flights found for the specified route and dates. Please try different dates or airports")
)
