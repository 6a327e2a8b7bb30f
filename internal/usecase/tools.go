// Package usecase contains the business logic for the three flight tools:
// flight search, airport lookup, and price trends. Every operation returns a
// fully-formed result envelope and never propagates an error to its caller.
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-tools/serpapi-flight-service/internal/domain"
	"github.com/flight-tools/serpapi-flight-service/internal/infrastructure/timeutil"
	"github.com/flight-tools/serpapi-flight-service/internal/serpapi"
)

const (
	// defaultLocale is the interface language sent upstream.
	defaultLocale = "en"

	// airportProbeLeadDays is how far in the future the one-sided airport
	// probe date is placed.
	airportProbeLeadDays = 30

	// airportQueryAnnotation is appended to free-text airport lookups.
	airportQueryAnnotation = " airport IATA code information"
)

// FlightTools defines the three tool operations. The methods are total:
// validation, configuration, upstream, and transport failures all come back
// as success=false envelopes, never as Go errors or panics.
type FlightTools interface {
	// SearchFlights finds flights between two airports and returns the top 5
	// cheapest options, normalized and enriched with booking links.
	SearchFlights(ctx context.Context, query domain.FlightQuery) *domain.SearchResult

	// SearchAirports looks up airports by IATA code or free text and passes
	// the vendor response through.
	SearchAirports(ctx context.Context, query string) *domain.AirportResult

	// GetFlightPrices fetches price trends for a route over a date range and
	// passes the vendor response through.
	GetFlightPrices(ctx context.Context, query domain.PriceQuery) *domain.PriceTrendsResult
}

// Config contains configuration for the flight tools.
type Config struct {
	// APIKey is the SerpAPI key. May be empty: each operation then fails
	// with a configuration error before making any network call.
	APIKey string
}

// flightTools implements FlightTools on top of a serpapi.Client.
// It holds no mutable state; concurrent invocations are independent.
type flightTools struct {
	client serpapi.Client
	apiKey string
	clock  timeutil.Clock
	log    zerolog.Logger
}

// NewFlightTools creates the FlightTools implementation.
// A nil clock defaults to the real clock.
func NewFlightTools(client serpapi.Client, cfg Config, clock timeutil.Clock, log zerolog.Logger) FlightTools {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &flightTools{
		client: client,
		apiKey: cfg.APIKey,
		clock:  clock,
		log:    log,
	}
}

// SearchFlights implements FlightTools.SearchFlights.
func (t *flightTools) SearchFlights(ctx context.Context, query domain.FlightQuery) *domain.SearchResult {
	query.SetDefaults()
	timestamp := t.timestamp()

	if err := query.Validate(); err != nil {
		return domain.NewFailedSearchResult(query, timestamp, err.Error())
	}
	if t.apiKey == "" {
		return domain.NewFailedSearchResult(query, timestamp, domain.ErrMissingAPIKey.Error())
	}

	params := serpapi.Params{
		Engine:       serpapi.EngineGoogleFlights,
		DepartureID:  domain.NormalizeAirportCode(query.Source),
		ArrivalID:    domain.NormalizeAirportCode(query.Destination),
		OutboundDate: query.DepartureDate,
		TripType:     serpapi.TripTypeOneWay,
		Currency:     query.Currency,
		Locale:       defaultLocale,
		APIKey:       t.apiKey,
	}
	if query.RoundTrip() {
		params.ReturnDate = query.ReturnDate
		params.TripType = serpapi.TripTypeRoundTrip
	}

	t.log.Info().
		Str("source", params.DepartureID).
		Str("destination", params.ArrivalID).
		Str("departure_date", query.DepartureDate).
		Bool("round_trip", query.RoundTrip()).
		Msg("Searching flights")

	body, err := t.client.Search(ctx, params)
	if err != nil {
		t.log.Error().Err(err).Msg("Flight search request failed")
		return domain.NewFailedSearchResult(query, timestamp, fmt.Sprintf("%s: %v", domain.ErrTransport, err))
	}

	var resp serpapi.FlightsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.NewFailedSearchResult(query, timestamp, fmt.Sprintf("Error searching flights: %v", err))
	}

	if resp.Error != "" {
		t.log.Warn().Str("upstream_error", resp.Error).Msg("SerpAPI rejected flight search")
		return domain.NewFailedSearchResult(query, timestamp, fmt.Sprintf("%s: %s", domain.ErrUpstream, resp.Error))
	}

	if len(resp.BestFlights) == 0 && len(resp.OtherFlights) == 0 {
		t.log.Warn().Msg("No flights in SerpAPI response")
		return domain.NewFailedSearchResult(query, timestamp, domain.ErrNoFlights.Error())
	}

	return Normalize(&resp, query, t.clock.Now())
}

// SearchAirports implements FlightTools.SearchAirports.
// A query of exactly 3 alphabetic characters is treated as an IATA code and
// probed through the flight engine; anything else goes through a generic web
// search annotated for airport information.
func (t *flightTools) SearchAirports(ctx context.Context, query string) *domain.AirportResult {
	timestamp := t.timestamp()

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return domain.NewFailedAirportResult(query, timestamp,
			fmt.Sprintf("%s: query is required", domain.ErrInvalidQuery))
	}
	if t.apiKey == "" {
		return domain.NewFailedAirportResult(query, timestamp, domain.ErrMissingAPIKey.Error())
	}

	var params serpapi.Params
	if domain.IsIATACode(trimmed) {
		params = serpapi.Params{
			Engine:       serpapi.EngineGoogleFlights,
			DepartureID:  domain.NormalizeAirportCode(trimmed),
			OutboundDate: t.clock.Now().AddDate(0, 0, airportProbeLeadDays).Format("2006-01-02"),
			Currency:     domain.DefaultCurrency,
			Locale:       defaultLocale,
			APIKey:       t.apiKey,
		}
	} else {
		params = serpapi.Params{
			Engine: serpapi.EngineGoogle,
			Query:  trimmed + airportQueryAnnotation,
			APIKey: t.apiKey,
		}
	}

	t.log.Info().Str("query", trimmed).Str("engine", params.Engine).Msg("Searching airports")

	body, err := t.client.Search(ctx, params)
	if err != nil {
		t.log.Error().Err(err).Msg("Airport search request failed")
		return domain.NewFailedAirportResult(query, timestamp, fmt.Sprintf("%s: %v", domain.ErrTransport, err))
	}

	if msg := upstreamError(body); msg != "" {
		t.log.Warn().Str("upstream_error", msg).Msg("SerpAPI rejected airport search")
		return domain.NewFailedAirportResult(query, timestamp, fmt.Sprintf("%s: %s", domain.ErrUpstream, msg))
	}

	return &domain.AirportResult{
		Success:         true,
		SerpAPIResponse: body,
		Query:           query,
		SearchTimestamp: timestamp,
	}
}

// GetFlightPrices implements FlightTools.GetFlightPrices.
func (t *flightTools) GetFlightPrices(ctx context.Context, query domain.PriceQuery) *domain.PriceTrendsResult {
	query.SetDefaults()
	timestamp := t.timestamp()

	if err := query.Validate(); err != nil {
		return domain.NewFailedPriceTrendsResult(query, timestamp, err.Error())
	}
	if t.apiKey == "" {
		return domain.NewFailedPriceTrendsResult(query, timestamp, domain.ErrMissingAPIKey.Error())
	}

	params := serpapi.Params{
		Engine:       serpapi.EngineGoogleFlights,
		DepartureID:  domain.NormalizeAirportCode(query.Source),
		ArrivalID:    domain.NormalizeAirportCode(query.Destination),
		OutboundDate: query.StartDate,
		ReturnDate:   query.EndDate,
		Currency:     query.Currency,
		Locale:       defaultLocale,
		APIKey:       t.apiKey,
	}

	t.log.Info().
		Str("source", params.DepartureID).
		Str("destination", params.ArrivalID).
		Str("start_date", query.StartDate).
		Str("end_date", query.EndDate).
		Msg("Getting flight price trends")

	body, err := t.client.Search(ctx, params)
	if err != nil {
		t.log.Error().Err(err).Msg("Price trends request failed")
		return domain.NewFailedPriceTrendsResult(query, timestamp, fmt.Sprintf("%s: %v", domain.ErrTransport, err))
	}

	if msg := upstreamError(body); msg != "" {
		t.log.Warn().Str("upstream_error", msg).Msg("SerpAPI rejected price trends request")
		return domain.NewFailedPriceTrendsResult(query, timestamp, fmt.Sprintf("%s: %s", domain.ErrUpstream, msg))
	}

	return &domain.PriceTrendsResult{
		Success:         true,
		SerpAPIResponse: body,
		PriceTrends:     []json.RawMessage{},
		SearchParams:    domain.EchoPriceParams(query),
		SearchTimestamp: timestamp,
	}
}

// timestamp returns the current time in RFC 3339 for result envelopes.
func (t *flightTools) timestamp() string {
	return t.clock.Now().Format(time.RFC3339)
}

// upstreamError extracts the vendor error message from a raw response body.
// An unparseable body is reported as an upstream failure too, since it
// cannot be embedded in a pass-through envelope.
func upstreamError(body []byte) string {
	var envelope serpapi.ErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Sprintf("invalid response body: %v", err)
	}
	return envelope.Error
}

// Ensure flightTools implements FlightTools at compile time.
var _ FlightTools = (*flightTools)(nil)
