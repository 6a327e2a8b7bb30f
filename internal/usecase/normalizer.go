package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/flight-tools/serpapi-flight-service/internal/domain"
	"github.com/flight-tools/serpapi-flight-service/internal/infrastructure/timeutil"
	"github.com/flight-tools/serpapi-flight-service/internal/serpapi"
	"github.com/flight-tools/serpapi-flight-service/pkg/currency"
)

// MaxFlights is the number of cheapest options kept after sorting.
const MaxFlights = 5

// Normalize converts a raw vendor flight response into a SearchResult: it
// picks the primary flight list (falling back to the alternate list), maps
// every option into the canonical flight model with defaults for absent
// fields, sorts ascending by price with unpriced options last, truncates to
// MaxFlights, and echoes the query parameters with the currency fixed to USD.
//
// Normalize is total: a panic while mapping vendor data is recovered and
// converted into a success=false result. An empty response is not a failure
// here; it yields success=true with zero flights.
func Normalize(resp *serpapi.FlightsResponse, query domain.FlightQuery, now time.Time) (result *domain.SearchResult) {
	timestamp := now.Format(time.RFC3339)

	defer func() {
		if r := recover(); r != nil {
			result = domain.NewFailedSearchResult(query, timestamp,
				fmt.Sprintf("Error processing flight data: %v", r))
		}
	}()

	options := resp.BestFlights
	if len(options) == 0 {
		options = resp.OtherFlights
	}

	flights := make([]domain.Flight, 0, len(options))
	for _, opt := range options {
		flights = append(flights, normalizeOption(opt, query))
	}

	// Unpriced options sort as +Inf so they never displace priced ones.
	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].SortPrice() < flights[j].SortPrice()
	})

	if len(flights) > MaxFlights {
		flights = flights[:MaxFlights]
	}

	echoed := domain.EchoParams(query)
	echoed.Currency = domain.DefaultCurrency

	return &domain.SearchResult{
		Success:             true,
		Flights:             flights,
		SearchParams:        echoed,
		TotalFlights:        len(flights),
		SearchTimestamp:     timestamp,
		PriceInsights:       resp.PriceInsights,
		BookingInstructions: domain.BookingInstructions,
	}
}

// normalizeOption maps one vendor flight option into the canonical model.
func normalizeOption(opt serpapi.FlightOption, query domain.FlightQuery) domain.Flight {
	airline := domain.UnknownAirline
	if len(opt.Flights) > 0 && opt.Flights[0].Airline != "" {
		airline = opt.Flights[0].Airline
	}

	priceFormatted := domain.PriceNotAvailable
	if opt.Price != 0 {
		priceFormatted = currency.FormatUSD(opt.Price)
	}

	segments := make([]domain.FlightSegment, 0, len(opt.Flights))
	for _, seg := range opt.Flights {
		segments = append(segments, normalizeSegment(seg))
	}

	layovers := make([]domain.Layover, 0, len(opt.Layovers))
	for _, l := range opt.Layovers {
		layovers = append(layovers, domain.Layover{
			Duration:  timeutil.FormatDuration(l.Duration),
			Name:      l.Name,
			Code:      l.ID,
			Overnight: l.Overnight,
		})
	}

	method := domain.BookingMethodAirlineWebsite
	if opt.DepartureToken != "" {
		method = domain.BookingMethodGoogleTravel
	}

	return domain.Flight{
		Airline:           airline,
		Price:             opt.Price,
		PriceFormatted:    priceFormatted,
		TotalDuration:     opt.TotalDuration,
		DurationFormatted: timeutil.FormatDuration(opt.TotalDuration),
		Stops:             len(layovers),
		DepartureToken:    opt.DepartureToken,
		BookingToken:      opt.BookingToken,
		Type:              opt.Type,
		AirlineLogo:       opt.AirlineLogo,
		Extensions:        nonNil(opt.Extensions),
		CarbonEmissions:   opt.CarbonEmissions,
		Segments:          segments,
		Layovers:          layovers,
		BookingLink:       BookingLink(opt, query),
		BookingInfo: domain.BookingInfo{
			CanBook:       true,
			BookingMethod: method,
			PriceCurrency: domain.DefaultCurrency,
			BookingNotes:  domain.BookingNotes,
		},
	}
}

// normalizeSegment maps one vendor leg into the canonical model, defaulting
// every absent field to a neutral value.
func normalizeSegment(seg serpapi.FlightSegment) domain.FlightSegment {
	return domain.FlightSegment{
		Airline:      defaultString(seg.Airline, domain.UnknownValue),
		FlightNumber: defaultString(seg.FlightNumber, domain.FlightNumberNA),
		Departure: domain.AirportTime{
			Name: defaultString(seg.DepartureAirport.Name, domain.UnknownValue),
			Code: seg.DepartureAirport.ID,
			Time: timeutil.FormatTimestamp(seg.DepartureAirport.Time),
		},
		Arrival: domain.AirportTime{
			Name: defaultString(seg.ArrivalAirport.Name, domain.UnknownValue),
			Code: seg.ArrivalAirport.ID,
			Time: timeutil.FormatTimestamp(seg.ArrivalAirport.Time),
		},
		Duration:     timeutil.FormatDuration(seg.Duration),
		Aircraft:     defaultString(seg.Airplane, domain.UnknownValue),
		TravelClass:  seg.TravelClass,
		AirlineLogo:  seg.AirlineLogo,
		Extensions:   nonNil(seg.Extensions),
		Legroom:      seg.Legroom,
		Overnight:    seg.Overnight,
		OftenDelayed: seg.OftenDelayed,
	}
}

// defaultString returns fallback when value is empty.
func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// nonNil ensures passthrough lists serialize as [] rather than null.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
