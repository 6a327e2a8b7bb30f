package usecase

import (
	"fmt"
	"strings"

	"github.com/flight-tools/serpapi-flight-service/internal/domain"
	"github.com/flight-tools/serpapi-flight-service/internal/serpapi"
)

// googleTravelBase hosts vendor-token deep links into the booking flow.
const googleTravelBase = "https://www.google.com/travel/flights"

// metaSearchBase is the generic flight meta-search used as the terminal
// fallback when no token or airline template applies.
const metaSearchBase = "https://www.kayak.com/flights"

// airlineTemplate pairs a lower-case airline name fragment with a booking
// URL template taking source, destination, and departure date.
type airlineTemplate struct {
	match  string
	format string
}

// airlineTemplates is checked in order against the first segment's airline.
var airlineTemplates = []airlineTemplate{
	{"air india", "https://www.airindia.com/search?from=%s&to=%s&date=%s"},
	{"indigo", "https://www.goindigo.in/search?from=%s&to=%s&date=%s"},
	{"spicejet", "https://www.spicejet.com/search?from=%s&to=%s&date=%s"},
	{"vistara", "https://www.airvistara.com/search?from=%s&to=%s&date=%s"},
	{"american airlines", "https://www.aa.com/booking/flights?from=%s&to=%s&date=%s"},
	{"delta", "https://www.delta.com/flight-search?from=%s&to=%s&date=%s"},
	{"united", "https://www.united.com/ual/en/us/flight-search?from=%s&to=%s&date=%s"},
	{"southwest", "https://www.southwest.com/air/booking/select.html?int=HOMEQBOMAIR&from=%s&to=%s&date=%s"},
	{"jetblue", "https://www.jetblue.com/booking/flights?from=%s&to=%s&date=%s"},
	{"alaska", "https://www.alaskaair.com/booking?from=%s&to=%s&date=%s"},
}

// BookingLink derives a best-effort outbound booking URL for a flight
// option. It always succeeds and always returns a non-empty string; no
// branch performs live validation, so the link is a deep-link attempt, not a
// guarantee of resolving to the exact itinerary.
//
// Precedence, first match wins:
//  1. vendor booking token
//  2. vendor departure token
//  3. airline-specific booking URL for the first segment's airline
//  4. meta-search URL built purely from source/destination/dates
func BookingLink(opt serpapi.FlightOption, query domain.FlightQuery) string {
	if opt.BookingToken != "" {
		return googleTravelBase + "?tfs=" + opt.BookingToken
	}
	if opt.DepartureToken != "" {
		return googleTravelBase + "?tfs=" + opt.DepartureToken
	}
	if link := airlineBookingLink(opt, query); link != "" {
		return link
	}
	return metaSearchLink(query)
}

// airlineBookingLink returns the airline-specific deep link for the first
// segment's airline, or "" when no template matches.
func airlineBookingLink(opt serpapi.FlightOption, query domain.FlightQuery) string {
	if len(opt.Flights) == 0 {
		return ""
	}
	airline := strings.ToLower(opt.Flights[0].Airline)
	if airline == "" {
		return ""
	}

	source := domain.NormalizeAirportCode(query.Source)
	destination := domain.NormalizeAirportCode(query.Destination)

	for _, tpl := range airlineTemplates {
		if strings.Contains(airline, tpl.match) {
			link := fmt.Sprintf(tpl.format, source, destination, query.DepartureDate)
			if query.RoundTrip() {
				link += "&return=" + query.ReturnDate
			}
			return link
		}
	}
	return ""
}

// metaSearchLink builds the terminal fallback URL from the query alone.
func metaSearchLink(query domain.FlightQuery) string {
	source := domain.NormalizeAirportCode(query.Source)
	destination := domain.NormalizeAirportCode(query.Destination)

	if query.RoundTrip() {
		return fmt.Sprintf("%s/%s-%s/%s/%s", metaSearchBase, source, destination, query.DepartureDate, query.ReturnDate)
	}
	return fmt.Sprintf("%s/%s-%s/%s", metaSearchBase, source, destination, query.DepartureDate)
}
