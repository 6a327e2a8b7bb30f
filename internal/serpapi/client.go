package serpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the SerpAPI search endpoint.
const DefaultBaseURL = "https://serpapi.com/search"

// DefaultTimeout is the fixed per-call timeout for upstream requests.
const DefaultTimeout = 30 * time.Second

// maxResponseBytes caps the upstream body read.
const maxResponseBytes = 10 << 20

// Params are the query parameters for one search call. Zero-valued fields
// are omitted from the request, except ArrivalID which is always sent for
// the google_flights engine (the one-sided airport probe relies on an
// explicitly empty arrival_id).
type Params struct {
	// Engine selects the SerpAPI engine (google_flights or google)
	Engine string

	// Query is the free-text query for the google engine
	Query string

	// DepartureID and ArrivalID are upper-case IATA codes (google_flights)
	DepartureID string
	ArrivalID   string

	// OutboundDate and ReturnDate are YYYY-MM-DD dates (google_flights)
	OutboundDate string
	ReturnDate   string

	// TripType is TripTypeRoundTrip or TripTypeOneWay (google_flights)
	TripType string

	// Currency is the ISO 4217 pricing currency
	Currency string

	// Locale is the interface language, e.g. "en"
	Locale string

	// APIKey authenticates the request
	APIKey string
}

// Values encodes the parameters as URL query values.
func (p Params) Values() url.Values {
	v := url.Values{}
	v.Set("engine", p.Engine)

	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if p.Engine == EngineGoogleFlights {
		v.Set("departure_id", p.DepartureID)
		v.Set("arrival_id", p.ArrivalID)
	}
	if p.OutboundDate != "" {
		v.Set("outbound_date", p.OutboundDate)
	}
	if p.ReturnDate != "" {
		v.Set("return_date", p.ReturnDate)
	}
	if p.TripType != "" {
		v.Set("type", p.TripType)
	}
	if p.Currency != "" {
		v.Set("currency", p.Currency)
	}
	if p.Locale != "" {
		v.Set("hl", p.Locale)
	}
	v.Set("api_key", p.APIKey)

	return v
}

//go:generate mockgen -source=client.go -destination=mock_client.go -package=serpapi

// Client issues search requests against the SerpAPI endpoint.
type Client interface {
	// Search performs one GET against the search endpoint and returns the
	// raw JSON body. A non-2xx status with a readable JSON body is not an
	// error: SerpAPI reports failures as {"error": ...} payloads which the
	// caller inspects. Network and timeout failures return an error.
	Search(ctx context.Context, params Params) ([]byte, error)
}

// HTTPClient is the production Client backed by net/http.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates an HTTPClient against the production endpoint with the
// given per-call timeout (DefaultTimeout when zero).
func NewClient(timeout time.Duration, log zerolog.Logger) *HTTPClient {
	return NewClientWithBaseURL(DefaultBaseURL, timeout, log)
}

// NewClientWithBaseURL creates an HTTPClient against a custom endpoint.
// Used by tests to point the client at a local fake.
func NewClientWithBaseURL(baseURL string, timeout time.Duration, log zerolog.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Search implements Client.
func (c *HTTPClient) Search(ctx context.Context, params Params) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.URL.RawQuery = params.Values().Encode()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().
			Err(err).
			Str("engine", params.Engine).
			Msg("SerpAPI request failed")
		return nil, fmt.Errorf("serpapi request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read serpapi response: %w", err)
	}

	c.log.Debug().
		Str("engine", params.Engine).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("SerpAPI request completed")

	if len(body) == 0 {
		return nil, fmt.Errorf("serpapi request: empty response (status %d)", resp.StatusCode)
	}

	return body, nil
}

// Ensure HTTPClient implements Client at compile time.
var _ Client = (*HTTPClient)(nil)
