// Package integration provides helpers and integration tests for the flight
// tools service. Integration tests exercise the full request path: HTTP
// handlers, the use case layer, and the real vendor client pointed at a fake
// upstream server.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	toolhttp "github.com/flight-tools/serpapi-flight-service/internal/adapter/http"
	"github.com/flight-tools/serpapi-flight-service/internal/domain"
	"github.com/flight-tools/serpapi-flight-service/internal/infrastructure/timeutil"
	"github.com/flight-tools/serpapi-flight-service/internal/serpapi"
	"github.com/flight-tools/serpapi-flight-service/internal/usecase"
)

// TestAPIKey is the vendor API key used throughout the integration tests.
const TestAPIKey = "integration-test-key"

// Now is the fixed clock time every test server runs at.
var Now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// FakeSerpAPI is an in-process stand-in for the vendor API. It records every
// request's query parameters and serves a configurable response.
type FakeSerpAPI struct {
	mu         sync.Mutex
	requests   []url.Values
	body       []byte
	statusCode int

	server *httptest.Server
}

// NewFakeSerpAPI starts a fake vendor server. Callers must Close it.
func NewFakeSerpAPI() *FakeSerpAPI {
	f := &FakeSerpAPI{
		body:       []byte(`{}`),
		statusCode: http.StatusOK,
	}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.URL.Query())
		body := f.body
		status := f.statusCode
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(body)
	}))
	return f
}

// Close shuts the fake server down.
func (f *FakeSerpAPI) Close() {
	f.server.Close()
}

// URL returns the fake server's base URL.
func (f *FakeSerpAPI) URL() string {
	return f.server.URL
}

// Respond sets the response body served to subsequent requests.
func (f *FakeSerpAPI) Respond(body []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.body = body
	f.statusCode = http.StatusOK
}

// RespondStatus sets both the status code and body for subsequent requests.
func (f *FakeSerpAPI) RespondStatus(status int, body []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.body = body
	f.statusCode = status
}

// Requests returns a copy of the recorded request parameters.
func (f *FakeSerpAPI) Requests() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]url.Values, len(f.requests))
	copy(out, f.requests)
	return out
}

// LastRequest returns the most recent request's parameters, or nil.
func (f *FakeSerpAPI) LastRequest() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}

// RequestCount returns how many requests the fake has served.
func (f *FakeSerpAPI) RequestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// TestServer wraps an Echo instance wired end to end against a fake upstream.
type TestServer struct {
	Echo    *echo.Echo
	Handler *toolhttp.ToolHandler
}

// NewTestServer creates a test server whose vendor client talks to the fake.
func NewTestServer(fake *FakeSerpAPI) *TestServer {
	return NewTestServerWithKey(fake, TestAPIKey)
}

// NewTestServerWithKey creates a test server with a specific API key.
// An empty key exercises the configuration-error path.
func NewTestServerWithKey(fake *FakeSerpAPI, apiKey string) *TestServer {
	log := zerolog.Nop()
	clock := timeutil.NewMockClock(Now)

	client := serpapi.NewClientWithBaseURL(fake.URL(), 5*time.Second, log)
	tools := usecase.NewFlightTools(client, usecase.Config{APIKey: apiKey}, clock, log)
	handler := toolhttp.NewToolHandler(tools, clock)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	toolhttp.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchFlights posts a flight search request.
func (ts *TestServer) SearchFlights(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// SearchAirports posts an airport lookup request.
func (ts *TestServer) SearchAirports(query string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/airports/search",
		Body:   map[string]string{"query": query},
	})
}

// GetFlightPrices posts a price-trend request.
func (ts *TestServer) GetFlightPrices(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/prices",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// InfoRequest makes a capabilities request.
func (ts *TestServer) InfoRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/info",
	})
}

// ParseSearchResult parses the response body as a SearchResult.
func (r *Response) ParseSearchResult() (*domain.SearchResult, error) {
	var result domain.SearchResult
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParseAirportResult parses the response body as an AirportResult.
func (r *Response) ParseAirportResult() (*domain.AirportResult, error) {
	var result domain.AirportResult
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParsePriceTrendsResult parses the response body as a PriceTrendsResult.
func (r *Response) ParsePriceTrendsResult() (*domain.PriceTrendsResult, error) {
	var result domain.PriceTrendsResult
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DefaultSearchRequest returns a valid flight search request body.
func DefaultSearchRequest() map[string]string {
	return map[string]string{
		"source":         "JFK",
		"destination":    "LAX",
		"departure_date": "2025-03-06",
	}
}

// DefaultPricesRequest returns a valid price-trend request body.
func DefaultPricesRequest() map[string]string {
	return map[string]string{
		"source":      "JFK",
		"destination": "LAX",
		"start_date":  "2025-03-06",
		"end_date":    "2025-03-20",
	}
}
