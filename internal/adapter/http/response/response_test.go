package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContext creates an echo context backed by a response recorder.
func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestOK(t *testing.T) {
	c, rec := newTestContext(t)

	err := OK(c, map[string]string{"hello": "world"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hello":"world"}`, rec.Body.String())
}

func TestInvalidRequestBody(t *testing.T) {
	c, rec := newTestContext(t)

	err := InvalidRequestBody(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body Failure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, MsgInvalidRequestBody, body.Error)
}

func TestBadRequest_CustomMessage(t *testing.T) {
	c, rec := newTestContext(t)

	err := BadRequest(c, "query is required")
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "query is required")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestInternalServerError(t *testing.T) {
	c, rec := newTestContext(t)

	err := InternalServerError(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body Failure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Error)
}

func TestHealth(t *testing.T) {
	c, rec := newTestContext(t)

	err := Health(c, "2025-03-01T10:00:00Z")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "2025-03-01T10:00:00Z", body.Timestamp)
	assert.NotEmpty(t, body.Message)
}

func TestInfo(t *testing.T) {
	c, rec := newTestContext(t)

	info := &InfoResponse{
		Name:    "test-service",
		Version: "1.0.0",
		Tools: []ToolInfo{
			{Name: "search_flights", Description: "Search for flights"},
		},
		Timestamp: "2025-03-01T10:00:00Z",
	}

	err := Info(c, info)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body InfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "test-service", body.Name)
	require.Len(t, body.Tools, 1)
	assert.Equal(t, "search_flights", body.Tools[0].Name)
}
