package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/compflow/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func post(t *testing.T, path, body string) (*http.Response, string) {
	t.Helper()
	app := NewApp(Config{}, quietLogger())
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func TestFlowEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "isentropic forward with default gamma",
			path:           "/api/isentropic",
			body:           `{"known":"M","value":2}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"M":2,"T/T0":0.5555`,
		},
		{
			name:           "divergent area ratio is null",
			path:           "/api/isentropic",
			body:           `{"gamma":1.4,"known":"M","value":0}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"A/A*":null`,
		},
		{
			name:           "isentropic area ratio needs a branch",
			path:           "/api/isentropic",
			body:           `{"known":"A/A*","value":1.5}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"detail":"value 1.5 is reached on both`,
		},
		{
			name:           "isentropic area ratio alias",
			path:           "/api/isentropic",
			body:           `{"known":"A_Astar","value":1.5,"branch":"supersonic"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"M":1.854`,
		},
		{
			name:           "normal shock from M1",
			path:           "/api/normal-shock",
			body:           `{"M1":2}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"P2/P1":4.`,
		},
		{
			name:           "subsonic normal shock",
			path:           "/api/normal-shock",
			body:           `{"M1":0.5}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"detail"`,
		},
		{
			name:           "oblique shock weak branch",
			path:           "/api/oblique-shock",
			body:           `{"M1":2.5,"theta_deg":10,"branch":"weak"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"beta_deg":31.85`,
		},
		{
			name:           "detached oblique shock",
			path:           "/api/oblique-shock",
			body:           `{"M1":2.5,"theta_deg":35,"branch":"weak"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `exceeds the maximum`,
		},
		{
			name:           "oblique shock without M1",
			path:           "/api/oblique-shock",
			body:           `{"beta_deg":45}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `M1 is required`,
		},
		{
			name:           "fanno friction length",
			path:           "/api/fanno",
			body:           `{"known":"4fL/D","value":0.3,"branch":"subsonic"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"M":0.659`,
		},
		{
			name:           "rayleigh unreachable supersonic",
			path:           "/api/rayleigh",
			body:           `{"known":"Tt/Tt*","value":0.3,"branch":"supersonic"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `not reachable on the supersonic branch`,
		},
		{
			name:           "invalid gamma",
			path:           "/api/rayleigh",
			body:           `{"gamma":0.9,"known":"M","value":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `gamma must be`,
		},
		{
			name:           "unknown quantity",
			path:           "/api/fanno",
			body:           `{"known":"entropy","value":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `unknown quantity`,
		},
		{
			name:           "missing value",
			path:           "/api/fanno",
			body:           `{"known":"M"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `known and value are required`,
		},
		{
			name:           "malformed json",
			path:           "/api/fanno",
			body:           `{"known":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "unknown route",
			path:           "/api/prandtl-meyer",
			body:           `{}`,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"detail"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode, body)
			assert.Contains(t, body, tt.expectedBody)
			_, err := uuid.Parse(resp.Header.Get("X-Request-ID"))
			assert.NoError(t, err)
		})
	}
}

func TestFlowStateOrder(t *testing.T) {
	_, body := post(t, "/api/rayleigh", `{"known":"M","value":2}`)
	var keys []string
	dec := json.NewDecoder(strings.NewReader(body))
	_, err := dec.Token()
	require.NoError(t, err)
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		keys = append(keys, tok.(string))
		_, err = dec.Token()
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"M", "T/T*", "P/P*", "P0/P0*", "rho/rho*", "Tt/Tt*"}, keys)
}

func TestHealthRoute(t *testing.T) {
	app := NewApp(Config{}, quietLogger())
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var health HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(types.NewFlowError(types.ErrInvalidInput, "x")))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusCode(types.NewFlowError(types.ErrAmbiguousBranch, "x")))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusCode(types.NewFlowError(types.ErrNoSolution, "x")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(types.NewFlowError(types.ErrConvergenceFailure, "x")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}

func TestFlowBodyRequest(t *testing.T) {
	M1, beta := 2., 45.
	req, err := FlowBody{M1: &M1, BetaDeg: &beta}.Request(types.FT_ObliqueShock)
	require.NoError(t, err)
	assert.Equal(t, types.Q_BetaDeg, req.Known)
	assert.Equal(t, 45., req.Value)
	assert.Equal(t, 1.4, req.Gamma)

	value := 4.5
	req, err = FlowBody{Known: "P2/P1", Value: &value}.Request(types.FT_NormalShock)
	require.NoError(t, err)
	assert.Equal(t, types.Q_P2P1, req.Known)

	_, err = FlowBody{Known: "M", Value: &value, Branch: "sideways"}.Request(types.FT_Fanno)
	assert.True(t, errors.Is(err, types.ErrInvalidInput))
}

func TestModuleLifecycle(t *testing.T) {
	m := NewModule(Config{Listen: "127.0.0.1:0"}, quietLogger())
	assert.Equal(t, "compflow-api", m.Name())
	assert.False(t, m.Health(context.Background()).Healthy)

	require.NoError(t, m.Start(context.Background()))
	health := m.Health(context.Background())
	assert.True(t, health.Healthy)
	assert.Equal(t, "127.0.0.1:0", health.Details["listen"])
	require.NoError(t, m.Stop(context.Background()))
}
