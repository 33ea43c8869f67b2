package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudeagle/zoomctl/internal/zoom"
)

func readyz(t *testing.T, h *HealthChecker) (int, HealthResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec.Code, resp
}

func TestHealthChecker_Liveness(t *testing.T) {
	h := NewHealthChecker(nil)
	rec := httptest.NewRecorder()
	h.LivenessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestHealthChecker_Readiness(t *testing.T) {
	authed := zoom.New("id", "secret")
	authed.SetAccessToken("token-value")

	tests := []struct {
		name      string
		client    *zoom.Client
		notReady  bool
		shutdown  bool
		wantCode  int
		wantCheck map[string]string
	}{
		{
			name:     "ready with token",
			client:   authed,
			wantCode: http.StatusOK,
		},
		{
			name:      "no access token",
			client:    zoom.New("id", "secret"),
			wantCode:  http.StatusServiceUnavailable,
			wantCheck: map[string]string{"zoom": healthStatusNotAuthenticated},
		},
		{
			name:      "marked not ready",
			client:    authed,
			notReady:  true,
			wantCode:  http.StatusServiceUnavailable,
			wantCheck: map[string]string{"ready": healthStatusNotReady},
		},
		{
			name:      "shutting down",
			client:    authed,
			shutdown:  true,
			wantCode:  http.StatusServiceUnavailable,
			wantCheck: map[string]string{"shutdown": healthStatusShuttingDown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewServerContext(context.Background(), tt.client, nil, nil)
			h := NewHealthChecker(sc)
			if tt.notReady {
				h.SetReady(false)
			}
			if tt.shutdown {
				sc.Shutdown()
			}

			code, resp := readyz(t, h)
			assert.Equal(t, tt.wantCode, code)
			for k, v := range tt.wantCheck {
				assert.Equal(t, v, resp.Checks[k], k)
			}
		})
	}
}
