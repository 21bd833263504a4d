package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/studio-backoffice/internal/handler"
)

// stubPinger implements handler.Pinger for health endpoints.
type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func newEngine(p handler.Pinger, routes ...handler.Route) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := handler.New(handler.Options{Logger: zerolog.Nop()})
	handler.Register(r, p, routes...)
	return r
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestHealth(t *testing.T) {
	down := stubPinger{err: errors.New("db down")}
	tests := []struct {
		name   string
		pinger handler.Pinger
		path   string
		status int
	}{
		{"live root", stubPinger{}, "/live", http.StatusOK},
		{"live while db down", down, "/live", http.StatusOK},
		{"ready root", stubPinger{}, "/ready", http.StatusOK},
		{"ready root unavailable", down, "/ready", http.StatusServiceUnavailable},
		{"ready api", stubPinger{}, handler.APIV1Prefix + "/health/ready", http.StatusOK},
		{"ready api unavailable", down, handler.APIV1Prefix + "/health/ready", http.StatusServiceUnavailable},
		{"live api", stubPinger{}, handler.APIV1Prefix + "/health/live", http.StatusOK},
		{"no pinger", nil, "/ready", http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newEngine(tt.pinger), http.MethodGet, tt.path)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestReadiness_DoesNotLeakCause(t *testing.T) {
	w := serve(newEngine(stubPinger{err: errors.New("password authentication failed")}), http.MethodGet, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestUnknownRoute_IsEnvelope(t *testing.T) {
	w := serve(newEngine(stubPinger{}), http.MethodGet, "/no-such")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"not_found","message":"route not found"}`, w.Body.String())
}

func TestWrongMethod_IsNotAllowed(t *testing.T) {
	w := serve(newEngine(stubPinger{}), http.MethodPost, handler.APIV1Prefix+"/health/ready")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestDocs(t *testing.T) {
	r := newEngine(stubPinger{})

	w := serve(r, http.MethodGet, "/openapi.yaml")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/yaml")
	assert.Contains(t, w.Body.String(), "/api/v1/admin/jobs:")

	w = serve(r, http.MethodGet, "/docs")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/openapi.yaml")
}
