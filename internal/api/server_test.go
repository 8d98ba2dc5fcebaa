package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/extract"
	"healthcost-assistant/internal/handlers/cost"
	"healthcost-assistant/internal/handlers/health"
	"healthcost-assistant/internal/handlers/hospital"
	"healthcost-assistant/internal/intent"
	"healthcost-assistant/internal/services/costs"
	"healthcost-assistant/internal/services/hospitals"
	"healthcost-assistant/internal/supervisor"
)

type stubProvider struct {
	info string
	err  error
}

func (s *stubProvider) DiseaseInfo(context.Context, string) (string, error) {
	return s.info, s.err
}

type stubTips struct {
	tips string
	err  error
}

func (s *stubTips) HealthTips(context.Context, string) (string, error) {
	return s.tips, s.err
}

func newTestServer(t *testing.T, tips TipsProvider) *httptest.Server {
	log := logger.NewTestLogger(t)

	sup := supervisor.New(
		extract.NewDefault(log),
		intent.NewDefault(log),
		health.NewHandler(&health.Config{Timeout: 5 * time.Second}, &stubProvider{info: "Diabetes info."}, log),
		hospital.NewHandler(&hospital.Config{HospitalType: "Private", Limit: 5, Timeout: 5 * time.Second}, hospitals.NewSampleStore(), log),
		cost.NewHandler(&cost.Config{DefaultDisease: "diabetes", HospitalTier: "private", HospitalDays: 3, OPDVisits: 12, Timeout: 5 * time.Second}, costs.New(log), log),
		log,
	)

	srv := httptest.NewServer(NewServer(sup, tips, log).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func TestHandleQuery(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/api/query", "application/json",
		strings.NewReader(`{"question":"What are symptoms of diabetes?"}`))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		RequestID string   `json:"requestId"`
		Answer    string   `json:"answer"`
		Intents   []string `json:"intents"`
	}
	assert.NoError(t, decodeJSON(resp, &out))
	assert.NotEmpty(t, out.RequestID)
	assert.Equal(t, "📋 HEALTH INFORMATION\nDiabetes info.", out.Answer)
	assert.Equal(t, []string{"health"}, out.Intents)
}

func TestHandleQuery_EmptyQuestionStillAnswers(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/api/query", "application/json",
		strings.NewReader(`{"question":"  "}`))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Answer string `json:"answer"`
	}
	assert.NoError(t, decodeJSON(resp, &out))
	assert.Equal(t, "Please enter a valid question.", out.Answer)
}

func TestHandleQuery_RejectsInvalidBody(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"missing question", `{}`},
		{"wrong type", `{"question": 7}`},
		{"extra field", `{"question":"x","other":true}`},
		{"malformed json", `{"question":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/query", "application/json", strings.NewReader(tt.body))
			assert.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandleQuery_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/query")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandleTips(t *testing.T) {
	srv := newTestServer(t, &stubTips{tips: "Eat well."})

	resp, err := http.Post(srv.URL+"/api/tips", "application/json",
		strings.NewReader(`{"condition":"hypertension"}`))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]string
	assert.NoError(t, decodeJSON(resp, &out))
	assert.Equal(t, "Eat well.", out["tips"])
}

func TestHandleTips_UnavailableWithoutProvider(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/api/tips", "application/json",
		strings.NewReader(`{"condition":"asthma"}`))
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleTips_ProviderError(t *testing.T) {
	srv := newTestServer(t, &stubTips{err: errors.New("model down")})

	resp, err := http.Post(srv.URL+"/api/tips", "application/json",
		strings.NewReader(`{"condition":"asthma"}`))
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHandleHealthz(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/healthz")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Status string `json:"status"`
	}
	assert.NoError(t, decodeJSON(resp, &out))
	assert.Equal(t, "healthy", out.Status)
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("down") }

func TestHandleHealthz_ReportsDegradedDependencies(t *testing.T) {
	log := logger.NewNoOpLogger()
	srv := httptest.NewServer(NewServer(nil, nil, log,
		HealthCheck{Name: "postgres", Pinger: failingPinger{}},
	).Routes())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/healthz")
	assert.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	assert.NoError(t, decodeJSON(resp, &out))
	assert.Equal(t, "degraded", out.Status)
	assert.Equal(t, "down", out.Dependencies["postgres"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/metrics")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func decodeJSON(resp *http.Response, v interface{}) error {
	defer resp.Body.Close()
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(v)
}
