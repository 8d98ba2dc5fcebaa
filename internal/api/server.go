// Package api exposes the query pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	commonerrors "healthcost-assistant/internal/common/errors"
	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/common/validation"
	"healthcost-assistant/internal/supervisor"
)

// TipsProvider serves the daily health tips endpoint. Nil disables it.
type TipsProvider interface {
	HealthTips(ctx context.Context, condition string) (string, error)
}

// Pinger is a named backing dependency checked by /healthz.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthCheck struct {
	Name   string
	Pinger Pinger
}

type Server struct {
	supervisor *supervisor.Supervisor
	tips       TipsProvider
	checks     []HealthCheck
	logger     logger.Logger
}

func NewServer(sup *supervisor.Supervisor, tips TipsProvider, log logger.Logger, checks ...HealthCheck) *Server {
	return &Server{
		supervisor: sup,
		tips:       tips,
		checks:     checks,
		logger:     log.With(map[string]interface{}{"component": "api"}),
	}
}

// Routes builds the HTTP mux for the service.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/query", s.handleQuery)
	mux.HandleFunc("/api/tips", s.handleTips)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

type queryRequest struct {
	Question string `json:"question"`
}

type queryResponse struct {
	RequestID string   `json:"requestId"`
	Answer    string   `json:"answer"`
	Intents   []string `json:"intents,omitempty"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 64<<10))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	result, err := validation.ValidateJSON(body, validation.QueryRequestSchema)
	if err != nil || !result.Valid {
		details := "invalid JSON"
		if err == nil {
			details = strings.Join(result.GetErrorMessages(), "; ")
		}
		stdErr := commonerrors.NewInvalidRequestFormatError(details)
		s.logger.Warn("request rejected", map[string]interface{}{
			"code":    string(stdErr.Code),
			"details": details,
		})
		writeError(w, http.StatusBadRequest, stdErr.Message)
		return
	}

	var req queryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	res := s.supervisor.ProcessDetailed(r.Context(), req.Question)
	writeJSON(w, http.StatusOK, queryResponse{
		RequestID: res.RequestID,
		Answer:    res.Answer,
		Intents:   res.Intents.Fired(),
	})
}

type tipsRequest struct {
	Condition string `json:"condition"`
}

func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.tips == nil {
		writeError(w, http.StatusServiceUnavailable, "tips are not available")
		return
	}

	var req tipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Condition) == "" {
		writeError(w, http.StatusBadRequest, "condition is required")
		return
	}

	tips, err := s.tips.HealthTips(r.Context(), req.Condition)
	if err != nil {
		s.logger.Error("tips generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		writeError(w, http.StatusBadGateway, "could not generate tips")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"tips": tips})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	deps := map[string]string{}
	for _, c := range s.checks {
		if err := c.Pinger.Ping(ctx); err != nil {
			status = "degraded"
			deps[c.Name] = err.Error()
			continue
		}
		deps[c.Name] = "ok"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       status,
		"dependencies": deps,
		"time":         time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
