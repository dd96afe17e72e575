// Package api serves the computed views, charts and metrics over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/podium/internal/domain/types"
)

// ViewSource provides the latest computed views.
type ViewSource interface {
	Views(ctx context.Context) (*types.Views, error)
}

// Server wires HTTP routes for the read API.
type Server struct {
	healthHandler *HealthHandler
	viewsHandler  *ViewsHandler
	indexHandler  *indexHandler
	charts        http.Handler
}

// NewServer creates a new API server reading views from src and serving
// chart files from chartDir.
func NewServer(src ViewSource, chartDir string) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		viewsHandler:  NewViewsHandler(src),
		indexHandler:  newIndexHandler(src, chartDir),
		charts:        http.StripPrefix("/charts/", http.FileServer(http.Dir(chartDir))),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", MetricsMiddleware(s.healthHandler.HandleHealth, "metrics"))
	mux.HandleFunc("GET /api/views", MetricsMiddleware(s.viewsHandler.HandleList, "views"))
	mux.HandleFunc("GET /api/views/{name}", MetricsMiddleware(s.viewsHandler.HandleGet, "view"))
	mux.Handle("GET /charts/", MetricsMiddleware(s.charts.ServeHTTP, "charts"))
	mux.HandleFunc("GET /{$}", MetricsMiddleware(s.indexHandler.HandleIndex, "index"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
