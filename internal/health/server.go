package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/radcomm/riskcalc/internal/core/domain"
	"github.com/radcomm/riskcalc/internal/infra/storage/sqldb"
)

// ReportGenerator produces risk reports for the JSON endpoint.
type ReportGenerator interface {
	Generate(ctx context.Context, productLine string, from, to time.Time) (*domain.RiskReport, error)
}

// Server provides the HTTP endpoints: health, metrics, and report runs.
type Server struct {
	monitor *Monitor
	reports ReportGenerator
	server  *http.Server
}

// NewServer creates a new HTTP server. reports may be nil to expose the
// health surface only.
func NewServer(monitor *Monitor, reports ReportGenerator, port int) *Server {
	mux := http.NewServeMux()
	s := &Server{
		monitor: monitor,
		reports: reports,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		},
	}

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/health/detailed", s.handleDetailed)
	mux.Handle("/metrics", promhttp.Handler())
	if reports != nil {
		mux.HandleFunc("/api/report", s.handleReport)
	}

	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.monitor.Check(r.Context())

	response := map[string]string{"status": string(report.SystemStatus)}
	w.Header().Set("Content-Type", "application/json")

	if report.SystemStatus == StatusCritical {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	_ = json.NewEncoder(w).Encode(response)
}

func (s *Server) handleDetailed(w http.ResponseWriter, r *http.Request) {
	report := s.monitor.Check(r.Context())
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(report)
}

// handleReport runs a report for ?product_line=&from=&to= (dates as
// YYYY-MM-DD) and returns the assessment JSON.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	productLine := r.URL.Query().Get("product_line")
	from, errFrom := time.Parse("2006-01-02", r.URL.Query().Get("from"))
	to, errTo := time.Parse("2006-01-02", r.URL.Query().Get("to"))

	if productLine == "" || errFrom != nil || errTo != nil {
		http.Error(w, "product_line, from, and to (YYYY-MM-DD) are required", http.StatusBadRequest)
		return
	}

	report, err := s.reports.Generate(r.Context(), productLine, from, to)
	if err != nil {
		var exhausted *sqldb.ExhaustedError
		if errors.As(err, &exhausted) {
			http.Error(w, exhausted.Error(), http.StatusServiceUnavailable)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(report)
}
