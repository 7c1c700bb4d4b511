// Package report assembles risk reports: it fetches reference and
// complaint data through the resilient data layer, runs the classification
// pipeline, and tallies the results.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/radcomm/riskcalc/internal/core/domain"
	redisclient "github.com/radcomm/riskcalc/internal/infra/redis"
	"github.com/radcomm/riskcalc/internal/metrics"
	"github.com/radcomm/riskcalc/internal/risk"
)

// ReferenceStore reads the static reference tables.
type ReferenceStore interface {
	ListProductLines(ctx context.Context) ([]string, error)
	HHIReference(ctx context.Context, productLine string) (string, error)
	LoadP2Table(ctx context.Context) ([]risk.P2Entry, error)
}

// ComplaintStore reads complaint groupings and procedure totals.
type ComplaintStore interface {
	TotalProcedures(ctx context.Context, productLine string) (int64, error)
	FetchClassificationRows(ctx context.Context, productLine string, from, to time.Time) ([]domain.ClassificationRow, error)
	Availability(ctx context.Context, productLine string) (domain.Availability, error)
}

// Service generates risk reports. The cache is optional; a nil cache reads
// everything through the stores.
type Service struct {
	refs       ReferenceStore
	complaints ComplaintStore
	freq       *risk.FrequencyTable
	cache      *redisclient.Cache
	log        *slog.Logger
}

// NewService creates a report service.
func NewService(refs ReferenceStore, complaints ComplaintStore, freq *risk.FrequencyTable, cache *redisclient.Cache, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{refs: refs, complaints: complaints, freq: freq, cache: cache, log: log}
}

// Generate runs one report for the product line over [from, to]. The whole
// batch fails only when a data fetch exhausts its retry budget; per-row
// classification always completes, degrading unresolved rows to
// Unknown/N/A.
func (s *Service) Generate(ctx context.Context, productLine string, from, to time.Time) (*domain.RiskReport, error) {
	if productLine == "" {
		return nil, fmt.Errorf("product line is required")
	}
	if to.Before(from) {
		return nil, fmt.Errorf("invalid period: end %s before start %s",
			to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	start := time.Now()

	hhiRef, err := s.hhiReference(ctx, productLine)
	if err != nil {
		metrics.ReportsGeneratedTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	total, err := s.totalProcedures(ctx, productLine)
	if err != nil {
		metrics.ReportsGeneratedTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	p2, err := s.p2Table(ctx)
	if err != nil {
		metrics.ReportsGeneratedTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	rows, err := s.complaints.FetchClassificationRows(ctx, productLine, from, to)
	if err != nil {
		metrics.ReportsGeneratedTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	pipeline := risk.NewPipeline(s.freq, p2, s.log)
	assessments := pipeline.Run(rows, total, productLine, hhiRef)

	summary := make(map[domain.RiskLevel]int)
	for _, a := range assessments {
		summary[a.Risk]++
		metrics.RowsClassifiedTotal.WithLabelValues(string(a.Risk)).Inc()
	}

	metrics.ReportDuration.Observe(time.Since(start).Seconds())
	metrics.ReportsGeneratedTotal.WithLabelValues("success").Inc()

	s.log.Info("risk report generated",
		"product_line", productLine,
		"rows", len(assessments),
		"total_procedures", total,
		"duration", time.Since(start))

	return &domain.RiskReport{
		RunID:           uuid.New().String(),
		ProductLine:     productLine,
		HHIReference:    hhiRef,
		TotalProcedures: total,
		PeriodStart:     from,
		PeriodEnd:       to,
		GeneratedAt:     time.Now().UTC(),
		Assessments:     assessments,
		Summary:         summary,
	}, nil
}

// ProductLines lists the product lines available for reporting.
func (s *Service) ProductLines(ctx context.Context) ([]string, error) {
	return s.refs.ListProductLines(ctx)
}

// CheckAvailability reports complaint data coverage for a product line.
func (s *Service) CheckAvailability(ctx context.Context, productLine string) (domain.Availability, error) {
	return s.complaints.Availability(ctx, productLine)
}

func (s *Service) hhiReference(ctx context.Context, productLine string) (string, error) {
	key := redisclient.KeyHHIReference(productLine)
	var cached string
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}
	ref, err := s.refs.HHIReference(ctx, productLine)
	if err != nil {
		return "", err
	}
	s.cacheSet(ctx, key, ref)
	return ref, nil
}

func (s *Service) totalProcedures(ctx context.Context, productLine string) (int64, error) {
	key := redisclient.KeyProcedures(productLine)
	var cached int64
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}
	total, err := s.complaints.TotalProcedures(ctx, productLine)
	if err != nil {
		return 0, err
	}
	s.cacheSet(ctx, key, total)
	return total, nil
}

func (s *Service) p2Table(ctx context.Context) (*risk.P2Table, error) {
	var entries []risk.P2Entry
	if s.cacheGet(ctx, redisclient.KeyP2Table(), &entries) {
		return risk.NewP2Table(entries), nil
	}
	entries, err := s.refs.LoadP2Table(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, redisclient.KeyP2Table(), entries)
	return risk.NewP2Table(entries), nil
}

// cacheGet reads through the optional cache. Cache errors degrade to a
// miss; the backing store stays authoritative.
func (s *Service) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.GetJSON(ctx, key, dest)
	if err != nil {
		s.log.Warn("cache read failed", "key", key, "error", err)
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		return false
	}
	if ok {
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	}
	return ok
}

func (s *Service) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, v); err != nil {
		s.log.Warn("cache write failed", "key", key, "error", err)
	}
}
