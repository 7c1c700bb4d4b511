package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/radcomm/riskcalc/internal/core/domain"
)

// ComplaintRepo reads complaint groupings and sales-derived procedure
// counts for the risk pipeline.
type ComplaintRepo struct {
	exec *Executor
}

// NewComplaintRepo creates a complaint repository.
func NewComplaintRepo(exec *Executor) *ComplaintRepo {
	return &ComplaintRepo{exec: exec}
}

// TotalProcedures sums single-use sales quantities for the product line
// across all time, the denominator for every complaint rate.
func (r *ComplaintRepo) TotalProcedures(ctx context.Context, productLine string) (int64, error) {
	var total int64
	err := r.exec.Get(ctx, &total, QueryRequest{
		SQL: `SELECT COALESCE(SUM(s.quantity), 0)
		      FROM sales s
		      JOIN material_reference m ON s.material = m.mat_no
		      WHERE m.brand = $1 AND m.single_use = 'Y'`,
		Args: []any{productLine},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to sum procedures: %w", err)
	}
	return total, nil
}

// FetchClassificationRows returns complaint groupings for the product line
// within the date range, ordered by complaint count descending. Row order
// is preserved through the pipeline.
func (r *ComplaintRepo) FetchClassificationRows(ctx context.Context, productLine string, from, to time.Time) ([]domain.ClassificationRow, error) {
	var rows []domain.ClassificationRow
	err := r.exec.Select(ctx, &rows, QueryRequest{
		SQL: `SELECT object_code, error_code, error_subcode,
		             COALESCE(hazard, '') AS hazard,
		             COALESCE(severity, '') AS severity,
		             COUNT(*) AS total_complaints
		      FROM complaints_risk_calc
		      WHERE brand = $1
		        AND complaint_entry_date >= $2
		        AND complaint_entry_date <= $3
		      GROUP BY object_code, error_code, error_subcode, hazard, severity
		      ORDER BY total_complaints DESC`,
		Args: []any{productLine, from, to},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch classification rows: %w", err)
	}
	return rows, nil
}

// Availability reports the complaint date range and record count for a
// product line, used to surface data gaps before a report run.
func (r *ComplaintRepo) Availability(ctx context.Context, productLine string) (domain.Availability, error) {
	out := domain.Availability{ProductLine: productLine}
	err := r.exec.Get(ctx, &out, QueryRequest{
		SQL: `SELECT MIN(complaint_entry_date) AS min_date,
		             MAX(complaint_entry_date) AS max_date,
		             COUNT(*) AS record_count
		      FROM complaints_risk_calc
		      WHERE brand = $1`,
		Args: []any{productLine},
	})
	if err != nil {
		return domain.Availability{}, fmt.Errorf("failed to check availability: %w", err)
	}
	return out, nil
}
