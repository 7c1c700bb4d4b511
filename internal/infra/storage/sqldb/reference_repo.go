package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/radcomm/riskcalc/internal/risk"
)

// ReferenceRepo reads the static reference tables: product-line rosters,
// HHI references, and the hazard/severity P2 lookup. All reads go through
// the resilient executor.
type ReferenceRepo struct {
	exec *Executor
}

// NewReferenceRepo creates a reference repository.
func NewReferenceRepo(exec *Executor) *ReferenceRepo {
	return &ReferenceRepo{exec: exec}
}

// ListProductLines returns the distinct product lines known to the
// material reference table.
func (r *ReferenceRepo) ListProductLines(ctx context.Context) ([]string, error) {
	var lines []string
	err := r.exec.Select(ctx, &lines, QueryRequest{
		SQL: `SELECT DISTINCT brand FROM material_reference
		      WHERE brand IS NOT NULL
		      ORDER BY brand`,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list product lines: %w", err)
	}
	return lines, nil
}

// HHIReference resolves the product line's hazard lookup reference code.
// A product line absent from the lookup table returns "" without error;
// P2 resolution then degrades to Unknown per row.
func (r *ReferenceRepo) HHIReference(ctx context.Context, productLine string) (string, error) {
	var ref string
	err := r.exec.Get(ctx, &ref, QueryRequest{
		SQL:  `SELECT hhi FROM hhi_lookup WHERE hhi_reference = $1`,
		Args: []any{productLine},
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve HHI reference: %w", err)
	}
	return ref, nil
}

// LoadP2Table loads the full hazard/severity lookup table.
func (r *ReferenceRepo) LoadP2Table(ctx context.Context) ([]risk.P2Entry, error) {
	var entries []risk.P2Entry
	err := r.exec.Select(ctx, &entries, QueryRequest{
		SQL: `SELECT hhi_reference, hazard, severity, p2_estimate
		      FROM hhi_p2_lookup`,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load P2 lookup table: %w", err)
	}
	return entries, nil
}
