// Package risk implements the deterministic risk-classification pipeline:
// P1 frequency classification, P2 hazard lookup, harm-probability
// combination, and final risk-level resolution. Everything in this package
// is pure and non-blocking; all data access happens upstream.
package risk

import (
	"fmt"
	"math"

	"github.com/radcomm/riskcalc/internal/core/domain"
)

// FrequencyTable resolves product lines to families and classifies
// complaint rates against the family's threshold table. Built once at
// startup and read-only afterwards.
type FrequencyTable struct {
	families []domain.ProductFamily
	fallback domain.ProductFamily
}

// NewFrequencyTable validates the family tables and builds a classifier.
// Thresholds must be strictly decreasing within each family.
func NewFrequencyTable(families []domain.ProductFamily, fallback domain.ProductFamily) (*FrequencyTable, error) {
	for _, f := range append(append([]domain.ProductFamily{}, families...), fallback) {
		if len(f.Thresholds) == 0 {
			return nil, fmt.Errorf("family %s has no thresholds", f.Name)
		}
		for i := 1; i < len(f.Thresholds); i++ {
			if f.Thresholds[i].Cutoff >= f.Thresholds[i-1].Cutoff {
				return nil, fmt.Errorf("family %s thresholds not strictly decreasing at index %d", f.Name, i)
			}
		}
	}
	return &FrequencyTable{families: families, fallback: fallback}, nil
}

// DefaultFrequencyTable builds the classifier from the built-in tables.
func DefaultFrequencyTable() *FrequencyTable {
	t, err := NewFrequencyTable(domain.DefaultFamilies, domain.FallbackFamily)
	if err != nil {
		// Built-in tables are validated by tests; this cannot happen at runtime.
		panic(err)
	}
	return t
}

// Resolve maps a product line to its family, falling back to the default
// family when no roster matches.
func (t *FrequencyTable) Resolve(productLine string) domain.ProductFamily {
	for _, f := range t.families {
		if f.Contains(productLine) {
			return f
		}
	}
	return t.fallback
}

// Classify maps an observed complaint rate to a frequency class. Thresholds
// are walked highest first; the first cutoff the rate strictly exceeds
// determines the class, and a rate exceeding none is Improbable. Rates that
// are not finite non-negative numbers classify as Unknown; callers are
// expected to flag zero-denominator rows before reaching this point.
func (t *FrequencyTable) Classify(rate float64, productLine string) domain.FrequencyClass {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return domain.FreqUnknown
	}
	family := t.Resolve(productLine)
	for _, th := range family.Thresholds {
		if rate > th.Cutoff {
			return th.Class
		}
	}
	return domain.FreqImprobable
}
