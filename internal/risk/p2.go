package risk

import "github.com/radcomm/riskcalc/internal/core/domain"

// HazardKey identifies one row of the P2 lookup table. Using a struct key
// gives explicit field equality instead of concatenated-string keys, which
// can collide when hazard and severity text share boundaries.
type HazardKey struct {
	Reference string
	Hazard    string
	Severity  string
}

// P2Entry is the serializable form of one lookup row, used for loading the
// table from storage and for cache round-trips.
type P2Entry struct {
	Reference string            `db:"hhi_reference" json:"reference"`
	Hazard    string            `db:"hazard"        json:"hazard"`
	Severity  string            `db:"severity"      json:"severity"`
	Estimate  domain.Likelihood `db:"p2_estimate"   json:"estimate"`
}

// P2Table resolves hazard/severity/product-reference keys to qualitative
// likelihood-of-harm estimates. Loaded once per report run and read-only.
type P2Table struct {
	entries map[HazardKey]domain.Likelihood
}

// NewP2Table builds a lookup table from loaded entries. Later duplicates
// win, matching the load order of the backing table.
func NewP2Table(entries []P2Entry) *P2Table {
	m := make(map[HazardKey]domain.Likelihood, len(entries))
	for _, e := range entries {
		m[HazardKey{Reference: e.Reference, Hazard: e.Hazard, Severity: e.Severity}] = e.Estimate
	}
	return &P2Table{entries: m}
}

// Len returns the number of distinct keys in the table.
func (t *P2Table) Len() int {
	return len(t.entries)
}

// Lookup resolves a key to a likelihood. When the exact key is absent it
// retries with the hazard field blanked, supporting rows whose hazard is
// unknown. A miss under both keys returns LikelihoodUnknown, false; the
// pipeline treats that as a first-class value, never an error.
func (t *P2Table) Lookup(key HazardKey) (domain.Likelihood, bool) {
	if v, ok := t.entries[key]; ok {
		return v, true
	}
	key.Hazard = ""
	if v, ok := t.entries[key]; ok {
		return v, true
	}
	return domain.LikelihoodUnknown, false
}
