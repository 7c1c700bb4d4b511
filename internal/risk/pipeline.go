package risk

import (
	"log/slog"

	"github.com/radcomm/riskcalc/internal/core/domain"
)

// Pipeline sequences the classification stages over a batch of complaint
// groupings. It is pure over its inputs: the same rows, procedure count, and
// lookup tables always produce the same assessments, in input order.
type Pipeline struct {
	freq *FrequencyTable
	p2   *P2Table
	log  *slog.Logger
}

// NewPipeline builds a pipeline over pre-loaded lookup tables.
func NewPipeline(freq *FrequencyTable, p2 *P2Table, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{freq: freq, p2: p2, log: log}
}

// Run classifies every row. Per-row stages never fail: an unresolved stage
// degrades that row to Unknown/N/A and the batch always completes. A zero
// totalProcedures makes every rate unknown, which cascades to an N/A risk
// level for the whole batch.
func (p *Pipeline) Run(rows []domain.ClassificationRow, totalProcedures int64, productLine, hhiRef string) []domain.RiskAssessment {
	out := make([]domain.RiskAssessment, 0, len(rows))

	for _, row := range rows {
		hazard := row.Hazard
		if hazard == "" {
			hazard = "Unknown"
		}
		severity := row.Severity
		if severity == "" {
			severity = "Unknown"
		}

		a := domain.RiskAssessment{
			ObjectCode:      row.ObjectCode,
			ErrorCode:       row.ErrorCode,
			ErrorSubcode:    row.ErrorSubcode,
			Hazard:          hazard,
			Severity:        domain.Severity(severity),
			TotalComplaints: row.TotalComplaints,
			ProductLine:     productLine,
		}

		// P1: rate is undefined when the denominator is zero. Flag the row
		// instead of dividing.
		if totalProcedures > 0 {
			a.Rate = float64(row.TotalComplaints) / float64(totalProcedures)
			a.RateKnown = true
			a.P1 = p.freq.Classify(a.Rate, productLine)
		} else {
			a.P1 = domain.FreqUnknown
		}

		// P2: a miss under both lookup keys is a first-class Unknown.
		p2v, ok := p.p2.Lookup(HazardKey{Reference: hhiRef, Hazard: hazard, Severity: severity})
		if !ok {
			p.log.Debug("no P2 estimate for key",
				"reference", hhiRef, "hazard", hazard, "severity", severity)
		}
		a.P2 = p2v

		a.Harm = CombineHarm(a.P1, a.P2)
		a.Risk = ResolveRiskLevel(a.Severity, a.Harm)

		a.P1Label = a.P1.String()
		a.HarmLabel = a.Harm.String()
		out = append(out, a)
	}

	return out
}
