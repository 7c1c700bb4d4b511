package domain

import "time"

// ClassificationRow is one hazard/error/object complaint grouping as
// returned by the data layer. Immutable input to the risk pipeline.
type ClassificationRow struct {
	ObjectCode      string `db:"object_code"      json:"object_code"`
	ErrorCode       string `db:"error_code"       json:"error_code"`
	ErrorSubcode    string `db:"error_subcode"    json:"error_subcode"`
	Hazard          string `db:"hazard"           json:"hazard"`
	Severity        string `db:"severity"         json:"severity"`
	TotalComplaints int64  `db:"total_complaints" json:"total_complaints"`
}

// RiskAssessment is the fully classified result for one ClassificationRow.
type RiskAssessment struct {
	ObjectCode      string          `json:"object_code"`
	ErrorCode       string          `json:"error_code"`
	ErrorSubcode    string          `json:"error_subcode"`
	Hazard          string          `json:"hazard"`
	Severity        Severity        `json:"severity"`
	TotalComplaints int64           `json:"total_complaints"`
	Rate            float64         `json:"rate"`
	RateKnown       bool            `json:"rate_known"`
	P1              FrequencyClass  `json:"-"`
	P2              Likelihood      `json:"p2"`
	Harm            HarmProbability `json:"-"`
	Risk            RiskLevel       `json:"risk_level"`
	ProductLine     string          `json:"product_line"`

	// String forms for rendering and JSON clients.
	P1Label   string `json:"p1"`
	HarmLabel string `json:"harm_probability"`
}

// RiskReport is the assembled output of one report run.
type RiskReport struct {
	RunID           string            `json:"run_id"`
	ProductLine     string            `json:"product_line"`
	HHIReference    string            `json:"hhi_reference"`
	TotalProcedures int64             `json:"total_procedures"`
	PeriodStart     time.Time         `json:"period_start"`
	PeriodEnd       time.Time         `json:"period_end"`
	GeneratedAt     time.Time         `json:"generated_at"`
	Assessments     []RiskAssessment  `json:"assessments"`
	Summary         map[RiskLevel]int `json:"summary"`
}

// Availability describes the complaint data present for a product line,
// used to flag data gaps before generating a report.
type Availability struct {
	ProductLine string     `json:"product_line"`
	MinDate     *time.Time `db:"min_date"     json:"min_date"`
	MaxDate     *time.Time `db:"max_date"     json:"max_date"`
	RecordCount int64      `db:"record_count" json:"record_count"`
}
