// Package domain defines the core types shared across the risk-calculation
// pipeline: ordinal classification scales, product families, and the
// assessment records produced per report run.
package domain

// FrequencyClass is the ordinal P1 frequency category derived from an
// observed complaint rate. FreqUnknown marks rows whose rate could not be
// computed (zero procedures).
type FrequencyClass int

const (
	FreqUnknown FrequencyClass = iota
	FreqImprobable
	FreqRemote
	FreqOccasional
	FreqProbable
	FreqFrequent
)

func (f FrequencyClass) String() string {
	switch f {
	case FreqImprobable:
		return "Improbable"
	case FreqRemote:
		return "Remote"
	case FreqOccasional:
		return "Occasional"
	case FreqProbable:
		return "Probable"
	case FreqFrequent:
		return "Frequent"
	default:
		return "Unknown"
	}
}

// HarmProbability is the combined P1 x P2 "probability of occurrence of
// harm". It reuses the frequency ordinal scale plus HarmUnknown for rows
// where either input could not be resolved.
type HarmProbability int

const (
	HarmUnknown HarmProbability = iota
	HarmImprobable
	HarmRemote
	HarmOccasional
	HarmProbable
	HarmFrequent
)

func (h HarmProbability) String() string {
	switch h {
	case HarmImprobable:
		return "Improbable"
	case HarmRemote:
		return "Remote"
	case HarmOccasional:
		return "Occasional"
	case HarmProbable:
		return "Probable"
	case HarmFrequent:
		return "Frequent"
	default:
		return "Unknown"
	}
}

// Likelihood is the qualitative P2 estimate as stored in the hazard lookup
// table. It is a closed vocabulary; values outside it are rejected by the
// harm combiner rather than guessed at.
type Likelihood string

const (
	LikelihoodCertain      Likelihood = "Certain"
	LikelihoodLikely       Likelihood = "Likely"
	LikelihoodPossible     Likelihood = "Possible"
	LikelihoodUnlikely     Likelihood = "Unlikely"
	LikelihoodWillNotOccur Likelihood = "Will Not Occur"
	LikelihoodUnknown      Likelihood = ""
)

// Valid reports whether the likelihood is part of the closed P2 vocabulary.
func (l Likelihood) Valid() bool {
	switch l {
	case LikelihoodCertain, LikelihoodLikely, LikelihoodPossible,
		LikelihoodUnlikely, LikelihoodWillNotOccur:
		return true
	}
	return false
}

// Severity is the harm severity category attached to a complaint grouping.
// Values come from the complaint records verbatim; the two non-applicable
// markers short-circuit risk resolution.
type Severity string

const (
	SeverityNegligible     Severity = "Negligible"
	SeverityMinor          Severity = "Minor"
	SeverityModerate       Severity = "Moderate"
	SeverityCritical       Severity = "Critical"
	SeverityCatastrophic   Severity = "Catastrophic"
	SeverityNAHC           Severity = "NAHC"
	SeverityNoSafetyImpact Severity = "No Safety Impact"
)

// SafetyRelevant reports whether the severity participates in risk
// resolution at all. NAHC and No Safety Impact rows resolve to N/A.
func (s Severity) SafetyRelevant() bool {
	return s != SeverityNAHC && s != SeverityNoSafetyImpact
}

// RiskLevel is the final ordinal output of the pipeline.
type RiskLevel string

const (
	RiskLow           RiskLevel = "Low"
	RiskMedium        RiskLevel = "Medium"
	RiskHigh          RiskLevel = "High"
	RiskNotApplicable RiskLevel = "N/A"
	RiskError         RiskLevel = "Error"
)

// FaultClass categorizes a data-access failure for retry purposes. Every
// observed failure maps to exactly one class.
type FaultClass int

const (
	FaultTransient FaultClass = iota
	FaultFatal
)

func (f FaultClass) String() string {
	if f == FaultTransient {
		return "transient"
	}
	return "fatal"
}
