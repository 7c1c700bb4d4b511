package risk

import "github.com/radcomm/riskcalc/internal/core/domain"

// ResolveRiskLevel combines severity and probability of occurrence of harm
// into the final risk level.
//
// Non-applicable severities (NAHC, No Safety Impact) resolve to N/A, as does
// an unknown harm probability: a classification cannot proceed without a
// resolved probability of harm. Any severity/harm combination not explicitly
// listed resolves to High, never silently under-classifying on unexpected
// input.
func ResolveRiskLevel(severity domain.Severity, harm domain.HarmProbability) domain.RiskLevel {
	if !severity.SafetyRelevant() {
		return domain.RiskNotApplicable
	}
	if harm == domain.HarmUnknown {
		return domain.RiskNotApplicable
	}

	switch severity {
	case domain.SeverityNegligible:
		if harm == domain.HarmFrequent {
			return domain.RiskMedium
		}
		return domain.RiskLow

	case domain.SeverityMinor:
		switch harm {
		case domain.HarmFrequent:
			return domain.RiskHigh
		case domain.HarmProbable, domain.HarmOccasional:
			return domain.RiskMedium
		default:
			return domain.RiskLow
		}

	case domain.SeverityModerate:
		switch harm {
		case domain.HarmOccasional, domain.HarmRemote:
			return domain.RiskMedium
		case domain.HarmImprobable:
			return domain.RiskLow
		default:
			return domain.RiskHigh
		}

	case domain.SeverityCritical:
		switch harm {
		case domain.HarmRemote:
			return domain.RiskMedium
		case domain.HarmImprobable:
			return domain.RiskLow
		default:
			return domain.RiskHigh
		}

	case domain.SeverityCatastrophic:
		if harm == domain.HarmImprobable {
			return domain.RiskMedium
		}
		return domain.RiskHigh
	}

	// Unrecognized severity text with a resolved harm probability.
	return domain.RiskHigh
}
