package risk

import (
	"testing"

	"github.com/radcomm/riskcalc/internal/core/domain"
)

var allHarms = []domain.HarmProbability{
	domain.HarmImprobable, domain.HarmRemote, domain.HarmOccasional,
	domain.HarmProbable, domain.HarmFrequent,
}

func TestResolveRiskLevel_NonApplicableSeverities(t *testing.T) {
	for _, sev := range []domain.Severity{domain.SeverityNAHC, domain.SeverityNoSafetyImpact} {
		for _, harm := range append(allHarms, domain.HarmUnknown) {
			if got := ResolveRiskLevel(sev, harm); got != domain.RiskNotApplicable {
				t.Errorf("ResolveRiskLevel(%q, %v) = %v, want N/A", sev, harm, got)
			}
		}
	}
}

func TestResolveRiskLevel_UnknownHarm(t *testing.T) {
	for _, sev := range []domain.Severity{
		domain.SeverityNegligible, domain.SeverityMinor, domain.SeverityModerate,
		domain.SeverityCritical, domain.SeverityCatastrophic,
	} {
		if got := ResolveRiskLevel(sev, domain.HarmUnknown); got != domain.RiskNotApplicable {
			t.Errorf("ResolveRiskLevel(%q, Unknown) = %v, want N/A", sev, got)
		}
	}
}

func TestResolveRiskLevel_Matrix(t *testing.T) {
	tests := []struct {
		severity domain.Severity
		harm     domain.HarmProbability
		expect   domain.RiskLevel
	}{
		{domain.SeverityNegligible, domain.HarmFrequent, domain.RiskMedium},
		{domain.SeverityNegligible, domain.HarmProbable, domain.RiskLow},
		{domain.SeverityNegligible, domain.HarmImprobable, domain.RiskLow},

		{domain.SeverityMinor, domain.HarmFrequent, domain.RiskHigh},
		{domain.SeverityMinor, domain.HarmProbable, domain.RiskMedium},
		{domain.SeverityMinor, domain.HarmOccasional, domain.RiskMedium},
		{domain.SeverityMinor, domain.HarmRemote, domain.RiskLow},

		{domain.SeverityModerate, domain.HarmOccasional, domain.RiskMedium},
		{domain.SeverityModerate, domain.HarmRemote, domain.RiskMedium},
		{domain.SeverityModerate, domain.HarmImprobable, domain.RiskLow},
		{domain.SeverityModerate, domain.HarmFrequent, domain.RiskHigh},
		{domain.SeverityModerate, domain.HarmProbable, domain.RiskHigh},

		{domain.SeverityCritical, domain.HarmRemote, domain.RiskMedium},
		{domain.SeverityCritical, domain.HarmImprobable, domain.RiskLow},
		{domain.SeverityCritical, domain.HarmOccasional, domain.RiskHigh},

		{domain.SeverityCatastrophic, domain.HarmImprobable, domain.RiskMedium},
	}

	for _, tt := range tests {
		if got := ResolveRiskLevel(tt.severity, tt.harm); got != tt.expect {
			t.Errorf("ResolveRiskLevel(%q, %v) = %v, want %v", tt.severity, tt.harm, got, tt.expect)
		}
	}
}

func TestResolveRiskLevel_CatastrophicNotImprobable(t *testing.T) {
	for _, harm := range []domain.HarmProbability{
		domain.HarmRemote, domain.HarmOccasional, domain.HarmProbable, domain.HarmFrequent,
	} {
		if got := ResolveRiskLevel(domain.SeverityCatastrophic, harm); got != domain.RiskHigh {
			t.Errorf("ResolveRiskLevel(Catastrophic, %v) = %v, want High", harm, got)
		}
	}
}

func TestResolveRiskLevel_UnmatchedSeverityIsConservative(t *testing.T) {
	if got := ResolveRiskLevel(domain.Severity("Unknown"), domain.HarmRemote); got != domain.RiskHigh {
		t.Errorf("ResolveRiskLevel(Unknown, Remote) = %v, want High", got)
	}
}
