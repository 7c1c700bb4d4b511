package risk

import (
	"testing"

	"github.com/radcomm/riskcalc/internal/core/domain"
)

var allLikelihoods = []domain.Likelihood{
	domain.LikelihoodCertain,
	domain.LikelihoodLikely,
	domain.LikelihoodPossible,
	domain.LikelihoodUnlikely,
	domain.LikelihoodWillNotOccur,
}

func TestCombineHarm_ImprobableDominates(t *testing.T) {
	for _, p2 := range allLikelihoods {
		if got := CombineHarm(domain.FreqImprobable, p2); got != domain.HarmImprobable {
			t.Errorf("CombineHarm(Improbable, %q) = %v, want Improbable", p2, got)
		}
	}
}

func TestCombineHarm_UnknownPropagates(t *testing.T) {
	p1s := []domain.FrequencyClass{
		domain.FreqUnknown, domain.FreqImprobable, domain.FreqRemote,
		domain.FreqOccasional, domain.FreqProbable, domain.FreqFrequent,
	}
	for _, p1 := range p1s {
		if got := CombineHarm(p1, domain.LikelihoodUnknown); got != domain.HarmUnknown {
			t.Errorf("CombineHarm(%v, Unknown) = %v, want Unknown", p1, got)
		}
		if got := CombineHarm(p1, domain.Likelihood("Maybe")); got != domain.HarmUnknown {
			t.Errorf("CombineHarm(%v, out-of-vocabulary) = %v, want Unknown", p1, got)
		}
	}
	// Unknown P1 with a valid P2 is also unresolved.
	if got := CombineHarm(domain.FreqUnknown, domain.LikelihoodCertain); got != domain.HarmUnknown {
		t.Errorf("CombineHarm(Unknown, Certain) = %v, want Unknown", got)
	}
}

func TestCombineHarm_Matrix(t *testing.T) {
	tests := []struct {
		p1     domain.FrequencyClass
		p2     domain.Likelihood
		expect domain.HarmProbability
	}{
		{domain.FreqRemote, domain.LikelihoodCertain, domain.HarmRemote},
		{domain.FreqRemote, domain.LikelihoodLikely, domain.HarmRemote},
		{domain.FreqRemote, domain.LikelihoodPossible, domain.HarmImprobable},
		{domain.FreqRemote, domain.LikelihoodWillNotOccur, domain.HarmImprobable},

		{domain.FreqOccasional, domain.LikelihoodCertain, domain.HarmOccasional},
		{domain.FreqOccasional, domain.LikelihoodLikely, domain.HarmRemote},
		{domain.FreqOccasional, domain.LikelihoodPossible, domain.HarmRemote},
		{domain.FreqOccasional, domain.LikelihoodUnlikely, domain.HarmImprobable},

		{domain.FreqProbable, domain.LikelihoodCertain, domain.HarmProbable},
		{domain.FreqProbable, domain.LikelihoodLikely, domain.HarmOccasional},
		{domain.FreqProbable, domain.LikelihoodPossible, domain.HarmOccasional},
		{domain.FreqProbable, domain.LikelihoodUnlikely, domain.HarmRemote},
		{domain.FreqProbable, domain.LikelihoodWillNotOccur, domain.HarmImprobable},

		{domain.FreqFrequent, domain.LikelihoodCertain, domain.HarmFrequent},
		{domain.FreqFrequent, domain.LikelihoodLikely, domain.HarmProbable},
		{domain.FreqFrequent, domain.LikelihoodPossible, domain.HarmOccasional},
		{domain.FreqFrequent, domain.LikelihoodUnlikely, domain.HarmRemote},
		{domain.FreqFrequent, domain.LikelihoodWillNotOccur, domain.HarmImprobable},
	}

	for _, tt := range tests {
		if got := CombineHarm(tt.p1, tt.p2); got != tt.expect {
			t.Errorf("CombineHarm(%v, %q) = %v, want %v", tt.p1, tt.p2, got, tt.expect)
		}
	}
}

func TestCombineHarm_TotalOverClosedSets(t *testing.T) {
	// Every valid (P1, P2) pair resolves to something other than Unknown.
	p1s := []domain.FrequencyClass{
		domain.FreqImprobable, domain.FreqRemote, domain.FreqOccasional,
		domain.FreqProbable, domain.FreqFrequent,
	}
	for _, p1 := range p1s {
		for _, p2 := range allLikelihoods {
			if got := CombineHarm(p1, p2); got == domain.HarmUnknown {
				t.Errorf("CombineHarm(%v, %q) unexpectedly Unknown", p1, p2)
			}
		}
	}
}
