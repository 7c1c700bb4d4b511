package risk

import "github.com/radcomm/riskcalc/internal/core/domain"

// CombineHarm folds the P1 frequency class and the P2 likelihood into the
// probability of occurrence of harm via a fixed ordinal matrix.
//
// Unknown propagates: a P2 outside the closed vocabulary, or an unknown P1,
// yields HarmUnknown rather than a guess. An Improbable P1 dominates every
// P2 value.
func CombineHarm(p1 domain.FrequencyClass, p2 domain.Likelihood) domain.HarmProbability {
	if !p2.Valid() {
		return domain.HarmUnknown
	}
	switch p1 {
	case domain.FreqImprobable:
		return domain.HarmImprobable

	case domain.FreqRemote:
		switch p2 {
		case domain.LikelihoodCertain, domain.LikelihoodLikely:
			return domain.HarmRemote
		default: // Possible, Unlikely, Will Not Occur
			return domain.HarmImprobable
		}

	case domain.FreqOccasional:
		switch p2 {
		case domain.LikelihoodCertain:
			return domain.HarmOccasional
		case domain.LikelihoodLikely, domain.LikelihoodPossible:
			return domain.HarmRemote
		default:
			return domain.HarmImprobable
		}

	case domain.FreqProbable:
		switch p2 {
		case domain.LikelihoodCertain:
			return domain.HarmProbable
		case domain.LikelihoodLikely, domain.LikelihoodPossible:
			return domain.HarmOccasional
		case domain.LikelihoodUnlikely:
			return domain.HarmRemote
		default:
			return domain.HarmImprobable
		}

	case domain.FreqFrequent:
		switch p2 {
		case domain.LikelihoodCertain:
			return domain.HarmFrequent
		case domain.LikelihoodLikely:
			return domain.HarmProbable
		case domain.LikelihoodPossible:
			return domain.HarmOccasional
		case domain.LikelihoodUnlikely:
			return domain.HarmRemote
		default:
			return domain.HarmImprobable
		}
	}
	return domain.HarmUnknown
}
