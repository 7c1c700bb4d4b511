package domain

import "strings"

// FrequencyThreshold is one class boundary in a family's threshold table.
// A rate strictly greater than Cutoff classifies as Class (or higher).
type FrequencyThreshold struct {
	Cutoff float64
	Class  FrequencyClass
}

// ProductFamily groups product lines that share a frequency-threshold table.
// Thresholds are ordered by strictly decreasing cutoff; a rate exceeding
// none of them classifies as Improbable.
type ProductFamily struct {
	Name       string
	Roster     []string
	Thresholds []FrequencyThreshold
}

// Contains reports whether the product line belongs to this family.
// Matching is by roster-member containment ("Stellant MP" matches the
// roster entry "Stellant"), mirroring how product lines are named in the
// material reference data.
func (f ProductFamily) Contains(productLine string) bool {
	for _, member := range f.Roster {
		if strings.Contains(productLine, member) {
			return true
		}
	}
	return false
}

// Family names.
const (
	FamilyArterion = "arterion-group"
	FamilyCentargo = "centargo-group"
	FamilyDefault  = "default"
)

// DefaultFamilies holds the built-in frequency-threshold tables.
var DefaultFamilies = []ProductFamily{
	{
		Name: FamilyArterion,
		Roster: []string{
			"Arterion", "Avanta", "MRXP", "ProVis", "Salient", "Vistron Plus",
		},
		Thresholds: []FrequencyThreshold{
			{Cutoff: 1e-3, Class: FreqFrequent},
			{Cutoff: 1e-4, Class: FreqProbable},
			{Cutoff: 1e-5, Class: FreqOccasional},
			{Cutoff: 1e-6, Class: FreqRemote},
		},
	},
	{
		Name: FamilyCentargo,
		Roster: []string{
			"Centargo", "Envision", "Vistron", "Intego", "SSEP", "Stellant",
			"Stellant Flex", "Stellant MP", "Universal Disposables",
		},
		Thresholds: []FrequencyThreshold{
			{Cutoff: 1e-4, Class: FreqFrequent},
			{Cutoff: 1e-5, Class: FreqProbable},
			{Cutoff: 1e-6, Class: FreqOccasional},
			{Cutoff: 1e-7, Class: FreqRemote},
		},
	},
}

// FallbackFamily covers product lines matching no roster.
var FallbackFamily = ProductFamily{
	Name: FamilyDefault,
	Thresholds: []FrequencyThreshold{
		{Cutoff: 1e-4, Class: FreqFrequent},
		{Cutoff: 1e-5, Class: FreqProbable},
		{Cutoff: 1e-6, Class: FreqOccasional},
		{Cutoff: 1e-7, Class: FreqRemote},
	},
}
