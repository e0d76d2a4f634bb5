package appetite

// ScoringConfig collects every tunable weight, threshold and vocabulary used
// by the scorer. The defaults mirror the product's documented heuristic; they
// are deliberately hoisted here so alternative markets or re-tuned weights
// need no code changes.
type ScoringConfig struct {
	// Points added per factor. The factor weights express the relative
	// importance of each alignment dimension: 30/25/20/15 plus a 10 point
	// specialty bonus.
	IndustryMatchPoints   int // direct sector match
	IndustryGeneralPoints int // generalist underwriter
	IndustryNeutralPoints int // no sector data on the guide
	RevenueAlignedPoints  int // estimated premium inside [min, max]
	RevenueNeutralPoints  int // no premium bounds on the guide
	RiskMatchPoints       int // appetite descriptor correlates with the profile
	RiskNeutralPoints     int // descriptor missing or uncorrelated
	GeographyMatchPoints  int // covers the home market
	GeographyNeutralPoints int // no coverage data on the guide
	SpecialtyBonusPoints  int // specialty focus overlaps the client industry
	ExclusionPenaltyPoints int // subtracted when an exclusion names the industry

	// Score thresholds (applied to the clamped 0-100 total).
	HighConfidenceThreshold   int // >= high, else
	MediumConfidenceThreshold int // >= medium, else low
	StrongMatchThreshold      int // partition between top matches and nearest misses
	PriorityApproachThreshold int
	StandardApproachThreshold int
	CarefulApproachThreshold  int

	// NearestMissLimit caps how many sub-threshold underwriters are surfaced.
	NearestMissLimit int

	// RevenueBandPremiums maps a normalized revenue band to an estimated
	// annual premium. Bands not in the map fall back to
	// DefaultEstimatedPremium.
	RevenueBandPremiums     map[string]float64
	DefaultEstimatedPremium float64

	// HomeMarket is the assumed placement market; HomeMarketSynonyms are the
	// coverage strings accepted as naming it.
	HomeMarket         string
	HomeMarketSynonyms []string

	// RiskCorrelations maps a client risk profile to the appetite
	// descriptors considered aligned with it.
	RiskCorrelations map[string][]string

	// GeneralSectorMarkers are catch-all target sector labels that signal a
	// generalist book rather than sector specialism.
	GeneralSectorMarkers []string
}

// DefaultScoringConfig returns the standard UK-market configuration.
//
// The revenue band premium table and the exact weights are provisional
// calibration values carried over from the product heuristic, not actuarial
// figures. Tests assert against this config rather than re-stating literals.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		IndustryMatchPoints:    30,
		IndustryGeneralPoints:  20,
		IndustryNeutralPoints:  15,
		RevenueAlignedPoints:   25,
		RevenueNeutralPoints:   15,
		RiskMatchPoints:        20,
		RiskNeutralPoints:      10,
		GeographyMatchPoints:   15,
		GeographyNeutralPoints: 10,
		SpecialtyBonusPoints:   10,
		ExclusionPenaltyPoints: 20,

		HighConfidenceThreshold:   75,
		MediumConfidenceThreshold: 50,
		StrongMatchThreshold:      60,
		PriorityApproachThreshold: 80,
		StandardApproachThreshold: 60,
		CarefulApproachThreshold:  40,

		NearestMissLimit: 5,

		RevenueBandPremiums: map[string]float64{
			"0-1m":   5000,
			"1-5m":   15000,
			"5-10m":  25000,
			"10-50m": 75000,
			"50m+":   150000,
		},
		DefaultEstimatedPremium: 15000,

		HomeMarket: "UK",
		HomeMarketSynonyms: []string{
			"uk",
			"united kingdom",
			"great britain",
			"england",
			"scotland",
			"wales",
			"northern ireland",
			"europe",
		},

		RiskCorrelations: map[string][]string{
			"low":    {"conservative"},
			"medium": {"moderate", "balanced"},
			"high":   {"aggressive"},
		},

		GeneralSectorMarkers: []string{
			"general commercial",
			"all sectors",
			"generalist",
		},
	}
}
