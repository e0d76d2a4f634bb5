package appetite

// ClientProfile is the ephemeral view of a client used for matching. It is
// built per request from a stored client record and never persisted itself.
// Every field is optional; missing data degrades to neutral scoring rather
// than disqualifying the client.
type ClientProfile struct {
	Industry     string `json:"industry,omitempty"`
	RevenueBand  string `json:"revenue_band,omitempty"`
	RiskProfile  string `json:"risk_profile,omitempty"` // low | medium | high
	Jurisdiction string `json:"jurisdiction,omitempty"`
}

// AppetiteRecord is one underwriter's stated risk preferences. Records are
// read-only to the scorer; nil premium bounds mean "no constraint" on that
// side.
type AppetiteRecord struct {
	UnderwriterName    string   `json:"underwriter_name"`
	TargetSectors      []string `json:"target_sectors,omitempty"`
	SpecialtyFocus     []string `json:"specialty_focus,omitempty"`
	GeographicCoverage []string `json:"geographic_coverage,omitempty"`
	RiskAppetite       string   `json:"risk_appetite,omitempty"`
	MinimumPremium     *float64 `json:"minimum_premium,omitempty"`
	MaximumPremium     *float64 `json:"maximum_premium,omitempty"`
	Exclusions         []string `json:"exclusions,omitempty"`
}

// AlignmentBreakdown carries the four per-factor sub-scores. Each is bounded
// 0-100 independently of the total; they do not sum to the match score.
type AlignmentBreakdown struct {
	IndustryFit       int `json:"industry_fit"`
	RevenueAlignment  int `json:"revenue_alignment"`
	RiskAppetiteMatch int `json:"risk_appetite_match"`
	GeographicMatch   int `json:"geographic_match"`
}

// PremiumRange is the underwriter's premium bounds copied through to the
// result for display.
type PremiumRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// MatchResult is the outcome of scoring one client profile against one
// appetite record. Results are created fresh on every invocation.
type MatchResult struct {
	UnderwriterName     string             `json:"underwriter_name"`
	MatchScore          int                `json:"match_score"` // clamped 0-100
	ConfidenceLevel     string             `json:"confidence_level"` // high | medium | low
	AlignmentBreakdown  AlignmentBreakdown `json:"alignment_breakdown"`
	MatchReasons        []string           `json:"match_reasons"` // at most 4
	Concerns            []string           `json:"concerns"`      // at most 3
	RecommendedApproach string             `json:"recommended_approach"`
	PremiumRange        PremiumRange       `json:"premium_range"`
}

// RankedMatches partitions scored underwriters at the strong-match
// threshold. Both slices are ordered score descending, underwriter name
// ascending.
type RankedMatches struct {
	TopMatches    []MatchResult `json:"top_matches"`
	NearestMisses []MatchResult `json:"nearest_misses"`
}
