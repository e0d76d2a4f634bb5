package appetite

import (
	"fmt"
	"strings"
)

// Sub-score levels reported in the alignment breakdown. These describe the
// quality of each factor for display; the points added to the total are
// configured separately on ScoringConfig.
const (
	subIndustrySpecialist = 95
	subIndustryGeneral    = 70
	subIndustryMiss       = 30
	subIndustryUnknown    = 60

	subRevenueAligned = 90
	subRevenueOpen    = 70
	subRevenueAbove   = 50
	subRevenueBelow   = 40

	subRiskMatch   = 85
	subRiskUnknown = 60
	subRiskMiss    = 50

	subGeographyMatch   = 90
	subGeographyUnknown = 70
	subGeographyMiss    = 30
)

// Display caps for the explanation lists.
const (
	maxReasons  = 4
	maxConcerns = 3
)

// Recommended approach labels, selected by score threshold.
const (
	ApproachPriority    = "priority submission"
	ApproachStandard    = "standard submission with sector expertise highlighted"
	ApproachCareful     = "careful submission - address concerns"
	ApproachAlternative = "consider alternative markets"
)

// Confidence tiers.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Scorer computes deterministic appetite match scores. It is stateless and
// safe for concurrent use; every invocation only reads its arguments and the
// immutable config.
type Scorer struct {
	cfg ScoringConfig
}

// NewScorer creates a scorer with the given configuration.
func NewScorer(cfg ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Config returns the scorer's configuration.
func (s *Scorer) Config() ScoringConfig {
	return s.cfg
}

// Score matches one client profile against one appetite record.
//
// The heuristic is additive: each factor contributes configured points to a
// running total, exclusions subtract, and the total is clamped to [0, 100].
// Missing data on either side always falls through to a neutral default, so
// Score never fails and an empty record still produces a usable result.
func (s *Scorer) Score(profile ClientProfile, record AppetiteRecord) MatchResult {
	var (
		total     int
		breakdown AlignmentBreakdown
		reasons   []string
		concerns  []string
	)

	industry := strings.TrimSpace(profile.Industry)

	// Factor 1: industry fit.
	switch {
	case industry != "" && anyContains(record.TargetSectors, industry):
		breakdown.IndustryFit = subIndustrySpecialist
		total += s.cfg.IndustryMatchPoints
		reasons = append(reasons, fmt.Sprintf("Specializes in %s sector", industry))
	case anyEquals(record.TargetSectors, s.cfg.GeneralSectorMarkers):
		breakdown.IndustryFit = subIndustryGeneral
		total += s.cfg.IndustryGeneralPoints
		reasons = append(reasons, "Accepts general commercial risks")
	case industry != "" && len(record.TargetSectors) > 0:
		breakdown.IndustryFit = subIndustryMiss
		concerns = append(concerns, fmt.Sprintf("Limited experience in %s sector", industry))
	default:
		// No sector data, or no client industry to compare against.
		breakdown.IndustryFit = subIndustryUnknown
		total += s.cfg.IndustryNeutralPoints
	}

	// Factor 2: revenue / premium alignment.
	estimated := s.estimatedPremium(profile.RevenueBand)
	switch {
	case record.MinimumPremium == nil && record.MaximumPremium == nil:
		breakdown.RevenueAlignment = subRevenueOpen
		total += s.cfg.RevenueNeutralPoints
	case withinBounds(estimated, record.MinimumPremium, record.MaximumPremium):
		breakdown.RevenueAlignment = subRevenueAligned
		total += s.cfg.RevenueAlignedPoints
		reasons = append(reasons, "Premium requirements align with appetite")
	case record.MinimumPremium != nil && estimated < *record.MinimumPremium:
		breakdown.RevenueAlignment = subRevenueBelow
		concerns = append(concerns, fmt.Sprintf(
			"Estimated premium %s is below the %s minimum",
			formatGBP(estimated), formatGBP(*record.MinimumPremium)))
	default:
		breakdown.RevenueAlignment = subRevenueAbove
		concerns = append(concerns, fmt.Sprintf(
			"Estimated premium %s is above the %s maximum",
			formatGBP(estimated), formatGBP(*record.MaximumPremium)))
	}

	// Factor 3: risk appetite.
	riskAppetite := strings.TrimSpace(record.RiskAppetite)
	switch {
	case riskAppetite == "":
		breakdown.RiskAppetiteMatch = subRiskUnknown
		total += s.cfg.RiskNeutralPoints
	case s.riskCorrelates(profile.RiskProfile, riskAppetite):
		breakdown.RiskAppetiteMatch = subRiskMatch
		total += s.cfg.RiskMatchPoints
		reasons = append(reasons, "Risk appetite alignment")
	default:
		breakdown.RiskAppetiteMatch = subRiskMiss
		total += s.cfg.RiskNeutralPoints
	}

	// Factor 4: geography.
	switch {
	case len(record.GeographicCoverage) == 0:
		breakdown.GeographicMatch = subGeographyUnknown
		total += s.cfg.GeographyNeutralPoints
	case s.coversHomeMarket(record.GeographicCoverage):
		breakdown.GeographicMatch = subGeographyMatch
		total += s.cfg.GeographyMatchPoints
		reasons = append(reasons, fmt.Sprintf("Covers %s", s.cfg.HomeMarket))
	default:
		breakdown.GeographicMatch = subGeographyMiss
		concerns = append(concerns, fmt.Sprintf("Limited %s presence", s.cfg.HomeMarket))
	}

	// Specialty bonus: additive on top of the industry factor.
	if industry != "" && anyContains(record.SpecialtyFocus, industry) {
		total += s.cfg.SpecialtyBonusPoints
		reasons = append(reasons, "Specialty expertise in your industry")
	}

	// Exclusion penalty: subtractive, independent of the industry factor, so
	// a named exclusion drags the total below what the sub-scores imply.
	if industry != "" && anyContains(record.Exclusions, industry) {
		total -= s.cfg.ExclusionPenaltyPoints
		concerns = append(concerns, "Industry may be excluded")
	}

	score := clamp(total, 0, 100)

	return MatchResult{
		UnderwriterName:     record.UnderwriterName,
		MatchScore:          score,
		ConfidenceLevel:     s.confidenceLevel(score),
		AlignmentBreakdown:  breakdown,
		MatchReasons:        truncate(reasons, maxReasons),
		Concerns:            truncate(concerns, maxConcerns),
		RecommendedApproach: s.recommendedApproach(score),
		PremiumRange: PremiumRange{
			Min: record.MinimumPremium,
			Max: record.MaximumPremium,
		},
	}
}

// estimatedPremium maps a revenue band to an estimated annual premium.
// Unknown or empty bands use the configured default.
func (s *Scorer) estimatedPremium(revenueBand string) float64 {
	if premium, ok := s.cfg.RevenueBandPremiums[NormalizeRevenueBand(revenueBand)]; ok {
		return premium
	}
	return s.cfg.DefaultEstimatedPremium
}

// riskCorrelates reports whether the underwriter's appetite descriptor
// textually correlates with the client's risk profile.
func (s *Scorer) riskCorrelates(riskProfile, riskAppetite string) bool {
	descriptors := s.cfg.RiskCorrelations[strings.ToLower(strings.TrimSpace(riskProfile))]
	appetite := strings.ToLower(riskAppetite)
	for _, d := range descriptors {
		if strings.Contains(appetite, d) {
			return true
		}
	}
	return false
}

// coversHomeMarket reports whether any coverage entry names the home market.
func (s *Scorer) coversHomeMarket(coverage []string) bool {
	for _, region := range coverage {
		region = strings.ToLower(strings.TrimSpace(region))
		for _, synonym := range s.cfg.HomeMarketSynonyms {
			if region == synonym || strings.Contains(region, synonym) {
				return true
			}
		}
	}
	return false
}

func (s *Scorer) confidenceLevel(score int) string {
	switch {
	case score >= s.cfg.HighConfidenceThreshold:
		return ConfidenceHigh
	case score >= s.cfg.MediumConfidenceThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func (s *Scorer) recommendedApproach(score int) string {
	switch {
	case score >= s.cfg.PriorityApproachThreshold:
		return ApproachPriority
	case score >= s.cfg.StandardApproachThreshold:
		return ApproachStandard
	case score >= s.cfg.CarefulApproachThreshold:
		return ApproachCareful
	default:
		return ApproachAlternative
	}
}

// anyContains reports whether any entry and the needle contain each other
// case-insensitively. Empty needles and entries never match; a blank string
// would otherwise substring-match everything.
func anyContains(entries []string, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return false
	}
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		if strings.Contains(entry, needle) || strings.Contains(needle, entry) {
			return true
		}
	}
	return false
}

// anyEquals reports whether any entry equals any marker, case-insensitively.
func anyEquals(entries, markers []string) bool {
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		for _, marker := range markers {
			if entry == marker {
				return true
			}
		}
	}
	return false
}

// withinBounds treats a nil bound as unbounded on that side.
func withinBounds(value float64, min, max *float64) bool {
	if min != nil && value < *min {
		return false
	}
	if max != nil && value > *max {
		return false
	}
	return true
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func truncate(entries []string, limit int) []string {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

// formatGBP formats an amount as sterling with thousands separators, e.g.
// 5000 -> "£5,000".
func formatGBP(amount float64) string {
	digits := fmt.Sprintf("%.0f", amount)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-£" + b.String()
	}
	return "£" + b.String()
}
