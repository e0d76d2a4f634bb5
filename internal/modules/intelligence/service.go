package intelligence

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/brokerdesk/appetite-engine/internal/modules/appetite"
)

// ResultSource provides every stored match result for aggregation.
type ResultSource interface {
	AllResults() ([]appetite.MatchResult, error)
}

// concernLimit caps how many distinct concerns the summary reports.
const concernLimit = 10

// Service computes market intelligence aggregates over historical match runs.
type Service struct {
	results              ResultSource
	strongMatchThreshold int
	log                  zerolog.Logger
}

// NewService creates a new intelligence service
func NewService(results ResultSource, strongMatchThreshold int, log zerolog.Logger) *Service {
	return &Service{
		results:              results,
		strongMatchThreshold: strongMatchThreshold,
		log:                  log.With().Str("service", "intelligence").Logger(),
	}
}

// Summarize aggregates all stored match results into the dashboard summary.
// An empty history yields an empty (not nil-panicking) summary.
func (s *Service) Summarize() (Summary, error) {
	results, err := s.results.AllResults()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load match results: %w", err)
	}

	summary := Summary{
		GeneratedAt:            time.Now().UTC().Format(time.RFC3339),
		TotalResults:           len(results),
		ConfidenceDistribution: map[string]int{},
	}

	if len(results) == 0 {
		return summary, nil
	}

	scoresByUnderwriter := map[string][]float64{}
	concernCounts := map[string]int{}
	var allScores []float64

	for _, result := range results {
		score := float64(result.MatchScore)
		allScores = append(allScores, score)
		scoresByUnderwriter[result.UnderwriterName] = append(scoresByUnderwriter[result.UnderwriterName], score)
		summary.ConfidenceDistribution[result.ConfidenceLevel]++
		for _, concern := range result.Concerns {
			concernCounts[concern]++
		}
	}

	summary.MarketMeanScore = round2(stat.Mean(allScores, nil))

	for name, scores := range scoresByUnderwriter {
		summary.Underwriters = append(summary.Underwriters, s.underwriterStats(name, scores))
	}
	// Mean descending, name ascending for determinism.
	sort.Slice(summary.Underwriters, func(i, j int) bool {
		if summary.Underwriters[i].MeanScore != summary.Underwriters[j].MeanScore {
			return summary.Underwriters[i].MeanScore > summary.Underwriters[j].MeanScore
		}
		return summary.Underwriters[i].UnderwriterName < summary.Underwriters[j].UnderwriterName
	})

	summary.CommonConcerns = topConcerns(concernCounts, concernLimit)

	return summary, nil
}

func (s *Service) underwriterStats(name string, scores []float64) UnderwriterStats {
	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)

	strong := 0
	for _, score := range scores {
		if score >= float64(s.strongMatchThreshold) {
			strong++
		}
	}

	stdDev := 0.0
	if len(scores) > 1 {
		stdDev = stat.StdDev(scores, nil)
	}

	return UnderwriterStats{
		UnderwriterName: name,
		Appearances:     len(scores),
		MeanScore:       round2(stat.Mean(scores, nil)),
		StdDev:          round2(stdDev),
		MedianScore:     round2(stat.Quantile(0.5, stat.Empirical, sorted, nil)),
		P90Score:        round2(stat.Quantile(0.9, stat.Empirical, sorted, nil)),
		StrongMatchRate: round2(float64(strong) / float64(len(scores))),
	}
}

// topConcerns returns the most frequent concerns, count descending then
// text ascending.
func topConcerns(counts map[string]int, limit int) []ConcernCount {
	out := make([]ConcernCount, 0, len(counts))
	for concern, count := range counts {
		out = append(out, ConcernCount{Concern: concern, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Concern < out[j].Concern
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
