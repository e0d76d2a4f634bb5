package intelligence

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerdesk/appetite-engine/internal/modules/appetite"
)

type stubResults struct {
	results []appetite.MatchResult
	err     error
}

func (s stubResults) AllResults() ([]appetite.MatchResult, error) {
	return s.results, s.err
}

func newTestService(source ResultSource) *Service {
	return NewService(source, 60, zerolog.New(nil).Level(zerolog.Disabled))
}

func TestSummarize_EmptyHistory(t *testing.T) {
	service := newTestService(stubResults{})

	summary, err := service.Summarize()
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalResults)
	assert.Zero(t, summary.MarketMeanScore)
	assert.Empty(t, summary.Underwriters)
	assert.Empty(t, summary.CommonConcerns)
	assert.NotNil(t, summary.ConfidenceDistribution)
	assert.NotEmpty(t, summary.GeneratedAt)
}

func TestSummarize_SourceError(t *testing.T) {
	service := newTestService(stubResults{err: errors.New("disk gone")})

	_, err := service.Summarize()
	assert.Error(t, err)
}

func TestSummarize_Aggregates(t *testing.T) {
	service := newTestService(stubResults{results: []appetite.MatchResult{
		{UnderwriterName: "Acme", MatchScore: 80, ConfidenceLevel: "high", Concerns: []string{"outside appetite sectors"}},
		{UnderwriterName: "Acme", MatchScore: 60, ConfidenceLevel: "medium"},
		{UnderwriterName: "Beta Re", MatchScore: 40, ConfidenceLevel: "low", Concerns: []string{"outside appetite sectors", "no coverage in client jurisdiction"}},
	}})

	summary, err := service.Summarize()
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalResults)
	assert.Equal(t, 60.0, summary.MarketMeanScore)
	assert.Equal(t, map[string]int{"high": 1, "medium": 1, "low": 1}, summary.ConfidenceDistribution)

	require.Len(t, summary.Underwriters, 2)
	acme := summary.Underwriters[0]
	assert.Equal(t, "Acme", acme.UnderwriterName)
	assert.Equal(t, 2, acme.Appearances)
	assert.Equal(t, 70.0, acme.MeanScore)
	assert.Equal(t, 1.0, acme.StrongMatchRate) // both at or above threshold 60

	beta := summary.Underwriters[1]
	assert.Equal(t, "Beta Re", beta.UnderwriterName)
	assert.Equal(t, 1, beta.Appearances)
	assert.Equal(t, 40.0, beta.MeanScore)
	assert.Zero(t, beta.StdDev)
	assert.Zero(t, beta.StrongMatchRate)

	require.Len(t, summary.CommonConcerns, 2)
	assert.Equal(t, ConcernCount{Concern: "outside appetite sectors", Count: 2}, summary.CommonConcerns[0])
	assert.Equal(t, ConcernCount{Concern: "no coverage in client jurisdiction", Count: 1}, summary.CommonConcerns[1])
}

func TestSummarize_UnderwriterTieBreakByName(t *testing.T) {
	service := newTestService(stubResults{results: []appetite.MatchResult{
		{UnderwriterName: "Zeta", MatchScore: 50, ConfidenceLevel: "medium"},
		{UnderwriterName: "Alpha", MatchScore: 50, ConfidenceLevel: "medium"},
	}})

	summary, err := service.Summarize()
	require.NoError(t, err)

	require.Len(t, summary.Underwriters, 2)
	assert.Equal(t, "Alpha", summary.Underwriters[0].UnderwriterName)
	assert.Equal(t, "Zeta", summary.Underwriters[1].UnderwriterName)
}

func TestTopConcerns_Limit(t *testing.T) {
	counts := map[string]int{"a": 3, "b": 3, "c": 1}

	top := topConcerns(counts, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "a", top[0].Concern)
	assert.Equal(t, "b", top[1].Concern)
}
