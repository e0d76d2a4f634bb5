package matching

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/brokerdesk/appetite-engine/internal/modules/appetite"
	"github.com/brokerdesk/appetite-engine/internal/modules/clients"
	"github.com/brokerdesk/appetite-engine/internal/modules/guides"
)

// ClientSource provides stored client records.
type ClientSource interface {
	Get(id int64) (*clients.ClientRecord, error)
}

// GuideSource provides stored appetite guides.
type GuideSource interface {
	List(activeOnly bool) ([]guides.AppetiteGuide, error)
}

// RunStore persists match runs.
type RunStore interface {
	Save(run MatchRun) error
}

// Service orchestrates a matching run: load the client, load active guides,
// score and rank, persist the outcome.
type Service struct {
	clientSource ClientSource
	guideSource  GuideSource
	runStore     RunStore
	scorer       *appetite.Scorer
	log          zerolog.Logger
}

// NewService creates a new matching service
func NewService(
	clientSource ClientSource,
	guideSource GuideSource,
	runStore RunStore,
	scorer *appetite.Scorer,
	log zerolog.Logger,
) *Service {
	return &Service{
		clientSource: clientSource,
		guideSource:  guideSource,
		runStore:     runStore,
		scorer:       scorer,
		log:          log.With().Str("service", "matching").Logger(),
	}
}

// RunForClient executes and persists a matching run for a stored client.
// Returns nil (no error) when the client does not exist. An empty guide set
// is a valid run with empty partitions; the UI renders its own empty state.
func (s *Service) RunForClient(clientID int64) (*MatchRun, error) {
	client, err := s.clientSource.Get(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client %d: %w", clientID, err)
	}
	if client == nil {
		return nil, nil
	}

	guideList, err := s.guideSource.List(true)
	if err != nil {
		return nil, fmt.Errorf("failed to load appetite guides: %w", err)
	}

	profile := client.Profile(s.scorer.Config().HomeMarket)
	ranked := s.scorer.Rank(profile, guides.Records(guideList))

	run := MatchRun{
		ID:               uuid.NewString(),
		ClientID:         client.ID,
		ClientName:       client.Name,
		Profile:          profile,
		Ranked:           ranked,
		TopScore:         topScore(ranked),
		StrongMatchCount: len(ranked.TopMatches),
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.runStore.Save(run); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("run_id", run.ID).
		Int64("client_id", client.ID).
		Int("guides", len(guideList)).
		Int("strong_matches", run.StrongMatchCount).
		Int("top_score", run.TopScore).
		Msg("Matching run completed")

	return &run, nil
}

// Preview ranks inline records against an inline profile without persisting
// anything. Used by the UI's what-if screen.
func (s *Service) Preview(profile appetite.ClientProfile, records []appetite.AppetiteRecord) appetite.RankedMatches {
	sanitized := make([]appetite.AppetiteRecord, 0, len(records))
	for _, record := range records {
		sanitized = append(sanitized, appetite.SanitizeRecord(record))
	}
	return s.scorer.Rank(profile, sanitized)
}

// topScore is the best score across both partitions; nearest misses count
// when nothing cleared the threshold.
func topScore(ranked appetite.RankedMatches) int {
	if len(ranked.TopMatches) > 0 {
		return ranked.TopMatches[0].MatchScore
	}
	if len(ranked.NearestMisses) > 0 {
		return ranked.NearestMisses[0].MatchScore
	}
	return 0
}
