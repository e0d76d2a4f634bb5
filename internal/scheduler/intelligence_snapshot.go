package scheduler

import (
	"github.com/rs/zerolog"

	"github.com/brokerdesk/appetite-engine/internal/modules/intelligence"
)

// snapshotsToKeep bounds the snapshot history retained by the nightly job.
const snapshotsToKeep = 30

// IntelligenceSnapshotJob recomputes the market intelligence summary and
// stores it, keeping dashboard reads off the full match run history.
type IntelligenceSnapshotJob struct {
	service *intelligence.Service
	repo    *intelligence.Repository
	log     zerolog.Logger
}

// NewIntelligenceSnapshotJob creates the nightly snapshot job
func NewIntelligenceSnapshotJob(
	service *intelligence.Service,
	repo *intelligence.Repository,
	log zerolog.Logger,
) *IntelligenceSnapshotJob {
	return &IntelligenceSnapshotJob{
		service: service,
		repo:    repo,
		log:     log.With().Str("job", "intelligence_snapshot").Logger(),
	}
}

// Name returns the job name
func (j *IntelligenceSnapshotJob) Name() string {
	return "intelligence_snapshot"
}

// Run recomputes and persists the summary
func (j *IntelligenceSnapshotJob) Run() error {
	summary, err := j.service.Summarize()
	if err != nil {
		return err
	}

	if err := j.repo.Save(summary); err != nil {
		return err
	}

	if err := j.repo.Prune(snapshotsToKeep); err != nil {
		// Pruning failure is non-critical; the snapshot itself is stored.
		j.log.Warn().Err(err).Msg("Failed to prune old intelligence snapshots")
	}

	j.log.Info().
		Int("results", summary.TotalResults).
		Int("underwriters", len(summary.Underwriters)).
		Msg("Intelligence snapshot stored")

	return nil
}
