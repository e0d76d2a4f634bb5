package intelligence

// UnderwriterStats summarizes how one underwriter has scored across all
// stored match runs.
type UnderwriterStats struct {
	UnderwriterName string  `json:"underwriter_name"`
	Appearances     int     `json:"appearances"`
	MeanScore       float64 `json:"mean_score"`
	StdDev          float64 `json:"std_dev"`
	MedianScore     float64 `json:"median_score"`
	P90Score        float64 `json:"p90_score"`
	StrongMatchRate float64 `json:"strong_match_rate"` // share of appearances at or above the strong-match threshold
}

// Summary is the market intelligence dashboard payload: per-underwriter
// score statistics plus market-wide distributions.
type Summary struct {
	GeneratedAt            string             `json:"generated_at"`
	TotalResults           int                `json:"total_results"`
	MarketMeanScore        float64            `json:"market_mean_score"`
	Underwriters           []UnderwriterStats `json:"underwriters"`
	ConfidenceDistribution map[string]int     `json:"confidence_distribution"`
	CommonConcerns         []ConcernCount     `json:"common_concerns"`
}

// ConcernCount is a concern string with its occurrence count across runs.
type ConcernCount struct {
	Concern string `json:"concern"`
	Count   int    `json:"count"`
}

// Snapshot is a persisted summary produced by the nightly job.
type Snapshot struct {
	ID        int64   `json:"id"`
	Summary   Summary `json:"summary"`
	CreatedAt string  `json:"created_at"`
}
