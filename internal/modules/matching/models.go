package matching

import "github.com/brokerdesk/appetite-engine/internal/modules/appetite"

// MatchRun is a persisted matching invocation for one client: the ranked
// results plus summary figures the dashboard lists runs by.
type MatchRun struct {
	ID               string                 `json:"id"`
	ClientID         int64                  `json:"client_id"`
	ClientName       string                 `json:"client_name,omitempty"`
	Profile          appetite.ClientProfile `json:"profile"`
	Ranked           appetite.RankedMatches `json:"ranked"`
	TopScore         int                    `json:"top_score"`
	StrongMatchCount int                    `json:"strong_match_count"`
	CreatedAt        string                 `json:"created_at"`
}

// RunSummary is the list view of a match run, without the full result payload.
type RunSummary struct {
	ID               string `json:"id"`
	ClientID         int64  `json:"client_id"`
	ClientName       string `json:"client_name,omitempty"`
	TopScore         int    `json:"top_score"`
	StrongMatchCount int    `json:"strong_match_count"`
	CreatedAt        string `json:"created_at"`
}
