package guides

import "github.com/brokerdesk/appetite-engine/internal/modules/appetite"

// AppetiteGuide is a stored underwriter appetite record with persistence
// metadata. The embedded AppetiteRecord is exactly what the scorer consumes.
type AppetiteGuide struct {
	ID int64 `json:"id"`
	appetite.AppetiteRecord
	Notes     string `json:"notes,omitempty"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Records extracts the scorer-facing appetite records from a guide list.
func Records(guideList []AppetiteGuide) []appetite.AppetiteRecord {
	records := make([]appetite.AppetiteRecord, 0, len(guideList))
	for _, g := range guideList {
		records = append(records, g.AppetiteRecord)
	}
	return records
}
