package clients

import (
	"strings"

	"github.com/brokerdesk/appetite-engine/internal/modules/appetite"
)

// ClientRecord is a stored client risk profile. The matching module builds
// an ephemeral appetite.ClientProfile from it per run.
type ClientRecord struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Industry     string `json:"industry,omitempty"`
	RevenueBand  string `json:"revenue_band,omitempty"`
	RiskProfile  string `json:"risk_profile,omitempty"` // low | medium | high
	Jurisdiction string `json:"jurisdiction,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// Profile converts the stored record into the scorer's input shape. A blank
// jurisdiction falls back to the given home market.
func (c ClientRecord) Profile(homeMarket string) appetite.ClientProfile {
	jurisdiction := strings.TrimSpace(c.Jurisdiction)
	if jurisdiction == "" {
		jurisdiction = homeMarket
	}

	return appetite.ClientProfile{
		Industry:     strings.TrimSpace(c.Industry),
		RevenueBand:  appetite.NormalizeRevenueBand(c.RevenueBand),
		RiskProfile:  strings.ToLower(strings.TrimSpace(c.RiskProfile)),
		Jurisdiction: jurisdiction,
	}
}
