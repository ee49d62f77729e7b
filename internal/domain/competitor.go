package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Competitor is a single competitor in a landscape analysis. MarketShare
// is a percentage; Rating is a 0-5 scale. Both are optional because the
// model does not always estimate them.
type Competitor struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Strengths   []string         `json:"strengths,omitempty"`
	Weaknesses  []string         `json:"weaknesses,omitempty"`
	MarketShare *decimal.Decimal `json:"market_share,omitempty"`
	Rating      *decimal.Decimal `json:"rating,omitempty"`
}

// CompetitorAnalysis is a generated competitive landscape for an industry
type CompetitorAnalysis struct {
	ID          string           `json:"id"`
	OwnerID     string           `json:"owner_id"`
	WorkspaceID string           `json:"workspace_id,omitempty"`
	Industry    string           `json:"industry"`
	MarketScope string           `json:"market_scope"`
	Competitors []Competitor     `json:"competitors"`
	KeyTrends   []string         `json:"key_trends,omitempty"`
	Source      GenerationSource `json:"source"`
	CreatedAt   time.Time        `json:"created_at"`
}

// CompetitorRepository defines the interface for competitor analysis persistence operations
type CompetitorRepository interface {
	GetByID(id string) (*CompetitorAnalysis, error)
	ListByOwner(ownerID string) ([]*CompetitorAnalysis, error)
	Create(analysis *CompetitorAnalysis) (*CompetitorAnalysis, error)
	Delete(id string) error
}
