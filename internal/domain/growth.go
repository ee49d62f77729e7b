package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GrowthGoal is a measurable target within a growth plan
type GrowthGoal struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Metric   string          `json:"metric"`
	Target   decimal.Decimal `json:"target"`
	Deadline time.Time       `json:"deadline"`
}

// GrowthTactic is a prioritized action within a growth plan
type GrowthTactic struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Priority        RatingLevel `json:"priority"`
	EstimatedImpact int         `json:"estimated_impact"`
}

// GrowthPlan is a generated growth strategy for a workspace
type GrowthPlan struct {
	ID          string           `json:"id"`
	OwnerID     string           `json:"owner_id"`
	WorkspaceID string           `json:"workspace_id,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Goals       []GrowthGoal     `json:"goals"`
	Tactics     []GrowthTactic   `json:"tactics"`
	Source      GenerationSource `json:"source"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// GrowthRepository defines the interface for growth plan persistence operations
type GrowthRepository interface {
	GetByID(id string) (*GrowthPlan, error)
	ListByOwner(ownerID string) ([]*GrowthPlan, error)
	Create(plan *GrowthPlan) (*GrowthPlan, error)
	Update(plan *GrowthPlan) (*GrowthPlan, error)
	Delete(id string) error
}
