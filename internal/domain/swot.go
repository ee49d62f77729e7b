package domain

import "time"

// SWOTStrength is a strength item scored 1-10
type SWOTStrength struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Score       int    `json:"score"`
	AIGenerated bool   `json:"ai_generated"`
}

// SWOTWeakness is a weakness item rated by severity
type SWOTWeakness struct {
	ID          string      `json:"id"`
	Text        string      `json:"text"`
	Severity    RatingLevel `json:"severity"`
	AIGenerated bool        `json:"ai_generated"`
}

// SWOTOpportunity is an opportunity item rated by potential
type SWOTOpportunity struct {
	ID          string      `json:"id"`
	Text        string      `json:"text"`
	Potential   RatingLevel `json:"potential"`
	AIGenerated bool        `json:"ai_generated"`
}

// SWOTThreat is a threat item rated by risk
type SWOTThreat struct {
	ID          string      `json:"id"`
	Text        string      `json:"text"`
	Risk        RatingLevel `json:"risk"`
	AIGenerated bool        `json:"ai_generated"`
}

// SWOTAnalysis is a full generated SWOT for a business context
type SWOTAnalysis struct {
	ID              string            `json:"id"`
	OwnerID         string            `json:"owner_id"`
	WorkspaceID     string            `json:"workspace_id,omitempty"`
	Context         string            `json:"context"`
	Strengths       []SWOTStrength    `json:"strengths"`
	Weaknesses      []SWOTWeakness    `json:"weaknesses"`
	Opportunities   []SWOTOpportunity `json:"opportunities"`
	Threats         []SWOTThreat      `json:"threats"`
	Recommendations []string          `json:"recommendations,omitempty"`
	Source          GenerationSource  `json:"source"`
	CreatedAt       time.Time         `json:"created_at"`
}

// SWOTRepository defines the interface for SWOT persistence operations
type SWOTRepository interface {
	GetByID(id string) (*SWOTAnalysis, error)
	ListByOwner(ownerID string) ([]*SWOTAnalysis, error)
	Create(analysis *SWOTAnalysis) (*SWOTAnalysis, error)
	Delete(id string) error
}
