package domain

import (
	"fmt"
	"time"
)

// AutomationStatus is the lifecycle state of an automation
type AutomationStatus string

const (
	AutomationInactive AutomationStatus = "inactive"
	AutomationActive   AutomationStatus = "active"
	AutomationPaused   AutomationStatus = "paused"
)

// StepType tags an automation step. Steps are a closed variant set;
// anything outside it is rejected at the persistence boundary.
type StepType string

const (
	StepTrigger   StepType = "trigger"
	StepAction    StepType = "action"
	StepCondition StepType = "condition"
)

// AutomationStep is a single step in a generated workflow
type AutomationStep struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Type          StepType `json:"type"`
	EstimatedTime string   `json:"estimated_time,omitempty"`
	Requirements  []string `json:"requirements,omitempty"`
}

// Validate rejects steps with an unknown type tag
func (s *AutomationStep) Validate() error {
	switch s.Type {
	case StepTrigger, StepAction, StepCondition:
		return nil
	default:
		return fmt.Errorf("%w: unknown step type %q", ErrInvalidInput, s.Type)
	}
}

// Automation is a generated workflow owned by a single user
type Automation struct {
	ID                 string           `json:"id"`
	OwnerID            string           `json:"owner_id"`
	WorkspaceID        string           `json:"workspace_id,omitempty"`
	Name               string           `json:"name"`
	Description        string           `json:"description,omitempty"`
	Status             AutomationStatus `json:"status"`
	Steps              []AutomationStep `json:"steps"`
	EstimatedTotalTime string           `json:"estimated_total_time,omitempty"`
	Difficulty         string           `json:"difficulty,omitempty"`
	Tags               []string         `json:"tags,omitempty"`
	Source             GenerationSource `json:"source"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// Validate checks the automation and every step variant
func (a *Automation) Validate() error {
	if a.Name == "" {
		return ErrNameRequired
	}
	if len(a.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	for i := range a.Steps {
		if err := a.Steps[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AutomationRepository defines the interface for automation persistence operations
type AutomationRepository interface {
	GetByID(id string) (*Automation, error)
	ListByOwner(ownerID string) ([]*Automation, error)
	Create(automation *Automation) (*Automation, error)
	Update(automation *Automation) (*Automation, error)
	Delete(id string) error
}
