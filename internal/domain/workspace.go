package domain

import "time"

// Workspace groups a user's dashboard content and carries the free-text
// instructions injected into every generative prompt scoped to it.
type Workspace struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Color          string    `json:"color,omitempty"`
	Icon           string    `json:"icon,omitempty"`
	AIInstructions string    `json:"ai_instructions,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate checks workspace fields before persistence
func (w *Workspace) Validate() error {
	if w.Name == "" {
		return ErrNameRequired
	}
	if len(w.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// WorkspaceRepository defines the interface for workspace persistence operations
type WorkspaceRepository interface {
	GetByID(id string) (*Workspace, error)
	ListByOwner(ownerID string) ([]*Workspace, error)
	Create(workspace *Workspace) (*Workspace, error)
	Update(workspace *Workspace) (*Workspace, error)
	Delete(id string) error
}
