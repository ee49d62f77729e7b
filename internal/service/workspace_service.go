package service

import (
	"strings"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// WorkspaceService handles workspace business logic. Every accessor is
// owner-scoped: a workspace belonging to another user is reported as
// not found rather than forbidden.
type WorkspaceService struct {
	workspaceRepo domain.WorkspaceRepository
}

// NewWorkspaceService creates a new WorkspaceService
func NewWorkspaceService(workspaceRepo domain.WorkspaceRepository) *WorkspaceService {
	return &WorkspaceService{workspaceRepo: workspaceRepo}
}

// CreateWorkspaceInput contains input for creating a workspace
type CreateWorkspaceInput struct {
	Name           string
	Description    string
	Color          string
	Icon           string
	AIInstructions string
}

// CreateWorkspace creates a new workspace for a user
func (s *WorkspaceService) CreateWorkspace(ownerID string, input CreateWorkspaceInput) (*domain.Workspace, error) {
	workspace := &domain.Workspace{
		OwnerID:        ownerID,
		Name:           strings.TrimSpace(input.Name),
		Description:    input.Description,
		Color:          input.Color,
		Icon:           input.Icon,
		AIInstructions: input.AIInstructions,
	}
	if err := workspace.Validate(); err != nil {
		return nil, err
	}
	return s.workspaceRepo.Create(workspace)
}

// GetWorkspaces retrieves all workspaces owned by a user
func (s *WorkspaceService) GetWorkspaces(ownerID string) ([]*domain.Workspace, error) {
	return s.workspaceRepo.ListByOwner(ownerID)
}

// GetWorkspace retrieves one workspace, verifying ownership
func (s *WorkspaceService) GetWorkspace(ownerID, id string) (*domain.Workspace, error) {
	workspace, err := s.workspaceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if workspace.OwnerID != ownerID {
		return nil, domain.ErrWorkspaceNotFound
	}
	return workspace, nil
}

// UpdateWorkspace updates an owned workspace
func (s *WorkspaceService) UpdateWorkspace(ownerID, id string, input CreateWorkspaceInput) (*domain.Workspace, error) {
	existing, err := s.GetWorkspace(ownerID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Description = input.Description
	existing.Color = input.Color
	existing.Icon = input.Icon
	existing.AIInstructions = input.AIInstructions
	if err := existing.Validate(); err != nil {
		return nil, err
	}
	return s.workspaceRepo.Update(existing)
}

// DeleteWorkspace deletes an owned workspace
func (s *WorkspaceService) DeleteWorkspace(ownerID, id string) error {
	if _, err := s.GetWorkspace(ownerID, id); err != nil {
		return err
	}
	return s.workspaceRepo.Delete(id)
}

// instructionsFor resolves the AI instructions of a workspace, tolerant
// of a missing or foreign workspace (generation then runs unseasoned)
func instructionsFor(repo domain.WorkspaceRepository, ownerID, workspaceID string) string {
	if workspaceID == "" {
		return ""
	}
	workspace, err := repo.GetByID(workspaceID)
	if err != nil || workspace.OwnerID != ownerID {
		return ""
	}
	return workspace.AIInstructions
}
