package service

import (
	"context"

	"github.com/trigenthq/trigent/trigent-backend/internal/ai"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/websocket"
)

// AutomationService handles workflow automation business logic
type AutomationService struct {
	automationRepo domain.AutomationRepository
	workspaceRepo  domain.WorkspaceRepository
	aiClient       *ai.Client
	publisher      websocket.EventPublisher
}

// NewAutomationService creates a new AutomationService
func NewAutomationService(automationRepo domain.AutomationRepository, workspaceRepo domain.WorkspaceRepository, aiClient *ai.Client, publisher websocket.EventPublisher) *AutomationService {
	return &AutomationService{
		automationRepo: automationRepo,
		workspaceRepo:  workspaceRepo,
		aiClient:       aiClient,
		publisher:      publisher,
	}
}

// GetAutomations retrieves all automations owned by a user
func (s *AutomationService) GetAutomations(ownerID string) ([]*domain.Automation, error) {
	return s.automationRepo.ListByOwner(ownerID)
}

// GetAutomation retrieves one automation, verifying ownership
func (s *AutomationService) GetAutomation(ownerID, id string) (*domain.Automation, error) {
	automation, err := s.automationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if automation.OwnerID != ownerID {
		return nil, domain.ErrAutomationNotFound
	}
	return automation, nil
}

// CreateAutomation persists a manually authored automation
func (s *AutomationService) CreateAutomation(ownerID string, automation *domain.Automation) (*domain.Automation, error) {
	automation.OwnerID = ownerID
	created, err := s.automationRepo.Create(automation)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ownerID, websocket.AutomationCreated(created))
	return created, nil
}

// GenerateAutomation generates a workflow for a description and
// persists it. The generative facade never fails, so the only error
// paths here are persistence errors.
func (s *AutomationService) GenerateAutomation(ctx context.Context, ownerID, workspaceID, description string) (*domain.Automation, error) {
	instructions := instructionsFor(s.workspaceRepo, ownerID, workspaceID)

	automation := s.aiClient.GenerateWorkflow(ctx, description, instructions)
	automation.OwnerID = ownerID
	automation.WorkspaceID = workspaceID

	created, err := s.automationRepo.Create(automation)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ownerID, websocket.AutomationCreated(created))
	return created, nil
}

// UpdateAutomation updates an owned automation
func (s *AutomationService) UpdateAutomation(ownerID string, automation *domain.Automation) (*domain.Automation, error) {
	existing, err := s.GetAutomation(ownerID, automation.ID)
	if err != nil {
		return nil, err
	}
	automation.OwnerID = existing.OwnerID
	automation.Source = existing.Source

	updated, err := s.automationRepo.Update(automation)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ownerID, websocket.AutomationUpdated(updated))
	return updated, nil
}

// DeleteAutomation deletes an owned automation
func (s *AutomationService) DeleteAutomation(ownerID, id string) error {
	if _, err := s.GetAutomation(ownerID, id); err != nil {
		return err
	}
	if err := s.automationRepo.Delete(id); err != nil {
		return err
	}
	s.publisher.Publish(ownerID, websocket.AutomationDeleted(map[string]string{"id": id}))
	return nil
}
