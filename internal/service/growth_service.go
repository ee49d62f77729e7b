package service

import (
	"context"
	"strings"

	"github.com/trigenthq/trigent/trigent-backend/internal/ai"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/websocket"
)

// GrowthService handles growth plan business logic
type GrowthService struct {
	growthRepo    domain.GrowthRepository
	workspaceRepo domain.WorkspaceRepository
	aiClient      *ai.Client
	publisher     websocket.EventPublisher
}

// NewGrowthService creates a new GrowthService
func NewGrowthService(growthRepo domain.GrowthRepository, workspaceRepo domain.WorkspaceRepository, aiClient *ai.Client, publisher websocket.EventPublisher) *GrowthService {
	return &GrowthService{
		growthRepo:    growthRepo,
		workspaceRepo: workspaceRepo,
		aiClient:      aiClient,
		publisher:     publisher,
	}
}

// GetPlans retrieves all growth plans owned by a user
func (s *GrowthService) GetPlans(ownerID string) ([]*domain.GrowthPlan, error) {
	return s.growthRepo.ListByOwner(ownerID)
}

// GetPlan retrieves one growth plan, verifying ownership
func (s *GrowthService) GetPlan(ownerID, id string) (*domain.GrowthPlan, error) {
	plan, err := s.growthRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan.OwnerID != ownerID {
		return nil, domain.ErrGrowthPlanNotFound
	}
	return plan, nil
}

// GenerateGrowthPlanInput contains input for strategy generation
type GenerateGrowthPlanInput struct {
	WorkspaceID     string
	BusinessContext string
	CurrentMetrics  string
	TargetGoals     string
}

// GeneratePlan generates and persists a growth strategy
func (s *GrowthService) GeneratePlan(ctx context.Context, ownerID string, input GenerateGrowthPlanInput) (*domain.GrowthPlan, error) {
	if strings.TrimSpace(input.BusinessContext) == "" {
		return nil, domain.ErrInvalidInput
	}

	instructions := instructionsFor(s.workspaceRepo, ownerID, input.WorkspaceID)

	plan := s.aiClient.GenerateGrowthStrategy(ctx, input.BusinessContext, input.CurrentMetrics, input.TargetGoals, instructions)
	plan.OwnerID = ownerID
	plan.WorkspaceID = input.WorkspaceID

	created, err := s.growthRepo.Create(plan)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ownerID, websocket.GrowthPlanGenerated(created))
	return created, nil
}

// UpdatePlan updates an owned growth plan
func (s *GrowthService) UpdatePlan(ownerID string, plan *domain.GrowthPlan) (*domain.GrowthPlan, error) {
	existing, err := s.GetPlan(ownerID, plan.ID)
	if err != nil {
		return nil, err
	}
	plan.OwnerID = existing.OwnerID
	plan.Source = existing.Source
	return s.growthRepo.Update(plan)
}

// DeletePlan deletes an owned growth plan
func (s *GrowthService) DeletePlan(ownerID, id string) error {
	if _, err := s.GetPlan(ownerID, id); err != nil {
		return err
	}
	return s.growthRepo.Delete(id)
}
