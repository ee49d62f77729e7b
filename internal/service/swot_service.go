package service

import (
	"context"
	"strings"

	"github.com/trigenthq/trigent/trigent-backend/internal/ai"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/websocket"
)

// SWOTService handles SWOT analysis business logic
type SWOTService struct {
	swotRepo      domain.SWOTRepository
	workspaceRepo domain.WorkspaceRepository
	aiClient      *ai.Client
	publisher     websocket.EventPublisher
}

// NewSWOTService creates a new SWOTService
func NewSWOTService(swotRepo domain.SWOTRepository, workspaceRepo domain.WorkspaceRepository, aiClient *ai.Client, publisher websocket.EventPublisher) *SWOTService {
	return &SWOTService{
		swotRepo:      swotRepo,
		workspaceRepo: workspaceRepo,
		aiClient:      aiClient,
		publisher:     publisher,
	}
}

// GetAnalyses retrieves all SWOT analyses owned by a user
func (s *SWOTService) GetAnalyses(ownerID string) ([]*domain.SWOTAnalysis, error) {
	return s.swotRepo.ListByOwner(ownerID)
}

// GetAnalysis retrieves one SWOT analysis, verifying ownership
func (s *SWOTService) GetAnalysis(ownerID, id string) (*domain.SWOTAnalysis, error) {
	analysis, err := s.swotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if analysis.OwnerID != ownerID {
		return nil, domain.ErrAnalysisNotFound
	}
	return analysis, nil
}

// GenerateAnalysis generates and persists a SWOT for a business context
func (s *SWOTService) GenerateAnalysis(ctx context.Context, ownerID, workspaceID, businessContext string) (*domain.SWOTAnalysis, error) {
	if strings.TrimSpace(businessContext) == "" {
		return nil, domain.ErrInvalidInput
	}

	instructions := instructionsFor(s.workspaceRepo, ownerID, workspaceID)

	analysis := s.aiClient.GenerateSWOT(ctx, businessContext, instructions)
	analysis.OwnerID = ownerID
	analysis.WorkspaceID = workspaceID

	created, err := s.swotRepo.Create(analysis)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ownerID, websocket.SWOTGenerated(created))
	return created, nil
}

// DeleteAnalysis deletes an owned SWOT analysis
func (s *SWOTService) DeleteAnalysis(ownerID, id string) error {
	if _, err := s.GetAnalysis(ownerID, id); err != nil {
		return err
	}
	return s.swotRepo.Delete(id)
}
