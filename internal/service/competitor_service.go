package service

import (
	"context"
	"strings"

	"github.com/trigenthq/trigent/trigent-backend/internal/ai"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/websocket"
)

// CompetitorService handles competitive landscape business logic
type CompetitorService struct {
	competitorRepo domain.CompetitorRepository
	workspaceRepo  domain.WorkspaceRepository
	aiClient       *ai.Client
	publisher      websocket.EventPublisher
}

// NewCompetitorService creates a new CompetitorService
func NewCompetitorService(competitorRepo domain.CompetitorRepository, workspaceRepo domain.WorkspaceRepository, aiClient *ai.Client, publisher websocket.EventPublisher) *CompetitorService {
	return &CompetitorService{
		competitorRepo: competitorRepo,
		workspaceRepo:  workspaceRepo,
		aiClient:       aiClient,
		publisher:      publisher,
	}
}

// GetAnalyses retrieves all competitor analyses owned by a user
func (s *CompetitorService) GetAnalyses(ownerID string) ([]*domain.CompetitorAnalysis, error) {
	return s.competitorRepo.ListByOwner(ownerID)
}

// GetAnalysis retrieves one competitor analysis, verifying ownership
func (s *CompetitorService) GetAnalysis(ownerID, id string) (*domain.CompetitorAnalysis, error) {
	analysis, err := s.competitorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if analysis.OwnerID != ownerID {
		return nil, domain.ErrAnalysisNotFound
	}
	return analysis, nil
}

// AnalyzeCompetitors generates and persists a competitive landscape
func (s *CompetitorService) AnalyzeCompetitors(ctx context.Context, ownerID, workspaceID, industry, marketScope string) (*domain.CompetitorAnalysis, error) {
	if strings.TrimSpace(industry) == "" {
		return nil, domain.ErrInvalidInput
	}

	instructions := instructionsFor(s.workspaceRepo, ownerID, workspaceID)

	analysis := s.aiClient.AnalyzeCompetitors(ctx, industry, marketScope, instructions)
	analysis.OwnerID = ownerID
	analysis.WorkspaceID = workspaceID

	created, err := s.competitorRepo.Create(analysis)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ownerID, websocket.CompetitorsAnalyzed(created))
	return created, nil
}

// DeleteAnalysis deletes an owned competitor analysis
func (s *CompetitorService) DeleteAnalysis(ownerID, id string) error {
	if _, err := s.GetAnalysis(ownerID, id); err != nil {
		return err
	}
	return s.competitorRepo.Delete(id)
}
