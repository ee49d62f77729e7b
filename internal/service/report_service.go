package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trigenthq/trigent/trigent-backend/internal/ai"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/websocket"
)

// ReportService handles report business logic
type ReportService struct {
	reportRepo    domain.ReportRepository
	workspaceRepo domain.WorkspaceRepository
	aiClient      *ai.Client
	publisher     websocket.EventPublisher
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo domain.ReportRepository, workspaceRepo domain.WorkspaceRepository, aiClient *ai.Client, publisher websocket.EventPublisher) *ReportService {
	return &ReportService{
		reportRepo:    reportRepo,
		workspaceRepo: workspaceRepo,
		aiClient:      aiClient,
		publisher:     publisher,
	}
}

// GetReports retrieves all reports owned by a user
func (s *ReportService) GetReports(ownerID string) ([]*domain.Report, error) {
	return s.reportRepo.ListByOwner(ownerID)
}

// GetReport retrieves one report, verifying ownership
func (s *ReportService) GetReport(ownerID, id string) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if report.OwnerID != ownerID {
		return nil, domain.ErrReportNotFound
	}
	return report, nil
}

// CreateReport persists a manually assembled report
func (s *ReportService) CreateReport(ownerID string, report *domain.Report) (*domain.Report, error) {
	if strings.TrimSpace(report.Name) == "" {
		return nil, domain.ErrNameRequired
	}
	report.OwnerID = ownerID
	if report.Status == "" {
		report.Status = domain.ReportCompleted
	}
	created, err := s.reportRepo.Create(report)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ownerID, websocket.ReportCreated(created))
	return created, nil
}

// GenerateReportInput contains input for an analysis-backed report
type GenerateReportInput struct {
	Name        string
	Type        domain.ReportType
	WorkspaceID string
	Query       string
	// Metrics are serialized into the analysis prompt as supporting data
	Metrics map[string]decimal.Decimal
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// GenerateReport runs a business-data analysis and persists the result
// as a completed report. Analysis never fails outright; a fallback
// result is stored with its source tag so clients can tell.
func (s *ReportService) GenerateReport(ctx context.Context, ownerID string, input GenerateReportInput) (*domain.Report, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrNameRequired
	}

	instructions := instructionsFor(s.workspaceRepo, ownerID, input.WorkspaceID)

	data := ""
	if len(input.Metrics) > 0 {
		if encoded, err := json.Marshal(input.Metrics); err == nil {
			data = string(encoded)
		}
	}

	analysis := s.aiClient.AnalyzeBusinessData(ctx, input.Query, data, instructions)

	reportType := input.Type
	if reportType == "" {
		reportType = domain.ReportCustom
	}

	report := &domain.Report{
		OwnerID:         ownerID,
		WorkspaceID:     input.WorkspaceID,
		Name:            input.Name,
		Type:            reportType,
		PeriodStart:     input.PeriodStart,
		PeriodEnd:       input.PeriodEnd,
		Summary:         analysis.Summary,
		Metrics:         input.Metrics,
		Insights:        analysis.Insights,
		Recommendations: analysis.Recommendations,
		Status:          domain.ReportCompleted,
		Source:          analysis.Source,
	}

	created, err := s.reportRepo.Create(report)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ownerID, websocket.ReportCreated(created))
	return created, nil
}

// UpdateReport updates an owned report
func (s *ReportService) UpdateReport(ownerID string, report *domain.Report) (*domain.Report, error) {
	existing, err := s.GetReport(ownerID, report.ID)
	if err != nil {
		return nil, err
	}
	report.OwnerID = existing.OwnerID
	report.Source = existing.Source
	return s.reportRepo.Update(report)
}

// DeleteReport deletes an owned report
func (s *ReportService) DeleteReport(ownerID, id string) error {
	if _, err := s.GetReport(ownerID, id); err != nil {
		return err
	}
	return s.reportRepo.Delete(id)
}
