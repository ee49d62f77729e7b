package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/middleware"
	"github.com/trigenthq/trigent/trigent-backend/internal/service"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GenerateReportRequest represents an analysis-backed report request
type GenerateReportRequest struct {
	Name        string                     `json:"name"`
	Type        domain.ReportType          `json:"type"`
	WorkspaceID string                     `json:"workspaceId"`
	Query       string                     `json:"query"`
	Metrics     map[string]decimal.Decimal `json:"metrics"`
	PeriodStart time.Time                  `json:"periodStart"`
	PeriodEnd   time.Time                  `json:"periodEnd"`
}

// CreateReport handles POST /reports
func (h *ReportHandler) CreateReport(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var report domain.Report
	if err := c.Bind(&report); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	created, err := h.reportService.CreateReport(ownerID, &report)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to create report")
		return NewInternalError(c, "Failed to create report")
	}

	return c.JSON(http.StatusCreated, created)
}

// GenerateReport handles POST /reports/generate
func (h *ReportHandler) GenerateReport(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req GenerateReportRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	report, err := h.reportService.GenerateReport(c.Request().Context(), ownerID, service.GenerateReportInput{
		Name:        req.Name,
		Type:        req.Type,
		WorkspaceID: req.WorkspaceID,
		Query:       req.Query,
		Metrics:     req.Metrics,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to generate report")
		return NewInternalError(c, "Failed to generate report")
	}

	return c.JSON(http.StatusCreated, report)
}

// GetReports handles GET /reports
func (h *ReportHandler) GetReports(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	reports, err := h.reportService.GetReports(ownerID)
	if err != nil {
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to list reports")
		return NewInternalError(c, "Failed to list reports")
	}

	return c.JSON(http.StatusOK, reports)
}

// GetReport handles GET /reports/:id
func (h *ReportHandler) GetReport(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	report, err := h.reportService.GetReport(ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			return NewNotFoundError(c, "Report not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to get report")
		return NewInternalError(c, "Failed to get report")
	}

	return c.JSON(http.StatusOK, report)
}

// UpdateReport handles PUT /reports/:id
func (h *ReportHandler) UpdateReport(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var report domain.Report
	if err := c.Bind(&report); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	report.ID = c.Param("id")

	updated, err := h.reportService.UpdateReport(ownerID, &report)
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			return NewNotFoundError(c, "Report not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to update report")
		return NewInternalError(c, "Failed to update report")
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteReport handles DELETE /reports/:id
func (h *ReportHandler) DeleteReport(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	if err := h.reportService.DeleteReport(ownerID, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			return NewNotFoundError(c, "Report not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to delete report")
		return NewInternalError(c, "Failed to delete report")
	}

	return c.NoContent(http.StatusNoContent)
}
