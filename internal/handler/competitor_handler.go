package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/middleware"
	"github.com/trigenthq/trigent/trigent-backend/internal/service"
)

// CompetitorHandler handles competitor analysis HTTP requests
type CompetitorHandler struct {
	competitorService *service.CompetitorService
}

// NewCompetitorHandler creates a new CompetitorHandler
func NewCompetitorHandler(competitorService *service.CompetitorService) *CompetitorHandler {
	return &CompetitorHandler{competitorService: competitorService}
}

// AnalyzeCompetitorsRequest represents a competitive landscape request
type AnalyzeCompetitorsRequest struct {
	Industry    string `json:"industry"`
	MarketScope string `json:"marketScope"`
	WorkspaceID string `json:"workspaceId"`
}

// AnalyzeCompetitors handles POST /competitors/analyze
func (h *CompetitorHandler) AnalyzeCompetitors(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req AnalyzeCompetitorsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	analysis, err := h.competitorService.AnalyzeCompetitors(c.Request().Context(), ownerID, req.WorkspaceID, req.Industry, req.MarketScope)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "industry", Message: "Industry is required"},
			})
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to analyze competitors")
		return NewInternalError(c, "Failed to analyze competitors")
	}

	return c.JSON(http.StatusCreated, analysis)
}

// GetAnalyses handles GET /competitors
func (h *CompetitorHandler) GetAnalyses(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	analyses, err := h.competitorService.GetAnalyses(ownerID)
	if err != nil {
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to list competitor analyses")
		return NewInternalError(c, "Failed to list competitor analyses")
	}

	return c.JSON(http.StatusOK, analyses)
}

// GetAnalysis handles GET /competitors/:id
func (h *CompetitorHandler) GetAnalysis(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	analysis, err := h.competitorService.GetAnalysis(ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAnalysisNotFound) {
			return NewNotFoundError(c, "Analysis not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to get competitor analysis")
		return NewInternalError(c, "Failed to get competitor analysis")
	}

	return c.JSON(http.StatusOK, analysis)
}

// DeleteAnalysis handles DELETE /competitors/:id
func (h *CompetitorHandler) DeleteAnalysis(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	if err := h.competitorService.DeleteAnalysis(ownerID, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrAnalysisNotFound) {
			return NewNotFoundError(c, "Analysis not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to delete competitor analysis")
		return NewInternalError(c, "Failed to delete competitor analysis")
	}

	return c.NoContent(http.StatusNoContent)
}
