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

// SWOTHandler handles SWOT analysis HTTP requests
type SWOTHandler struct {
	swotService *service.SWOTService
}

// NewSWOTHandler creates a new SWOTHandler
func NewSWOTHandler(swotService *service.SWOTService) *SWOTHandler {
	return &SWOTHandler{swotService: swotService}
}

// GenerateSWOTRequest represents a SWOT generation request
type GenerateSWOTRequest struct {
	BusinessContext string `json:"businessContext"`
	WorkspaceID     string `json:"workspaceId"`
}

// GenerateAnalysis handles POST /swot/generate
func (h *SWOTHandler) GenerateAnalysis(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req GenerateSWOTRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	analysis, err := h.swotService.GenerateAnalysis(c.Request().Context(), ownerID, req.WorkspaceID, req.BusinessContext)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "businessContext", Message: "Business context is required"},
			})
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to generate SWOT analysis")
		return NewInternalError(c, "Failed to generate SWOT analysis")
	}

	return c.JSON(http.StatusCreated, analysis)
}

// GetAnalyses handles GET /swot
func (h *SWOTHandler) GetAnalyses(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	analyses, err := h.swotService.GetAnalyses(ownerID)
	if err != nil {
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to list SWOT analyses")
		return NewInternalError(c, "Failed to list SWOT analyses")
	}

	return c.JSON(http.StatusOK, analyses)
}

// GetAnalysis handles GET /swot/:id
func (h *SWOTHandler) GetAnalysis(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	analysis, err := h.swotService.GetAnalysis(ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAnalysisNotFound) {
			return NewNotFoundError(c, "Analysis not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to get SWOT analysis")
		return NewInternalError(c, "Failed to get SWOT analysis")
	}

	return c.JSON(http.StatusOK, analysis)
}

// DeleteAnalysis handles DELETE /swot/:id
func (h *SWOTHandler) DeleteAnalysis(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	if err := h.swotService.DeleteAnalysis(ownerID, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrAnalysisNotFound) {
			return NewNotFoundError(c, "Analysis not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to delete SWOT analysis")
		return NewInternalError(c, "Failed to delete SWOT analysis")
	}

	return c.NoContent(http.StatusNoContent)
}
