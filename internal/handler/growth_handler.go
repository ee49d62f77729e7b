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

// GrowthHandler handles growth plan HTTP requests
type GrowthHandler struct {
	growthService *service.GrowthService
}

// NewGrowthHandler creates a new GrowthHandler
func NewGrowthHandler(growthService *service.GrowthService) *GrowthHandler {
	return &GrowthHandler{growthService: growthService}
}

// GenerateGrowthPlanRequest represents a growth strategy request
type GenerateGrowthPlanRequest struct {
	BusinessContext string `json:"businessContext"`
	CurrentMetrics  string `json:"currentMetrics"`
	TargetGoals     string `json:"targetGoals"`
	WorkspaceID     string `json:"workspaceId"`
}

// GeneratePlan handles POST /growth/generate
func (h *GrowthHandler) GeneratePlan(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req GenerateGrowthPlanRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	plan, err := h.growthService.GeneratePlan(c.Request().Context(), ownerID, service.GenerateGrowthPlanInput{
		WorkspaceID:     req.WorkspaceID,
		BusinessContext: req.BusinessContext,
		CurrentMetrics:  req.CurrentMetrics,
		TargetGoals:     req.TargetGoals,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "businessContext", Message: "Business context is required"},
			})
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to generate growth plan")
		return NewInternalError(c, "Failed to generate growth plan")
	}

	return c.JSON(http.StatusCreated, plan)
}

// GetPlans handles GET /growth
func (h *GrowthHandler) GetPlans(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	plans, err := h.growthService.GetPlans(ownerID)
	if err != nil {
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to list growth plans")
		return NewInternalError(c, "Failed to list growth plans")
	}

	return c.JSON(http.StatusOK, plans)
}

// GetPlan handles GET /growth/:id
func (h *GrowthHandler) GetPlan(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	plan, err := h.growthService.GetPlan(ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrGrowthPlanNotFound) {
			return NewNotFoundError(c, "Growth plan not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to get growth plan")
		return NewInternalError(c, "Failed to get growth plan")
	}

	return c.JSON(http.StatusOK, plan)
}

// UpdatePlan handles PUT /growth/:id
func (h *GrowthHandler) UpdatePlan(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var plan domain.GrowthPlan
	if err := c.Bind(&plan); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	plan.ID = c.Param("id")

	updated, err := h.growthService.UpdatePlan(ownerID, &plan)
	if err != nil {
		if errors.Is(err, domain.ErrGrowthPlanNotFound) {
			return NewNotFoundError(c, "Growth plan not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to update growth plan")
		return NewInternalError(c, "Failed to update growth plan")
	}

	return c.JSON(http.StatusOK, updated)
}

// DeletePlan handles DELETE /growth/:id
func (h *GrowthHandler) DeletePlan(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	if err := h.growthService.DeletePlan(ownerID, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrGrowthPlanNotFound) {
			return NewNotFoundError(c, "Growth plan not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to delete growth plan")
		return NewInternalError(c, "Failed to delete growth plan")
	}

	return c.NoContent(http.StatusNoContent)
}
