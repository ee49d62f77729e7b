package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/middleware"
	"github.com/trigenthq/trigent/trigent-backend/internal/service"
)

// AutomationHandler handles automation HTTP requests
type AutomationHandler struct {
	automationService *service.AutomationService
}

// NewAutomationHandler creates a new AutomationHandler
func NewAutomationHandler(automationService *service.AutomationService) *AutomationHandler {
	return &AutomationHandler{automationService: automationService}
}

// GenerateAutomationRequest represents a workflow generation request
type GenerateAutomationRequest struct {
	Description string `json:"description"`
	WorkspaceID string `json:"workspaceId"`
}

// CreateAutomation handles POST /automations
func (h *AutomationHandler) CreateAutomation(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var automation domain.Automation
	if err := c.Bind(&automation); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	created, err := h.automationService.CreateAutomation(ownerID, &automation)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNameRequired) || errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to create automation")
		return NewInternalError(c, "Failed to create automation")
	}

	return c.JSON(http.StatusCreated, created)
}

// GenerateAutomation handles POST /automations/generate
func (h *AutomationHandler) GenerateAutomation(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req GenerateAutomationRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if strings.TrimSpace(req.Description) == "" {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "description", Message: "Description is required"},
		})
	}

	automation, err := h.automationService.GenerateAutomation(c.Request().Context(), ownerID, req.WorkspaceID, req.Description)
	if err != nil {
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to generate automation")
		return NewInternalError(c, "Failed to generate automation")
	}

	return c.JSON(http.StatusCreated, automation)
}

// GetAutomations handles GET /automations
func (h *AutomationHandler) GetAutomations(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	automations, err := h.automationService.GetAutomations(ownerID)
	if err != nil {
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to list automations")
		return NewInternalError(c, "Failed to list automations")
	}

	return c.JSON(http.StatusOK, automations)
}

// GetAutomation handles GET /automations/:id
func (h *AutomationHandler) GetAutomation(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	automation, err := h.automationService.GetAutomation(ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAutomationNotFound) {
			return NewNotFoundError(c, "Automation not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to get automation")
		return NewInternalError(c, "Failed to get automation")
	}

	return c.JSON(http.StatusOK, automation)
}

// UpdateAutomation handles PUT /automations/:id
func (h *AutomationHandler) UpdateAutomation(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var automation domain.Automation
	if err := c.Bind(&automation); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	automation.ID = c.Param("id")

	updated, err := h.automationService.UpdateAutomation(ownerID, &automation)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAutomationNotFound):
			return NewNotFoundError(c, "Automation not found")
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrNameRequired), errors.Is(err, domain.ErrNameTooLong):
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to update automation")
		return NewInternalError(c, "Failed to update automation")
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteAutomation handles DELETE /automations/:id
func (h *AutomationHandler) DeleteAutomation(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	if err := h.automationService.DeleteAutomation(ownerID, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrAutomationNotFound) {
			return NewNotFoundError(c, "Automation not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to delete automation")
		return NewInternalError(c, "Failed to delete automation")
	}

	return c.NoContent(http.StatusNoContent)
}
