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

// WorkspaceHandler handles workspace HTTP requests
type WorkspaceHandler struct {
	workspaceService *service.WorkspaceService
}

// NewWorkspaceHandler creates a new WorkspaceHandler
func NewWorkspaceHandler(workspaceService *service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

// WorkspaceRequest represents a create or update workspace request
type WorkspaceRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Color          string `json:"color"`
	Icon           string `json:"icon"`
	AIInstructions string `json:"aiInstructions"`
}

func (r WorkspaceRequest) toInput() service.CreateWorkspaceInput {
	return service.CreateWorkspaceInput{
		Name:           r.Name,
		Description:    r.Description,
		Color:          r.Color,
		Icon:           r.Icon,
		AIInstructions: r.AIInstructions,
	}
}

// CreateWorkspace handles POST /workspaces
func (h *WorkspaceHandler) CreateWorkspace(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req WorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	workspace, err := h.workspaceService.CreateWorkspace(ownerID, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) || errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to create workspace")
		return NewInternalError(c, "Failed to create workspace")
	}

	return c.JSON(http.StatusCreated, workspace)
}

// GetWorkspaces handles GET /workspaces
func (h *WorkspaceHandler) GetWorkspaces(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	workspaces, err := h.workspaceService.GetWorkspaces(ownerID)
	if err != nil {
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to list workspaces")
		return NewInternalError(c, "Failed to list workspaces")
	}

	return c.JSON(http.StatusOK, workspaces)
}

// GetWorkspace handles GET /workspaces/:id
func (h *WorkspaceHandler) GetWorkspace(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	workspace, err := h.workspaceService.GetWorkspace(ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrWorkspaceNotFound) {
			return NewNotFoundError(c, "Workspace not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to get workspace")
		return NewInternalError(c, "Failed to get workspace")
	}

	return c.JSON(http.StatusOK, workspace)
}

// UpdateWorkspace handles PUT /workspaces/:id
func (h *WorkspaceHandler) UpdateWorkspace(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req WorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	workspace, err := h.workspaceService.UpdateWorkspace(ownerID, c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkspaceNotFound):
			return NewNotFoundError(c, "Workspace not found")
		case errors.Is(err, domain.ErrNameRequired), errors.Is(err, domain.ErrNameTooLong):
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to update workspace")
		return NewInternalError(c, "Failed to update workspace")
	}

	return c.JSON(http.StatusOK, workspace)
}

// DeleteWorkspace handles DELETE /workspaces/:id
func (h *WorkspaceHandler) DeleteWorkspace(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	if err := h.workspaceService.DeleteWorkspace(ownerID, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrWorkspaceNotFound) {
			return NewNotFoundError(c, "Workspace not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to delete workspace")
		return NewInternalError(c, "Failed to delete workspace")
	}

	return c.NoContent(http.StatusNoContent)
}
