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

// SocialHandler handles social post HTTP requests
type SocialHandler struct {
	socialService *service.SocialService
}

// NewSocialHandler creates a new SocialHandler
func NewSocialHandler(socialService *service.SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

// GeneratePostRequest represents a social post generation request
type GeneratePostRequest struct {
	Topic       string `json:"topic"`
	Platform    string `json:"platform"`
	WorkspaceID string `json:"workspaceId"`
}

// GeneratePost handles POST /social-posts/generate
func (h *SocialHandler) GeneratePost(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req GeneratePostRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	post, err := h.socialService.GeneratePost(c.Request().Context(), ownerID, req.WorkspaceID, req.Platform, req.Topic)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "topic", Message: "Topic is required"},
			})
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to generate social post")
		return NewInternalError(c, "Failed to generate social post")
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPosts handles GET /social-posts
func (h *SocialHandler) GetPosts(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	posts, err := h.socialService.GetPosts(ownerID)
	if err != nil {
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to list social posts")
		return NewInternalError(c, "Failed to list social posts")
	}

	return c.JSON(http.StatusOK, posts)
}

// GetPost handles GET /social-posts/:id
func (h *SocialHandler) GetPost(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	post, err := h.socialService.GetPost(ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSocialPostNotFound) {
			return NewNotFoundError(c, "Social post not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to get social post")
		return NewInternalError(c, "Failed to get social post")
	}

	return c.JSON(http.StatusOK, post)
}

// UpdatePost handles PUT /social-posts/:id
func (h *SocialHandler) UpdatePost(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var post domain.SocialPost
	if err := c.Bind(&post); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	post.ID = c.Param("id")

	updated, err := h.socialService.UpdatePost(ownerID, &post)
	if err != nil {
		if errors.Is(err, domain.ErrSocialPostNotFound) {
			return NewNotFoundError(c, "Social post not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to update social post")
		return NewInternalError(c, "Failed to update social post")
	}

	return c.JSON(http.StatusOK, updated)
}

// DeletePost handles DELETE /social-posts/:id
func (h *SocialHandler) DeletePost(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	if err := h.socialService.DeletePost(ownerID, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrSocialPostNotFound) {
			return NewNotFoundError(c, "Social post not found")
		}
		log.Error().Err(err).Str("user_id", ownerID).Msg("Failed to delete social post")
		return NewInternalError(c, "Failed to delete social post")
	}

	return c.NoContent(http.StatusNoContent)
}
