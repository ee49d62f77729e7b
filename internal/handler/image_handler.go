package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/trigenthq/trigent/trigent-backend/internal/image"
	"github.com/trigenthq/trigent/trigent-backend/internal/middleware"
	"github.com/trigenthq/trigent/trigent-backend/internal/service"
)

// maxImageOptions caps how many variations one request may ask for
const maxImageOptions = 4

// ImageHandler handles standalone image acquisition requests
type ImageHandler struct {
	acquirer     *image.Acquirer
	imageService *service.ImageService
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(acquirer *image.Acquirer, imageService *service.ImageService) *ImageHandler {
	return &ImageHandler{
		acquirer:     acquirer,
		imageService: imageService,
	}
}

// AcquireImageRequest represents an image acquisition request
type AcquireImageRequest struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style"`
	Count  int    `json:"count"`
}

// AcquireImageResponse carries the acquired image references
type AcquireImageResponse struct {
	Options []string `json:"options"`
}

// Acquire handles POST /images/acquire. It always returns at least one
// usable reference; the acquisition tiers bottom out at a deterministic
// placeholder.
func (h *ImageHandler) Acquire(c echo.Context) error {
	ownerID := middleware.GetUserID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req AcquireImageRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "prompt", Message: "Prompt is required"},
		})
	}

	count := req.Count
	if count < 1 {
		count = 1
	}
	if count > maxImageOptions {
		count = maxImageOptions
	}

	ctx := c.Request().Context()
	options := h.acquirer.AcquireOptions(ctx, req.Prompt, image.Style(req.Style), count)

	// Inline data URLs are persisted so the response stays small
	if h.imageService.IsEnabled() {
		for i, ref := range options {
			options[i] = h.imageService.ResolveReference(ctx, ownerID, "acquired", ref)
		}
	}

	return c.JSON(http.StatusOK, AcquireImageResponse{Options: options})
}
