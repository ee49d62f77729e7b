package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/middleware"
	"github.com/trigenthq/trigent/trigent-backend/internal/service"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService    *service.AuthService
	profileService *service.ProfileService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService, profileService *service.ProfileService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		profileService: profileService,
	}
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Name      *string         `json:"name"`
	AvatarURL *string         `json:"avatarUrl"`
	Provider  domain.Provider `json:"provider"`
	Plan      string          `json:"plan"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		Provider:  user.Provider,
		Plan:      string(user.Plan()),
	}
}

// Callback handles the identity-provider callback after sign-in.
// The frontend calls this once it holds a valid token; the guest
// identity in local mode lands here too.
// POST /auth/callback
func (h *AuthHandler) Callback(c echo.Context) error {
	subject := middleware.GetSubject(c)
	if subject == "" {
		log.Error().Msg("No subject in context - auth middleware may not be configured")
		return NewUnauthorizedError(c, "Authentication required")
	}

	provider := domain.ProviderGoogle
	if subject == middleware.GuestSubject {
		provider = domain.ProviderGuest
	}

	var email, name, picture string
	if claims := middleware.GetCustomClaims(c); claims != nil {
		email = claims.Email
		name = claims.Name
		picture = claims.Picture
	}

	// Email is required for non-guest user creation
	if email == "" && provider != domain.ProviderGuest {
		log.Error().Str("subject", subject).Msg("No email in JWT claims")
		return NewValidationError(c, "Email is required for authentication", []ValidationError{
			{Field: "email", Message: "Email claim is missing from token"},
		})
	}

	var namePtr, picturePtr *string
	if name != "" {
		namePtr = &name
	}
	if picture != "" {
		picturePtr = &picture
	}

	user, err := h.authService.HandleCallback(subject, email, namePtr, picturePtr, provider)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Failed to authenticate user")
		return NewInternalError(c, "Failed to authenticate user")
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Me returns the current authenticated user's information
// GET /auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	subject := middleware.GetSubject(c)
	if subject == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	user, err := h.profileService.GetProfile(subject)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Failed to get user")
		return NewNotFoundError(c, "User not found")
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}
