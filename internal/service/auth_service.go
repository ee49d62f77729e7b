package service

import (
	"github.com/rs/zerolog/log"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// defaultWorkspace is provisioned at first sign-in so generation
// endpoints always have a workspace to resolve instructions from
var defaultWorkspace = domain.Workspace{
	Name:        "My Workspace",
	Description: "Your default workspace",
	Color:       "#4F46E5",
	Icon:        "layout-dashboard",
}

// AuthService handles sign-in callbacks and onboarding
type AuthService struct {
	userRepo      domain.UserRepository
	workspaceRepo domain.WorkspaceRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, workspaceRepo domain.WorkspaceRepository) *AuthService {
	return &AuthService{userRepo: userRepo, workspaceRepo: workspaceRepo}
}

// HandleCallback creates or fetches the user for an identity-provider
// subject and makes sure a default workspace exists. Non-guest first
// sign-ins start a trial; a repeated callback for the same subject
// returns the original record (first write wins).
func (s *AuthService) HandleCallback(subject, email string, name, avatarURL *string, provider domain.Provider) (*domain.User, error) {
	user, err := s.userRepo.CreateOrGetBySubject(subject, email, name, avatarURL, provider)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Failed to create or get user")
		return nil, err
	}

	workspaces, err := s.workspaceRepo.ListByOwner(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to list workspaces")
		return nil, err
	}
	if len(workspaces) == 0 {
		ws := defaultWorkspace
		ws.OwnerID = user.ID
		if _, err := s.workspaceRepo.Create(&ws); err != nil {
			// The user record exists, so report but do not fail the sign-in
			log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to create default workspace")
		} else {
			log.Info().Str("user_id", user.ID).Msg("Created new user with default workspace")
		}
	}

	return user, nil
}
