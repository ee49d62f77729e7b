package service

import (
	"strings"
	"time"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// ProfileService handles profile and subscription business logic
type ProfileService struct {
	userRepo domain.UserRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo domain.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// GetProfile retrieves a user by identity-provider subject
func (s *ProfileService) GetProfile(subject string) (*domain.User, error) {
	return s.userRepo.GetBySubject(subject)
}

// UpdateProfile updates the user's display name
func (s *ProfileService) UpdateProfile(subject string, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	return s.userRepo.UpdateName(subject, name)
}

// SubscriptionStatus is the subscription view returned to clients,
// with the trial arithmetic already applied
type SubscriptionStatus struct {
	Plan          domain.SubscriptionType `json:"plan"`
	TrialStart    *time.Time              `json:"trial_start,omitempty"`
	TrialEnd      *time.Time              `json:"trial_end,omitempty"`
	TrialExpired  bool                    `json:"trial_expired"`
	TrialDaysLeft int                     `json:"trial_days_left"`
}

// GetSubscription computes the subscription status for a user
func (s *ProfileService) GetSubscription(subject string) (*SubscriptionStatus, error) {
	user, err := s.userRepo.GetBySubject(subject)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	status := &SubscriptionStatus{
		Plan:          user.Plan(),
		TrialExpired:  user.IsTrialExpired(now),
		TrialDaysLeft: user.TrialDaysLeft(now),
	}
	if user.Subscription != nil {
		status.TrialStart = user.Subscription.TrialStart
		status.TrialEnd = user.Subscription.TrialEnd
	}
	return status, nil
}

// Upgrade switches a user to the pro plan
func (s *ProfileService) Upgrade(subject string) (*domain.User, error) {
	user, err := s.userRepo.GetBySubject(subject)
	if err != nil {
		return nil, err
	}
	return s.userRepo.UpdateSubscription(user.ID, &domain.Subscription{Type: domain.SubscriptionPro})
}
