package domain

import (
	"math"
	"time"
)

// Provider identifies the identity provider a user signed in with
type Provider string

const (
	ProviderGoogle    Provider = "google"
	ProviderMicrosoft Provider = "microsoft"
	ProviderGuest     Provider = "guest"
)

// SubscriptionType is the plan a user is on
type SubscriptionType string

const (
	SubscriptionFree  SubscriptionType = "free"
	SubscriptionTrial SubscriptionType = "trial"
	SubscriptionPro   SubscriptionType = "pro"
)

// TrialDuration is the length of the trial window granted at first sign-in
const TrialDuration = 7 * 24 * time.Hour

// Subscription describes a user's plan and, for trials, the trial window
type Subscription struct {
	Type       SubscriptionType `json:"type"`
	TrialStart *time.Time       `json:"trial_start,omitempty"`
	TrialEnd   *time.Time       `json:"trial_end,omitempty"`
}

// NewTrialSubscription creates a trial subscription starting at now
func NewTrialSubscription(now time.Time) *Subscription {
	start := now
	end := now.Add(TrialDuration)
	return &Subscription{
		Type:       SubscriptionTrial,
		TrialStart: &start,
		TrialEnd:   &end,
	}
}

// User represents a user in the system
type User struct {
	ID           string        `json:"id"`
	Subject      string        `json:"subject"`
	Email        string        `json:"email"`
	Name         *string       `json:"name"`
	AvatarURL    *string       `json:"avatar_url"`
	Provider     Provider      `json:"provider"`
	Subscription *Subscription `json:"subscription,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Plan returns the effective subscription type. Absence of a
// subscription means free.
func (u *User) Plan() SubscriptionType {
	if u.Subscription == nil {
		return SubscriptionFree
	}
	return u.Subscription.Type
}

// IsTrialExpired reports whether the user's trial window has passed.
// Non-trial users are never expired.
func (u *User) IsTrialExpired(now time.Time) bool {
	if u.Plan() != SubscriptionTrial {
		return false
	}
	if u.Subscription.TrialEnd == nil {
		return false
	}
	return now.After(*u.Subscription.TrialEnd)
}

// TrialDaysLeft returns the number of whole days remaining in the trial
// window, rounded up and clamped to zero. Non-trial users get zero.
func (u *User) TrialDaysLeft(now time.Time) int {
	if u.Plan() != SubscriptionTrial || u.Subscription.TrialEnd == nil {
		return 0
	}
	remaining := u.Subscription.TrialEnd.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	GetByID(id string) (*User, error)
	GetBySubject(subject string) (*User, error)
	// CreateOrGetBySubject returns the existing user for subject or creates
	// one. First write wins: a second create for the same subject returns
	// the original record unchanged.
	CreateOrGetBySubject(subject, email string, name, avatarURL *string, provider Provider) (*User, error)
	UpdateName(subject string, name string) (*User, error)
	UpdateSubscription(id string, sub *Subscription) (*User, error)
}
