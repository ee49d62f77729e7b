package domain

import (
	"testing"
	"time"
)

func trialUser(end time.Time) *User {
	start := end.Add(-TrialDuration)
	return &User{
		ID:      "u1",
		Subject: "google|abc",
		Email:   "trial@example.com",
		Subscription: &Subscription{
			Type:       SubscriptionTrial,
			TrialStart: &start,
			TrialEnd:   &end,
		},
	}
}

func TestTrialDaysLeft_FutureEnd(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	user := trialUser(now.Add(3 * 24 * time.Hour))

	if user.IsTrialExpired(now) {
		t.Error("Expected trial not expired")
	}
	if days := user.TrialDaysLeft(now); days != 3 {
		t.Errorf("Expected 3 days left, got %d", days)
	}
}

func TestTrialDaysLeft_PastEnd(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	user := trialUser(now.Add(-24 * time.Hour))

	if !user.IsTrialExpired(now) {
		t.Error("Expected trial expired")
	}
	if days := user.TrialDaysLeft(now); days != 0 {
		t.Errorf("Expected 0 days left (clamped), got %d", days)
	}
}

func TestTrialDaysLeft_PartialDayRoundsUp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	user := trialUser(now.Add(36 * time.Hour))

	if days := user.TrialDaysLeft(now); days != 2 {
		t.Errorf("Expected 2 days left (rounded up), got %d", days)
	}
}

func TestPlan_NoSubscriptionMeansFree(t *testing.T) {
	user := &User{ID: "u2", Email: "free@example.com"}

	if plan := user.Plan(); plan != SubscriptionFree {
		t.Errorf("Expected free plan, got %s", plan)
	}
	if user.IsTrialExpired(time.Now()) {
		t.Error("Free user should never report an expired trial")
	}
	if days := user.TrialDaysLeft(time.Now()); days != 0 {
		t.Errorf("Expected 0 days left for free user, got %d", days)
	}
}

func TestNewTrialSubscription_Window(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	sub := NewTrialSubscription(now)

	if sub.Type != SubscriptionTrial {
		t.Errorf("Expected trial type, got %s", sub.Type)
	}
	if !sub.TrialEnd.After(*sub.TrialStart) {
		t.Error("Expected trial_end after trial_start")
	}
	if got := sub.TrialEnd.Sub(*sub.TrialStart); got != TrialDuration {
		t.Errorf("Expected %v trial window, got %v", TrialDuration, got)
	}
}
