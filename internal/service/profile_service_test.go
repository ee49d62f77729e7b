package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/testutil"
)

func seedUser(userRepo *testutil.MockUserRepository, sub *domain.Subscription) *domain.User {
	user := &domain.User{
		ID:           "user-1",
		Subject:      "google|123",
		Email:        "ada@example.com",
		Provider:     domain.ProviderGoogle,
		Subscription: sub,
	}
	userRepo.AddUser(user)
	return user
}

func TestGetSubscription_ActiveTrial(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	seedUser(userRepo, domain.NewTrialSubscription(time.Now().UTC()))
	svc := NewProfileService(userRepo)

	status, err := svc.GetSubscription("google|123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if status.Plan != domain.SubscriptionTrial {
		t.Errorf("Expected trial plan, got %s", status.Plan)
	}
	if status.TrialExpired {
		t.Error("Expected fresh trial not to be expired")
	}
	if status.TrialDaysLeft != 7 {
		t.Errorf("Expected 7 days left on a fresh trial, got %d", status.TrialDaysLeft)
	}
}

func TestGetSubscription_ExpiredTrial(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	start := time.Now().UTC().Add(-8 * 24 * time.Hour)
	seedUser(userRepo, domain.NewTrialSubscription(start))
	svc := NewProfileService(userRepo)

	status, err := svc.GetSubscription("google|123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !status.TrialExpired {
		t.Error("Expected trial started 8 days ago to be expired")
	}
	if status.TrialDaysLeft != 0 {
		t.Errorf("Expected 0 days left, got %d", status.TrialDaysLeft)
	}
}

func TestGetSubscription_NoSubscription(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	seedUser(userRepo, nil)
	svc := NewProfileService(userRepo)

	status, err := svc.GetSubscription("google|123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if status.Plan != domain.SubscriptionFree {
		t.Errorf("Expected free plan, got %s", status.Plan)
	}
	if status.TrialExpired || status.TrialDaysLeft != 0 {
		t.Error("Expected no trial arithmetic for free users")
	}
}

func TestUpgrade_SwitchesToPro(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	seedUser(userRepo, domain.NewTrialSubscription(time.Now().UTC()))
	svc := NewProfileService(userRepo)

	user, err := svc.Upgrade("google|123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Plan() != domain.SubscriptionPro {
		t.Errorf("Expected pro plan after upgrade, got %s", user.Plan())
	}

	status, err := svc.GetSubscription("google|123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if status.TrialExpired {
		t.Error("Expected pro users never to report an expired trial")
	}
}

func TestUpdateProfile_Validation(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	seedUser(userRepo, nil)
	svc := NewProfileService(userRepo)

	if _, err := svc.UpdateProfile("google|123", "   "); !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired for blank name, got %v", err)
	}
	if _, err := svc.UpdateProfile("google|123", strings.Repeat("a", domain.MaxNameLength+1)); !errors.Is(err, domain.ErrNameTooLong) {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}

	user, err := svc.UpdateProfile("google|123", "  Ada Lovelace  ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Name == nil || *user.Name != "Ada Lovelace" {
		t.Errorf("Expected trimmed name, got %v", user.Name)
	}
}
