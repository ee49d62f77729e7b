package localdb

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "store.json"))
}

func TestNewID_DistinctWithinOneTick(t *testing.T) {
	db := testDB(t)

	const n = 500
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id := db.NewID()
		if seen[id] {
			t.Fatalf("Duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestCreateThenList_RoundTrip(t *testing.T) {
	db := testDB(t)
	repo := NewAutomationRepository(db)

	automation := &domain.Automation{
		OwnerID:     "owner-1",
		WorkspaceID: "ws-1",
		Name:        "Weekly digest",
		Description: "Send the weekly metrics digest",
		Steps: []domain.AutomationStep{
			{ID: "step-1", Title: "Collect metrics", Type: domain.StepTrigger, EstimatedTime: "5 minutes"},
			{ID: "step-2", Title: "Compose email", Type: domain.StepAction, Requirements: []string{"Email template"}},
		},
		EstimatedTotalTime: "10 minutes",
		Difficulty:         "easy",
		Tags:               []string{"email", "digest"},
		Source:             domain.SourceModel,
	}

	created, err := repo.Create(automation)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.ID == "" {
		t.Fatal("Expected generated id")
	}
	if created.Status != domain.AutomationInactive {
		t.Errorf("Expected inactive status, got %s", created.Status)
	}

	listed, err := repo.ListByOwner("owner-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("Expected 1 automation, got %d", len(listed))
	}

	got := listed[0]
	if got.ID != created.ID || got.Name != "Weekly digest" || got.Description != "Send the weekly metrics digest" {
		t.Errorf("Round-trip lost fields: %+v", got)
	}
	if len(got.Steps) != 2 || got.Steps[0].Type != domain.StepTrigger || got.Steps[1].Requirements[0] != "Email template" {
		t.Errorf("Round-trip lost step payload: %+v", got.Steps)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "email" {
		t.Errorf("Round-trip lost tags: %v", got.Tags)
	}
}

func TestListByOwner_FiltersAndOrders(t *testing.T) {
	db := testDB(t)
	repo := NewReportRepository(db)

	for _, owner := range []string{"owner-a", "owner-b", "owner-a"} {
		_, err := repo.Create(&domain.Report{
			OwnerID: owner,
			Name:    "Report for " + owner,
			Type:    domain.ReportSales,
			Status:  domain.ReportCompleted,
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	reports, err := repo.ListByOwner("owner-a")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("Expected 2 reports for owner-a, got %d", len(reports))
	}
	for _, r := range reports {
		if r.OwnerID != "owner-a" {
			t.Errorf("Leaked record from other owner: %+v", r)
		}
	}
	if reports[0].CreatedAt.Before(reports[1].CreatedAt) {
		t.Error("Expected newest-first ordering")
	}
}

func TestUpdateDelete(t *testing.T) {
	db := testDB(t)
	repo := NewAutomationRepository(db)

	created, err := repo.Create(&domain.Automation{OwnerID: "o", Name: "A"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	created.Status = domain.AutomationActive
	updated, err := repo.Update(created)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Status != domain.AutomationActive {
		t.Errorf("Expected active status, got %s", updated.Status)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Update must not rewrite created_at")
	}

	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := repo.GetByID(created.ID); err != domain.ErrAutomationNotFound {
		t.Errorf("Expected ErrAutomationNotFound, got %v", err)
	}
}

func TestCreate_RejectsUnknownStepType(t *testing.T) {
	db := testDB(t)
	repo := NewAutomationRepository(db)

	_, err := repo.Create(&domain.Automation{
		OwnerID: "o",
		Name:    "Bad",
		Steps:   []domain.AutomationStep{{ID: "s", Title: "x", Type: "loop"}},
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestLoad_CorruptFileIsHardError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	repo := NewUserRepository(Open(path))

	_, err := repo.GetBySubject("google|abc")
	if !errors.Is(err, domain.ErrStoreCorrupted) {
		t.Errorf("Expected ErrStoreCorrupted, got %v", err)
	}
}

func TestCreateOrGetBySubject_FirstWriteWins(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	name := "First Name"
	first, err := repo.CreateOrGetBySubject("google|123", "a@example.com", &name, nil, domain.ProviderGoogle)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first.Subscription == nil || first.Subscription.Type != domain.SubscriptionTrial {
		t.Fatalf("Expected trial subscription, got %+v", first.Subscription)
	}
	if !first.Subscription.TrialEnd.After(*first.Subscription.TrialStart) {
		t.Error("Expected trial_end after trial_start")
	}

	other := "Second Name"
	second, err := repo.CreateOrGetBySubject("google|123", "b@example.com", &other, nil, domain.ProviderGoogle)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second.ID != first.ID || second.Email != "a@example.com" {
		t.Errorf("Second create must return the original record, got %+v", second)
	}
}

func TestCreateOrGetBySubject_GuestGetsNoTrial(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	guest, err := repo.CreateOrGetBySubject("guest|1", "guest@local", nil, nil, domain.ProviderGuest)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if guest.Subscription != nil {
		t.Errorf("Expected no subscription for guest, got %+v", guest.Subscription)
	}
	if guest.Plan() != domain.SubscriptionFree {
		t.Errorf("Expected free plan, got %s", guest.Plan())
	}
}
