package service

import (
	"context"
	"errors"
	"testing"

	"github.com/trigenthq/trigent/trigent-backend/internal/ai"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/testutil"
)

func TestGenerateAutomation_PersistsFallbackWhenUnconfigured(t *testing.T) {
	automationRepo := testutil.NewMockAutomationRepository()
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	publisher := testutil.NewMockPublisher()
	svc := NewAutomationService(automationRepo, workspaceRepo, &ai.Client{}, publisher)

	created, err := svc.GenerateAutomation(context.Background(), "user-1", "", "automate our email newsletter")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.ID == "" {
		t.Fatal("Expected generated automation to be persisted with an id")
	}
	if created.OwnerID != "user-1" {
		t.Errorf("Expected owner user-1, got %s", created.OwnerID)
	}
	if created.Source != domain.SourceFallback {
		t.Errorf("Expected fallback source without a configured provider, got %s", created.Source)
	}
	if len(created.Steps) == 0 {
		t.Error("Expected generated automation to have steps")
	}

	events := publisher.Events()
	if len(events) != 1 {
		t.Fatalf("Expected 1 published event, got %d", len(events))
	}
	if events[0].UserID != "user-1" {
		t.Errorf("Expected event scoped to user-1, got %s", events[0].UserID)
	}
	if events[0].Event.Type != "automation.created" {
		t.Errorf("Expected automation.created event, got %s", events[0].Event.Type)
	}
}

func TestGetAutomation_ForeignOwnerIsNotFound(t *testing.T) {
	automationRepo := testutil.NewMockAutomationRepository()
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	publisher := testutil.NewMockPublisher()
	svc := NewAutomationService(automationRepo, workspaceRepo, &ai.Client{}, publisher)

	created, err := automationRepo.Create(&domain.Automation{
		Name:    "Nightly sync",
		OwnerID: "user-1",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := svc.GetAutomation("user-2", created.ID); !errors.Is(err, domain.ErrAutomationNotFound) {
		t.Errorf("Expected not-found for foreign owner, got %v", err)
	}
	if _, err := svc.GetAutomation("user-1", created.ID); err != nil {
		t.Errorf("Expected owner to read the automation, got %v", err)
	}
}

func TestUpdateAutomation_PreservesOwnerAndSource(t *testing.T) {
	automationRepo := testutil.NewMockAutomationRepository()
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	publisher := testutil.NewMockPublisher()
	svc := NewAutomationService(automationRepo, workspaceRepo, &ai.Client{}, publisher)

	created, err := svc.GenerateAutomation(context.Background(), "user-1", "", "onboard new customers")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	edit := *created
	edit.Name = "Renamed workflow"
	edit.OwnerID = "user-9"
	edit.Source = domain.SourceModel

	updated, err := svc.UpdateAutomation("user-1", &edit)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Name != "Renamed workflow" {
		t.Errorf("Expected name update to apply, got %s", updated.Name)
	}
	if updated.OwnerID != "user-1" {
		t.Errorf("Expected owner to be preserved, got %s", updated.OwnerID)
	}
	if updated.Source != created.Source {
		t.Errorf("Expected source to be preserved, got %s", updated.Source)
	}
}

func TestDeleteAutomation_PublishesEvent(t *testing.T) {
	automationRepo := testutil.NewMockAutomationRepository()
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	publisher := testutil.NewMockPublisher()
	svc := NewAutomationService(automationRepo, workspaceRepo, &ai.Client{}, publisher)

	created, err := svc.CreateAutomation("user-1", &domain.Automation{Name: "Weekly digest"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := svc.DeleteAutomation("user-1", created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := svc.GetAutomation("user-1", created.ID); !errors.Is(err, domain.ErrAutomationNotFound) {
		t.Errorf("Expected automation to be gone, got %v", err)
	}

	events := publisher.Events()
	last := events[len(events)-1]
	if last.Event.Type != "automation.deleted" {
		t.Errorf("Expected automation.deleted event, got %s", last.Event.Type)
	}
}
