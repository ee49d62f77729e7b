package service

import (
	"testing"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/testutil"
)

func TestHandleCallback_CreatesUserWithDefaultWorkspace(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	svc := NewAuthService(userRepo, workspaceRepo)

	name := "Ada"
	user, err := svc.HandleCallback("google|123", "ada@example.com", &name, nil, domain.ProviderGoogle)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.ID == "" {
		t.Fatal("Expected user to have an id")
	}
	if user.Plan() != domain.SubscriptionTrial {
		t.Errorf("Expected trial plan for first sign-in, got %s", user.Plan())
	}

	workspaces, err := workspaceRepo.ListByOwner(user.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(workspaces) != 1 {
		t.Fatalf("Expected 1 default workspace, got %d", len(workspaces))
	}
	if workspaces[0].Name != "My Workspace" {
		t.Errorf("Expected default workspace name, got %q", workspaces[0].Name)
	}
}

func TestHandleCallback_RepeatedCallbackReturnsSameUser(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	svc := NewAuthService(userRepo, workspaceRepo)

	first, err := svc.HandleCallback("google|123", "ada@example.com", nil, nil, domain.ProviderGoogle)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := svc.HandleCallback("google|123", "ada@example.com", nil, nil, domain.ProviderGoogle)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("Expected same user on repeated callback, got %s and %s", first.ID, second.ID)
	}

	workspaces, _ := workspaceRepo.ListByOwner(first.ID)
	if len(workspaces) != 1 {
		t.Errorf("Expected workspace not to be duplicated, got %d", len(workspaces))
	}
}

func TestHandleCallback_GuestGetsNoTrial(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	svc := NewAuthService(userRepo, workspaceRepo)

	user, err := svc.HandleCallback("guest|abc", "", nil, nil, domain.ProviderGuest)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Plan() != domain.SubscriptionFree {
		t.Errorf("Expected guest to be on free plan, got %s", user.Plan())
	}
}
