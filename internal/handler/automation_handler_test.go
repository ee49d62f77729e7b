package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/trigenthq/trigent/trigent-backend/internal/ai"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/service"
	"github.com/trigenthq/trigent/trigent-backend/internal/testutil"
)

func newAutomationHandler() (*AutomationHandler, *testutil.MockAutomationRepository, *testutil.MockPublisher) {
	automationRepo := testutil.NewMockAutomationRepository()
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	publisher := testutil.NewMockPublisher()
	svc := service.NewAutomationService(automationRepo, workspaceRepo, &ai.Client{}, publisher)
	return NewAutomationHandler(svc), automationRepo, publisher
}

func TestGenerateAutomation_Success(t *testing.T) {
	e := echo.New()
	handler, _, publisher := newAutomationHandler()

	body := `{"description":"automate our email newsletter"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/automations/generate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, "google|gen123", "user-1")

	if err := handler.GenerateAutomation(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var automation domain.Automation
	if err := json.Unmarshal(rec.Body.Bytes(), &automation); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if automation.Name == "" {
		t.Error("Expected generated automation to have a name")
	}
	if len(automation.Steps) == 0 {
		t.Error("Expected generated automation to have steps")
	}
	if automation.OwnerID != "user-1" {
		t.Errorf("Expected owner user-1, got %s", automation.OwnerID)
	}

	if len(publisher.Events()) != 1 {
		t.Errorf("Expected 1 published event, got %d", len(publisher.Events()))
	}
}

func TestGenerateAutomation_MissingDescription(t *testing.T) {
	e := echo.New()
	handler, _, _ := newAutomationHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/automations/generate", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, "google|gen123", "user-1")

	if err := handler.GenerateAutomation(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetAutomation_NotFoundForForeignOwner(t *testing.T) {
	e := echo.New()
	handler, automationRepo, _ := newAutomationHandler()

	created, err := automationRepo.Create(&domain.Automation{Name: "Nightly sync", OwnerID: "user-1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/automations/"+created.ID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	setupAuthContext(c, "google|other", "user-2")

	if err := handler.GetAutomation(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}
