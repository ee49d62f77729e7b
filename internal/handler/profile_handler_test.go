package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/service"
	"github.com/trigenthq/trigent/trigent-backend/internal/testutil"
)

func TestGetProfile_Success(t *testing.T) {
	e := echo.New()
	userRepo := testutil.NewMockUserRepository()
	profileService := service.NewProfileService(userRepo)
	handler := NewProfileHandler(profileService)

	subject := "google|profile123"
	name := "Test User"
	userRepo.AddUser(&domain.User{
		ID:       "user-1",
		Subject:  subject,
		Email:    "test@example.com",
		Name:     &name,
		Provider: domain.ProviderGoogle,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, subject, "user-1")

	if err := handler.GetProfile(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Email != "test@example.com" {
		t.Errorf("Expected email 'test@example.com', got %s", response.Email)
	}
	if response.Name == nil || *response.Name != name {
		t.Errorf("Expected name %q, got %v", name, response.Name)
	}
	if response.Plan != "free" {
		t.Errorf("Expected free plan without subscription, got %s", response.Plan)
	}
}

func TestGetProfile_MissingSubject(t *testing.T) {
	e := echo.New()
	handler := NewProfileHandler(service.NewProfileService(testutil.NewMockUserRepository()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetProfile(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestUpdateProfile_ValidationError(t *testing.T) {
	e := echo.New()
	userRepo := testutil.NewMockUserRepository()
	userRepo.AddUser(&domain.User{ID: "user-1", Subject: "google|profile123"})
	handler := NewProfileHandler(service.NewProfileService(userRepo))

	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(`{"name":"   "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, "google|profile123", "user-1")

	if err := handler.UpdateProfile(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if problem.Type != ErrorTypeValidation {
		t.Errorf("Expected validation problem type, got %s", problem.Type)
	}
}

func TestGetSubscription_ReturnsTrialStatus(t *testing.T) {
	e := echo.New()
	userRepo := testutil.NewMockUserRepository()
	profileService := service.NewProfileService(userRepo)
	handler := NewProfileHandler(profileService)

	subject := "google|sub123"
	user, err := userRepo.CreateOrGetBySubject(subject, "sub@example.com", nil, nil, domain.ProviderGoogle)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subscription", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, subject, user.ID)

	if err := handler.GetSubscription(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var status service.SubscriptionStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if status.Plan != domain.SubscriptionTrial {
		t.Errorf("Expected trial plan, got %s", status.Plan)
	}
	if status.TrialDaysLeft != 7 {
		t.Errorf("Expected 7 trial days, got %d", status.TrialDaysLeft)
	}
}
