package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/trigenthq/trigent/trigent-backend/internal/ai"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/image"
	"github.com/trigenthq/trigent/trigent-backend/internal/testutil"
)

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("network unavailable")
}

func offlineAcquirer() *image.Acquirer {
	return image.NewAcquirer(nil, &http.Client{Transport: failingTransport{}})
}

func TestGeneratePost_ThreeDistinctImageOptions(t *testing.T) {
	postRepo := testutil.NewMockSocialPostRepository()
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	publisher := testutil.NewMockPublisher()
	svc := NewSocialService(postRepo, workspaceRepo, &ai.Client{}, offlineAcquirer(), publisher)

	post, err := svc.GeneratePost(context.Background(), "user-1", "", "linkedin", "product launch announcement")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if post.ID == "" {
		t.Fatal("Expected generated post to be persisted with an id")
	}
	if post.Status != domain.SocialPostDraft {
		t.Errorf("Expected draft status, got %s", post.Status)
	}
	if post.Text == "" {
		t.Error("Expected post text to be non-empty")
	}

	if len(post.ImageOptions) != 3 {
		t.Fatalf("Expected 3 image options, got %d", len(post.ImageOptions))
	}
	for i := 0; i < len(post.ImageOptions); i++ {
		if post.ImageOptions[i] == "" {
			t.Fatalf("Expected image option %d to be non-empty", i)
		}
		for j := i + 1; j < len(post.ImageOptions); j++ {
			if post.ImageOptions[i] == post.ImageOptions[j] {
				t.Errorf("Expected distinct image options, %d and %d are equal", i, j)
			}
		}
	}

	events := publisher.Events()
	if len(events) != 1 {
		t.Fatalf("Expected 1 published event, got %d", len(events))
	}
	if events[0].Event.Type != "social_post.created" {
		t.Errorf("Expected social_post.created event, got %s", events[0].Event.Type)
	}
}

func TestGeneratePost_BlankTopicRejected(t *testing.T) {
	postRepo := testutil.NewMockSocialPostRepository()
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	publisher := testutil.NewMockPublisher()
	svc := NewSocialService(postRepo, workspaceRepo, &ai.Client{}, offlineAcquirer(), publisher)

	if _, err := svc.GeneratePost(context.Background(), "user-1", "", "linkedin", "   "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for blank topic, got %v", err)
	}
	if len(publisher.Events()) != 0 {
		t.Error("Expected no events for rejected input")
	}
}

func TestUpdatePost_ForeignOwnerIsNotFound(t *testing.T) {
	postRepo := testutil.NewMockSocialPostRepository()
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	publisher := testutil.NewMockPublisher()
	svc := NewSocialService(postRepo, workspaceRepo, &ai.Client{}, offlineAcquirer(), publisher)

	created, err := postRepo.Create(&domain.SocialPost{OwnerID: "user-1", Topic: "launch", Text: "hello"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	edit := *created
	edit.Text = "edited"
	if _, err := svc.UpdatePost("user-2", &edit); !errors.Is(err, domain.ErrSocialPostNotFound) {
		t.Errorf("Expected not-found for foreign owner, got %v", err)
	}
}
