package service

import (
	"context"
	"strings"

	"github.com/trigenthq/trigent/trigent-backend/internal/ai"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
	"github.com/trigenthq/trigent/trigent-backend/internal/image"
	"github.com/trigenthq/trigent/trigent-backend/internal/websocket"
)

// socialImageOptions is how many image choices a generated post carries
const socialImageOptions = 3

// SocialService handles social post business logic
type SocialService struct {
	postRepo      domain.SocialPostRepository
	workspaceRepo domain.WorkspaceRepository
	aiClient      *ai.Client
	acquirer      *image.Acquirer
	publisher     websocket.EventPublisher
}

// NewSocialService creates a new SocialService
func NewSocialService(postRepo domain.SocialPostRepository, workspaceRepo domain.WorkspaceRepository, aiClient *ai.Client, acquirer *image.Acquirer, publisher websocket.EventPublisher) *SocialService {
	return &SocialService{
		postRepo:      postRepo,
		workspaceRepo: workspaceRepo,
		aiClient:      aiClient,
		acquirer:      acquirer,
		publisher:     publisher,
	}
}

// GetPosts retrieves all social posts owned by a user
func (s *SocialService) GetPosts(ownerID string) ([]*domain.SocialPost, error) {
	return s.postRepo.ListByOwner(ownerID)
}

// GetPost retrieves one social post, verifying ownership
func (s *SocialService) GetPost(ownerID, id string) (*domain.SocialPost, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post.OwnerID != ownerID {
		return nil, domain.ErrSocialPostNotFound
	}
	return post, nil
}

// GeneratePost generates post copy for a topic plus three distinct
// image options resolved through the tiered acquirer
func (s *SocialService) GeneratePost(ctx context.Context, ownerID, workspaceID, platform, topic string) (*domain.SocialPost, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, domain.ErrInvalidInput
	}

	instructions := instructionsFor(s.workspaceRepo, ownerID, workspaceID)

	post := s.aiClient.GenerateSocialPost(ctx, topic, instructions)
	post.OwnerID = ownerID
	post.WorkspaceID = workspaceID
	post.Platform = platform
	post.ImageOptions = s.acquirer.AcquireOptions(ctx, post.ImagePrompt, image.StyleProfessional, socialImageOptions)

	created, err := s.postRepo.Create(post)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ownerID, websocket.SocialPostCreated(created))
	return created, nil
}

// UpdatePost updates an owned social post (text edits, image selection,
// scheduling)
func (s *SocialService) UpdatePost(ownerID string, post *domain.SocialPost) (*domain.SocialPost, error) {
	existing, err := s.GetPost(ownerID, post.ID)
	if err != nil {
		return nil, err
	}
	post.OwnerID = existing.OwnerID
	post.Source = existing.Source
	return s.postRepo.Update(post)
}

// DeletePost deletes an owned social post
func (s *SocialService) DeletePost(ownerID, id string) error {
	if _, err := s.GetPost(ownerID, id); err != nil {
		return err
	}
	return s.postRepo.Delete(id)
}
