package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// SocialPostRepository implements domain.SocialPostRepository using PostgreSQL
type SocialPostRepository struct {
	docs docStore
}

// NewSocialPostRepository creates a new SocialPostRepository
func NewSocialPostRepository(pool *pgxpool.Pool) *SocialPostRepository {
	return &SocialPostRepository{docs: docStore{pool: pool, table: "social_posts"}}
}

// GetByID retrieves a social post by id
func (r *SocialPostRepository) GetByID(id string) (*domain.SocialPost, error) {
	var post domain.SocialPost
	err := r.docs.get(context.Background(), id, &post)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSocialPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ListByOwner retrieves all social posts owned by a user, newest first
func (r *SocialPostRepository) ListByOwner(ownerID string) ([]*domain.SocialPost, error) {
	var posts []*domain.SocialPost
	err := r.docs.listByOwner(context.Background(), ownerID, func(raw []byte) error {
		var post domain.SocialPost
		if err := json.Unmarshal(raw, &post); err != nil {
			return err
		}
		posts = append(posts, &post)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Create creates a new social post
func (r *SocialPostRepository) Create(post *domain.SocialPost) (*domain.SocialPost, error) {
	rec := *post
	rec.ID = uuid.New().String()
	if rec.Status == "" {
		rec.Status = domain.SocialPostDraft
	}
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	if err := r.docs.insert(context.Background(), rec.ID, rec.OwnerID, rec.CreatedAt, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update updates an existing social post
func (r *SocialPostRepository) Update(post *domain.SocialPost) (*domain.SocialPost, error) {
	existing, err := r.GetByID(post.ID)
	if err != nil {
		return nil, err
	}
	rec := *post
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now().UTC()
	ok, err := r.docs.update(context.Background(), rec.ID, &rec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrSocialPostNotFound
	}
	return &rec, nil
}

// Delete deletes a social post by id
func (r *SocialPostRepository) Delete(id string) error {
	return r.docs.delete(context.Background(), id)
}
