package localdb

import (
	"time"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// SocialPostRepository implements domain.SocialPostRepository over the file store
type SocialPostRepository struct {
	db *DB
}

// NewSocialPostRepository creates a new SocialPostRepository
func NewSocialPostRepository(db *DB) *SocialPostRepository {
	return &SocialPostRepository{db: db}
}

func postID(p *domain.SocialPost) string    { return p.ID }
func postOwner(p *domain.SocialPost) string { return p.OwnerID }
func postAge(p *domain.SocialPost) time.Time {
	return p.CreatedAt
}

// GetByID retrieves a social post by id
func (r *SocialPostRepository) GetByID(id string) (*domain.SocialPost, error) {
	return findByID(r.db, colSocialPosts, id, postID, domain.ErrSocialPostNotFound)
}

// ListByOwner retrieves all social posts owned by a user, newest first
func (r *SocialPostRepository) ListByOwner(ownerID string) ([]*domain.SocialPost, error) {
	return listByOwner(r.db, colSocialPosts, ownerID, postOwner, postAge)
}

// Create creates a new social post as a draft
func (r *SocialPostRepository) Create(post *domain.SocialPost) (*domain.SocialPost, error) {
	rec := *post
	rec.ID = r.db.NewID()
	if rec.Status == "" {
		rec.Status = domain.SocialPostDraft
	}
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	if err := appendRecord(r.db, colSocialPosts, &rec); err != nil {
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
	if err := replaceByID(r.db, colSocialPosts, rec.ID, &rec, postID, domain.ErrSocialPostNotFound); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete deletes a social post by id
func (r *SocialPostRepository) Delete(id string) error {
	return deleteByID(r.db, colSocialPosts, id, postID)
}
